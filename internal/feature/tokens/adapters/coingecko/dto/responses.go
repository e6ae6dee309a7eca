// Package dto はCoinGecko APIレスポンスのデータ転送オブジェクトを定義します。
package dto

// CoinListItem は /coins/list エンドポイントの1件です。
type CoinListItem struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// CoinResponse は /coins/{id} エンドポイントのJSONレスポンスを表します。
// 必要なフィールドのみをデコードします。
type CoinResponse struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	MarketCapRank int    `json:"market_cap_rank"`
	MarketData    struct {
		CurrentPrice map[string]float64 `json:"current_price"`
		MarketCap    map[string]float64 `json:"market_cap"`
	} `json:"market_data"`
}

// TrendingResponse は /search/trending エンドポイントのJSONレスポンスを表します。
type TrendingResponse struct {
	Coins []struct {
		Item struct {
			ID            string `json:"id"`
			CoinID        int    `json:"coin_id"`
			Name          string `json:"name"`
			Symbol        string `json:"symbol"`
			MarketCapRank int    `json:"market_cap_rank"`
			Thumb         string `json:"thumb"`
			Score         int    `json:"score"`
		} `json:"item"`
	} `json:"coins"`
}
