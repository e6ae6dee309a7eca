// Package dto defines data transfer objects for the tokens feature's HTTP transport layer.
package dto

// CoinInfoResponse は価格参照エンドポイントの1件です。
type CoinInfoResponse struct {
	ID            string  `json:"id"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	PriceUSD      float64 `json:"price_usd"`
	MarketCapUSD  float64 `json:"market_cap_usd"`
	MarketCapRank int     `json:"market_cap_rank"`
}

// ChartResponse はチャートエンドポイントの1件です。imageは標準base64のPNGです。
type ChartResponse struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// TrendingCoinResponse はトレンドエンドポイントの1件です。
type TrendingCoinResponse struct {
	ID            string `json:"id"`
	CoinID        int    `json:"coin_id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
	Score         int    `json:"score"`
}
