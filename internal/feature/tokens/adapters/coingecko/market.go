package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"chime_backend/internal/feature/tokens/adapters/coingecko/dto"
	"chime_backend/internal/feature/tokens/domain/entity"
	"chime_backend/internal/feature/tokens/usecase"
)

// CoinGeckoMarket はCoinGecko外部APIから市場データを取得するMarketRepository実装です。
type CoinGeckoMarket struct {
	cfg    Config
	client *http.Client
}

// CoinGeckoMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*CoinGeckoMarket)(nil)

// NewCoinGeckoMarket は指定された設定とHTTPクライアントでCoinGeckoMarketの新しいインスタンスを生成します。
func NewCoinGeckoMarket(cfg Config, client *http.Client) *CoinGeckoMarket {
	return &CoinGeckoMarket{cfg: cfg, client: client}
}

// get はGETリクエストを実行し、JSONレスポンスを out にデコードします。
func (g *CoinGeckoMarket) get(ctx context.Context, path string, query url.Values, out any) error {
	u := g.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("coingecko http %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// ListCoins は /coins/list からプロバイダーが扱う全コインの一覧を取得します。
func (g *CoinGeckoMarket) ListCoins(ctx context.Context) ([]entity.Coin, error) {
	var body []dto.CoinListItem
	if err := g.get(ctx, "/coins/list", nil, &body); err != nil {
		return nil, err
	}

	coins := make([]entity.Coin, 0, len(body))
	for _, item := range body {
		coins = append(coins, entity.Coin{
			ID:     item.ID,
			Symbol: item.Symbol,
			Name:   item.Name,
		})
	}
	return coins, nil
}

// GetCoinByID は /coins/{id} から市場スナップショットを取得します。
// 不要なセクションはクエリパラメータで落とします。
func (g *CoinGeckoMarket) GetCoinByID(ctx context.Context, id string) (*entity.CoinInfo, error) {
	q := url.Values{}
	q.Set("localization", "false")
	q.Set("tickers", "false")
	q.Set("market_data", "true")
	q.Set("community_data", "false")
	q.Set("developer_data", "false")
	q.Set("sparkline", "false")

	var body dto.CoinResponse
	if err := g.get(ctx, "/coins/"+url.PathEscape(id), q, &body); err != nil {
		return nil, err
	}

	return &entity.CoinInfo{
		ID:            body.ID,
		Symbol:        body.Symbol,
		Name:          body.Name,
		PriceUSD:      body.MarketData.CurrentPrice["usd"],
		MarketCapUSD:  body.MarketData.MarketCap["usd"],
		MarketCapRank: body.MarketCapRank,
	}, nil
}

// GetOHLC は /coins/{id}/ohlc からOHLC時系列を取得します。
// レスポンスは [timestamp_ms, open, high, low, close] の配列の配列です。
func (g *CoinGeckoMarket) GetOHLC(ctx context.Context, id, vsCurrency, days string) ([]entity.OHLCPoint, error) {
	q := url.Values{}
	q.Set("vs_currency", vsCurrency)
	q.Set("days", days)

	var body [][]float64
	if err := g.get(ctx, "/coins/"+url.PathEscape(id)+"/ohlc", q, &body); err != nil {
		return nil, err
	}

	points := make([]entity.OHLCPoint, 0, len(body))
	for i, row := range body {
		if len(row) < 5 {
			return nil, fmt.Errorf("malformed ohlc row %d: %d columns", i, len(row))
		}
		points = append(points, entity.OHLCPoint{
			Time:  int64(row[0]),
			Open:  row[1],
			High:  row[2],
			Low:   row[3],
			Close: row[4],
		})
	}
	return points, nil
}

// GetTrending は /search/trending から検索トレンドのコイン一覧を取得します。
func (g *CoinGeckoMarket) GetTrending(ctx context.Context) ([]entity.TrendingCoin, error) {
	var body dto.TrendingResponse
	if err := g.get(ctx, "/search/trending", nil, &body); err != nil {
		return nil, err
	}

	trending := make([]entity.TrendingCoin, 0, len(body.Coins))
	for _, c := range body.Coins {
		trending = append(trending, entity.TrendingCoin{
			ID:            c.Item.ID,
			CoinID:        c.Item.CoinID,
			Name:          c.Item.Name,
			Symbol:        c.Item.Symbol,
			MarketCapRank: c.Item.MarketCapRank,
			Thumb:         c.Item.Thumb,
			Score:         c.Item.Score,
		})
	}
	return trending, nil
}
