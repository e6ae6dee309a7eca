package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"chime_backend/internal/feature/tokens/domain/entity"
)

const (
	// chartPaceInterval はチャート生成の連続イテレーション間の待機時間です。
	// 外部プロバイダーのレートリミット対策であり、性能最適化ではありません。
	chartPaceInterval = 500 * time.Millisecond

	// DefaultDaysRange はOHLC取得のデフォルト期間です。
	DefaultDaysRange = "max"
)

// ChartRenderer はOHLC時系列からチャート画像を生成するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ChartRenderer interface {
	// Render は1コイン分のローソク足チャートを描画し、base64エンコード済みの
	// 画像を返します。points が空の場合は ErrNoChartData を返します。
	Render(tokenID, displayName string, points []entity.OHLCPoint) (entity.RenderedChart, error)
}

// Pacer はイテレーション間の協調的な待機を抽象化します。
// rate.Limiter がこのインターフェースを満たします。
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewChartPacer はチャートバッチ用のペーサーを生成します。
// バースト1なので最初の呼び出しは待機せず、以降は0.5秒間隔になります。
func NewChartPacer() *rate.Limiter {
	return rate.NewLimiter(rate.Every(chartPaceInterval), 1)
}

// ChartUsecase はシンボルに一致する全コインのチャートを順次生成するバッチを実装します。
type ChartUsecase struct {
	market   MarketRepository
	renderer ChartRenderer
	pacer    Pacer
}

// NewChartUsecase はChartUsecaseの新しいインスタンスを生成します。
func NewChartUsecase(market MarketRepository, renderer ChartRenderer, pacer Pacer) *ChartUsecase {
	return &ChartUsecase{market: market, renderer: renderer, pacer: pacer}
}

// RenderAll はシンボル（小文字に正規化、完全一致）に一致する各コインについて
// OHLC取得→描画を順次行い、生成できたチャートを返します。
//
// コイン一覧の取得に失敗した場合はバッチ全体を ErrGatewayUnavailable で中断します。
// 個々のコインの取得・描画失敗はそのコインだけをスキップし、ログに記録して続行します。
// イテレーションごとにペーサーで待機するため、呼び出しがキャンセルされれば
// その時点で中断されます（描画済みの結果は破棄されます）。
func (u *ChartUsecase) RenderAll(ctx context.Context, symbol, days string) ([]entity.RenderedChart, error) {
	symbol = strings.ToLower(symbol)
	if days == "" {
		days = DefaultDaysRange
	}

	coins, err := u.market.ListCoins(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	charts := make([]entity.RenderedChart, 0)
	for _, coin := range coins {
		if coin.Symbol != symbol {
			continue
		}

		if err := u.pacer.Wait(ctx); err != nil {
			return nil, err
		}

		points, err := u.market.GetOHLC(ctx, coin.ID, "usd", days)
		if err != nil {
			// 1コインの失敗でバッチを止めずにログに出力し、次のコインへ進む
			slog.Error("failed to fetch ohlc series", "coin", coin.ID, "error", err)
			continue
		}

		chart, err := u.renderer.Render(coin.ID, humanizeID(coin.ID), points)
		if err != nil {
			slog.Error("failed to render chart", "coin", coin.ID, "error", err)
			continue
		}

		charts = append(charts, chart)
	}
	return charts, nil
}

// humanizeID はコインIDを表示名に変換します（"bitcoin-cash" → "Bitcoin cash"）。
func humanizeID(id string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(id)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
