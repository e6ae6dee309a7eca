package usecase

import (
	"context"
	"fmt"
	"strings"

	"chime_backend/internal/feature/tokens/domain/entity"
)

// MarketRepository は外部プロバイダーから市場データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	// ListCoins はプロバイダーが扱う全コインの一覧を返します。
	ListCoins(ctx context.Context) ([]entity.Coin, error)

	// GetCoinByID は指定されたコインIDの市場スナップショットを返します。
	GetCoinByID(ctx context.Context, id string) (*entity.CoinInfo, error)

	// GetOHLC は指定されたコインのOHLC時系列を返します。
	// days は日数または "max" を受け付けます。
	GetOHLC(ctx context.Context, id, vsCurrency, days string) ([]entity.OHLCPoint, error)

	// GetTrending は検索トレンドのコイン一覧を返します。
	GetTrending(ctx context.Context) ([]entity.TrendingCoin, error)
}

// TokensUsecase は価格参照とトレンド取得のユースケースを定義します。
type TokensUsecase struct {
	market MarketRepository
}

// NewTokensUsecase はTokensUsecaseの新しいインスタンスを生成します。
func NewTokensUsecase(market MarketRepository) *TokensUsecase {
	return &TokensUsecase{market: market}
}

// PriceBySymbol はシンボルを小文字に正規化してコイン一覧と完全一致で照合し、
// 一致した各コインの市場スナップショットを返します。
// 同じシンボルを複数のコインが名乗ることがあるため、結果は複数件になりえます。
func (u *TokensUsecase) PriceBySymbol(ctx context.Context, symbol string) ([]entity.CoinInfo, error) {
	symbol = strings.ToLower(symbol)

	coins, err := u.market.ListCoins(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	infos := make([]entity.CoinInfo, 0)
	for _, coin := range coins {
		if coin.Symbol != symbol {
			continue
		}
		info, err := u.market.GetCoinByID(ctx, coin.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch coin %q: %w", coin.ID, err)
		}
		infos = append(infos, *info)
	}
	return infos, nil
}

// Trending はプロバイダーの検索トレンド一覧をそのまま返します。
func (u *TokensUsecase) Trending(ctx context.Context) ([]entity.TrendingCoin, error) {
	trending, err := u.market.GetTrending(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	return trending, nil
}
