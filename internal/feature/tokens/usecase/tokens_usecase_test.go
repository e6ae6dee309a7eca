package usecase

import (
	"context"
	"errors"
	"testing"

	"chime_backend/internal/feature/tokens/domain/entity"
)

// ErrAPI はモックと期待値の間で共有されるセンチネルエラーです。
var ErrAPI = errors.New("market API error")

// mockMarketRepository はMarketRepositoryインターフェースのモック実装です。
type mockMarketRepository struct {
	ListCoinsFunc   func(ctx context.Context) ([]entity.Coin, error)
	GetCoinByIDFunc func(ctx context.Context, id string) (*entity.CoinInfo, error)
	GetOHLCFunc     func(ctx context.Context, id, vsCurrency, days string) ([]entity.OHLCPoint, error)
	GetTrendingFunc func(ctx context.Context) ([]entity.TrendingCoin, error)

	ListCoinsCalls   int
	GetCoinByIDCalls int
	GetOHLCCalls     int
}

func (m *mockMarketRepository) ListCoins(ctx context.Context) ([]entity.Coin, error) {
	m.ListCoinsCalls++
	if m.ListCoinsFunc != nil {
		return m.ListCoinsFunc(ctx)
	}
	return nil, errors.New("ListCoinsFunc is not implemented")
}

func (m *mockMarketRepository) GetCoinByID(ctx context.Context, id string) (*entity.CoinInfo, error) {
	m.GetCoinByIDCalls++
	if m.GetCoinByIDFunc != nil {
		return m.GetCoinByIDFunc(ctx, id)
	}
	return nil, errors.New("GetCoinByIDFunc is not implemented")
}

func (m *mockMarketRepository) GetOHLC(ctx context.Context, id, vsCurrency, days string) ([]entity.OHLCPoint, error) {
	m.GetOHLCCalls++
	if m.GetOHLCFunc != nil {
		return m.GetOHLCFunc(ctx, id, vsCurrency, days)
	}
	return nil, errors.New("GetOHLCFunc is not implemented")
}

func (m *mockMarketRepository) GetTrending(ctx context.Context) ([]entity.TrendingCoin, error) {
	if m.GetTrendingFunc != nil {
		return m.GetTrendingFunc(ctx)
	}
	return nil, errors.New("GetTrendingFunc is not implemented")
}

var listedCoins = []entity.Coin{
	{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	{ID: "batcat", Symbol: "btc", Name: "Batcat"},
	{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
}

// TestTokensUsecase_PriceBySymbol はシンボル照合と市場スナップショットの取得をテストします。
func TestTokensUsecase_PriceBySymbol(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name            string
		inputSymbol     string
		mockListFunc    func(ctx context.Context) ([]entity.Coin, error)
		mockGetCoinFunc func(ctx context.Context, id string) (*entity.CoinInfo, error)
		expectedIDs     []string
		expectedErr     error
	}{
		{
			name:        "success: uppercase input matches lowercase listing",
			inputSymbol: "BTC",
			mockListFunc: func(ctx context.Context) ([]entity.Coin, error) {
				return listedCoins, nil
			},
			mockGetCoinFunc: func(ctx context.Context, id string) (*entity.CoinInfo, error) {
				return &entity.CoinInfo{ID: id, Symbol: "btc", PriceUSD: 50000}, nil
			},
			// 同一シンボルを名乗る2コインの両方が返る
			expectedIDs: []string{"bitcoin", "batcat"},
		},
		{
			name:        "success: no match returns empty slice",
			inputSymbol: "doge",
			mockListFunc: func(ctx context.Context) ([]entity.Coin, error) {
				return listedCoins, nil
			},
			expectedIDs: []string{},
		},
		{
			name:        "error: coin listing failure is a gateway error",
			inputSymbol: "btc",
			mockListFunc: func(ctx context.Context) ([]entity.Coin, error) {
				return nil, ErrAPI
			},
			expectedErr: ErrGatewayUnavailable,
		},
		{
			name:        "error: snapshot fetch failure propagates",
			inputSymbol: "eth",
			mockListFunc: func(ctx context.Context) ([]entity.Coin, error) {
				return listedCoins, nil
			},
			mockGetCoinFunc: func(ctx context.Context, id string) (*entity.CoinInfo, error) {
				return nil, ErrAPI
			},
			expectedErr: ErrAPI,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockMarket := &mockMarketRepository{
				ListCoinsFunc:   tc.mockListFunc,
				GetCoinByIDFunc: tc.mockGetCoinFunc,
			}
			uc := NewTokensUsecase(mockMarket)

			infos, err := uc.PriceBySymbol(ctx, tc.inputSymbol)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(infos) != len(tc.expectedIDs) {
				t.Fatalf("result count mismatch: got %d, want %d", len(infos), len(tc.expectedIDs))
			}
			for i, id := range tc.expectedIDs {
				if infos[i].ID != id {
					t.Errorf("result[%d] ID mismatch: got %s, want %s", i, infos[i].ID, id)
				}
			}
		})
	}
}

// TestTokensUsecase_Trending はトレンド一覧の取得とエラーの包み替えをテストします。
func TestTokensUsecase_Trending(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockMarket := &mockMarketRepository{
			GetTrendingFunc: func(ctx context.Context) ([]entity.TrendingCoin, error) {
				return []entity.TrendingCoin{{ID: "pepe", Symbol: "PEPE", Score: 0}}, nil
			},
		}
		uc := NewTokensUsecase(mockMarket)

		trending, err := uc.Trending(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(trending) != 1 || trending[0].ID != "pepe" {
			t.Errorf("unexpected trending result: %+v", trending)
		}
	})

	t.Run("error: provider failure is a gateway error", func(t *testing.T) {
		mockMarket := &mockMarketRepository{
			GetTrendingFunc: func(ctx context.Context) ([]entity.TrendingCoin, error) {
				return nil, ErrAPI
			},
		}
		uc := NewTokensUsecase(mockMarket)

		_, err := uc.Trending(ctx)
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}
