package usecase

import (
	"context"
	"errors"
	"testing"

	"chime_backend/internal/feature/tokens/domain/entity"
)

// mockPacer はPacerインターフェースのモック実装です。待機せずに回数だけ記録します。
type mockPacer struct {
	WaitCalls int
	WaitErr   error
}

func (m *mockPacer) Wait(ctx context.Context) error {
	m.WaitCalls++
	return m.WaitErr
}

// mockRenderer はChartRendererインターフェースのモック実装です。
type mockRenderer struct {
	RenderFunc  func(tokenID, displayName string, points []entity.OHLCPoint) (entity.RenderedChart, error)
	RenderCalls int
}

func (m *mockRenderer) Render(tokenID, displayName string, points []entity.OHLCPoint) (entity.RenderedChart, error) {
	m.RenderCalls++
	if m.RenderFunc != nil {
		return m.RenderFunc(tokenID, displayName, points)
	}
	return entity.RenderedChart{Name: displayName}, nil
}

var ohlcPoints = []entity.OHLCPoint{
	{Time: 1700000000000, Open: 100, High: 110, Low: 90, Close: 105},
	{Time: 1700086400000, Open: 105, High: 120, Low: 100, Close: 115},
}

// TestChartUsecase_RenderAll はバッチの照合、ペーシング、部分失敗の分離をテストします。
func TestChartUsecase_RenderAll(t *testing.T) {
	ctx := context.Background()

	threeMatches := []entity.Coin{
		{ID: "alpha-coin", Symbol: "abc", Name: "Alpha"},
		{ID: "beta-coin", Symbol: "abc", Name: "Beta"},
		{ID: "gamma-coin", Symbol: "abc", Name: "Gamma"},
		{ID: "other", Symbol: "xyz", Name: "Other"},
	}

	testCases := []struct {
		name              string
		inputSymbol       string
		inputDays         string
		mockListFunc      func(ctx context.Context) ([]entity.Coin, error)
		mockOHLCFunc      func(ctx context.Context, id, vsCurrency, days string) ([]entity.OHLCPoint, error)
		mockRenderFunc    func(tokenID, displayName string, points []entity.OHLCPoint) (entity.RenderedChart, error)
		expectedCharts    int
		expectedWaits     int
		expectedErr       error
	}{
		{
			name:        "success: all matching tokens rendered",
			inputSymbol: "ABC",
			inputDays:   "30",
			mockListFunc: func(ctx context.Context) ([]entity.Coin, error) {
				return threeMatches, nil
			},
			mockOHLCFunc: func(ctx context.Context, id, vsCurrency, days string) ([]entity.OHLCPoint, error) {
				if vsCurrency != "usd" {
					t.Errorf("vsCurrency mismatch: got %s, want usd", vsCurrency)
				}
				if days != "30" {
					t.Errorf("days mismatch: got %s, want 30", days)
				}
				return ohlcPoints, nil
			},
			expectedCharts: 3,
			expectedWaits:  3,
		},
		{
			name:        "success: empty days falls back to max",
			inputSymbol: "abc",
			inputDays:   "",
			mockListFunc: func(ctx context.Context) ([]entity.Coin, error) {
				return threeMatches[:1], nil
			},
			mockOHLCFunc: func(ctx context.Context, id, vsCurrency, days string) ([]entity.OHLCPoint, error) {
				if days != "max" {
					t.Errorf("days mismatch: got %s, want max", days)
				}
				return ohlcPoints, nil
			},
			expectedCharts: 1,
			expectedWaits:  1,
		},
		{
			name:        "success: one gateway failure is skipped, batch continues",
			inputSymbol: "abc",
			inputDays:   "max",
			mockListFunc: func(ctx context.Context) ([]entity.Coin, error) {
				return threeMatches, nil
			},
			mockOHLCFunc: func(ctx context.Context, id, vsCurrency, days string) ([]entity.OHLCPoint, error) {
				if id == "beta-coin" {
					return nil, ErrAPI
				}
				return ohlcPoints, nil
			},
			// 2番目のコインが失敗しても1番目と3番目は描画される
			expectedCharts: 2,
			expectedWaits:  3,
		},
		{
			name:        "success: render failure is skipped, batch continues",
			inputSymbol: "abc",
			inputDays:   "max",
			mockListFunc: func(ctx context.Context) ([]entity.Coin, error) {
				return threeMatches, nil
			},
			mockOHLCFunc: func(ctx context.Context, id, vsCurrency, days string) ([]entity.OHLCPoint, error) {
				if id == "gamma-coin" {
					return []entity.OHLCPoint{}, nil
				}
				return ohlcPoints, nil
			},
			mockRenderFunc: func(tokenID, displayName string, points []entity.OHLCPoint) (entity.RenderedChart, error) {
				if len(points) == 0 {
					return entity.RenderedChart{}, ErrNoChartData
				}
				return entity.RenderedChart{Name: displayName}, nil
			},
			expectedCharts: 2,
			expectedWaits:  3,
		},
		{
			name:        "success: no matching symbol returns empty slice",
			inputSymbol: "doge",
			inputDays:   "max",
			mockListFunc: func(ctx context.Context) ([]entity.Coin, error) {
				return threeMatches, nil
			},
			expectedCharts: 0,
			expectedWaits:  0,
		},
		{
			name:        "error: coin listing failure aborts the whole batch",
			inputSymbol: "abc",
			inputDays:   "max",
			mockListFunc: func(ctx context.Context) ([]entity.Coin, error) {
				return nil, ErrAPI
			},
			expectedErr: ErrGatewayUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockMarket := &mockMarketRepository{
				ListCoinsFunc: tc.mockListFunc,
				GetOHLCFunc:   tc.mockOHLCFunc,
			}
			renderer := &mockRenderer{RenderFunc: tc.mockRenderFunc}
			pacer := &mockPacer{}

			uc := NewChartUsecase(mockMarket, renderer, pacer)
			charts, err := uc.RenderAll(ctx, tc.inputSymbol, tc.inputDays)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(charts) != tc.expectedCharts {
				t.Fatalf("chart count mismatch: got %d, want %d", len(charts), tc.expectedCharts)
			}
			if pacer.WaitCalls != tc.expectedWaits {
				t.Errorf("pacer waited %d times, expected %d", pacer.WaitCalls, tc.expectedWaits)
			}
		})
	}
}

// TestChartUsecase_RenderAll_Cancelled はペーサーの待機中のキャンセルでバッチが中断されることをテストします。
func TestChartUsecase_RenderAll_Cancelled(t *testing.T) {
	mockMarket := &mockMarketRepository{
		ListCoinsFunc: func(ctx context.Context) ([]entity.Coin, error) {
			return []entity.Coin{{ID: "bitcoin", Symbol: "btc"}}, nil
		},
	}
	pacer := &mockPacer{WaitErr: context.Canceled}

	uc := NewChartUsecase(mockMarket, &mockRenderer{}, pacer)
	charts, err := uc.RenderAll(context.Background(), "btc", "max")

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if charts != nil {
		t.Errorf("expected discarded results, got %d charts", len(charts))
	}
	if mockMarket.GetOHLCCalls != 0 {
		t.Errorf("GetOHLC was called %d times, expected 0", mockMarket.GetOHLCCalls)
	}
}

// TestHumanizeID は表示名変換をテストします。
func TestHumanizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bitcoin", "Bitcoin"},
		{"bitcoin-cash", "Bitcoin cash"},
		{"wrapped_bitcoin", "Wrapped bitcoin"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := humanizeID(tt.in); got != tt.want {
			t.Errorf("humanizeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
