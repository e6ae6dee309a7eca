// Package usecase はtokensフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrGatewayUnavailable is returned when the market data provider cannot
	// be reached at all. It aborts the whole operation.
	ErrGatewayUnavailable = errors.New("market data gateway unavailable")

	// ErrNoChartData is returned by the renderer when a token has an empty
	// OHLC series. The batch treats it as a per-token failure and skips.
	ErrNoChartData = errors.New("no chart data for token")
)
