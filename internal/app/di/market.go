// Package di provides dependency injection factories for creating application components.
package di

import (
	"chime_backend/internal/feature/tokens/adapters/coingecko"
	infrahttp "chime_backend/internal/platform/http"
)

// NewMarket creates a fully configured CoinGeckoMarket with HTTP client.
func NewMarket() *coingecko.CoinGeckoMarket {
	cfg := coingecko.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return coingecko.NewCoinGeckoMarket(cfg, httpClient)
}
