// Package entity defines the domain models for the tokens feature.
package entity

// Coin is one entry of the provider's coin listing.
type Coin struct {
	ID     string // Provider coin identifier (e.g., "bitcoin-cash")
	Symbol string // Ticker symbol, lowercase as delivered by the provider
	Name   string // Display name
}

// CoinInfo holds the market snapshot for a single coin.
type CoinInfo struct {
	ID            string
	Symbol        string
	Name          string
	PriceUSD      float64
	MarketCapUSD  float64
	MarketCapRank int
}

// OHLCPoint is one candle of a price series.
// Time is epoch milliseconds; the provider aligns daily candles to UTC midnight.
type OHLCPoint struct {
	Time  int64
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// TrendingCoin is one entry of the provider's trending search list.
type TrendingCoin struct {
	ID            string
	CoinID        int
	Name          string
	Symbol        string
	MarketCapRank int
	Thumb         string
	Score         int
}

// RenderedChart is the output of the chart pipeline: a candlestick image
// encoded as standard base64, ready to embed in a JSON response.
// Ephemeral; never persisted.
type RenderedChart struct {
	Name        string
	Title       string
	ImageBase64 string
}
