// Package coingecko はCoinGecko市場データAPIのクライアントを提供します。
package coingecko

import (
	"os"
	"time"
)

// Config はCoinGecko APIクライアントの設定を保持します。
// 無料ティアのエンドポイントはAPIキー不要です。
type Config struct {
	BaseURL string        // APIのベースURL（例: "https://api.coingecko.com/api/v3"）
	Timeout time.Duration // HTTPリクエストタイムアウト
}

// LoadConfig は環境変数からCoinGeckoの設定を読み込みます。
func LoadConfig() Config {
	base := os.Getenv("COINGECKO_BASE_URL")
	if base == "" {
		base = "https://api.coingecko.com/api/v3"
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
