// Package handler はtokensフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chime_backend/internal/api"
	"chime_backend/internal/feature/tokens/domain/entity"
	"chime_backend/internal/feature/tokens/transport/http/dto"
	"chime_backend/internal/feature/tokens/usecase"
)

// TokensUsecase は価格参照とトレンド取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type TokensUsecase interface {
	PriceBySymbol(ctx context.Context, symbol string) ([]entity.CoinInfo, error)
	Trending(ctx context.Context) ([]entity.TrendingCoin, error)
}

// ChartUsecase はチャートバッチのユースケースインターフェースを定義します。
type ChartUsecase interface {
	RenderAll(ctx context.Context, symbol, days string) ([]entity.RenderedChart, error)
}

// TokensHandler は市場データ関連のHTTPリクエストを処理します。
type TokensHandler struct {
	tokens TokensUsecase
	charts ChartUsecase
}

// NewTokensHandler は指定されたusecaseでTokensHandlerの新しいインスタンスを生成します。
func NewTokensHandler(tokens TokensUsecase, charts ChartUsecase) *TokensHandler {
	return &TokensHandler{tokens: tokens, charts: charts}
}

// Price はシンボルに一致する全コインの市場スナップショットをJSONで返します。
//
// エンドポイント例:
// GET /api/v1/tokens/price/btc
func (h *TokensHandler) Price(c *gin.Context) {
	symbol := c.Param("symbol")

	infos, err := h.tokens.PriceBySymbol(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("price lookup failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to fetch market data"})
		return
	}

	out := make([]dto.CoinInfoResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, dto.CoinInfoResponse{
			ID:            info.ID,
			Symbol:        info.Symbol,
			Name:          info.Name,
			PriceUSD:      info.PriceUSD,
			MarketCapUSD:  info.MarketCapUSD,
			MarketCapRank: info.MarketCapRank,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Chart はシンボルに一致する各コインのローソク足チャートをJSONで返します。
// 個々のコインの失敗はusecase側でスキップされるため、ここに届くエラーは
// ゲートウェイ全体の障害かキャンセルのみです。
//
// エンドポイント例:
// GET /api/v1/tokens/price/btc/chart?days=30
func (h *TokensHandler) Chart(c *gin.Context) {
	symbol := c.Param("symbol")
	// 未指定の場合はデフォルト値を使用
	days := c.DefaultQuery("days", usecase.DefaultDaysRange)

	charts, err := h.charts.RenderAll(c.Request.Context(), symbol, days)
	if err != nil {
		if errors.Is(err, usecase.ErrGatewayUnavailable) {
			slog.Error("chart batch aborted", "symbol", symbol, "error", err)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "market data gateway unavailable"})
			return
		}
		slog.Error("chart batch failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to render charts"})
		return
	}

	out := make([]dto.ChartResponse, 0, len(charts))
	for _, chart := range charts {
		out = append(out, dto.ChartResponse{
			Name:  chart.Name,
			Image: chart.ImageBase64,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Trending は検索トレンドのコイン一覧をJSONで返します。
//
// エンドポイント例:
// GET /api/v1/tokens/trending
func (h *TokensHandler) Trending(c *gin.Context) {
	trending, err := h.tokens.Trending(c.Request.Context())
	if err != nil {
		slog.Error("trending lookup failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to fetch trending data"})
		return
	}

	out := make([]dto.TrendingCoinResponse, 0, len(trending))
	for _, t := range trending {
		out = append(out, dto.TrendingCoinResponse{
			ID:            t.ID,
			CoinID:        t.CoinID,
			Name:          t.Name,
			Symbol:        t.Symbol,
			MarketCapRank: t.MarketCapRank,
			Thumb:         t.Thumb,
			Score:         t.Score,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}
