package router

import (
	"github.com/gin-gonic/gin"

	submissionhandler "chime_backend/internal/feature/submissions/transport/handler"
	tokenshandler "chime_backend/internal/feature/tokens/transport/handler"
	"chime_backend/internal/platform/http/handler"
)

func NewRouter(submissions *submissionhandler.SubmissionHandler, tokens *tokenshandler.TokensHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	// APIバージョンプレフィックス配下にまとめる
	api := r.Group("/api/v1/tokens")
	{
		// 月次応募と抽選
		api.POST("/monthly/submit", submissions.Submit)
		api.GET("/monthly/draw", submissions.Draw)

		// 市場データ
		api.GET("/price/:symbol", tokens.Price)
		api.GET("/price/:symbol/chart", tokens.Chart)
		api.GET("/trending", tokens.Trending)
	}

	return r
}
