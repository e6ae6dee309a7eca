// Package handler はsubmissionsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chime_backend/internal/api"
	"chime_backend/internal/feature/submissions/domain/entity"
	"chime_backend/internal/feature/submissions/transport/http/dto"
	"chime_backend/internal/feature/submissions/usecase"
)

// SubmissionUsecase は月次応募と抽選のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SubmissionUsecase interface {
	// Submit は今月まだ存在しない場合に限り新しい応募を永続化します。
	Submit(ctx context.Context, today time.Time, name, symbol, description string) (*entity.Submission, error)
	// Draw は今月の応募からランダムに最大10件を返します。
	Draw(ctx context.Context, today time.Time) ([]usecase.DrawEntry, error)
}

// SubmissionHandler は応募関連のHTTPリクエストを処理します。
type SubmissionHandler struct {
	uc SubmissionUsecase
}

// NewSubmissionHandler は指定されたusecaseでSubmissionHandlerの新しいインスタンスを生成します。
func NewSubmissionHandler(uc SubmissionUsecase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

// Submit は応募登録APIエンドポイントを処理します。
// - リクエストJSONをSubmitTokenReqにバインド
// - バリデーションエラー時は400を返却
// - 同月内の重複時は404を返却（既存クライアント互換のため404とdetailボディを維持）
// - ストレージ障害時は500を返却
// - 成功時は201で作成済み応募を返却
//
// エンドポイント例:
// POST /api/v1/tokens/monthly/submit
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req dto.SubmitTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("submit validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	// 「今日」はここで確定させ、ユースケースには明示的に渡す
	today := time.Now()

	s, err := h.uc.Submit(c.Request.Context(), today, req.Name, req.Symbol, req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateSubmission) {
			c.JSON(http.StatusNotFound, api.DetailResponse{Detail: "Submission already exists"})
			return
		}
		slog.Error("submit failed", "symbol", req.Symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save submission"})
		return
	}

	c.JSON(http.StatusCreated, dto.SubmissionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Symbol:      s.Symbol,
		Description: s.Description,
	})
}

// Draw は月次抽選APIエンドポイントを処理します。応募が0件でも200と空配列を返します。
//
// エンドポイント例:
// GET /api/v1/tokens/monthly/draw
func (h *SubmissionHandler) Draw(c *gin.Context) {
	entries, err := h.uc.Draw(c.Request.Context(), time.Now())
	if err != nil {
		slog.Error("draw failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to draw submissions"})
		return
	}

	out := make([]dto.DrawEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.DrawEntryResponse{
			Name:        e.Name,
			Symbol:      e.Symbol,
			Description: e.Description,
		})
	}

	c.JSON(http.StatusOK, out)
}
