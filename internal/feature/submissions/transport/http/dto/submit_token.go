// Package dto defines data transfer objects for the submissions feature's HTTP transport layer.
package dto

// SubmitTokenReq represents the request body for POST /tokens/monthly/submit.
// All fields are required; symbol casing is normalized by the usecase.
type SubmitTokenReq struct {
	Name        string `json:"name" binding:"required"`
	Symbol      string `json:"symbol" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// SubmissionResponse はsubmitエンドポイントのレスポンスDTOです。
type SubmissionResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// DrawEntryResponse は抽選結果1件のレスポンスDTOです。タイムスタンプとIDは含みません。
type DrawEntryResponse struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}
