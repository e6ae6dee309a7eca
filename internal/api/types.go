// Package api defines shared response types for the HTTP transport layer.
package api

// ErrorResponse is the generic error body returned by handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DetailResponse carries a human-readable detail message.
// Used for the duplicate-submission response to keep the original wire format.
type DetailResponse struct {
	Detail string `json:"detail"`
}
