// Package response defines the JSON error envelope. Successful responses are
// the plain resource DTOs; only failures share a common shape.
package response

// ErrorInfo describes a single failure.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "LIST_NOT_FOUND"
	Message string `json:"message"`           // Stable, user-facing message
	Details string `json:"details,omitempty"` // Optional diagnostic detail
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}
