// Package dto holds the JSON shapes of the public API and the helpers that
// bind, validate and render them.
package dto

import "net/http"

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail is the body of the envelope. Details carries per-field
// messages for validation failures.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Machine-readable error codes.
const (
	ErrorCodeBadRequest   = "BAD_REQUEST"
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeUnauthorized = "UNAUTHORIZED"
	ErrorCodeForbidden    = "FORBIDDEN"
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeConflict     = "CONFLICT"
	ErrorCodeInternal     = "INTERNAL_ERROR"
	ErrorCodeUnavailable  = "SERVICE_UNAVAILABLE"
	ErrorCodeTimeout      = "TIMEOUT"

	// ErrorCodeNoContent means the catalog has nothing to show for today,
	// not even a fallback quote.
	ErrorCodeNoContent = "NO_CONTENT_AVAILABLE"
)

var codeStatus = map[string]int{
	ErrorCodeBadRequest:   http.StatusBadRequest,
	ErrorCodeValidation:   http.StatusBadRequest,
	ErrorCodeUnauthorized: http.StatusUnauthorized,
	ErrorCodeForbidden:    http.StatusForbidden,
	ErrorCodeNotFound:     http.StatusNotFound,
	ErrorCodeNoContent:    http.StatusNotFound,
	ErrorCodeConflict:     http.StatusConflict,
	ErrorCodeUnavailable:  http.StatusServiceUnavailable,
	ErrorCodeTimeout:      http.StatusGatewayTimeout,
}

// NewErrorResponse creates an envelope without details.
func NewErrorResponse(code, message string) *ErrorResponse {
	return NewErrorResponseWithDetails(code, message, nil)
}

// NewErrorResponseWithDetails creates an envelope with per-field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// HTTPStatusFromCode returns the status for code; unknown codes are 500.
func HTTPStatusFromCode(code string) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}
