package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quoteday/internal/adapters/clients"
	"github.com/jsamuelsen/quoteday/internal/domain"
)

// maxErrorBody bounds how much of an error body is parsed.
const maxErrorBody = 64 << 10

// ErrorResponse is a downstream error body. Both {"error":{...}} and flat
// {"code","message"} shapes are accepted, as is a bare {"detail"}.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Detail  string      `json:"detail,omitempty"`
}

// ErrorDetail is the nested error object.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// GetCode returns whichever code field is set.
func (e *ErrorResponse) GetCode() string {
	if e.Error.Code != "" {
		return e.Error.Code
	}

	return e.Code
}

// GetMessage returns whichever message field is set.
func (e *ErrorResponse) GetMessage() string {
	switch {
	case e.Error.Message != "":
		return e.Error.Message
	case e.Message != "":
		return e.Message
	default:
		return e.Detail
	}
}

// ParseErrorResponse decodes an error body, or returns nil when the body is
// empty or not one of the known shapes.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var r ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&r); err != nil {
		return nil
	}

	if r.GetCode() == "" && r.GetMessage() == "" {
		return nil
	}

	return &r
}

// MapHTTPError converts a failed call into a domain error. Exactly one of
// resp and clientErr is expected to be set. 2xx responses map to nil.
func MapHTTPError(resp *http.Response, clientErr error, service, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, service, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(service, "no response received")
	}

	if resp.StatusCode < http.StatusBadRequest && resp.StatusCode >= http.StatusOK {
		return nil
	}

	var body *ErrorResponse
	if resp.Body != nil {
		body = ParseErrorResponse(resp.Body)
	}

	message := fmt.Sprintf("%s failed with status %d", operation, resp.StatusCode)
	if body != nil && body.GetMessage() != "" {
		message = body.GetMessage()
	}

	switch status := resp.StatusCode; {
	case status == http.StatusUnauthorized:
		return domain.NewUnauthenticatedError(message)
	case status == http.StatusForbidden:
		return domain.NewForbiddenError(operation, message)
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(service, operation)
	case status == http.StatusConflict:
		return domain.NewConflictError(service, message)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if body != nil {
			for field, msg := range body.Error.Details {
				return domain.NewValidationError(field, msg)
			}
		}

		return domain.NewValidationError("", message)
	case status == http.StatusTooManyRequests:
		return domain.NewUnavailableError(service, "rate limit exceeded")
	default:
		// 5xx and unexpected statuses.
		return domain.NewUnavailableError(service, message)
	}
}

func mapClientError(err error, service, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(service, "circuit breaker open during "+operation)
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(service, "max retries exceeded during "+operation)
	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s failed: %v", operation, err))
	}
}
