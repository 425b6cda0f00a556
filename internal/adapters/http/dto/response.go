package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/platform/logging"
)

// traceIDKey is the gin context key a handler may set to override the trace id.
const traceIDKey = "trace_id"

// GetTraceID returns the id reported as traceId: an explicit context value,
// then the active span, then the inbound request id.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(traceIDKey); ok {
		s, _ := v.(string)
		return s
	}

	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return c.GetHeader("X-Request-ID")
}

// MapDomainError maps an error onto an HTTP status and envelope. Messages
// come from the innermost domain error so pipeline step wrappers never
// reach clients. Unknown errors get a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	switch {
	case err == nil:
		return http.StatusOK, nil

	case domain.IsNoContent(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNoContent, "no content available")

	case domain.IsMissingIdentity(err):
		return http.StatusUnauthorized, NewErrorResponse(ErrorCodeUnauthorized, message[*domain.MissingIdentityError](err))

	case domain.IsUnauthenticated(err):
		return http.StatusUnauthorized, NewErrorResponse(ErrorCodeUnauthorized, message[*domain.UnauthenticatedError](err))

	case domain.IsInvalidDate(err):
		resp := NewErrorResponse(ErrorCodeValidation, message[*domain.InvalidDateError](err))

		var de *domain.InvalidDateError
		if errors.As(err, &de) {
			resp.Error.Details = map[string]string{de.Field: "must be a date in YYYY-MM-DD format"}
		}

		return http.StatusBadRequest, resp

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, message[*domain.ValidationError](err))

		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Field != "" {
			resp.Error.Details = map[string]string{ve.Field: ve.Message}
		}

		return http.StatusBadRequest, resp

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, message[*domain.NotFoundError](err))

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, message[*domain.ConflictError](err))

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, message[*domain.ForbiddenError](err))

	case domain.IsUnavailable(err):
		// Downstream details stay in the logs.
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, "service temporarily unavailable")

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timed out")

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

// message returns the text of the first T in err's chain, or err's own text.
func message[T error](err error) string {
	var target T
	if errors.As(err, &target) {
		return target.Error()
	}

	return err.Error()
}

// HandleError writes the envelope for err. 5xx responses are logged with the
// full error.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			slog.Int("status", status),
			slog.String("trace_id", resp.TraceID),
			slog.Any("error", err),
		)
	}

	c.JSON(status, resp)
}

// AbortWithError is HandleError for middleware; later handlers do not run.
func AbortWithError(c *gin.Context, err error) {
	HandleError(c, err)
	c.Abort()
}

// AbortWithCode aborts with an envelope built from a code rather than an error.
func AbortWithCode(c *gin.Context, code, msg string) {
	resp := NewErrorResponse(code, msg)
	resp.TraceID = GetTraceID(c)

	c.AbortWithStatusJSON(HTTPStatusFromCode(code), resp)
}

// RespondWithValidationErrors writes a 400 with field-level details.
func RespondWithValidationErrors(c *gin.Context, details map[string]string) {
	resp := NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", details)
	resp.TraceID = GetTraceID(c)

	c.JSON(http.StatusBadRequest, resp)
}
