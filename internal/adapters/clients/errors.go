// Package clients provides the instrumented HTTP client used for downstream
// services.
package clients

import "errors"

// Transport-level failures. Callers translate them into domain errors.
var (
	// ErrCircuitOpen means the breaker is rejecting calls to an unhealthy service.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure once every attempt is spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
