package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quoteday/internal/adapters/clients"
	"github.com/jsamuelsen/quoteday/internal/domain"
)

// BaseAdapter holds the client and error mapping shared by adapters.
type BaseAdapter struct {
	client *clients.Client
}

// NewBaseAdapter wraps client.
func NewBaseAdapter(client *clients.Client) BaseAdapter {
	return BaseAdapter{client: client}
}

// ServiceName is the downstream name used in domain errors.
func (a *BaseAdapter) ServiceName() string {
	return a.client.ServiceName()
}

// Get performs a GET and returns the body of a 2xx response; the caller
// closes it. Anything else is returned as a domain error.
func (a *BaseAdapter) Get(ctx context.Context, path string, header http.Header, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path, header)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.ServiceName(), operation)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.ServiceName(), operation)
	}

	return resp.Body, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var out T
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &out, nil
}

// ValidateRequired rejects an empty downstream field.
func ValidateRequired(value, field string) error {
	if value == "" {
		return domain.NewValidationError(field, "is required")
	}

	return nil
}
