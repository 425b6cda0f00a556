package acl

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteday/internal/adapters/clients"
	"github.com/jsamuelsen/quoteday/internal/domain"
)

func response(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name  string
		resp  *http.Response
		err   error
		check func(error) bool
		msg   string
	}{
		{"unauthorized", response(401, `{"detail":"Invalid token."}`), nil, domain.IsUnauthenticated, "Invalid token."},
		{"forbidden", response(403, ""), nil, domain.IsForbidden, "status 403"},
		{"not found", response(404, ""), nil, domain.IsNotFound, ""},
		{"conflict", response(409, `{"code":"CONFLICT","message":"busy"}`), nil, domain.IsConflict, "busy"},
		{"validation detail", response(422, `{"error":{"code":"VALIDATION_ERROR","message":"bad","details":{"token":"malformed"}}}`), nil, domain.IsValidation, "malformed"},
		{"rate limited", response(429, ""), nil, domain.IsUnavailable, "rate limit"},
		{"server error", response(502, "<html>"), nil, domain.IsUnavailable, "status 502"},
		{"circuit open", nil, clients.ErrCircuitOpen, domain.IsUnavailable, "circuit breaker open"},
		{"retries", nil, fmt.Errorf("%w: eof", clients.ErrMaxRetriesExceeded), domain.IsUnavailable, "max retries"},
		{"transport", nil, errors.New("dial tcp: refused"), domain.IsUnavailable, "refused"},
		{"no response", nil, nil, domain.IsUnavailable, "no response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(tt.resp, tt.err, "account-service", "resolve account")
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error type %T: %v", err, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	assert.NoError(t, MapHTTPError(response(200, ""), nil, "svc", "op"))
}

func TestParseErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     io.Reader
		wantNil  bool
		wantCode string
		wantMsg  string
	}{
		{"nested", strings.NewReader(`{"error":{"code":"X","message":"nested"}}`), false, "X", "nested"},
		{"flat", strings.NewReader(`{"code":"Y","message":"flat"}`), false, "Y", "flat"},
		{"detail", strings.NewReader(`{"detail":"nope"}`), false, "", "nope"},
		{"invalid", strings.NewReader(`not json`), true, "", ""},
		{"empty object", strings.NewReader(`{}`), true, "", ""},
		{"nil", nil, true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseErrorResponse(tt.body)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.GetCode())
			assert.Equal(t, tt.wantMsg, got.GetMessage())
		})
	}
}

func TestDecodeResponse(t *testing.T) {
	type payload struct {
		ID string `json:"id"`
	}

	got, err := DecodeResponse[payload](io.NopCloser(strings.NewReader(`{"id":"a1"}`)))
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	_, err = DecodeResponse[payload](io.NopCloser(strings.NewReader(`{`)))
	assert.ErrorContains(t, err, "decoding response")

	_, err = DecodeResponse[payload](nil)
	assert.Error(t, err)
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("x", "id"))
	assert.True(t, domain.IsValidation(ValidateRequired("", "id")))
}
