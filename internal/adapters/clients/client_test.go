package clients

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteday/internal/platform/config"
)

func testSettings() config.ClientConfig {
	return config.ClientConfig{
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2,
			JitterFactor:    0.25,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     time.Second,
		},
	}
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()

	c, err := New(Config{BaseURL: url, ServiceName: "account-service", Settings: testSettings()})
	require.NoError(t, err)

	return c
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing service name", Config{BaseURL: "http://x"}, "service name is required"},
		{"missing base url", Config{ServiceName: "svc"}, "base URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	c, err := New(Config{BaseURL: "https://accounts.example.com/", ServiceName: "svc", Settings: testSettings()})
	require.NoError(t, err)
	assert.Equal(t, "https://accounts.example.com/v1/me", c.buildURL("v1/me"))
	assert.Equal(t, "svc", c.ServiceName())
}

func TestClient_PropagatesHeaders(t *testing.T) {
	var got http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx := middleware.ContextWithRequestID(context.Background(), "req-1")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-1")

	resp, err := newTestClient(t, srv.URL).Get(ctx, "/v1/me", http.Header{"Authorization": {"Token abc"}})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, "req-1", got.Get(middleware.HeaderRequestID))
	assert.Equal(t, "corr-1", got.Get(middleware.HeaderCorrelationID))
	assert.Equal(t, "Token abc", got.Get("Authorization"))
}

func TestClient_Retries(t *testing.T) {
	tests := []struct {
		name         string
		statuses     []int
		wantStatus   int
		wantErr      error
		wantAttempts int32
	}{
		{"recovers after server errors", []int{500, 502, 200}, 200, nil, 3},
		{"client errors are returned", []int{401}, 401, nil, 1},
		{"gives up after max attempts", []int{503, 503, 503}, 0, ErrMaxRetriesExceeded, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				n := attempts.Add(1)
				w.WriteHeader(tt.statuses[min(int(n), len(tt.statuses))-1])
			}))
			defer srv.Close()

			resp, err := newTestClient(t, srv.URL).Get(context.Background(), "/", nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, resp.StatusCode)
				require.NoError(t, resp.Body.Close())
			}

			assert.Equal(t, tt.wantAttempts, attempts.Load())
		})
	}
}

func TestClient_CircuitOpens(t *testing.T) {
	var attempts atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	settings := testSettings()
	settings.Retry.MaxAttempts = 1
	settings.CircuitBreaker.MaxFailures = 2

	c, err := New(Config{BaseURL: srv.URL, ServiceName: "svc", Settings: settings})
	require.NoError(t, err)

	for range 2 {
		_, err = c.Get(context.Background(), "/", nil)
		require.Error(t, err)
	}

	assert.Equal(t, StateOpen, c.CircuitState())

	_, err = c.Get(context.Background(), "/", nil)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), attempts.Load(), "open circuit never reaches the server")
}

func TestClient_ContextCanceledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	settings := testSettings()
	settings.Retry.InitialInterval = time.Second
	settings.Retry.MaxInterval = time.Second

	c, err := New(Config{BaseURL: srv.URL, ServiceName: "svc", Settings: settings})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Get(ctx, "/", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Backoff(t *testing.T) {
	c := newTestClient(t, "http://localhost")

	for attempt := 1; attempt <= 5; attempt++ {
		d := c.backoff(attempt)
		assert.GreaterOrEqual(t, d, 0*time.Millisecond)
		assert.LessOrEqual(t, d, 25*time.Millisecond, "capped interval plus jitter")
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"net timeout", timeoutError{}, true},
		{"connection refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, true},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
