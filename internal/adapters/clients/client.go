package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteday/internal/platform/config"
	"github.com/jsamuelsen/quoteday/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/quoteday/internal/adapters/clients"

	defaultTimeout = 5 * time.Second
)

// Config configures a Client.
type Config struct {
	// BaseURL prefixes every request path.
	BaseURL string

	// ServiceName labels logs, spans and metrics.
	ServiceName string

	// Settings holds timeout, retry, circuit breaker and pool sizes.
	Settings config.ClientConfig

	Logger *slog.Logger
}

// Client calls one downstream service with retries, a circuit breaker,
// tracing and request id propagation.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	retry       config.RetryConfig
	logger      *slog.Logger
	cb          *CircuitBreaker
	tracer      trace.Tracer

	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New creates a client.
func New(cfg Config) (*Client, error) {
	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	timeout := cfg.Settings.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retry := cfg.Settings.Retry
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("downstream", cfg.ServiceName))

	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   cfg.Settings.CircuitBreaker.MaxFailures,
		Timeout:       cfg.Settings.CircuitBreaker.Timeout,
		HalfOpenLimit: cfg.Settings.CircuitBreaker.HalfOpenLimit,
	})
	cb.OnStateChange(func(from, to State) {
		logger.Warn("circuit breaker state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	transport := &http.Transport{
		MaxIdleConns:        cfg.Settings.Transport.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Settings.Transport.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.Settings.Transport.IdleConnTimeout,
	}

	return &Client{
		http:            &http.Client{Timeout: timeout, Transport: transport},
		baseURL:         strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceName:     cfg.ServiceName,
		retry:           retry,
		logger:          logger,
		cb:              cb,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

// ServiceName returns the downstream name.
func (c *Client) ServiceName() string {
	return c.serviceName
}

// CircuitState returns the breaker state.
func (c *Client) CircuitState() State {
	return c.cb.State()
}

// Get issues a GET with the extra headers set on every attempt.
func (c *Client) Get(ctx context.Context, path string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	return c.Do(ctx, req)
}

// Do sends req. Transport errors and 5xx responses are retried with
// exponential backoff; any other response is returned to the caller, who
// owns its body. Requests with a streaming body must set GetBody to be
// retried safely.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContextOr(ctx, c.logger).With(
		slog.String("downstream", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if !c.cb.Allow() {
		c.recordMetrics(ctx, req.Method, 0, time.Since(start), "circuit_open")
		logger.WarnContext(ctx, "request blocked by circuit breaker")

		return nil, ErrCircuitOpen
	}

	propagateIDs(ctx, req)

	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.attempt(ctx, req, logger)
	elapsed := time.Since(start)

	if err != nil {
		c.cb.RecordFailure()
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, req.Method, 0, elapsed, "error")
		logger.ErrorContext(ctx, "request failed",
			slog.Duration("duration", elapsed),
			slog.Any("error", err),
		)

		return nil, err
	}

	c.cb.RecordSuccess()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, "HTTP "+resp.Status)
	}

	c.recordMetrics(ctx, req.Method, resp.StatusCode, elapsed, fmt.Sprintf("%dxx", resp.StatusCode/100))
	logger.DebugContext(ctx, "request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", elapsed),
	)

	return resp, nil
}

func (c *Client) attempt(ctx context.Context, req *http.Request, logger *slog.Logger) (*http.Response, error) {
	var lastErr error

	for n := range c.retry.MaxAttempts {
		if n > 0 {
			wait := c.backoff(n)
			logger.DebugContext(ctx, "retrying request",
				slog.Int("attempt", n+1),
				slog.Duration("backoff", wait),
			)

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}

			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, fmt.Errorf("rewinding request body: %w", err)
				}

				req.Body = body
			}
		}

		resp, err := c.http.Do(req.WithContext(ctx))

		switch {
		case err != nil && !isRetryableError(err):
			return nil, err
		case err != nil:
			lastErr = err
		case resp.StatusCode >= http.StatusInternalServerError:
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		default:
			return resp, nil
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, lastErr)
}

// backoff is initial*multiplier^attempt capped at the max interval, then
// spread by the jitter factor in both directions.
func (c *Client) backoff(attempt int) time.Duration {
	d := float64(c.retry.InitialInterval) * math.Pow(c.retry.Multiplier, float64(attempt))
	if limit := float64(c.retry.MaxInterval); limit > 0 && d > limit {
		d = limit
	}

	d += d * c.retry.JitterFactor * (rand.Float64()*2 - 1) //nolint:gosec // jitter only

	return time.Duration(d)
}

func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

func (c *Client) recordMetrics(ctx context.Context, method string, status int, d time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", result),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", status))
	}

	c.requestDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attrs...))
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func propagateIDs(ctx context.Context, req *http.Request) {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}
}

// isRetryableError reports whether a transport error is worth another try.
// Cancellation never is.
func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}
