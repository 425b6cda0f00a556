package telemetry

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jsamuelsen/quoteday/telemetry"

// HeaderTraceID echoes the active trace id to clients.
const HeaderTraceID = "X-Trace-ID"

// Metrics holds HTTP server metrics.
type Metrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics creates HTTP server metrics on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		activeRequests:  activeRequests,
	}, nil
}

// TracingMiddleware starts a server span per request. Operational /-/
// routes are not traced.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, "/-/")
		}),
	)
}

// Middleware records request metrics and sets X-Trace-ID. It runs after
// TracingMiddleware so the span is already on the context.
func Middleware() gin.HandlerFunc {
	// A failed instrument setup must not take the API down.
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		start := time.Now()

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
			c.Header(HeaderTraceID, span.SpanContext().TraceID().String())
		}

		if metrics == nil {
			c.Next()
			return
		}

		route := attribute.String("http.route", c.FullPath())
		method := attribute.String("http.method", c.Request.Method)

		metrics.activeRequests.Add(c.Request.Context(), 1, metric.WithAttributes(method, route))
		defer metrics.activeRequests.Add(c.Request.Context(), -1, metric.WithAttributes(method, route))

		c.Next()

		attrs := metric.WithAttributes(method, route, attribute.Int("http.status_code", c.Writer.Status()))
		metrics.requestDuration.Record(c.Request.Context(), time.Since(start).Seconds(), attrs)
		metrics.requestTotal.Add(c.Request.Context(), 1, attrs)
	}
}
