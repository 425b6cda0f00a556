package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// EngagementMetrics counts ledger toggles and tracking events.
type EngagementMetrics struct {
	toggles  metric.Int64Counter
	tracking metric.Int64Counter
}

// NewEngagementMetrics creates the engagement counters on the global meter
// provider. With telemetry disabled they are noops.
func NewEngagementMetrics() (*EngagementMetrics, error) {
	meter := otel.Meter(instrumentationName)

	toggles, err := meter.Int64Counter(
		"engagement.toggle.total",
		metric.WithDescription("Committed favorite toggles"),
	)
	if err != nil {
		return nil, err
	}

	tracking, err := meter.Int64Counter(
		"engagement.tracking.total",
		metric.WithDescription("Recorded impressions and clicks"),
	)
	if err != nil {
		return nil, err
	}

	return &EngagementMetrics{toggles: toggles, tracking: tracking}, nil
}

// RecordToggle counts one committed toggle. liked is the state after it.
func (m *EngagementMetrics) RecordToggle(ctx context.Context, kind domain.TargetKind, liked bool) {
	m.toggles.Add(ctx, 1, metric.WithAttributes(
		attribute.String("target_kind", kind.String()),
		attribute.Bool("liked", liked),
	))
}

// RecordTracking counts one stored tracking event.
func (m *EngagementMetrics) RecordTracking(ctx context.Context, event domain.EventKind, kind domain.TargetKind) {
	m.tracking.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", string(event)),
		attribute.String("target_kind", kind.String()),
	))
}
