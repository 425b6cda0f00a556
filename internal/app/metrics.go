package app

import (
	"context"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// EngagementMetrics receives counters for engagement writes.
// The telemetry package provides the OpenTelemetry implementation.
type EngagementMetrics interface {
	RecordToggle(ctx context.Context, kind domain.TargetKind, liked bool)
	RecordTracking(ctx context.Context, event domain.EventKind, kind domain.TargetKind)
}

type noopMetrics struct{}

func (noopMetrics) RecordToggle(context.Context, domain.TargetKind, bool) {}
func (noopMetrics) RecordTracking(context.Context, domain.EventKind, domain.TargetKind) {}

func metricsOrNoop(m EngagementMetrics) EngagementMetrics {
	if m == nil {
		return noopMetrics{}
	}

	return m
}
