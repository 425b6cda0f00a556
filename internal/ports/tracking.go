package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// TrackingRepository appends impression and click events and counts them.
// It never participates in ledger transactions.
type TrackingRepository interface {
	Record(ctx context.Context, event domain.TrackingEvent) error

	// Count returns events of kind for targets of targetKind in [from, to).
	Count(ctx context.Context, kind domain.EventKind, targetKind domain.TargetKind, from, to time.Time) (int64, error)
}
