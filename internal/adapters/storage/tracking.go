package storage

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// TrackingStore implements ports.TrackingRepository on two append-only tables.
type TrackingStore struct {
	db *gorm.DB
}

// NewTrackingStore creates a tracking store.
func NewTrackingStore(db *gorm.DB) *TrackingStore {
	return &TrackingStore{db: db}
}

func (s *TrackingStore) Record(ctx context.Context, event domain.TrackingEvent) error {
	accountID, clientToken := identityColumns(event.Identity)
	db := s.db.WithContext(ctx)

	switch event.Kind {
	case domain.EventImpression:
		return db.Create(&Impression{
			TargetKind:  string(event.Target.Kind),
			TargetID:    event.Target.ID,
			AccountID:   accountID,
			ClientToken: clientToken,
			OccurredAt:  event.OccurredAt.UTC(),
		}).Error
	case domain.EventClick:
		return db.Create(&Click{
			TargetKind:  string(event.Target.Kind),
			TargetID:    event.Target.ID,
			AccountID:   accountID,
			ClientToken: clientToken,
			Action:      string(event.Action),
			OccurredAt:  event.OccurredAt.UTC(),
		}).Error
	default:
		return domain.NewValidationErrorWithValue("event", "must be impression or click", string(event.Kind))
	}
}

// Count totals events of kind for targetKind with occurred_at in [from, to).
func (s *TrackingStore) Count(ctx context.Context, kind domain.EventKind, targetKind domain.TargetKind, from, to time.Time) (int64, error) {
	var model any

	switch kind {
	case domain.EventImpression:
		model = &Impression{}
	case domain.EventClick:
		model = &Click{}
	default:
		return 0, domain.NewValidationErrorWithValue("event", "must be impression or click", string(kind))
	}

	var count int64

	err := s.db.WithContext(ctx).Model(model).
		Where("target_kind = ? AND occurred_at >= ? AND occurred_at < ?", string(targetKind), from.UTC(), to.UTC()).
		Count(&count).Error

	return count, err
}

