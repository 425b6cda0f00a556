package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

func TestTrackingStore_RecordAndCount(t *testing.T) {
	db := newTestDB(t)
	store := NewTrackingStore(db)
	ctx := context.Background()

	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	quote := domain.Target{Kind: domain.TargetQuote, ID: 1}
	campaign := domain.Target{Kind: domain.TargetCampaign, ID: 2}

	events := []domain.TrackingEvent{
		{Kind: domain.EventImpression, Target: quote, Identity: domain.AccountIdentity("a"), OccurredAt: day.Add(time.Hour)},
		{Kind: domain.EventImpression, Target: quote, Identity: anon(t, "x"), OccurredAt: day.Add(2 * time.Hour)},
		{Kind: domain.EventImpression, Target: campaign, Identity: anon(t, "x"), OccurredAt: day.Add(3 * time.Hour)},
		{Kind: domain.EventClick, Target: quote, Identity: anon(t, "x"), Action: domain.ActionWiki, OccurredAt: day.Add(4 * time.Hour)},
		// Next day, outside the window.
		{Kind: domain.EventImpression, Target: quote, Identity: anon(t, "x"), OccurredAt: day.Add(25 * time.Hour)},
	}

	for _, e := range events {
		require.NoError(t, store.Record(ctx, e))
	}

	tests := []struct {
		name   string
		kind   domain.EventKind
		target domain.TargetKind
		want   int64
	}{
		{"quote views", domain.EventImpression, domain.TargetQuote, 2},
		{"quote clicks", domain.EventClick, domain.TargetQuote, 1},
		{"campaign views", domain.EventImpression, domain.TargetCampaign, 1},
		{"campaign clicks", domain.EventClick, domain.TargetCampaign, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Count(ctx, tt.kind, tt.target, day, day.Add(24*time.Hour))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	var click Click
	require.NoError(t, db.First(&click).Error)
	assert.Equal(t, "wiki", click.Action)
	require.NotNil(t, click.ClientToken)
	assert.Nil(t, click.AccountID)
}

func TestTrackingStore_UnknownEvent(t *testing.T) {
	store := NewTrackingStore(newTestDB(t))

	err := store.Record(context.Background(), domain.TrackingEvent{Kind: "hover"})
	assert.True(t, domain.IsValidation(err))

	_, err = store.Count(context.Background(), "hover", domain.TargetQuote, time.Now(), time.Now())
	assert.True(t, domain.IsValidation(err))
}
