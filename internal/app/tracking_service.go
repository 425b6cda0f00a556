package app

import (
	"context"
	"log/slog"

	"cloud.google.com/go/civil"

	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/ports"
)

// TrackingService records impressions and clicks and reports daily totals.
type TrackingService struct {
	tracking ports.TrackingRepository
	catalog  ports.CatalogRepository
	metrics  EngagementMetrics
	calendar *Calendar
	logger   *slog.Logger
}

// TrackingServiceConfig contains configuration for the tracking service.
type TrackingServiceConfig struct {
	Tracking ports.TrackingRepository
	Catalog  ports.CatalogRepository
	Metrics  EngagementMetrics
	Calendar *Calendar
	Logger   *slog.Logger
}

// NewTrackingService creates a tracking service.
func NewTrackingService(cfg TrackingServiceConfig) *TrackingService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TrackingService{
		tracking: cfg.Tracking,
		catalog:  cfg.Catalog,
		metrics:  metricsOrNoop(cfg.Metrics),
		calendar: cfg.Calendar,
		logger:   logger,
	}
}

// RecordImpression logs that target was displayed.
func (s *TrackingService) RecordImpression(ctx context.Context, target domain.Target, identity domain.Identity) error {
	return s.record(ctx, domain.TrackingEvent{
		Kind:     domain.EventImpression,
		Target:   target,
		Identity: identity,
	})
}

// RecordClick logs an outbound tap on target. An empty campaign action
// means the official link.
func (s *TrackingService) RecordClick(ctx context.Context, target domain.Target, identity domain.Identity, action string) error {
	a, err := domain.ParseClickAction(target.Kind, action)
	if err != nil {
		return err
	}

	return s.record(ctx, domain.TrackingEvent{
		Kind:     domain.EventClick,
		Target:   target,
		Identity: identity,
		Action:   a,
	})
}

func (s *TrackingService) record(ctx context.Context, event domain.TrackingEvent) error {
	if !event.Identity.IsResolved() {
		return domain.NewMissingIdentityError("record " + string(event.Kind))
	}

	if err := s.ensureTarget(ctx, event.Target); err != nil {
		return err
	}

	event.OccurredAt = s.calendar.Now().UTC()

	if err := s.tracking.Record(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to record tracking event",
			slog.String("event", string(event.Kind)),
			slog.String("target", event.Target.String()),
			slog.Any("error", err),
		)

		return err
	}

	s.metrics.RecordTracking(ctx, event.Kind, event.Target.Kind)

	return nil
}

func (s *TrackingService) ensureTarget(ctx context.Context, target domain.Target) error {
	var err error

	switch target.Kind {
	case domain.TargetQuote:
		_, err = s.catalog.GetQuote(ctx, target.ID)
	case domain.TargetCampaign:
		_, err = s.catalog.GetCampaign(ctx, target.ID)
	default:
		return domain.NewValidationErrorWithValue("target_kind", "must be quote or campaign", string(target.Kind))
	}

	if domain.IsNotFound(err) {
		return domain.NewTargetNotFoundError(target)
	}

	return err
}

// ActiveCampaigns lists campaigns running today, newest start first.
func (s *TrackingService) ActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return s.catalog.ListCampaignsCoveringDate(ctx, s.calendar.Today())
}

// StatsOverview totals views and clicks for date, or for today when date is nil.
func (s *TrackingService) StatsOverview(ctx context.Context, date *civil.Date) (domain.DailyStats, error) {
	d := s.calendar.Today()
	if date != nil {
		d = *date
	}

	from, to := s.calendar.DayBounds(d)

	count := func(kind domain.EventKind, target domain.TargetKind) func(context.Context) (int64, error) {
		return func(ctx context.Context) (int64, error) {
			return s.tracking.Count(ctx, kind, target, from, to)
		}
	}

	counts, err := Parallel(ctx,
		count(domain.EventImpression, domain.TargetQuote),
		count(domain.EventClick, domain.TargetQuote),
		count(domain.EventImpression, domain.TargetCampaign),
		count(domain.EventClick, domain.TargetCampaign),
	)
	if err != nil {
		return domain.DailyStats{}, err
	}

	return domain.NewDailyStats(d, counts[0], counts[1], counts[2], counts[3]), nil
}
