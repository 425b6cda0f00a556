package app

import (
	"context"
	"log/slog"

	"cloud.google.com/go/civil"

	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/ports"
)

// FlagCampaignOverride switches campaign precedence off when disabled.
const FlagCampaignOverride = "campaign-override"

// ResolutionService decides which entity is shown for a date.
type ResolutionService struct {
	catalog  ports.CatalogRepository
	ledger   ports.LedgerRepository
	flags    ports.FeatureFlags
	calendar *Calendar
	logger   *slog.Logger
}

// ResolutionServiceConfig contains configuration for the resolution service.
type ResolutionServiceConfig struct {
	Catalog  ports.CatalogRepository
	Ledger   ports.LedgerRepository
	Flags    ports.FeatureFlags
	Calendar *Calendar
	Logger   *slog.Logger
}

// NewResolutionService creates a resolution service. Flags is optional.
func NewResolutionService(cfg ResolutionServiceConfig) *ResolutionService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ResolutionService{
		catalog:  cfg.Catalog,
		ledger:   cfg.Ledger,
		flags:    cfg.Flags,
		calendar: cfg.Calendar,
		logger:   logger,
	}
}

// ResolveToday returns the content for the current date, falling back to
// the most recent quote and then to any quote.
func (s *ResolutionService) ResolveToday(ctx context.Context, identity domain.Identity) (*domain.Content, error) {
	return s.resolve(ctx, s.calendar.Today(), true, identity)
}

// ResolveDate returns the content scheduled for d. Only today's date gets
// the fallback chain; other dates without content are NotFound.
func (s *ResolutionService) ResolveDate(ctx context.Context, d civil.Date, identity domain.Identity) (*domain.Content, error) {
	return s.resolve(ctx, d, d == s.calendar.Today(), identity)
}

func (s *ResolutionService) resolve(ctx context.Context, d civil.Date, isToday bool, identity domain.Identity) (*domain.Content, error) {
	content, err := s.pick(ctx, d, isToday)
	if err != nil {
		return nil, err
	}

	if err := s.decorate(ctx, content, identity); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "content resolved",
		slog.String("date", d.String()),
		slog.String("target", content.Target().String()),
		slog.Any("identity", identity),
	)

	return content, nil
}

func (s *ResolutionService) pick(ctx context.Context, d civil.Date, isToday bool) (*domain.Content, error) {
	if s.campaignsEnabled(ctx) {
		c, ok, err := s.catalog.FindCampaignCoveringDate(ctx, d)
		if err != nil {
			return nil, err
		}

		if ok {
			return &domain.Content{Campaign: c}, nil
		}
	}

	q, ok, err := s.catalog.FindQuoteByDate(ctx, d)
	if err != nil {
		return nil, err
	}

	if ok {
		return &domain.Content{Quote: q}, nil
	}

	if !isToday {
		return nil, domain.NewNotFoundError("content", d.String())
	}

	q, ok, err = s.catalog.FindLatestQuoteOnOrBefore(ctx, d)
	if err != nil {
		return nil, err
	}

	if ok {
		return &domain.Content{Quote: q}, nil
	}

	q, ok, err = s.catalog.FindAnyQuote(ctx)
	if err != nil {
		return nil, err
	}

	if ok {
		return &domain.Content{Quote: q}, nil
	}

	s.logger.WarnContext(ctx, "catalog is empty", slog.String("date", d.String()))

	return nil, domain.ErrNoContent
}

func (s *ResolutionService) campaignsEnabled(ctx context.Context) bool {
	if s.flags == nil {
		return true
	}

	return s.flags.IsEnabled(ctx, FlagCampaignOverride, true)
}

// decorate fills Liked and LikeCount. Quotes carry their stored counter;
// campaigns are counted live.
func (s *ResolutionService) decorate(ctx context.Context, content *domain.Content, identity domain.Identity) error {
	target := content.Target()

	liked, count, err := Parallel2(ctx,
		func(ctx context.Context) (bool, error) {
			if !identity.IsResolved() {
				return false, nil
			}

			return s.ledger.IsLiked(ctx, target, identity)
		},
		func(ctx context.Context) (int64, error) {
			if content.Quote != nil {
				return content.Quote.LikeCount, nil
			}

			return s.ledger.CountLikes(ctx, target)
		},
	)
	if err != nil {
		return err
	}

	content.Liked = liked
	content.LikeCount = count

	return nil
}
