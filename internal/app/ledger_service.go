package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/ports"
)

// DefaultToggleAttempts bounds retries after a unique-index conflict.
const DefaultToggleAttempts = 3

// LedgerService owns favorite toggles and listings.
type LedgerService struct {
	ledger   ports.LedgerRepository
	catalog  ports.CatalogRepository
	metrics  EngagementMetrics
	exec     *Executor
	attempts int
	logger   *slog.Logger
}

// LedgerServiceConfig contains configuration for the ledger service.
type LedgerServiceConfig struct {
	Ledger  ports.LedgerRepository
	Catalog ports.CatalogRepository
	Metrics EngagementMetrics
	Logger  *slog.Logger

	// MaxToggleAttempts defaults to DefaultToggleAttempts.
	MaxToggleAttempts int
}

// NewLedgerService creates a ledger service.
func NewLedgerService(cfg LedgerServiceConfig) *LedgerService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	attempts := cfg.MaxToggleAttempts
	if attempts < 1 {
		attempts = DefaultToggleAttempts
	}

	return &LedgerService{
		ledger:   cfg.Ledger,
		catalog:  cfg.Catalog,
		metrics:  metricsOrNoop(cfg.Metrics),
		exec:     NewExecutor(logger),
		attempts: attempts,
		logger:   logger,
	}
}

type toggleInput struct {
	target   domain.Target
	identity domain.Identity
}

// Toggle flips the identity's favorite on target and returns the committed
// state. Concurrent toggles by the same identity are retried.
func (s *LedgerService) Toggle(ctx context.Context, target domain.Target, identity domain.Identity) (domain.ToggleResult, error) {
	op := Operation[toggleInput, domain.ToggleResult, domain.ToggleResult, domain.ToggleResult]{
		Name:      "toggle_favorite",
		Attempts:  s.attempts,
		Retryable: domain.IsConflict,
		Validate: func(_ context.Context, in toggleInput) error {
			if !in.identity.IsResolved() {
				return domain.NewMissingIdentityError("toggle favorite")
			}

			_, err := domain.NewTarget(in.target.Kind, in.target.ID)

			return err
		},
		Perform: func(ctx context.Context, in toggleInput) (domain.ToggleResult, error) {
			return s.ledger.Toggle(ctx, in.target, in.identity)
		},
		Verify: func(_ context.Context, in toggleInput, res domain.ToggleResult) (domain.ToggleResult, error) {
			if res.Count < 0 {
				return res, fmt.Errorf("negative like count %d for %s", res.Count, in.target)
			}

			if res.Liked && res.Count == 0 {
				return res, fmt.Errorf("liked %s but count is zero", in.target)
			}

			return res, nil
		},
		Archive: func(ctx context.Context, in toggleInput, res domain.ToggleResult) error {
			s.metrics.RecordToggle(ctx, in.target.Kind, res.Liked)
			s.logger.InfoContext(ctx, "favorite toggled",
				slog.String("target", in.target.String()),
				slog.Any("identity", in.identity),
				slog.Bool("liked", res.Liked),
				slog.Int64("count", res.Count),
			)

			return nil
		},
		Respond: func(_ context.Context, in toggleInput, res domain.ToggleResult) (domain.ToggleResult, error) {
			res.Target = in.target
			return res, nil
		},
	}

	return Execute(ctx, s.exec, op, toggleInput{target: target, identity: identity})
}

// ListFavorites returns one page of the identity's favorites, newest first.
// Entries whose content row no longer exists are skipped.
func (s *LedgerService) ListFavorites(ctx context.Context, identity domain.Identity, page domain.PageRequest) (*domain.FavoritesPage, error) {
	if !identity.IsResolved() {
		return nil, domain.NewMissingIdentityError("list favorites")
	}

	entries, err := s.ledger.ListFavorites(ctx, identity, page)
	if err != nil {
		return nil, err
	}

	result := &domain.FavoritesPage{}

	if page.Limit > 0 && len(entries) > page.Limit {
		entries = entries[:page.Limit]
		last := entries[len(entries)-1]
		result.HasMore = true
		result.Next = &domain.FavoriteCursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	var quoteIDs, campaignIDs []int64

	for _, e := range entries {
		switch e.Target.Kind {
		case domain.TargetQuote:
			quoteIDs = append(quoteIDs, e.Target.ID)
		case domain.TargetCampaign:
			campaignIDs = append(campaignIDs, e.Target.ID)
		}
	}

	quotes, campaigns, campaignCounts, err := Parallel3(ctx,
		func(ctx context.Context) (map[int64]*domain.Quote, error) {
			if len(quoteIDs) == 0 {
				return nil, nil
			}

			return s.catalog.QuotesByIDs(ctx, quoteIDs)
		},
		func(ctx context.Context) (map[int64]*domain.Campaign, error) {
			if len(campaignIDs) == 0 {
				return nil, nil
			}

			return s.catalog.CampaignsByIDs(ctx, campaignIDs)
		},
		func(ctx context.Context) (map[int64]int64, error) {
			if len(campaignIDs) == 0 {
				return nil, nil
			}

			return s.ledger.CountCampaignLikes(ctx, campaignIDs)
		},
	)
	if err != nil {
		return nil, err
	}

	result.Items = make([]domain.Content, 0, len(entries))

	for _, e := range entries {
		item := domain.Content{Liked: true, FavoritedAt: e.CreatedAt}

		switch e.Target.Kind {
		case domain.TargetQuote:
			q, ok := quotes[e.Target.ID]
			if !ok {
				continue
			}

			item.Quote = q
			item.LikeCount = q.LikeCount
		case domain.TargetCampaign:
			c, ok := campaigns[e.Target.ID]
			if !ok {
				continue
			}

			item.Campaign = c
			item.LikeCount = campaignCounts[e.Target.ID]
		default:
			continue
		}

		result.Items = append(result.Items, item)
	}

	return result, nil
}
