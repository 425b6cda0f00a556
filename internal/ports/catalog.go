package ports

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// CatalogRepository is read-only access to quotes and campaigns.
// Content administration happens elsewhere.
//
// Find* methods report absence through the bool; only infrastructure
// failures produce an error. Get* methods return domain.ErrNotFound.
type CatalogRepository interface {
	// FindQuoteByDate returns the quote scheduled for exactly d.
	FindQuoteByDate(ctx context.Context, d civil.Date) (*domain.Quote, bool, error)

	// FindLatestQuoteOnOrBefore returns the quote with the greatest publish
	// date not after d.
	FindLatestQuoteOnOrBefore(ctx context.Context, d civil.Date) (*domain.Quote, bool, error)

	// FindAnyQuote returns the earliest scheduled quote, lowest id on ties.
	FindAnyQuote(ctx context.Context) (*domain.Quote, bool, error)

	// FindCampaignCoveringDate returns the lowest-id campaign whose inclusive
	// range contains d.
	FindCampaignCoveringDate(ctx context.Context, d civil.Date) (*domain.Campaign, bool, error)

	// ListCampaignsCoveringDate returns every campaign covering d, newest start first.
	ListCampaignsCoveringDate(ctx context.Context, d civil.Date) ([]domain.Campaign, error)

	GetQuote(ctx context.Context, id int64) (*domain.Quote, error)
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// QuotesByIDs and CampaignsByIDs skip ids that do not exist.
	QuotesByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Quote, error)
	CampaignsByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Campaign, error)
}
