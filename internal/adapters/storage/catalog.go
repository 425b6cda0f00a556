package storage

import (
	"context"
	"errors"
	"strconv"

	"cloud.google.com/go/civil"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// CatalogStore implements ports.CatalogRepository. It only reads; like
// counters belong to LedgerStore.
type CatalogStore struct {
	db *gorm.DB
}

// NewCatalogStore creates a catalog store.
func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) firstQuote(ctx context.Context, scope func(*gorm.DB) *gorm.DB) (*domain.Quote, bool, error) {
	var row Quote

	err := scope(s.db.WithContext(ctx)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return row.toDomain(), true, nil
}

func (s *CatalogStore) FindQuoteByDate(ctx context.Context, d civil.Date) (*domain.Quote, bool, error) {
	return s.firstQuote(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("publish_date = ?", dateValue(d))
	})
}

func (s *CatalogStore) FindLatestQuoteOnOrBefore(ctx context.Context, d civil.Date) (*domain.Quote, bool, error) {
	return s.firstQuote(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("publish_date <= ?", dateValue(d)).Order("publish_date DESC").Order("id ASC")
	})
}

func (s *CatalogStore) FindAnyQuote(ctx context.Context) (*domain.Quote, bool, error) {
	return s.firstQuote(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("publish_date ASC").Order("id ASC")
	})
}

func (s *CatalogStore) FindCampaignCoveringDate(ctx context.Context, d civil.Date) (*domain.Campaign, bool, error) {
	var row Campaign

	v := dateValue(d)

	err := s.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", v, v).
		Order("id ASC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return row.toDomain(), true, nil
}

func (s *CatalogStore) ListCampaignsCoveringDate(ctx context.Context, d civil.Date) ([]domain.Campaign, error) {
	var rows []Campaign

	v := dateValue(d)

	err := s.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", v, v).
		Order("start_date DESC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Campaign, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain())
	}

	return out, nil
}

func (s *CatalogStore) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	var row Quote

	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate(err, "quote", strconv.FormatInt(id, 10))
	}

	return row.toDomain(), nil
}

func (s *CatalogStore) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var row Campaign

	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate(err, "campaign", strconv.FormatInt(id, 10))
	}

	return row.toDomain(), nil
}

func (s *CatalogStore) QuotesByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Quote, error) {
	out := make(map[int64]*domain.Quote, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []Quote
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		out[rows[i].ID] = rows[i].toDomain()
	}

	return out, nil
}

func (s *CatalogStore) CampaignsByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Campaign, error) {
	out := make(map[int64]*domain.Campaign, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []Campaign
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		out[rows[i].ID] = rows[i].toDomain()
	}

	return out, nil
}
