package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// LedgerStore implements ports.LedgerRepository. Each toggle runs in one
// transaction; a quote's like_count moves only inside that transaction.
type LedgerStore struct {
	db *gorm.DB
}

// NewLedgerStore creates a ledger store.
func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// Toggle inserts or deletes the identity's entry for target and returns the
// committed count. A concurrent insert by the same identity surfaces as a
// domain conflict and the transaction is rolled back.
func (s *LedgerStore) Toggle(ctx context.Context, target domain.Target, identity domain.Identity) (domain.ToggleResult, error) {
	if !identity.IsResolved() {
		return domain.ToggleResult{}, domain.NewMissingIdentityError("toggle favorite")
	}

	result := domain.ToggleResult{Target: target}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := targetExists(tx, target); err != nil {
			return err
		}

		where, owner := ownerClause(identity)

		var entry Favorite

		err := tx.Where("target_kind = ? AND target_id = ?", string(target.Kind), target.ID).
			Where(where, owner).
			First(&entry).Error

		switch {
		case err == nil:
			result.Liked = false
			err = deleteFavorite(tx, target, entry.ID)
		case errors.Is(err, gorm.ErrRecordNotFound):
			result.Liked = true
			err = insertFavorite(tx, target, identity)
		}

		if err != nil {
			return err
		}

		result.Count, err = countLikes(tx, target)

		return err
	})
	if err != nil {
		return domain.ToggleResult{}, translate(err, "favorite", target.String())
	}

	return result, nil
}

func targetExists(tx *gorm.DB, target domain.Target) error {
	var err error

	switch target.Kind {
	case domain.TargetQuote:
		err = tx.Select("id").First(&Quote{}, target.ID).Error
	case domain.TargetCampaign:
		err = tx.Select("id").First(&Campaign{}, target.ID).Error
	default:
		return domain.NewValidationErrorWithValue("target_kind", "must be quote or campaign", string(target.Kind))
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewTargetNotFoundError(target)
	}

	return err
}

func insertFavorite(tx *gorm.DB, target domain.Target, identity domain.Identity) error {
	accountID, clientToken := identityColumns(identity)

	err := tx.Create(&Favorite{
		TargetKind:  string(target.Kind),
		TargetID:    target.ID,
		AccountID:   accountID,
		ClientToken: clientToken,
	}).Error
	if err != nil {
		return err
	}

	if target.Kind != domain.TargetQuote {
		return nil
	}

	return tx.Model(&Quote{}).
		Where("id = ?", target.ID).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
}

func deleteFavorite(tx *gorm.DB, target domain.Target, id int64) error {
	res := tx.Delete(&Favorite{}, id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected < 1 || target.Kind != domain.TargetQuote {
		return nil
	}

	return tx.Model(&Quote{}).
		Where("id = ? AND like_count > 0", target.ID).
		UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
}

func countLikes(db *gorm.DB, target domain.Target) (int64, error) {
	var count int64

	if target.Kind == domain.TargetQuote {
		err := db.Model(&Quote{}).Select("like_count").Where("id = ?", target.ID).Scan(&count).Error
		return count, err
	}

	err := db.Model(&Favorite{}).
		Where("target_kind = ? AND target_id = ?", string(target.Kind), target.ID).
		Count(&count).Error

	return count, err
}

func (s *LedgerStore) IsLiked(ctx context.Context, target domain.Target, identity domain.Identity) (bool, error) {
	if !identity.IsResolved() {
		return false, nil
	}

	where, owner := ownerClause(identity)

	var count int64

	err := s.db.WithContext(ctx).Model(&Favorite{}).
		Where("target_kind = ? AND target_id = ?", string(target.Kind), target.ID).
		Where(where, owner).
		Count(&count).Error

	return count > 0, err
}

func (s *LedgerStore) CountLikes(ctx context.Context, target domain.Target) (int64, error) {
	return countLikes(s.db.WithContext(ctx), target)
}

func (s *LedgerStore) CountCampaignLikes(ctx context.Context, ids []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []struct {
		TargetID int64
		Total    int64
	}

	err := s.db.WithContext(ctx).Model(&Favorite{}).
		Select("target_id, COUNT(*) AS total").
		Where("target_kind = ? AND target_id IN ?", string(domain.TargetCampaign), ids).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		out[r.TargetID] = r.Total
	}

	return out, nil
}

// ListFavorites returns entries newest first. With a positive limit it reads
// one extra row so the caller can tell whether another page exists.
func (s *LedgerStore) ListFavorites(ctx context.Context, identity domain.Identity, page domain.PageRequest) ([]domain.FavoriteEntry, error) {
	if !identity.IsResolved() {
		return nil, domain.NewMissingIdentityError("list favorites")
	}

	where, owner := ownerClause(identity)

	q := s.db.WithContext(ctx).Where(where, owner)

	if page.After != nil {
		q = q.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
			page.After.CreatedAt, page.After.CreatedAt, page.After.ID)
	}

	if page.Limit > 0 {
		q = q.Limit(page.Limit + 1)
	}

	var rows []Favorite
	if err := q.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.FavoriteEntry, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}

	return out, nil
}
