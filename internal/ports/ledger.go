package ports

import (
	"context"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// LedgerRepository persists favorites and keeps the quote like counter in
// step with them.
type LedgerRepository interface {
	// Toggle flips the (target, identity) entry inside one transaction and
	// returns the committed state. Returns domain.ErrNotFound when the target
	// has no content row and domain.ErrConflict when a concurrent toggle by the
	// same identity won the unique index. Nothing is applied on error.
	Toggle(ctx context.Context, target domain.Target, identity domain.Identity) (domain.ToggleResult, error)

	// IsLiked reports ledger membership. An unresolved identity is never a member.
	IsLiked(ctx context.Context, target domain.Target, identity domain.Identity) (bool, error)

	// CountLikes returns the stored counter for quotes and the live entry
	// count for campaigns.
	CountLikes(ctx context.Context, target domain.Target) (int64, error)

	// CountCampaignLikes counts entries for many campaigns in one query.
	// Campaigns without entries are absent from the result.
	CountCampaignLikes(ctx context.Context, ids []int64) (map[int64]int64, error)

	// ListFavorites returns the identity's entries newest first. It fetches
	// one extra row past page.Limit so callers can tell whether more exist.
	ListFavorites(ctx context.Context, identity domain.Identity, page domain.PageRequest) ([]domain.FavoriteEntry, error)
}
