package domain

import (
	"math"
	"time"

	"cloud.google.com/go/civil"
)

// FavoriteEntry is one (target, identity) like. Entries are created on
// toggle-to-like and deleted on toggle-to-unlike; they are never updated.
type FavoriteEntry struct {
	ID        int64
	Target    Target
	Identity  Identity
	CreatedAt time.Time
}

// ToggleResult is the post-commit state of a toggle. Count is re-read after
// the write, so concurrent toggles by other identities are reflected.
type ToggleResult struct {
	Target Target
	Liked  bool
	Count  int64
}

// Content is a resolved, displayable entity together with the caller's
// engagement state. Exactly one of Quote and Campaign is set.
type Content struct {
	Quote    *Quote
	Campaign *Campaign

	Liked     bool
	LikeCount int64

	// FavoritedAt is set only for favorites listings.
	FavoritedAt time.Time
}

// IsCampaign reports which variant is set.
func (c *Content) IsCampaign() bool {
	return c.Campaign != nil
}

// Target returns the ledger target of the content.
func (c *Content) Target() Target {
	if c.Campaign != nil {
		return c.Campaign.Target()
	}

	return c.Quote.Target()
}

// FavoritesPage is one page of an identity's favorites, newest first.
type FavoritesPage struct {
	Items   []Content
	HasMore bool

	// Next positions the following page; nil when HasMore is false.
	Next *FavoriteCursor
}

// PageRequest bounds a favorites listing. Limit <= 0 means everything.
// After, when set, continues strictly after that entry in newest-first order.
type PageRequest struct {
	Limit int
	After *FavoriteCursor
}

// FavoriteCursor is the position of a favorite entry in newest-first order.
type FavoriteCursor struct {
	CreatedAt time.Time
	ID        int64
}

// EventKind distinguishes tracking log tables.
type EventKind string

// Tracking event kinds.
const (
	EventImpression EventKind = "impression"
	EventClick      EventKind = "click"
)

// ClickAction is what the user tapped on a displayed entity.
type ClickAction string

// Click actions. Quotes accept wiki, amazon and share; campaigns accept
// official, sns and share.
const (
	ActionWiki     ClickAction = "wiki"
	ActionAmazon   ClickAction = "amazon"
	ActionShare    ClickAction = "share"
	ActionOfficial ClickAction = "official"
	ActionSNS      ClickAction = "sns"
)

// ParseClickAction validates action for the target kind. Campaign clicks
// without an action default to ActionOfficial.
func ParseClickAction(kind TargetKind, action string) (ClickAction, error) {
	a := ClickAction(action)

	switch kind {
	case TargetQuote:
		switch a {
		case ActionWiki, ActionAmazon, ActionShare:
			return a, nil
		}

		return "", NewValidationErrorWithValue("action", "must be wiki, amazon, or share", action)
	case TargetCampaign:
		switch a {
		case "":
			return ActionOfficial, nil
		case ActionOfficial, ActionSNS, ActionShare:
			return a, nil
		}

		return "", NewValidationErrorWithValue("action", "must be official, sns, or share", action)
	default:
		return "", NewValidationErrorWithValue("target_kind", "must be quote or campaign", string(kind))
	}
}

// TrackingEvent is an append-only impression or click record.
type TrackingEvent struct {
	Kind       EventKind
	Target     Target
	Identity   Identity
	Action     ClickAction
	OccurredAt time.Time
}

// DailyStats summarizes tracking for one calendar day.
type DailyStats struct {
	Date           civil.Date
	QuoteViews     int64
	QuoteClicks    int64
	CampaignViews  int64
	CampaignClicks int64
	QuoteCTR       float64
	CampaignCTR    float64
}

// ClickThroughRate returns clicks/views as a percentage rounded to two
// decimals. Zero views yield zero.
func ClickThroughRate(clicks, views int64) float64 {
	if views <= 0 {
		return 0
	}

	return math.Round(float64(clicks)/float64(views)*100*100) / 100
}

// NewDailyStats fills in the CTR fields from the raw counts.
func NewDailyStats(date civil.Date, quoteViews, quoteClicks, campaignViews, campaignClicks int64) DailyStats {
	return DailyStats{
		Date:           date,
		QuoteViews:     quoteViews,
		QuoteClicks:    quoteClicks,
		CampaignViews:  campaignViews,
		CampaignClicks: campaignClicks,
		QuoteCTR:       ClickThroughRate(quoteClicks, quoteViews),
		CampaignCTR:    ClickThroughRate(campaignClicks, campaignViews),
	}
}
