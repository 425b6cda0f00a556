package domain

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Category classifies an editorial quote.
type Category string

// Quote categories.
const (
	CategoryClassic Category = "classic"
	CategoryDrama   Category = "drama"
	CategoryComedy  Category = "comedy"
	CategoryLove    Category = "love"
	CategoryHorror  Category = "horror"
	CategoryOther   Category = "other"
)

// ParseCategory maps stored values onto a known category.
// Unknown or empty values become CategoryOther.
func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryClassic, CategoryDrama, CategoryComedy, CategoryLove, CategoryHorror:
		return c
	default:
		return CategoryOther
	}
}

// Quote is an editorial entry scheduled for exactly one calendar date.
// At most one quote exists per PublishDate.
type Quote struct {
	ID int64

	Text         string
	OriginalText string

	AuthorName     string
	Source         string
	OriginalSource string

	Category Category
	Tags     []string

	PublishDate    civil.Date
	IsPublicDomain bool

	// AmazonKey and WikiKey are lookup strings for external reference links.
	AmazonKey  string
	WikiKey    string
	BgImageURL string

	// LikeCount equals the number of favorite entries referencing this quote.
	// Only the engagement ledger writes it.
	LikeCount int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Target returns the ledger target for this quote.
func (q *Quote) Target() Target {
	return Target{Kind: TargetQuote, ID: q.ID}
}

// SplitTags parses the comma-separated tag column.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))

	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}

// JoinTags is the inverse of SplitTags.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// Campaign is a sponsor override shown instead of the daily quote
// for every date in [StartDate, EndDate].
type Campaign struct {
	ID int64

	// Name is internal; ClientName is what users see.
	Name       string
	ClientName string

	Text   string
	URL    string
	SNSURL string

	StartDate civil.Date
	EndDate   civil.Date

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether d falls inside the inclusive date range.
func (c *Campaign) Covers(d civil.Date) bool {
	return !d.Before(c.StartDate) && !d.After(c.EndDate)
}

// Target returns the ledger target for this campaign.
func (c *Campaign) Target() Target {
	return Target{Kind: TargetCampaign, ID: c.ID}
}

// ParseDate parses a YYYY-MM-DD parameter.
// field names the parameter in the returned InvalidDateError.
func ParseDate(field, value string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(value))
	if err != nil || !d.IsValid() {
		return civil.Date{}, NewInvalidDateError(field, value)
	}

	return d, nil
}
