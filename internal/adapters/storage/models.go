package storage

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// Quote is the quotes table.
type Quote struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Text           string    `gorm:"type:text;not null"`
	OriginalText   string    `gorm:"type:text"`
	AuthorName     string    `gorm:"size:255"`
	Source         string    `gorm:"size:255"`
	OriginalSource string    `gorm:"size:255"`
	Category       string    `gorm:"size:32;not null;default:other"`
	Tags           string    `gorm:"size:512"`
	PublishDate    time.Time `gorm:"type:date;not null;uniqueIndex:uk_quote_publish_date"`
	IsPublicDomain bool      `gorm:"not null;default:false"`
	AmazonKey      string    `gorm:"size:255"`
	WikiKey        string    `gorm:"size:255"`
	BgImageURL     string    `gorm:"column:bg_image_url;size:1024"`
	LikeCount      int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Campaign is the campaigns table.
type Campaign struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"size:255;not null"`
	ClientName string    `gorm:"size:255"`
	Text       string    `gorm:"type:text;not null"`
	URL        string    `gorm:"column:url;size:1024"`
	SNSURL     string    `gorm:"column:sns_url;size:1024"`
	StartDate  time.Time `gorm:"type:date;not null;index:idx_campaign_range,priority:1"`
	EndDate    time.Time `gorm:"type:date;not null;index:idx_campaign_range,priority:2"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Favorite is one ledger row. Exactly one of AccountID and ClientToken is set;
// NULLs never collide in the unique indexes, so each index only constrains
// its own identity scheme.
type Favorite struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	TargetKind  string    `gorm:"size:16;not null;uniqueIndex:uk_fav_account,priority:1;uniqueIndex:uk_fav_client,priority:1"`
	TargetID    int64     `gorm:"not null;uniqueIndex:uk_fav_account,priority:2;uniqueIndex:uk_fav_client,priority:2"`
	AccountID   *string   `gorm:"size:64;uniqueIndex:uk_fav_account,priority:3;check:chk_fav_identity,(account_id IS NULL) <> (client_token IS NULL)"`
	ClientToken *string   `gorm:"size:64;uniqueIndex:uk_fav_client,priority:3"`
	CreatedAt   time.Time `gorm:"not null;index:idx_fav_created"`
}

// Impression is an append-only display event.
type Impression struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	TargetKind  string    `gorm:"size:16;not null;index:idx_impression_kind_time,priority:1"`
	TargetID    int64     `gorm:"not null"`
	AccountID   *string   `gorm:"size:64"`
	ClientToken *string   `gorm:"size:64"`
	OccurredAt  time.Time `gorm:"not null;index:idx_impression_kind_time,priority:2"`
}

// Click is an append-only outbound tap event.
type Click struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	TargetKind  string    `gorm:"size:16;not null;index:idx_click_kind_time,priority:1"`
	TargetID    int64     `gorm:"not null"`
	AccountID   *string   `gorm:"size:64"`
	ClientToken *string   `gorm:"size:64"`
	Action      string    `gorm:"size:16;not null"`
	OccurredAt  time.Time `gorm:"not null;index:idx_click_kind_time,priority:2"`
}

// dateValue stores a civil date as UTC midnight.
func dateValue(d civil.Date) time.Time {
	return d.In(time.UTC)
}

func civilDate(t time.Time) civil.Date {
	return civil.DateOf(t.UTC())
}

func (q *Quote) toDomain() *domain.Quote {
	return &domain.Quote{
		ID:             q.ID,
		Text:           q.Text,
		OriginalText:   q.OriginalText,
		AuthorName:     q.AuthorName,
		Source:         q.Source,
		OriginalSource: q.OriginalSource,
		Category:       domain.ParseCategory(q.Category),
		Tags:           domain.SplitTags(q.Tags),
		PublishDate:    civilDate(q.PublishDate),
		IsPublicDomain: q.IsPublicDomain,
		AmazonKey:      q.AmazonKey,
		WikiKey:        q.WikiKey,
		BgImageURL:     q.BgImageURL,
		LikeCount:      q.LikeCount,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

// QuoteFromDomain converts a domain quote for seeding.
func QuoteFromDomain(q *domain.Quote) *Quote {
	return &Quote{
		ID:             q.ID,
		Text:           q.Text,
		OriginalText:   q.OriginalText,
		AuthorName:     q.AuthorName,
		Source:         q.Source,
		OriginalSource: q.OriginalSource,
		Category:       string(domain.ParseCategory(string(q.Category))),
		Tags:           domain.JoinTags(q.Tags),
		PublishDate:    dateValue(q.PublishDate),
		IsPublicDomain: q.IsPublicDomain,
		AmazonKey:      q.AmazonKey,
		WikiKey:        q.WikiKey,
		BgImageURL:     q.BgImageURL,
		LikeCount:      q.LikeCount,
	}
}

func (c *Campaign) toDomain() *domain.Campaign {
	return &domain.Campaign{
		ID:         c.ID,
		Name:       c.Name,
		ClientName: c.ClientName,
		Text:       c.Text,
		URL:        c.URL,
		SNSURL:     c.SNSURL,
		StartDate:  civilDate(c.StartDate),
		EndDate:    civilDate(c.EndDate),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// CampaignFromDomain converts a domain campaign for seeding.
func CampaignFromDomain(c *domain.Campaign) *Campaign {
	return &Campaign{
		ID:         c.ID,
		Name:       c.Name,
		ClientName: c.ClientName,
		Text:       c.Text,
		URL:        c.URL,
		SNSURL:     c.SNSURL,
		StartDate:  dateValue(c.StartDate),
		EndDate:    dateValue(c.EndDate),
	}
}

func (f *Favorite) toDomain() domain.FavoriteEntry {
	var identity domain.Identity

	switch {
	case f.AccountID != nil:
		identity = domain.AccountIdentity(*f.AccountID)
	case f.ClientToken != nil:
		// Stored tokens passed validation on the way in.
		identity, _ = domain.AnonymousIdentity(*f.ClientToken)
	}

	return domain.FavoriteEntry{
		ID:        f.ID,
		Target:    domain.Target{Kind: domain.TargetKind(f.TargetKind), ID: f.TargetID},
		Identity:  identity,
		CreatedAt: f.CreatedAt,
	}
}

// identityColumns splits an identity into the two nullable owner columns.
func identityColumns(identity domain.Identity) (accountID, clientToken *string) {
	switch identity.Kind() {
	case domain.IdentityAccount:
		v := identity.AccountID()
		return &v, nil
	case domain.IdentityAnonymous:
		v := identity.ClientToken()
		return nil, &v
	default:
		return nil, nil
	}
}

// ownerClause returns the WHERE fragment selecting rows owned by identity.
func ownerClause(identity domain.Identity) (string, string) {
	if identity.Kind() == domain.IdentityAccount {
		return "account_id = ?", identity.AccountID()
	}

	return "client_token = ?", identity.ClientToken()
}
