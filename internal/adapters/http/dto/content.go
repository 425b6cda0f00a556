package dto

import (
	"time"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// QuoteResponse is a quote as clients see it.
type QuoteResponse struct {
	ID             int64    `json:"id"`
	Text           string   `json:"text"`
	OriginalText   string   `json:"original_text,omitempty"`
	Author         string   `json:"author"`
	Source         string   `json:"source,omitempty"`
	OriginalSource string   `json:"original_source,omitempty"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	PublishDate    string   `json:"publish_date"`
	IsPublicDomain bool     `json:"is_public_domain"`
	AmazonKey      string   `json:"amazon_key,omitempty"`
	WikiKey        string   `json:"wiki_key,omitempty"`
	BgImageURL     string   `json:"bg_image_url,omitempty"`
	LikeCount      int64    `json:"like_count"`
}

// CampaignResponse is a sponsor campaign as clients see it.
type CampaignResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ClientName string `json:"client_name"`
	Text       string `json:"text"`
	URL        string `json:"url,omitempty"`
	SNSURL     string `json:"sns_url,omitempty"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// ContentResponse is the daily content descriptor. Exactly one of Quote and
// Campaign is set.
type ContentResponse struct {
	IsCampaign  bool              `json:"is_campaign"`
	Quote       *QuoteResponse    `json:"quote,omitempty"`
	Campaign    *CampaignResponse `json:"campaign,omitempty"`
	Liked       bool              `json:"liked"`
	LikeCount   int64             `json:"like_count"`
	FavoritedAt *time.Time        `json:"favorited_at,omitempty"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) *QuoteResponse {
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}

	return &QuoteResponse{
		ID:             q.ID,
		Text:           q.Text,
		OriginalText:   q.OriginalText,
		Author:         q.AuthorName,
		Source:         q.Source,
		OriginalSource: q.OriginalSource,
		Category:       string(q.Category),
		Tags:           tags,
		PublishDate:    q.PublishDate.String(),
		IsPublicDomain: q.IsPublicDomain,
		AmazonKey:      q.AmazonKey,
		WikiKey:        q.WikiKey,
		BgImageURL:     q.BgImageURL,
		LikeCount:      q.LikeCount,
	}
}

// NewCampaignResponse converts a domain campaign.
func NewCampaignResponse(c *domain.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:         c.ID,
		Name:       c.Name,
		ClientName: c.ClientName,
		Text:       c.Text,
		URL:        c.URL,
		SNSURL:     c.SNSURL,
		StartDate:  c.StartDate.String(),
		EndDate:    c.EndDate.String(),
	}
}

// NewContentResponse converts a resolved descriptor.
func NewContentResponse(c *domain.Content) *ContentResponse {
	resp := &ContentResponse{
		IsCampaign: c.IsCampaign(),
		Liked:      c.Liked,
		LikeCount:  c.LikeCount,
	}

	if c.Campaign != nil {
		resp.Campaign = NewCampaignResponse(c.Campaign)
	}

	if c.Quote != nil {
		resp.Quote = NewQuoteResponse(c.Quote)
		resp.Quote.LikeCount = c.LikeCount
	}

	if !c.FavoritedAt.IsZero() {
		at := c.FavoritedAt.UTC()
		resp.FavoritedAt = &at
	}

	return resp
}

// ToggleRequest is the body of POST /favorites/toggle.
type ToggleRequest struct {
	TargetID   int64  `json:"target_id"   validate:"required,gt=0"`
	TargetKind string `json:"target_kind" validate:"omitempty,oneof=quote campaign"`
	ClientID   string `json:"client_id"   validate:"omitempty,max=64"`
}

// LegacyToggleRequest is the optional body of POST /quotes/:id/toggle-favorite.
type LegacyToggleRequest struct {
	ClientID string `json:"client_id" validate:"omitempty,max=64"`
}

// ToggleResponse reports the committed favorite state.
type ToggleResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

// LegacyToggleResponse keeps the field name older mobile builds read.
type LegacyToggleResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// FavoritesQuery holds the optional paging parameters of GET /favorites.
type FavoritesQuery struct {
	PaginationRequest
}

// DateQuery is a required YYYY-MM-DD query parameter.
type DateQuery struct {
	Date string `form:"date" validate:"required,notblank"`
}

// OptionalDateQuery is an optional YYYY-MM-DD query parameter.
type OptionalDateQuery struct {
	Date string `form:"date"`
}

// ImpressionRequest is the body of POST /tracking/impressions.
type ImpressionRequest struct {
	TargetID   int64  `json:"target_id"   validate:"required,gt=0"`
	TargetKind string `json:"target_kind" validate:"omitempty,oneof=quote campaign"`
	ClientID   string `json:"client_id"   validate:"omitempty,max=64"`
}

// ClickRequest is the body of POST /tracking/clicks. Campaign clicks may omit
// the action.
type ClickRequest struct {
	TargetID   int64  `json:"target_id"   validate:"required,gt=0"`
	TargetKind string `json:"target_kind" validate:"omitempty,oneof=quote campaign"`
	Action     string `json:"action"      validate:"omitempty,max=16"`
	ClientID   string `json:"client_id"   validate:"omitempty,max=64"`
}

// StatusResponse acknowledges a write with no payload.
type StatusResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the per-day engagement overview.
type StatsResponse struct {
	Date      string          `json:"date"`
	Quotes    EngagementTotal `json:"quotes"`
	Campaigns EngagementTotal `json:"campaigns"`
}

// EngagementTotal holds view and click totals with the click-through rate in percent.
type EngagementTotal struct {
	Views  int64   `json:"views"`
	Clicks int64   `json:"clicks"`
	CTR    float64 `json:"ctr"`
}

// NewStatsResponse converts daily stats.
func NewStatsResponse(s domain.DailyStats) *StatsResponse {
	return &StatsResponse{
		Date:      s.Date.String(),
		Quotes:    EngagementTotal{Views: s.QuoteViews, Clicks: s.QuoteClicks, CTR: s.QuoteCTR},
		Campaigns: EngagementTotal{Views: s.CampaignViews, Clicks: s.CampaignClicks, CTR: s.CampaignCTR},
	}
}
