package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// Page size bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrInvalidCursor is returned for cursors this service did not issue.
var ErrInvalidCursor = errors.New("invalid cursor")

// cursorFieldCreatedAt is the sort key of favorites cursors.
const cursorFieldCreatedAt = "created_at"

// PaginationRequest is the optional limit/cursor query pair. When both are
// absent the full list is returned.
type PaginationRequest struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// Paginated reports whether the caller asked for paging at all.
func (p *PaginationRequest) Paginated() bool {
	return p.Cursor != "" || p.Limit > 0
}

// GetLimit returns the page size with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// PageRequest converts the query into a ledger page request.
func (p *PaginationRequest) PageRequest() (domain.PageRequest, error) {
	if !p.Paginated() {
		return domain.PageRequest{}, nil
	}

	page := domain.PageRequest{Limit: p.GetLimit()}

	if p.Cursor != "" {
		after, err := DecodeFavoriteCursor(p.Cursor)
		if err != nil {
			return domain.PageRequest{}, domain.NewValidationError("cursor", "is not a valid cursor")
		}

		page.After = after
	}

	return page, nil
}

// PaginatedResponse wraps one page of items.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// CursorData is the opaque cursor payload: a sort field, its value and the
// row id that breaks ties.
type CursorData struct {
	Field string `json:"f"`
	Value string `json:"v"`
	ID    string `json:"id"`
}

// EncodeCursor encodes data as URL-safe base64 JSON.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor reverses EncodeCursor.
func DecodeCursor(encoded string) (*CursorData, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}

// EncodeFavoriteCursor encodes a ledger position.
func EncodeFavoriteCursor(c *domain.FavoriteCursor) string {
	if c == nil {
		return ""
	}

	return EncodeCursor(&CursorData{
		Field: cursorFieldCreatedAt,
		Value: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		ID:    strconv.FormatInt(c.ID, 10),
	})
}

// DecodeFavoriteCursor decodes a cursor issued by EncodeFavoriteCursor.
func DecodeFavoriteCursor(encoded string) (*domain.FavoriteCursor, error) {
	data, err := DecodeCursor(encoded)
	if err != nil {
		return nil, err
	}

	if data.Field != cursorFieldCreatedAt {
		return nil, ErrInvalidCursor
	}

	at, err := time.Parse(time.RFC3339Nano, data.Value)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	id, err := strconv.ParseInt(data.ID, 10, 64)
	if err != nil || id <= 0 {
		return nil, ErrInvalidCursor
	}

	return &domain.FavoriteCursor{CreatedAt: at, ID: id}, nil
}
