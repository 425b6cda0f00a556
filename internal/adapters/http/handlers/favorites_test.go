package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/mocks"
)

func newFavoritesEngine(svc FavoritesService, identity domain.Identity) *gin.Engine {
	h := NewFavoritesHandler(svc)

	engine := gin.New()
	engine.Use(withIdentity(identity))
	engine.POST("/favorites/toggle", h.Toggle)
	engine.POST("/quotes/:id/toggle-favorite", h.LegacyToggle)
	engine.GET("/favorites", h.List)

	return engine
}

func TestFavoritesHandler_Toggle(t *testing.T) {
	device := anonymous(t, "device-1")
	quote := domain.Target{Kind: domain.TargetQuote, ID: 7}
	campaign := domain.Target{Kind: domain.TargetCampaign, ID: 3}

	tests := []struct {
		name       string
		identity   domain.Identity
		body       string
		setup      func(*mocks.MockFavoritesService)
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{
			name:     "kind defaults to quote",
			identity: device,
			body:     `{"target_id":7}`,
			setup: func(m *mocks.MockFavoritesService) {
				m.EXPECT().Toggle(mock.Anything, quote, device).Return(domain.ToggleResult{Liked: true, Count: 1}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"liked":true,"count":1}`,
		},
		{
			name:     "campaign via body client id",
			identity: domain.Unresolved(),
			body:     `{"target_id":3,"target_kind":"campaign","client_id":"device-1"}`,
			setup: func(m *mocks.MockFavoritesService) {
				m.EXPECT().Toggle(mock.Anything, campaign, device).Return(domain.ToggleResult{Liked: false, Count: 0}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"liked":false,"count":0}`,
		},
		{
			name:     "request identity beats body",
			identity: domain.AccountIdentity("acct-1"),
			body:     `{"target_id":7,"client_id":"device-1"}`,
			setup: func(m *mocks.MockFavoritesService) {
				m.EXPECT().Toggle(mock.Anything, quote, domain.AccountIdentity("acct-1")).
					Return(domain.ToggleResult{Liked: true, Count: 2}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"liked":true,"count":2}`,
		},
		{
			name:     "unresolved reaches service",
			identity: domain.Unresolved(),
			body:     `{"target_id":7}`,
			setup: func(m *mocks.MockFavoritesService) {
				m.EXPECT().Toggle(mock.Anything, quote, domain.Unresolved()).
					Return(domain.ToggleResult{}, domain.NewMissingIdentityError("toggle favorite"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeUnauthorized,
		},
		{
			name:     "unknown target",
			identity: device,
			body:     `{"target_id":7}`,
			setup: func(m *mocks.MockFavoritesService) {
				m.EXPECT().Toggle(mock.Anything, quote, device).Return(domain.ToggleResult{}, domain.NewTargetNotFoundError(quote))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeNotFound,
		},
		{
			name:     "retries exhausted",
			identity: device,
			body:     `{"target_id":7}`,
			setup: func(m *mocks.MockFavoritesService) {
				m.EXPECT().Toggle(mock.Anything, quote, device).
					Return(domain.ToggleResult{}, domain.NewConflictError("favorite", "concurrent write"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeConflict,
		},
		{
			name:       "bad kind",
			identity:   device,
			body:       `{"target_id":7,"target_kind":"poster"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "oversized body client id",
			identity:   domain.Unresolved(),
			body:       `{"target_id":7,"client_id":"` + strings.Repeat("a", 65) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "malformed json",
			identity:   device,
			body:       `{"target_id":"seven"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockFavoritesService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			w := serve(newFavoritesEngine(svc, tt.identity), http.MethodPost, "/favorites/toggle", tt.body)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
			}
		})
	}
}

func TestFavoritesHandler_LegacyToggle(t *testing.T) {
	device := anonymous(t, "device-9")

	t.Run("empty body uses request identity", func(t *testing.T) {
		svc := mocks.NewMockFavoritesService(t)
		svc.EXPECT().Toggle(mock.Anything, domain.Target{Kind: domain.TargetQuote, ID: 12}, device).
			Return(domain.ToggleResult{Liked: true, Count: 5}, nil)

		w := serve(newFavoritesEngine(svc, device), http.MethodPost, "/quotes/12/toggle-favorite", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"liked":true,"like_count":5}`, w.Body.String())
	})

	t.Run("body client id", func(t *testing.T) {
		svc := mocks.NewMockFavoritesService(t)
		svc.EXPECT().Toggle(mock.Anything, domain.Target{Kind: domain.TargetQuote, ID: 12}, device).
			Return(domain.ToggleResult{Liked: false, Count: 4}, nil)

		w := serve(newFavoritesEngine(svc, domain.Unresolved()), http.MethodPost, "/quotes/12/toggle-favorite",
			`{"client_id":"device-9"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"liked":false,"like_count":4}`, w.Body.String())
	})

	for _, id := range []string{"abc", "0", "-4"} {
		t.Run("bad id "+id, func(t *testing.T) {
			svc := mocks.NewMockFavoritesService(t)

			w := serve(newFavoritesEngine(svc, device), http.MethodPost, "/quotes/"+id+"/toggle-favorite", "")

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, map[string]string{"id": "must be a positive integer"}, decodeError(t, w).Error.Details)
		})
	}
}

func TestFavoritesHandler_List(t *testing.T) {
	device := anonymous(t, "device-1")
	at := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	page := &domain.FavoritesPage{
		Items: []domain.Content{
			{Campaign: &domain.Campaign{ID: 3, Name: "autumn"}, Liked: true, LikeCount: 8, FavoritedAt: at},
			{Quote: &domain.Quote{ID: 7, Text: "Play it, Sam."}, Liked: true, LikeCount: 2, FavoritedAt: at.Add(-time.Hour)},
		},
		HasMore: true,
		Next:    &domain.FavoriteCursor{CreatedAt: at.Add(-time.Hour), ID: 41},
	}

	t.Run("first page", func(t *testing.T) {
		svc := mocks.NewMockFavoritesService(t)
		svc.EXPECT().ListFavorites(mock.Anything, device, domain.PageRequest{Limit: 2}).Return(page, nil)

		w := serve(newFavoritesEngine(svc, device), http.MethodGet, "/favorites?limit=2", "")

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.PaginatedResponse[dto.ContentResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		require.Len(t, resp.Items, 2)
		assert.True(t, resp.Items[0].IsCampaign)
		assert.True(t, resp.Items[1].Liked)
		assert.True(t, resp.HasMore)

		next, err := dto.DecodeFavoriteCursor(resp.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, int64(41), next.ID)
	})

	t.Run("no paging returns everything", func(t *testing.T) {
		svc := mocks.NewMockFavoritesService(t)
		svc.EXPECT().ListFavorites(mock.Anything, device, domain.PageRequest{}).
			Return(&domain.FavoritesPage{}, nil)

		w := serve(newFavoritesEngine(svc, device), http.MethodGet, "/favorites", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[],"hasMore":false}`, w.Body.String())
	})

	t.Run("missing identity", func(t *testing.T) {
		svc := mocks.NewMockFavoritesService(t)
		svc.EXPECT().ListFavorites(mock.Anything, domain.Unresolved(), domain.PageRequest{}).
			Return(nil, domain.NewMissingIdentityError("list favorites"))

		w := serve(newFavoritesEngine(svc, domain.Unresolved()), http.MethodGet, "/favorites", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	tests := map[string]string{
		"limit too large": "/favorites?limit=101",
		"limit not int":   "/favorites?limit=ten",
		"bad cursor":      "/favorites?cursor=nope",
	}

	for name, target := range tests {
		t.Run(name, func(t *testing.T) {
			svc := mocks.NewMockFavoritesService(t)

			w := serve(newFavoritesEngine(svc, device), http.MethodGet, target, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
