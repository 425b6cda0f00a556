package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/mocks"
)

func newTrackingEngine(svc TrackingService, identity domain.Identity) *gin.Engine {
	h := NewTrackingHandler(svc)

	engine := gin.New()
	engine.Use(withIdentity(identity))
	engine.POST("/tracking/impressions", h.Impression)
	engine.POST("/tracking/clicks", h.Click)
	engine.GET("/campaigns/active", h.ActiveCampaigns)
	engine.GET("/admin/stats/overview", h.StatsOverview)

	return engine
}

func TestTrackingHandler_Impression(t *testing.T) {
	device := anonymous(t, "device-1")
	campaign := domain.Target{Kind: domain.TargetCampaign, ID: 5}

	t.Run("recorded", func(t *testing.T) {
		svc := mocks.NewMockTrackingService(t)
		svc.EXPECT().RecordImpression(mock.Anything, campaign, device).Return(nil)

		w := serve(newTrackingEngine(svc, domain.Unresolved()), http.MethodPost, "/tracking/impressions",
			`{"target_id":5,"target_kind":"campaign","client_id":"device-1"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("unknown target", func(t *testing.T) {
		svc := mocks.NewMockTrackingService(t)
		svc.EXPECT().RecordImpression(mock.Anything, campaign, device).Return(domain.NewTargetNotFoundError(campaign))

		w := serve(newTrackingEngine(svc, device), http.MethodPost, "/tracking/impressions",
			`{"target_id":5,"target_kind":"campaign"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing target id", func(t *testing.T) {
		svc := mocks.NewMockTrackingService(t)

		w := serve(newTrackingEngine(svc, device), http.MethodPost, "/tracking/impressions", `{"target_kind":"quote"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Details, "target_id")
	})
}

func TestTrackingHandler_Click(t *testing.T) {
	device := anonymous(t, "device-1")
	quote := domain.Target{Kind: domain.TargetQuote, ID: 9}

	tests := []struct {
		name       string
		action     string
		err        error
		wantStatus int
	}{
		{"quote action", "wiki", nil, http.StatusCreated},
		{"invalid action", "sns", domain.NewValidationError("action", "must be one of wiki, amazon, share"), http.StatusBadRequest},
		{"no identity", "wiki", domain.NewMissingIdentityError("record click"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockTrackingService(t)
			svc.EXPECT().RecordClick(mock.Anything, quote, device, tt.action).Return(tt.err)

			w := serve(newTrackingEngine(svc, device), http.MethodPost, "/tracking/clicks",
				`{"target_id":9,"action":"`+tt.action+`"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestTrackingHandler_ActiveCampaigns(t *testing.T) {
	t.Run("listed", func(t *testing.T) {
		svc := mocks.NewMockTrackingService(t)
		svc.EXPECT().ActiveCampaigns(mock.Anything).Return([]domain.Campaign{
			{ID: 2, Name: "newest", StartDate: civil.Date{Year: 2026, Month: 10, Day: 10}},
			{ID: 1, Name: "older", StartDate: civil.Date{Year: 2026, Month: 10, Day: 1}},
		}, nil)

		w := serve(newTrackingEngine(svc, domain.Unresolved()), http.MethodGet, "/campaigns/active", "")

		require.Equal(t, http.StatusOK, w.Code)

		var resp []dto.CampaignResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "newest", resp[0].Name)
		assert.Equal(t, "2026-10-10", resp[0].StartDate)
	})

	t.Run("none", func(t *testing.T) {
		svc := mocks.NewMockTrackingService(t)
		svc.EXPECT().ActiveCampaigns(mock.Anything).Return(nil, nil)

		w := serve(newTrackingEngine(svc, domain.Unresolved()), http.MethodGet, "/campaigns/active", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestTrackingHandler_StatsOverview(t *testing.T) {
	d := civil.Date{Year: 2026, Month: 10, Day: 1}

	t.Run("explicit date", func(t *testing.T) {
		svc := mocks.NewMockTrackingService(t)
		svc.EXPECT().StatsOverview(mock.Anything, &d).Return(domain.NewDailyStats(d, 3, 1, 0, 0), nil)

		w := serve(newTrackingEngine(svc, domain.Unresolved()), http.MethodGet, "/admin/stats/overview?date=2026-10-01", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"date":"2026-10-01",
			"quotes":{"views":3,"clicks":1,"ctr":33.33},
			"campaigns":{"views":0,"clicks":0,"ctr":0}
		}`, w.Body.String())
	})

	t.Run("defaults to today", func(t *testing.T) {
		svc := mocks.NewMockTrackingService(t)
		svc.EXPECT().StatsOverview(mock.Anything, (*civil.Date)(nil)).Return(domain.NewDailyStats(d, 0, 0, 0, 0), nil)

		w := serve(newTrackingEngine(svc, domain.Unresolved()), http.MethodGet, "/admin/stats/overview", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := mocks.NewMockTrackingService(t)

		w := serve(newTrackingEngine(svc, domain.Unresolved()), http.MethodGet, "/admin/stats/overview?date=yesterday", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeValidation, decodeError(t, w).Error.Code)
	})
}
