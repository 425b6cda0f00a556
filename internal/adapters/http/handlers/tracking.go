package handlers

import (
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteday/internal/domain"
)

// TrackingHandler serves impression, click and campaign listing endpoints.
type TrackingHandler struct {
	service TrackingService
}

// NewTrackingHandler creates a tracking handler.
func NewTrackingHandler(service TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

var statusOK = dto.StatusResponse{Status: "ok"}

// Impression handles POST /api/v1/tracking/impressions.
//
// @Summary Record that content was displayed
// @Tags tracking
// @Accept json
// @Produce json
// @Param body body dto.ImpressionRequest true "Target"
// @Success 201 {object} dto.StatusResponse
// @Router /api/v1/tracking/impressions [post]
func (h *TrackingHandler) Impression(c *gin.Context) {
	var req dto.ImpressionRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	target, err := parseTarget(req.TargetKind, req.TargetID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	identity, err := bodyIdentity(c, req.ClientID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.RecordImpression(c.Request.Context(), target, identity); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, statusOK)
}

// Click handles POST /api/v1/tracking/clicks.
//
// @Summary Record an outbound action on content
// @Tags tracking
// @Accept json
// @Produce json
// @Param body body dto.ClickRequest true "Target and action"
// @Success 201 {object} dto.StatusResponse
// @Router /api/v1/tracking/clicks [post]
func (h *TrackingHandler) Click(c *gin.Context) {
	var req dto.ClickRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	target, err := parseTarget(req.TargetKind, req.TargetID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	identity, err := bodyIdentity(c, req.ClientID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.RecordClick(c.Request.Context(), target, identity, req.Action); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, statusOK)
}

// ActiveCampaigns handles GET /api/v1/campaigns/active.
//
// @Summary Campaigns running today
// @Tags tracking
// @Produce json
// @Success 200 {array} dto.CampaignResponse
// @Router /api/v1/campaigns/active [get]
func (h *TrackingHandler) ActiveCampaigns(c *gin.Context) {
	campaigns, err := h.service.ActiveCampaigns(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := make([]*dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		resp = append(resp, dto.NewCampaignResponse(&campaigns[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// StatsOverview handles GET /api/v1/admin/stats/overview?date=YYYY-MM-DD.
// The date defaults to today in the service time zone.
//
// @Summary Daily view and click totals
// @Tags admin
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} dto.StatsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/v1/admin/stats/overview [get]
func (h *TrackingHandler) StatsOverview(c *gin.Context) {
	var q dto.OptionalDateQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		respondBindError(c, err)
		return
	}

	var date *civil.Date

	if q.Date != "" {
		d, err := domain.ParseDate("date", q.Date)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		date = &d
	}

	stats, err := h.service.StatsOverview(c.Request.Context(), date)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatsResponse(stats))
}
