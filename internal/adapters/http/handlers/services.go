package handlers

import (
	"context"
	"errors"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteday/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteday/internal/app"
	"github.com/jsamuelsen/quoteday/internal/domain"
)

// ContentService resolves the daily descriptor.
type ContentService interface {
	ResolveToday(ctx context.Context, identity domain.Identity) (*domain.Content, error)
	ResolveDate(ctx context.Context, d civil.Date, identity domain.Identity) (*domain.Content, error)
}

// FavoritesService owns the engagement ledger.
type FavoritesService interface {
	Toggle(ctx context.Context, target domain.Target, identity domain.Identity) (domain.ToggleResult, error)
	ListFavorites(ctx context.Context, identity domain.Identity, page domain.PageRequest) (*domain.FavoritesPage, error)
}

// TrackingService records impressions and clicks and reports on them.
type TrackingService interface {
	RecordImpression(ctx context.Context, target domain.Target, identity domain.Identity) error
	RecordClick(ctx context.Context, target domain.Target, identity domain.Identity, action string) error
	ActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)
	StatsOverview(ctx context.Context, date *civil.Date) (domain.DailyStats, error)
}

// respondBindError writes a 400 for a request that failed binding or
// validation.
func respondBindError(c *gin.Context, err error) {
	if dto.IsValidationError(err) {
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	if errors.Is(err, dto.ErrBinding) {
		resp := dto.NewErrorResponse(dto.ErrorCodeBadRequest, "malformed request body")
		resp.TraceID = dto.GetTraceID(c)
		c.JSON(http.StatusBadRequest, resp)

		return
	}

	dto.HandleError(c, err)
}

// bodyIdentity is the request identity, or the body client_id when the
// request carried none.
func bodyIdentity(c *gin.Context, clientID string) (domain.Identity, error) {
	return app.WithBodyToken(middleware.GetIdentity(c), clientID)
}

func parseTarget(kind string, id int64) (domain.Target, error) {
	k, err := domain.ParseTargetKind(kind)
	if err != nil {
		return domain.Target{}, err
	}

	return domain.NewTarget(k, id)
}
