package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteday/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteday/internal/domain"
)

// FavoritesHandler serves the toggle and listing endpoints.
type FavoritesHandler struct {
	service FavoritesService
}

// NewFavoritesHandler creates a favorites handler.
func NewFavoritesHandler(service FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{service: service}
}

// Toggle handles POST /api/v1/favorites/toggle.
//
// @Summary Like or unlike a quote or campaign
// @Tags favorites
// @Accept json
// @Produce json
// @Param body body dto.ToggleRequest true "Target"
// @Success 200 {object} dto.ToggleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/favorites/toggle [post]
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	var req dto.ToggleRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	target, err := parseTarget(req.TargetKind, req.TargetID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	res, err := h.toggle(c, target, req.ClientID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToggleResponse{Liked: res.Liked, Count: res.Count})
}

// LegacyToggle handles POST /api/v1/quotes/:id/toggle-favorite, the route
// older mobile builds call. The body is optional.
//
// @Summary Like or unlike a quote (legacy)
// @Tags favorites
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.LegacyToggleResponse
// @Router /api/v1/quotes/{id}/toggle-favorite [post]
func (h *FavoritesHandler) LegacyToggle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		dto.HandleError(c, domain.NewValidationErrorWithValue("id", "must be a positive integer", c.Param("id")))
		return
	}

	var req dto.LegacyToggleRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.toggle(c, domain.Target{Kind: domain.TargetQuote, ID: id}, req.ClientID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LegacyToggleResponse{Liked: res.Liked, LikeCount: res.Count})
}

func (h *FavoritesHandler) toggle(c *gin.Context, target domain.Target, clientID string) (domain.ToggleResult, error) {
	identity, err := bodyIdentity(c, clientID)
	if err != nil {
		return domain.ToggleResult{}, err
	}

	return h.service.Toggle(c.Request.Context(), target, identity)
}

// List handles GET /api/v1/favorites. Without limit and cursor the whole
// list is returned in one page.
//
// @Summary The caller's favorites, newest first
// @Tags favorites
// @Produce json
// @Param limit query int false "Page size"
// @Param cursor query string false "Opaque cursor"
// @Success 200 {object} dto.PaginatedResponse[dto.ContentResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	var q dto.FavoritesQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := q.PageRequest()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	result, err := h.service.ListFavorites(c.Request.Context(), middleware.GetIdentity(c), page)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]*dto.ContentResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, dto.NewContentResponse(&result.Items[i]))
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse[*dto.ContentResponse]{
		Items:      items,
		NextCursor: dto.EncodeFavoriteCursor(result.Next),
		HasMore:    result.HasMore,
	})
}
