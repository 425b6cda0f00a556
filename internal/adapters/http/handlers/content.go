package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteday/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteday/internal/domain"
)

// ContentHandler serves the daily content endpoints.
type ContentHandler struct {
	service ContentService
}

// NewContentHandler creates a content handler.
func NewContentHandler(service ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Today handles GET /api/v1/content/today.
//
// @Summary Today's content
// @Tags content
// @Produce json
// @Success 200 {object} dto.ContentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/content/today [get]
func (h *ContentHandler) Today(c *gin.Context) {
	content, err := h.service.ResolveToday(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewContentResponse(content))
}

// ByDate handles GET /api/v1/content/by-date?date=YYYY-MM-DD.
//
// @Summary Content scheduled for a date
// @Tags content
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} dto.ContentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/content/by-date [get]
func (h *ContentHandler) ByDate(c *gin.Context) {
	var q dto.DateQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		respondBindError(c, err)
		return
	}

	d, err := domain.ParseDate("date", q.Date)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	content, err := h.service.ResolveDate(c.Request.Context(), d, middleware.GetIdentity(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewContentResponse(content))
}
