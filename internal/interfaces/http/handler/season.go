package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Quiggy85/itstheseason/internal/application/storefront"
	"github.com/Quiggy85/itstheseason/internal/domain/catalog"
)

// SeasonProvider resolves the currently active season
type SeasonProvider interface {
	GetCurrentSeason(ctx context.Context) *catalog.Season
}

// SeasonHandler exposes season lookups
type SeasonHandler struct {
	BaseHandler
	seasons SeasonProvider
}

// NewSeasonHandler creates a new SeasonHandler
func NewSeasonHandler(seasons SeasonProvider) *SeasonHandler {
	return &SeasonHandler{seasons: seasons}
}

// RegisterRoutes registers season routes
func (h *SeasonHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/seasons")
	{
		group.GET("/current", h.GetCurrent)
	}
}

// GetCurrent handles GET /seasons/current. A null season is a normal 200;
// the storefront simply has nothing seasonal to show.
func (h *SeasonHandler) GetCurrent(c *gin.Context) {
	season := h.seasons.GetCurrentSeason(c.Request.Context())

	h.OK(c, gin.H{"season": storefront.NewSeasonResponse(season)})
}
