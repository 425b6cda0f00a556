package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quoteday/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteday/internal/platform/config"
	"github.com/jsamuelsen/quoteday/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds API requests when no timeout is configured.
const DefaultRequestTimeout = 10 * time.Second

// Roles allowed to read the stats overview.
var statsRoles = []string{"admin", "analyst"}

// RouterConfig contains everything SetupRouter mounts.
type RouterConfig struct {
	Logger     *slog.Logger
	AppConfig  *config.AppConfig
	AuthConfig *config.AuthConfig

	// Identities resolves the requester on every /api/v1 request.
	Identities middleware.IdentityResolver

	Health    *handlers.HealthHandler
	Content   *handlers.ContentHandler
	Favorites *handlers.FavoritesHandler
	Tracking  *handlers.TrackingHandler

	// Timeout is the per-request deadline for /api/v1. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures middleware and routes on the engine.
// Global middleware order:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. Tracing and HTTP metrics
//  5. Request logging (operational /-/ routes skipped)
//
// The /api/v1 group adds the request timeout and identity resolution.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "quoteday"
	if cfg.AppConfig != nil {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.Health != nil {
		cfg.Health.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api/v1")
	api.Use(
		middleware.SimpleTimeout(cfg.Timeout),
		middleware.Identity(cfg.Identities, cfg.AuthConfig),
	)

	setupAPIRoutes(api, cfg)
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if h := cfg.Content; h != nil {
		rg.GET("/content/today", h.Today)
		rg.GET("/content/by-date", h.ByDate)
	}

	if h := cfg.Favorites; h != nil {
		rg.POST("/favorites/toggle", h.Toggle)
		rg.GET("/favorites", h.List)
		rg.POST("/quotes/:id/toggle-favorite", h.LegacyToggle)
	}

	if h := cfg.Tracking; h != nil {
		rg.POST("/tracking/impressions", h.Impression)
		rg.POST("/tracking/clicks", h.Click)
		rg.GET("/campaigns/active", h.ActiveCampaigns)

		admin := rg.Group("/admin", middleware.RequireAnyRole(cfg.AuthConfig, statsRoles...))
		admin.GET("/stats/overview", h.StatsOverview)
	}
}
