package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quoteday/internal/adapters/clients"
	"github.com/jsamuelsen/quoteday/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quoteday/internal/adapters/flags"
	"github.com/jsamuelsen/quoteday/internal/adapters/http"
	"github.com/jsamuelsen/quoteday/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quoteday/internal/adapters/storage"
	"github.com/jsamuelsen/quoteday/internal/app"
	"github.com/jsamuelsen/quoteday/internal/platform/config"
	"github.com/jsamuelsen/quoteday/internal/platform/telemetry"
	"github.com/jsamuelsen/quoteday/internal/ports"
)

// components is the wired object graph of one serve process.
type components struct {
	db     *gorm.DB
	router http.RouterConfig
}

func (c *components) close(logger *slog.Logger) {
	if err := storage.Close(c.db); err != nil {
		logger.Error("closing database", slog.Any("error", err))
	}
}

func buildComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *components, err error) {
	db, err := storage.Open(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := storage.Migrate(ctx, db); err != nil {
			return nil, err
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, cfg.Database.Driver),
	)

	featureFlags := flags.NewStatic(cfg.Features)

	healthRegistry := ports.NewHealthRegistry()
	for _, checker := range []ports.HealthChecker{storage.NewHealthChecker(db), featureFlags} {
		if err := healthRegistry.Register(checker); err != nil {
			return nil, fmt.Errorf("registering %s health check: %w", checker.Name(), err)
		}
	}

	identityCfg := app.IdentityServiceConfig{Logger: logger}

	if account := cfg.Services.Account; account.Enabled() {
		client, err := clients.New(clients.Config{
			BaseURL:     account.BaseURL,
			ServiceName: account.Name,
			Settings:    cfg.Client,
			Logger:      logger,
		})
		if err != nil {
			return nil, fmt.Errorf("creating account client: %w", err)
		}

		accounts := acl.NewAccountClient(client)
		identityCfg.Accounts = accounts

		if err := healthRegistry.Register(accounts); err != nil {
			return nil, fmt.Errorf("registering account health check: %w", err)
		}
	}

	calendar, err := app.NewCalendar(cfg.Calendar.TimeZone, nil)
	if err != nil {
		return nil, err
	}

	engagement, err := telemetry.NewEngagementMetrics()
	if err != nil {
		return nil, fmt.Errorf("creating engagement metrics: %w", err)
	}

	catalog := storage.NewCatalogStore(db)
	ledger := storage.NewLedgerStore(db)

	resolution := app.NewResolutionService(app.ResolutionServiceConfig{
		Catalog:  catalog,
		Ledger:   ledger,
		Flags:    featureFlags,
		Calendar: calendar,
		Logger:   logger,
	})

	favorites := app.NewLedgerService(app.LedgerServiceConfig{
		Ledger:            ledger,
		Catalog:           catalog,
		Metrics:           engagement,
		Logger:            logger,
		MaxToggleAttempts: cfg.Ledger.MaxToggleAttempts,
	})

	tracking := app.NewTrackingService(app.TrackingServiceConfig{
		Tracking: storage.NewTrackingStore(db),
		Catalog:  catalog,
		Metrics:  engagement,
		Calendar: calendar,
		Logger:   logger,
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	return &components{
		db: db,
		router: http.RouterConfig{
			Logger:     logger,
			AppConfig:  &cfg.App,
			AuthConfig: &cfg.Auth,
			Identities: app.NewIdentityService(identityCfg),
			Health:     handlers.NewHealthHandler(healthRegistry, buildInfo, promRegistry),
			Content:    handlers.NewContentHandler(resolution),
			Favorites:  handlers.NewFavoritesHandler(favorites),
			Tracking:   handlers.NewTrackingHandler(tracking),
			Timeout:    http.DefaultRequestTimeout,
		},
	}, nil
}
