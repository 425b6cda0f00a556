//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quoteday/internal/adapters/clients"
	"github.com/jsamuelsen/quoteday/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quoteday/internal/adapters/flags"
	httpadapter "github.com/jsamuelsen/quoteday/internal/adapters/http"
	"github.com/jsamuelsen/quoteday/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quoteday/internal/adapters/storage"
	"github.com/jsamuelsen/quoteday/internal/app"
	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/platform/config"
	"github.com/jsamuelsen/quoteday/internal/ports"
)

const serviceZone = "Asia/Tokyo"

// clock is a settable time source shared by the calendar.
type clock struct {
	now atomic.Pointer[time.Time]
}

func (c *clock) Now() time.Time {
	return *c.now.Load()
}

// SetDate moves the clock to noon of d in the service zone.
func (c *clock) SetDate(d civil.Date) {
	loc, _ := time.LoadLocation(serviceZone)
	t := d.In(loc).Add(12 * time.Hour)
	c.now.Store(&t)
}

// accountProvider stands in for the account service.
type accountProvider struct {
	mu     sync.Mutex
	tokens map[string]string
	down   bool
	calls  atomic.Int64
	server *httptest.Server
}

func newAccountProvider() *accountProvider {
	p := &accountProvider{tokens: map[string]string{}}
	p.server = httptest.NewServer(http.HandlerFunc(p.serve))

	return p
}

func (p *accountProvider) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == acl.DefaultSessionPath {
		p.calls.Add(1)
	}

	p.mu.Lock()
	down := p.down
	accountID, known := p.tokens[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
	p.mu.Unlock()

	if down {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	switch r.URL.Path {
	case acl.DefaultHealthPath:
		w.WriteHeader(http.StatusOK)
	case acl.DefaultSessionPath:
		if !known {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"code":"UNAUTHORIZED","message":"unknown session"}}`)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"account": map[string]any{"id": accountID, "is_active": true}})
	default:
		http.NotFound(w, r)
	}
}

func (p *accountProvider) Know(token, accountID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tokens[token] = accountID
}

func (p *accountProvider) SetDown(down bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.down = down
}

// stack is the full service wired against a private in-memory database.
type stack struct {
	db       *gorm.DB
	clock    *clock
	accounts *accountProvider
	handler  http.Handler
}

func newStack() (*stack, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := storage.Open(config.DatabaseConfig{
		Driver: storage.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, logger)
	if err != nil {
		return nil, err
	}

	if err := storage.Migrate(context.Background(), db); err != nil {
		_ = storage.Close(db)
		return nil, err
	}

	clk := &clock{}
	clk.SetDate(civil.DateOf(time.Now()))

	calendar, err := app.NewCalendar(serviceZone, clk.Now)
	if err != nil {
		_ = storage.Close(db)
		return nil, err
	}

	accounts := newAccountProvider()

	client, err := clients.New(clients.Config{
		BaseURL:     accounts.server.URL,
		ServiceName: "account-service",
		Settings: config.ClientConfig{
			Timeout: time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     1,
				InitialInterval: time.Millisecond,
				MaxInterval:     time.Millisecond,
				Multiplier:      2,
			},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Minute, HalfOpenLimit: 1},
			Transport:      config.TransportConfig{MaxIdleConns: 4, MaxIdleConnsPerHost: 4, IdleConnTimeout: time.Minute},
		},
		Logger: logger,
	})
	if err != nil {
		accounts.server.Close()
		_ = storage.Close(db)

		return nil, err
	}

	accountClient := acl.NewAccountClient(client)
	catalog := storage.NewCatalogStore(db)
	ledger := storage.NewLedgerStore(db)
	featureFlags := flags.NewStatic(map[string]bool{app.FlagCampaignOverride: true})

	registry := ports.NewHealthRegistry()
	_ = registry.Register(storage.NewHealthChecker(db))
	_ = registry.Register(accountClient)

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:    logger,
		AppConfig: &config.AppConfig{Name: "quoteday", Version: "integration", Environment: "test"},
		AuthConfig: &config.AuthConfig{
			Enabled:       true,
			SubjectHeader: "X-User-ID",
			RolesHeader:   "X-User-Roles",
		},
		Identities: app.NewIdentityService(app.IdentityServiceConfig{Accounts: accountClient, Logger: logger}),
		Health:     handlers.NewHealthHandler(registry, handlers.NewBuildInfo("integration", "-", "-"), prometheus.NewRegistry()),
		Content: handlers.NewContentHandler(app.NewResolutionService(app.ResolutionServiceConfig{
			Catalog:  catalog,
			Ledger:   ledger,
			Flags:    featureFlags,
			Calendar: calendar,
			Logger:   logger,
		})),
		Favorites: handlers.NewFavoritesHandler(app.NewLedgerService(app.LedgerServiceConfig{
			Ledger:  ledger,
			Catalog: catalog,
			Logger:  logger,
		})),
		Tracking: handlers.NewTrackingHandler(app.NewTrackingService(app.TrackingServiceConfig{
			Tracking: storage.NewTrackingStore(db),
			Catalog:  catalog,
			Calendar: calendar,
			Logger:   logger,
		})),
		Timeout: 5 * time.Second,
	})

	return &stack{db: db, clock: clk, accounts: accounts, handler: engine}, nil
}

func (s *stack) Close() {
	s.accounts.server.Close()
	_ = storage.Close(s.db)
}

func (s *stack) SeedQuote(q *domain.Quote) error {
	return s.db.Create(storage.QuoteFromDomain(q)).Error
}

func (s *stack) SeedCampaign(c *domain.Campaign) error {
	return s.db.Create(storage.CampaignFromDomain(c)).Error
}
