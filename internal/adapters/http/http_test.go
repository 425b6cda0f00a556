package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quoteday/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteday/internal/app"
	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/mocks"
	"github.com/jsamuelsen/quoteday/internal/platform/config"
	"github.com/jsamuelsen/quoteday/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig(maxBody int64) *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: maxBody,
	}
}

type routerFixture struct {
	engine    *gin.Engine
	content   *mocks.MockContentService
	favorites *mocks.MockFavoritesService
	tracking  *mocks.MockTrackingService
}

func newRouterFixture(t *testing.T, auth *config.AuthConfig) *routerFixture {
	t.Helper()

	f := &routerFixture{
		engine:    gin.New(),
		content:   mocks.NewMockContentService(t),
		favorites: mocks.NewMockFavoritesService(t),
		tracking:  mocks.NewMockTrackingService(t),
	}

	SetupRouter(f.engine, RouterConfig{
		Logger:     discardLogger(),
		AppConfig:  &config.AppConfig{Name: "quoteday", Version: "test", Environment: "test"},
		AuthConfig: auth,
		Identities: app.NewIdentityService(app.IdentityServiceConfig{Logger: discardLogger()}),
		Health: handlers.NewHealthHandler(ports.NewHealthRegistry(),
			handlers.NewBuildInfo("test", "abc123", "now"), prometheus.NewRegistry()),
		Content:   handlers.NewContentHandler(f.content),
		Favorites: handlers.NewFavoritesHandler(f.favorites),
		Tracking:  handlers.NewTrackingHandler(f.tracking),
		Timeout:   time.Second,
	})

	return f
}

func (f *routerFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	return w
}

func TestSetupRouter_Routes(t *testing.T) {
	f := newRouterFixture(t, &config.AuthConfig{})

	got := map[string]bool{}
	for _, r := range f.engine.Routes() {
		got[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /-/live",
		"GET /-/ready",
		"GET /-/build",
		"GET /-/metrics",
		"GET /api/v1/content/today",
		"GET /api/v1/content/by-date",
		"POST /api/v1/favorites/toggle",
		"GET /api/v1/favorites",
		"POST /api/v1/quotes/:id/toggle-favorite",
		"POST /api/v1/tracking/impressions",
		"POST /api/v1/tracking/clicks",
		"GET /api/v1/campaigns/active",
		"GET /api/v1/admin/stats/overview",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
}

func TestSetupRouter_NilHandlers(t *testing.T) {
	engine := gin.New()

	require.NotPanics(t, func() {
		SetupRouter(engine, RouterConfig{Logger: discardLogger()})
	})

	assert.Empty(t, engine.Routes())
}

func TestSetupRouter_ResolvesIdentity(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    func(t *testing.T) domain.Identity
	}{
		{
			name:    "header client id",
			target:  "/api/v1/content/today",
			headers: map[string]string{middleware.HeaderClientID: "device-7"},
			want: func(t *testing.T) domain.Identity {
				id, err := domain.AnonymousIdentity("device-7")
				require.NoError(t, err)

				return id
			},
		},
		{
			name:   "query client id",
			target: "/api/v1/content/today?client_id=device-8",
			want: func(t *testing.T) domain.Identity {
				id, err := domain.AnonymousIdentity("device-8")
				require.NoError(t, err)

				return id
			},
		},
		{
			name:   "nobody",
			target: "/api/v1/content/today",
			want:   func(*testing.T) domain.Identity { return domain.Unresolved() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, &config.AuthConfig{})

			f.content.EXPECT().ResolveToday(mock.Anything, tt.want(t)).
				Return(&domain.Content{Quote: &domain.Quote{ID: 1, Text: "Here's looking at you, kid."}}, nil)

			w := f.do(http.MethodGet, tt.target, "", tt.headers)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Here's looking at you, kid.")
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestSetupRouter_AdminStats(t *testing.T) {
	enabled := &config.AuthConfig{Enabled: true, SubjectHeader: "X-User-ID", RolesHeader: "X-User-Roles"}

	tests := []struct {
		name       string
		auth       *config.AuthConfig
		headers    map[string]string
		wantStatus int
	}{
		{
			name:       "gateway auth disabled",
			auth:       &config.AuthConfig{},
			headers:    map[string]string{"X-User-ID": "u-1", "X-User-Roles": "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no subject",
			auth:       enabled,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong role",
			auth:       enabled,
			headers:    map[string]string{"X-User-ID": "u-1", "X-User-Roles": "editor"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "analyst",
			auth:       enabled,
			headers:    map[string]string{"X-User-ID": "u-1", "X-User-Roles": "viewer,analyst"},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, tt.auth)

			if tt.wantStatus == http.StatusOK {
				f.tracking.EXPECT().StatsOverview(mock.Anything, (*civil.Date)(nil)).
					Return(domain.NewDailyStats(civil.Date{Year: 2026, Month: 10, Day: 14}, 10, 1, 4, 2), nil)
			}

			w := f.do(http.MethodGet, "/api/v1/admin/stats/overview", "", tt.headers)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestSetupRouter_HealthSkipsIdentity(t *testing.T) {
	f := newRouterFixture(t, &config.AuthConfig{})

	// A malformed client id would fail identity resolution on /api/v1.
	w := f.do(http.MethodGet, "/-/live", "", map[string]string{middleware.HeaderClientID: strings.Repeat("x", 500)})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_New(t *testing.T) {
	cfg := testServerConfig(1 << 20)
	cfg.Port = 8080
	logger := discardLogger()

	srv := New(cfg, logger)

	require.NotNil(t, srv.Engine())
	assert.Same(t, cfg, srv.Config())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr())
	assert.Equal(t, 5*time.Second, srv.httpServer.ReadTimeout)
}

func TestServer_StartShutdown(t *testing.T) {
	srv := New(testServerConfig(1<<20), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	errCh := srv.Start()

	addr := srv.Addr()
	assert.NotEqual(t, "127.0.0.1:0", addr, "Addr reports the bound port")

	resp, err := http.Get("http://" + addr + "/ping") //nolint:noctx // test request
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, "pong", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err, ok := <-errCh:
		assert.False(t, ok, "channel closes without error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StartAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	cfg := testServerConfig(1 << 20)
	cfg.Port = ln.Addr().(*net.TCPAddr).Port

	err, ok := <-New(cfg, discardLogger()).Start()

	require.True(t, ok)
	assert.ErrorContains(t, err, "listen")
}

func TestMaxBodySize(t *testing.T) {
	srv := New(testServerConfig(64), discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.String(http.StatusOK, "%d", len(body))
	})

	tests := []struct {
		name       string
		size       int
		wantStatus int
	}{
		{name: "under limit", size: 32, wantStatus: http.StatusOK},
		{name: "at limit", size: 64, wantStatus: http.StatusOK},
		{name: "over limit", size: 65, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("a", tt.size)))
			w := httptest.NewRecorder()

			srv.Engine().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
