// Package storage implements the catalog, ledger and tracking ports on gorm.
// Postgres is the production driver; SQLite serves local runs and tests.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quoteday/internal/platform/config"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the configured database and sizes its pool.
// SQLite is capped at one open connection; it has a single writer anyway and
// in-memory databases exist per connection.
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig(logger, cfg.SlowThreshold))
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}

		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

func gormConfig(logger *slog.Logger, slow time.Duration) *gorm.Config {
	return &gorm.Config{
		Logger: newGormLogger(logger, slow),
		// Unique violations surface as gorm.ErrDuplicatedKey on every driver.
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Migrate creates or updates every table the service owns.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&Quote{},
		&Campaign{},
		&Favorite{},
		&Impression{},
		&Click{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// HealthChecker pings the database for readiness probes.
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker creates a database health checker.
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name implements ports.HealthChecker.
func (h *HealthChecker) Name() string {
	return "database"
}

// Check implements ports.HealthChecker.
func (h *HealthChecker) Check(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
