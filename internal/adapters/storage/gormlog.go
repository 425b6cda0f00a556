package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen/quoteday/internal/platform/logging"
)

// gormLogger routes gorm output through slog so statements carry the
// request-scoped attributes of the context logger.
type gormLogger struct {
	fallback *slog.Logger
	level    gormlogger.LogLevel
	slow     time.Duration
}

func newGormLogger(logger *slog.Logger, slow time.Duration) *gormLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &gormLogger{fallback: logger, level: gormlogger.Warn, slow: slow}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormLogger) logger(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, l.fallback).With(slog.String("component", "gorm"))
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.logger(ctx).InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.logger(ctx).WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.logger(ctx).ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Trace logs failed and slow statements. Missing rows are expected lookups,
// not failures.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		l.logger(ctx).ErrorContext(ctx, "query failed",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.logger(ctx).WarnContext(ctx, "slow query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", l.slow),
		)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.logger(ctx).DebugContext(ctx, "query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	}
}
