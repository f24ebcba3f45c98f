package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM logs through slog. Statements issued while serving a request
// are logged with that request's logger so they carry its request_id.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultSlowQueryThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	target := deliverycontext.GetLoggerOrDefault(ctx, l.logger)
	if target == nil {
		return
	}
	target.LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		l.log(ctx, slog.LevelInfo, "Store info", slog.String("message", fmt.Sprintf(msg, args...)))
	}
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		l.log(ctx, slog.LevelWarn, "Store warning", slog.String("message", fmt.Sprintf(msg, args...)))
	}
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		l.log(ctx, slog.LevelError, "Store error", slog.String("message", fmt.Sprintf(msg, args...)))
	}
}

// Trace logs failed statements at error, slow ones at warn and, in debug mode, every statement.
// Missing rows are an expected outcome of lookups and are not logged as failures.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.log(ctx, slog.LevelError, "Store statement failed", append(statementAttrs(sqlAndRowsFn, elapsed), slog.Any("error", err))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.log(ctx, slog.LevelWarn, "Slow store statement", append(statementAttrs(sqlAndRowsFn, elapsed), slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.log(ctx, slog.LevelDebug, "Store statement", statementAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func statementAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
