package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger writes GORM events through the request logger found in ctx,
// so SQL lines carry the request_id and user_id of the caller.
type GormLogger struct {
	SlowThreshold        time.Duration
	IgnoreRecordNotFound bool
	HideSQL              bool
	LogLevel             gormlogger.LogLevel
}

// local/dev: SQL 포함 info, prod: error만
func newLogger(cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Info
	if cfg.IsProduction() {
		level = gormlogger.Error
	}

	return &GormLogger{
		SlowThreshold:        cfg.Database.SlowQuery,
		IgnoreRecordNotFound: true,
		HideSQL:              cfg.IsProduction(),
		LogLevel:             level,
	}
}

func (l *GormLogger) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx).With("component", "gorm")
}

// LogMode sets the log level
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.LogLevel = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.LogLevel >= gormlogger.Info {
		l.log(ctx).InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.LogLevel >= gormlogger.Warn {
		l.log(ctx).WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.LogLevel >= gormlogger.Error {
		l.log(ctx).ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace logs failed and slow statements; other statements go to debug
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []any{"elapsed", elapsed.String(), "rows", rows}
	if !l.HideSQL {
		fields = append(fields, "sql", sql)
	}

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && (!errors.Is(err, gorm.ErrRecordNotFound) || !l.IgnoreRecordNotFound):
		// 요청 타임아웃으로 취소된 쿼리는 경고로 낮춘다
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			l.log(ctx).WarnContext(ctx, "Database query canceled", append(fields, "error", err)...)
			return
		}
		l.log(ctx).ErrorContext(ctx, "Database query error", append(fields, "error", err)...)

	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormlogger.Warn:
		l.log(ctx).WarnContext(ctx, "Slow SQL query detected", append(fields, "threshold", l.SlowThreshold.String())...)

	case l.LogLevel >= gormlogger.Info:
		l.log(ctx).DebugContext(ctx, "SQL query executed", fields...)
	}
}
