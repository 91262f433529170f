package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

type dbLogger struct {
	Logger zerolog.Logger
}

func (l *dbLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *dbLogger) Info(_ context.Context, s string, args ...interface{}) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *dbLogger) Warn(_ context.Context, s string, args ...interface{}) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *dbLogger) Error(_ context.Context, s string, args ...interface{}) {
	l.Logger.Error().Msgf(s, args...)
}

func (l *dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, _ := fc()
	fields := map[string]interface{}{
		"sql":      sql,
		"duration": elapsed,
	}

	// Missing records are reported to the caller, they are not query errors.
	if err != nil && !IsNotFound(err) && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Logger.Error().Err(err).Fields(fields).Msg("[GORM] query error")
		return
	}

	l.Logger.Debug().Fields(fields).Msgf("[GORM] query")
}
