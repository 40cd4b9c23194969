package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const DefaultSlowQueryThreshold = 200 * time.Millisecond

type gormZapLogger struct {
	log                *zap.SugaredLogger
	level              gormLogger.LogLevel
	slowQueryThreshold time.Duration
}

// NewGormLogger routes gorm output through zap. Queries log at debug level,
// slow ones at warn, failures other than record-not-found at error.
func NewGormLogger(log *zap.SugaredLogger) gormLogger.Interface {
	return &gormZapLogger{
		log:                log.Named("gorm"),
		level:              gormLogger.Warn,
		slowQueryThreshold: DefaultSlowQueryThreshold,
	}
}

func (l *gormZapLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	copied := *l
	copied.level = level
	return &copied
}

func (l *gormZapLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Info {
		l.logger(ctx).Infof(msg, args...)
	}
}

func (l *gormZapLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Warn {
		l.logger(ctx).Warnf(msg, args...)
	}
}

func (l *gormZapLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Error {
		l.logger(ctx).Errorf(msg, args...)
	}
}

func (l *gormZapLogger) Trace(
	ctx context.Context,
	begin time.Time,
	fc func() (sql string, rowsAffected int64),
	err error,
) {
	if l.level <= gormLogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rowsAffected := fc()
	log := l.logger(ctx).With(
		zap.String("sql", sql),
		zap.Int64("rows", rowsAffected),
		zap.Duration("elapsed", elapsed),
	)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormLogger.Error:
		log.Errorw("query failed", zap.Error(err))
	case elapsed > l.slowQueryThreshold && l.level >= gormLogger.Warn:
		log.Warn("slow query")
	case l.level >= gormLogger.Info:
		log.Debug("query executed")
	}
}

func (l *gormZapLogger) logger(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if log, isOk := ctx.Value(ContextKey).(*zap.SugaredLogger); isOk {
			return log.Named("gorm")
		}
	}

	return l.log
}
