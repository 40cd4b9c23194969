package logger

import (
	"context"

	"go.uber.org/zap"
)

const (
	ContextKey                = "logger"
	EventFinishedSuccessfully = "event successfully finished"
)

func NewLogger() (*zap.SugaredLogger, error) {
	log, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}

// FromContext works for both plain contexts and fasthttp request contexts,
// the latter resolve string keys against fiber locals.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if log, isOk := ctx.Value(ContextKey).(*zap.SugaredLogger); isOk {
			return log
		}
	}

	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return log.Sugar()
}
