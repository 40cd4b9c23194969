package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const RequestIdField = "requestId"

// Middleware must run after the requestid middleware so the id is already on the response.
func Middleware(logger *zap.SugaredLogger) func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		requestLogger := logger.With(
			zap.String(RequestIdField, ctx.GetRespHeader(fiber.HeaderXRequestID)),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
		)
		ctx.Locals(ContextKey, requestLogger)

		return ctx.Next()
	}
}

// With narrows the request logger and stores it back for everything downstream.
func With(ctx *fiber.Ctx, fields ...zap.Field) *zap.SugaredLogger {
	args := make([]interface{}, 0, len(fields))
	for _, field := range fields {
		args = append(args, field)
	}

	log := FromContext(ctx.Context()).With(args...)
	ctx.Locals(ContextKey, log)

	return log
}
