package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"user-auth-api/pkg/logger"
)

type errorResponse struct {
	Message string `json:"message"`
}

// Middleware is the fiber ErrorHandler. Every error leaves with an explicit status and body.
func Middleware(ctx *fiber.Ctx, err error) error {
	log := logger.FromContext(ctx.Context()).Desugar()

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		severity := zapcore.WarnLevel
		if fiberError.Code >= fiber.StatusInternalServerError {
			severity = zapcore.ErrorLevel
		}
		log.Log(severity, "request failed", zap.Error(err))

		return ctx.
			Status(fiberError.Code).
			JSON(errorResponse{Message: fiberError.Message})
	}

	var cerr *CustomError
	if !errors.As(err, &cerr) {
		cerr = ErrorInternal.With(zap.Error(err))
	}

	for _, field := range cerr.LogFields {
		log = log.With(field)
	}
	log.Log(cerr.LogSeverity, cerr.LogMessage)

	if len(cerr.Errors) > 0 {
		return ctx.
			Status(cerr.HttpStatusCode).
			JSON(fiber.Map{
				"errors": cerr.Errors,
			})
	}

	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(errorResponse{Message: cerr.ResponseMessage()})
}
