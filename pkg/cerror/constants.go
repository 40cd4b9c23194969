package cerror

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

const (
	MessageMalformedBody          = "malformed request body"
	MessageUserNotFound           = "user not found"
	MessagePasswordsDoNotMatch    = "passwords do not match"
	MessageMissingRefreshToken    = "missing refreshToken"
	MessageInvalidRefreshToken    = "invalid or expired refreshToken"
	MessageUserAlreadyExists      = "user already exists"
	MessageInternalServerError    = "internal server error"
	MessageInvalidUserIdParameter = "invalid user id"
)

var (
	ErrorBadRequest = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		Message:        MessageMalformedBody,
		LogMessage:     "malformed request body or query parameter",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorInvalidUserId = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		Message:        MessageInvalidUserIdParameter,
		LogMessage:     "user id parameter is not a positive integer",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorUserNotFound = &CustomError{
		HttpStatusCode: fiber.StatusNotFound,
		Message:        MessageUserNotFound,
		LogMessage:     "user not found",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorUserAlreadyExists = &CustomError{
		HttpStatusCode: fiber.StatusConflict,
		Message:        MessageUserAlreadyExists,
		LogMessage:     "user already exists",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorPasswordsDoNotMatch = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Message:        MessagePasswordsDoNotMatch,
		LogMessage:     "error occurred while compare passwords",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorMissingRefreshToken = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		Message:        MessageMissingRefreshToken,
		LogMessage:     "refresh token is missing from request body",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorInvalidRefreshToken = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Message:        MessageInvalidRefreshToken,
		LogMessage:     "refresh token verification failed",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorHashPassword = &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		Message:        MessageInternalServerError,
		LogMessage:     "error occurred while generate hash from password",
		LogSeverity:    zapcore.ErrorLevel,
	}

	ErrorGenerateAccessToken = &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		Message:        MessageInternalServerError,
		LogMessage:     "error occurred while generate access token",
		LogSeverity:    zapcore.ErrorLevel,
	}

	ErrorGenerateRefreshToken = &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		Message:        MessageInternalServerError,
		LogMessage:     "error occurred while generate refresh token",
		LogSeverity:    zapcore.ErrorLevel,
	}

	ErrorInternal = &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		Message:        MessageInternalServerError,
		LogMessage:     "unexpected error",
		LogSeverity:    zapcore.ErrorLevel,
	}
)
