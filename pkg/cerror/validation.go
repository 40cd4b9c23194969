package cerror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	fieldErrorType     = "field"
	fieldErrorLocation = "body"
)

// NewValidationError turns a validator failure into a 400 carrying one entry per field.
// Field names are whatever the validator reports, so register a json tag name func on it.
func NewValidationError(err error) *CustomError {
	cerr := &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		LogMessage:     "request body validation failed",
		LogSeverity:    zapcore.WarnLevel,
		LogFields: []zapcore.Field{
			zap.Error(err),
		},
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		cerr.Message = MessageMalformedBody
		return cerr
	}

	cerr.Errors = make([]FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		cerr.Errors = append(cerr.Errors, FieldError{
			Type:     fieldErrorType,
			Value:    fieldError.Value(),
			Msg:      fieldErrorMessage(fieldError),
			Path:     fieldError.Field(),
			Location: fieldErrorLocation,
		})
	}

	return cerr
}

func fieldErrorMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldError.Field(), fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid", fieldError.Field())
	}
}
