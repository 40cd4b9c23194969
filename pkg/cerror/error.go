package cerror

import (
	"net/http"

	"go.uber.org/zap/zapcore"
)

func NewError(httpStatusCode int, logMessage string, logFields ...zapcore.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		LogMessage:     logMessage,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) Error() string {
	if cerr.LogMessage != "" {
		return cerr.LogMessage
	}

	return cerr.ResponseMessage()
}

// ResponseMessage is the text a caller sees for this error.
func (cerr *CustomError) ResponseMessage() string {
	if cerr.Message != "" {
		return cerr.Message
	}

	return http.StatusText(cerr.HttpStatusCode)
}

func (cerr *CustomError) SetMessage(message string) *CustomError {
	cerr.Message = message
	return cerr
}

// With returns a copy carrying the extra log fields, the receiver is left untouched.
func (cerr *CustomError) With(logFields ...zapcore.Field) *CustomError {
	copied := *cerr
	copied.LogFields = make([]zapcore.Field, 0, len(cerr.LogFields)+len(logFields))
	copied.LogFields = append(copied.LogFields, cerr.LogFields...)
	copied.LogFields = append(copied.LogFields, logFields...)

	return &copied
}
