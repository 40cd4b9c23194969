package cerror

import (
	"go.uber.org/zap/zapcore"
)

type CustomError struct {
	HttpStatusCode int             `json:"-"`
	Message        string          `json:"message,omitempty"`
	Errors         []FieldError    `json:"errors,omitempty"`
	LogMessage     string          `json:"-"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
}

// FieldError mirrors one entry of the body validation error list.
type FieldError struct {
	Type     string      `json:"type"`
	Value    interface{} `json:"value"`
	Msg      string      `json:"msg"`
	Path     string      `json:"path"`
	Location string      `json:"location"`
}
