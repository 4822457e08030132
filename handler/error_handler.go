package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gavdev/portfolio/pkg/logger"
)

// ErrorInfo is the public outcome of a failed request.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// Classifier maps an error to the response written for it.
type Classifier func(err error) ErrorInfo

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func logLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError honours HTTPError and hides everything else behind a 500.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Message:    ErrInternalServerError.Message,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Message
	}

	info.LogLevel = logLevel(info.StatusCode)
	return info
}

// NewErrorHandler logs the error with request attributes and writes
// {"error": message} using classify. A nil classify uses the default
// classification: HTTPError keeps its code, anything else becomes a generic 500.
func NewErrorHandler(log *slog.Logger, classify Classifier) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if classify == nil {
		classify = classifyError
	}

	return func(ctx Context, err error) {
		info := classify(err)
		r := ctx.Request()

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			logger.Status(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(info.Message, WithJSONStatus(info.StatusCode)).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
