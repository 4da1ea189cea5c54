package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"bookshelf/internal/delivery/http/response"
	domainerrors "bookshelf/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own HTTP status and business code.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}
		// Client-visible messages stay minimal; details are logged only.
		_ = c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &response.ErrorInfo{
				Code: appErr.ErrorCode(),
			},
		})

		return
	}

	// Echo's own errors (binding failures, 404 routes, validator output).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: fmt.Sprintf("%v", httpErr.Message),
			Error: &response.ErrorInfo{
				Code: "HTTP_ERROR",
			},
		})

		return
	}

	// Anything else is an unexpected failure: log with cause, answer generic.
	m.logError(err, c)

	_ = c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &response.ErrorInfo{
			Code: "INTERNAL_ERROR",
		},
	})
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	attrs := []any{
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		attrs = append(attrs, slog.String("details", appErr.Details()))
	}

	m.logger.Error("Unhandled error", attrs...)
}
