package middleware

import (
	"log/slog"
	"net/http"

	"tasklist/internal/delivery/http/response"
	domainerrors "tasklist/internal/domain/errors"

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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Domain failures
// carry their own status code and stable message; anything unrecognized is a
// logged 500 with a generic body.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.ErrorResponse{
			Error: response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Message: appErr.Message(),
				Details: appErr.Details(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = c.JSON(httpErr.Code, response.ErrorResponse{
			Error: response.ErrorInfo{
				Code:    "HTTP_ERROR",
				Message: message,
			},
		})

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusInternalServerError, response.ErrorResponse{
		Error: response.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}
