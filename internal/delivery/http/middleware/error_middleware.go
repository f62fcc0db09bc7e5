package middleware

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/http/response"
	domainerrors "tienda/internal/domain/errors"

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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. AJAX callers
// get the JSON failure envelope; browser navigation gets the error page.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	statusCode := http.StatusInternalServerError
	message := "Error interno del servidor"

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		statusCode = appErr.HTTPCode()
		message = appErr.Message()
	case errors.As(err, &httpErr):
		statusCode = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
	default:
		m.logger.Error("Unhandled error",
			"error", err.Error(),
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
		)
	}

	if IsJSONRequested(c) || c.Request().Method != http.MethodGet {
		_ = response.Error(c, statusCode, message)

		return
	}

	if renderErr := c.Render(statusCode, "error.html", map[string]any{
		"Status":  statusCode,
		"Mensaje": message,
	}); renderErr != nil {
		_ = response.Error(c, statusCode, message)
	}
}

// IsJSONRequested reports whether the caller asked for the JSON
// representation. The contract is the X-Requested-With header; API clients
// depend on it.
func IsJSONRequested(c echo.Context) bool {
	return c.Request().Header.Get("X-Requested-With") == "XMLHttpRequest"
}
