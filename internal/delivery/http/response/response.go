// Package response emits the storefront's JSON envelopes. Successful shapes
// vary per endpoint; failures are uniformly {"success": false, "error": msg}.
package response

import (
	"net/http"

	domainerrors "tienda/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorBody is the uniform failure envelope.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Error writes the failure envelope with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Success: false, Error: message})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}

// HandleAppError converts domain errors to the failure envelope. Unknown
// errors bubble to Echo's error handler so internals never leak.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
