package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// setAuthenticatedUser stamps a user id on the context the way the auth
// middleware does.
func setAuthenticatedUser(c echo.Context) uuid.UUID {
	userID := uuid.New()
	c.Set("userID", userID)

	return userID
}
