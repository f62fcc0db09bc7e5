package middleware

import (
	"strings"

	"tienda/internal/delivery/http/response"
	"tienda/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const userIDContextKey = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and rejects requests without
// one. Wishlist routes use this.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.resolveBearer(c)
		if err != nil {
			return response.Unauthorized(c, "Debes iniciar sesión para realizar esta acción")
		}
		if userID == nil {
			return response.Unauthorized(c, "Debes iniciar sesión para realizar esta acción")
		}

		c.Set(userIDContextKey, *userID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the user when a token is present but lets
// anonymous callers through. A present-but-invalid token is still rejected
// so a stale session never silently falls back to a second anonymous cart.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.resolveBearer(c)
		if err != nil {
			return response.Unauthorized(c, "Sesión inválida o expirada")
		}
		if userID != nil {
			c.Set(userIDContextKey, *userID)
		}

		return next(c)
	}
}

// resolveBearer returns (nil, nil) when no Authorization header is present.
func (m *AuthMiddleware) resolveBearer(c echo.Context) (*uuid.UUID, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, echo.ErrUnauthorized
	}

	userID, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	return &userID, nil
}

// GetUserID returns the authenticated user id set by the auth middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDContextKey).(uuid.UUID)

	return userID, ok
}
