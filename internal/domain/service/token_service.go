// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating the JWTs
// used by API clients. Login flows live outside this service; it only signs
// and verifies.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and returns the user id it
	// was issued for.
	ValidateAccessToken(tokenString string) (uuid.UUID, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
