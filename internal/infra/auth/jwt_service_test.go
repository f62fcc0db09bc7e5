package auth

import (
	"testing"
	"time"

	"tienda/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestJWTConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := newTestJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	gotID, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestJWTService_RefreshTokenIsNotAnAccessToken(t *testing.T) {
	cfg := newTestJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	userID := uuid.New()
	_, refreshToken, err := jwtService.GenerateTokens(userID)
	assert.NoError(t, err)

	// Signed with the refresh secret, so access validation must reject it.
	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := newTestJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	cfg := newTestJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, jwtService.GetRefreshTokenDuration())
}
