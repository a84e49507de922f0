package auth

import (
	"testing"
	"time"

	"sharefit/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := testConfig()

	// Create JWT service
	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	// Generate tokens
	accessToken, refreshToken, err := jwtService.GenerateTokens(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	parsedAccess, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	assert.NoError(t, err)
	assert.True(t, parsedAccess.Valid)

	accessClaims, ok := parsedAccess.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, userID.String(), accessClaims["sub"])
	assert.Equal(t, "access", accessClaims["type"])

	// Validate refresh token
	parsedRefresh, err := jwtService.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	assert.NoError(t, err)
	assert.True(t, parsedRefresh.Valid)

	refreshClaims, ok := parsedRefresh.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "refresh", refreshClaims["type"])
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	userID := uuid.New()
	accessToken, _, err := jwtService.GenerateTokens(userID)
	assert.NoError(t, err)

	// Validating an access token with the refresh secret must fail. Parse
	// still hands back the token alongside the error, flagged invalid.
	parsed, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Refresh)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	if parsed != nil {
		assert.False(t, parsed.Valid)
	}
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	parsed, err := jwtService.ValidateToken(invalidToken, cfg.SecretKey.Access)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	// Should fail to create service with empty secrets
	cfg := &config.Config{}
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Default refresh token duration
	duration := jwtService.GetRefreshTokenDuration()
	assert.Equal(t, time.Hour*24*7, duration)
}

func TestJWTService_ConfiguredDurations(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{
		AccessTokenExpiry:  time.Minute * 5,
		RefreshTokenExpiry: time.Hour * 24,
	}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Hour*24, jwtService.GetRefreshTokenDuration())
}
