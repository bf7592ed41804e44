package auth

import (
	"testing"
	"time"

	"arena/config"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = "test_jwt_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndVerifyTokenPair(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	playerID := uuid.New()

	accessToken, err := tokenService.IssueAccessToken(playerID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, tokenID, err := tokenService.IssueRefreshToken(playerID)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)
	assert.NotEmpty(t, tokenID)

	accessClaims, err := tokenService.Verify(accessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, playerID, accessClaims.PlayerID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Empty(t, accessClaims.TokenID)

	refreshClaims, err := tokenService.Verify(refreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, playerID, refreshClaims.PlayerID)
	assert.Equal(t, tokenID, refreshClaims.TokenID)
}

func TestJWTService_RefreshTokensForSamePlayerDiffer(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	playerID := uuid.New()

	first, firstID, err := tokenService.IssueRefreshToken(playerID)
	require.NoError(t, err)
	second, secondID, err := tokenService.IssueRefreshToken(playerID)
	require.NoError(t, err)

	// The jti nonce keeps sibling refresh tokens distinguishable.
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, firstID, secondID)
	assert.NotEqual(t, tokenService.HashToken(first), tokenService.HashToken(second))
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	playerID := uuid.New()

	refreshToken, _, err := tokenService.IssueRefreshToken(playerID)
	require.NoError(t, err)

	// A structurally valid refresh token must never pass as an access token.
	claims, err := tokenService.Verify(refreshToken, service.TokenTypeAccess)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := tokenService.Verify("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: -time.Minute}

	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, err := tokenService.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	claims, err := tokenService.Verify(accessToken, service.TokenTypeAccess)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrExpiredToken)
}

func TestJWTService_RejectsForgedSignature(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.JWT = "a_completely_different_signing_secret"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	forged, err := otherService.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	claims, err := tokenService.Verify(forged, service.TokenTypeAccess)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_RemainingLifetime(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, err := tokenService.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	remaining := tokenService.RemainingLifetime(accessToken)
	assert.Greater(t, remaining, 14*time.Minute)
	assert.LessOrEqual(t, remaining, 15*time.Minute)

	assert.Equal(t, time.Duration(0), tokenService.RemainingLifetime("not-a-token"))
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
