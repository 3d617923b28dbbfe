package auth

import (
	"testing"
	"time"

	"github.com/erp/bizhub/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "bizhub-test",
		MaxRefreshCount:        3,
	})
}

func newTestInput() GenerateTokenInput {
	return GenerateTokenInput{
		UserID:   42,
		Username: "alice",
		Role:     "inventory_manager",
		UserType: "seller",
	}
}

func TestNewJWTService_FallsBackToAccessSecret(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "only-secret"})
	assert.Equal(t, []byte("only-secret"), svc.refreshSecret)
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(newTestInput())

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	t.Run("valid token carries identity", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "inventory_manager", claims.Role)
		assert.Equal(t, "42", claims.Subject)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("refresh token is rejected", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret is rejected", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{Secret: "another-secret", Issuer: "bizhub-test", AccessTokenExpiration: time.Minute})
		_, err := other.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "bizhub-test",
	})
	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRefreshToken_SameSecret(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "shared-secret",
		AccessTokenExpiration:  time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "bizhub-test",
	})
	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	claims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
	assert.Equal(t, 0, claims.RefreshCount)
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	t.Run("reissues with the current role", func(t *testing.T) {
		refresh, err := svc.ValidateRefreshToken(pair.RefreshToken)
		require.NoError(t, err)

		input := newTestInput()
		input.Role = "admin"
		next, err := svc.RefreshTokenPair(refresh, input)
		require.NoError(t, err)

		access, err := svc.ValidateAccessToken(next.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", access.Role)

		again, err := svc.ValidateRefreshToken(next.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, 1, again.RefreshCount)
	})

	t.Run("stops at the refresh limit", func(t *testing.T) {
		token := pair.RefreshToken
		for i := 0; i < 3; i++ {
			refresh, err := svc.ValidateRefreshToken(token)
			require.NoError(t, err)
			next, err := svc.RefreshTokenPair(refresh, newTestInput())
			require.NoError(t, err)
			token = next.RefreshToken
		}

		refresh, err := svc.ValidateRefreshToken(token)
		require.NoError(t, err)
		_, err = svc.RefreshTokenPair(refresh, newTestInput())
		assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
	})

	t.Run("rejects a different user", func(t *testing.T) {
		refresh, err := svc.ValidateRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		input := newTestInput()
		input.UserID = 7
		_, err = svc.RefreshTokenPair(refresh, input)
		assert.ErrorIs(t, err, ErrInvalidClaims)
	})
}

func TestClaims_GetRemainingTTL(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	ttl := claims.GetRemainingTTL()
	assert.True(t, ttl > 14*time.Minute && ttl <= 15*time.Minute)
	assert.Equal(t, time.Duration(0), (&Claims{}).GetRemainingTTL())
}
