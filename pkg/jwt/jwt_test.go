package jwt

import (
	"testing"
	"time"

	"pasi-clinic-backend/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "staff@pasidental.co.ke")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "staff@pasidental.co.ke", claims.Email)
	require.Equal(t, AccessToken, claims.TokenType)
	require.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "staff@pasidental.co.ke")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "staff@pasidental.co.ke")
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "staff@pasidental.co.ke")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}
