package auth

import (
	"testing"
	"time"

	"album/config"
	"album/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	agentID := uuid.New()

	accessToken, err := jwtService.GenerateAccessToken(agentID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, agentID, claims.AgentID)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.Equal(t, agentID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("another_secret_key_of_similar_length"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredAndWrongType(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	sign := func(claims *service.Claims) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		return signed
	}

	expired := sign(&service.Claims{
		AgentID: uuid.New(),
		Type:    service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	_, err = jwtService.ValidateToken(expired)
	assert.Error(t, err)

	refresh := sign(&service.Claims{
		AgentID: uuid.New(),
		Type:    "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	_, err = jwtService.ValidateToken(refresh)
	assert.ErrorContains(t, err, "unexpected token type")
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_OpaqueTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	first, err := jwtService.GenerateOpaqueToken()
	require.NoError(t, err)
	second, err := jwtService.GenerateOpaqueToken()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)

	assert.Equal(t, jwtService.HashToken(first), jwtService.HashToken(first))
	assert.NotEqual(t, first, jwtService.HashToken(first))
	assert.Len(t, jwtService.HashToken(first), 64)
}
