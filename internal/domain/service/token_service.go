package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess marks bearer tokens issued to API clients.
const TokenTypeAccess = "access"

// Claims defines the custom claims for bearer tokens.
type Claims struct {
	AgentID uuid.UUID `json:"agent_id"`
	Type    string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues signed bearer tokens and the opaque tokens behind sessions and resets.
type TokenService interface {
	// GenerateAccessToken signs a token identifying agentID.
	GenerateAccessToken(agentID uuid.UUID) (string, error)

	// ValidateToken checks signature, expiry and token type.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateOpaqueToken returns a random URL-safe token.
	GenerateOpaqueToken() (string, error)

	// HashToken returns the SHA-256 hex digest stored in place of an opaque token.
	HashToken(token string) string
}
