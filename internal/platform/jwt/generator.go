package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultScope is granted to tokens minted without an explicit scope.
const DefaultScope = "projections"

// Generator mints signed tokens for API clients.
type Generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a Generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) *Generator {
	return &Generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates an HS256 token whose subject is clientID.
func (g *Generator) GenerateToken(clientID, scope string) (string, error) {
	if scope == "" {
		scope = DefaultScope
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   clientID,
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
		"scope": scope,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
