package service

import (
	"github.com/google/uuid"
)

// IdentityClaims are the verified claims extracted from an identity-provider
// access token. The core never authenticates users itself; it only verifies
// tokens the provider issued.
type IdentityClaims struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// TokenService defines the interface for verifying identity-provider tokens.
type TokenService interface {
	// ValidateToken checks the token signature and expiry and returns the
	// embedded identity claims.
	ValidateToken(tokenString string) (*IdentityClaims, error)
}
