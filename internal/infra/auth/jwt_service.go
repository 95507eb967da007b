// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fitflow/config"
	"fitflow/internal/domain/service"
	"fitflow/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService verifies access tokens issued by the identity provider. The
// application never issues tokens itself; it only checks the provider's
// HS256 signature and reads the identity claims.
type jwtService struct {
	secret string
	issuer string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.TokenSecret == "" {
		return nil, errors.New("auth token secret must be provided")
	}

	return &jwtService{
		secret: cfg.Auth.TokenSecret,
		issuer: cfg.Auth.Issuer,
	}, nil
}

// ValidateToken checks the token signature and expiry and returns the
// embedded identity claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.IdentityClaims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("token has no subject")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "subject is not a valid user id")
	}

	identity := &service.IdentityClaims{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}

	return identity, nil
}
