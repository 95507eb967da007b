package auth

import (
	"testing"
	"time"

	"fitflow/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"
const testIssuer = "https://auth.example.com"

func newTestService(t *testing.T) *jwtService {
	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			TokenSecret: testSecret,
			Issuer:      testIssuer,
		},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"iss":   testIssuer,
		"email": "user@example.com",
		"name":  "Test User",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iss": testIssuer,
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)
	require.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"iss": testIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)
	require.Error(t, err)
}

func TestJWTService_ValidateToken_WrongIssuer(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iss": "https://evil.example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)
	require.Error(t, err)
}

func TestJWTService_ValidateToken_BadSubject(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "not-a-uuid",
		"iss": testIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)
	require.Error(t, err)
}

func TestJWTService_ValidateToken_MissingExpiry(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iss": testIssuer,
	})

	_, err := svc.ValidateToken(tokenString)
	require.Error(t, err)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	require.Error(t, err)
}
