package auth

import (
	"fmt"
	"time"

	"dispatch-portal-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	WorkerID             string `json:"worker_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email                string `json:"email" example:"jane.doe@example.com"`
	Name                 string `json:"name" example:"Jane Doe"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService issues and validates the bearer tokens the API accepts.
// Tokens are HMAC-signed with the shared secret from configuration, so
// any trusted issuer holding the same secret can mint them.
type AuthService struct {
	secret []byte
	issuer string
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
	}
}

// GenerateJWT creates a signed token for a worker. Tokens cover a full
// dispatch shift.
func (s *AuthService) GenerateJWT(workerID, email, name string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		WorkerID: workerID,
		Email:    email,
		Name:     name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   workerID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT parses and verifies a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
