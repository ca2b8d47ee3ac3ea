// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tasklist/config"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/service"
	"tasklist/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Process-wide signing secret, read-only after startup.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    cfg.JWT.Secret,
		accessTTL: cfg.JWT.AccessTTL,
	}, nil
}

// Issue creates a signed HS256 token whose subject encodes the user as "<id>:<username>".
func (s *jwtService) Issue(userID int64, username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d:%s", userID, username),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Verify checks the signature and expiry of a token and returns its subject.
// Expired tokens map to ErrTokenExpired; anything else that fails validation
// (malformed payload, wrong algorithm, bad signature) maps to ErrTokenInvalid.
func (s *jwtService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domainerrors.ErrTokenExpired.WrapMessage("access token past its expiry")
		}

		return "", domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	if claims.Subject == "" {
		return "", domainerrors.ErrTokenInvalid.WrapMessage("token has no subject")
	}

	return claims.Subject, nil
}
