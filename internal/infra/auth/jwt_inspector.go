// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"quickdash/internal/domain/service"
)

// jwtInspector is a concrete implementation of the TokenInspector interface using the JWT standard.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// ExpiresAt reads the exp claim. The signature is not checked; the backend owns the key.
func (s *jwtInspector) ExpiresAt(tokenString string) (time.Time, bool, error) {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false, errors.Wrap(err, "failed to parse token")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "invalid exp claim")
	}
	if exp == nil {
		return time.Time{}, false, nil
	}

	return exp.Time, true, nil
}
