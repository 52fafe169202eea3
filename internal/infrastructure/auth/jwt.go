// Package auth issues HS256 bearer tokens and hashes passwords with bcrypt.
package auth

import (
	"errors"
	"fmt"
	"time"

	"travel_backoffice/internal/config"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

// claims follows the { "sub": <userId>, "email": "...", "iat", "exp" } layout.
type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

var _ interfaces.ITokenService = (*JWTService)(nil)

func NewJWTService(cfg config.AuthConfig) *JWTService {
	return &JWTService{secret: []byte(cfg.JWTSecret), expiresIn: cfg.JWTExpiresIn, now: time.Now}
}

func (s *JWTService) Issue(userID string, email string) (string, error) {
	now := s.now()
	c := claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.expiresIn > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(s.expiresIn))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Parse(token string) (interfaces.TokenClaims, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return interfaces.TokenClaims{}, errors.Join(interfaces.ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return interfaces.TokenClaims{}, interfaces.ErrInvalidToken
	}
	return interfaces.TokenClaims{Subject: c.Subject, Email: c.Email}, nil
}
