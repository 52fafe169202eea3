package interfaces

import "errors"

var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the identity carried by a bearer token.
type TokenClaims struct {
	Subject string
	Email   string
}

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// ITokenService issues and verifies bearer tokens. Parse returns ErrInvalidToken
// for any malformed, expired or wrongly signed token.
type ITokenService interface {
	Issue(userID string, email string) (string, error)
	Parse(token string) (TokenClaims, error)
}
