package middleware

import (
	"net/http"
	"strings"

	"travel_backoffice/internal/usecase/interfaces"
	"travel_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

const ctxClaimsKey = "auth_claims"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// TokenAuthenticator verifies a raw bearer token.
type TokenAuthenticator interface {
	Authenticate(token string) (interfaces.TokenClaims, error)
}

// AuthRequired rejects the request with 401 unless it carries a valid bearer token.
func AuthRequired(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		claims, err := auth.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuth loads the claims when a valid bearer token is present and lets
// anonymous requests through untouched.
func OptionalAuth(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := auth.Authenticate(token); err == nil {
				c.Set(ctxClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// GetClaims returns the claims stored by AuthRequired or OptionalAuth.
func GetClaims(c *gin.Context) (interfaces.TokenClaims, bool) {
	v, ok := c.Get(ctxClaimsKey)
	if !ok {
		return interfaces.TokenClaims{}, false
	}
	claims, ok := v.(interfaces.TokenClaims)
	return claims, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(h[len("Bearer "):])
	return token, token != ""
}
