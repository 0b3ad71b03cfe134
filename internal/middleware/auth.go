package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const claimsKey = "claims"

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Authenticate requires a valid bearer token and stores its claims on the context.
func Authenticate(tokens TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abort(c, http.StatusUnauthorized, domain.ErrUnauthorized)
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			c.Set("error", err.Error())
			abort(c, http.StatusUnauthorized, domain.ErrUnauthorized)
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if claims := ClaimsFrom(c); claims == nil || !claims.IsAdmin() {
			abort(c, http.StatusForbidden, domain.ErrForbidden)
			return
		}
		c.Next()
	}
}

func SetClaims(c *ginext.Context, claims *auth.Claims) {
	c.Set(claimsKey, claims)
}

// ClaimsFrom returns nil for unauthenticated requests.
func ClaimsFrom(c *ginext.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

func abort(c *ginext.Context, status int, err error) {
	c.AbortWithStatusJSON(status, ginext.H{"error": err.Error()})
}
