// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements bearer-token authentication for the /api/admin
// surface. Tokens are issued by the login endpoint and verified statelessly
// on every request; there is no server-side session to tear down, so logout
// is a client-side discard.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier checks a bearer token and returns the subject it was issued
// for. services.AuthService satisfies this.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// BearerAuth returns a Gin middleware that requires a valid
// "Authorization: Bearer <token>" header. On success the token subject is
// stored in the context under "userID" (picked up by Logger and the rate
// limiter); otherwise the request is aborted with a 401 envelope.
func BearerAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, "missing bearer token")
			return
		}
		sub, err := v.Verify(token)
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}
		c.Set("userID", sub)
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
// The "Bearer" scheme match is case-insensitive.
func bearerToken(h string) string {
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="admin"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       "unauthorized",
		"message":    msg,
	})
}
