// README: Firebase bearer auth. Authenticated callers get their own history and language records.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripguide/internal/infra"
)

const (
	ctxUID   = "auth.uid"
	ctxEmail = "auth.email"
)

// Auth requires a valid "Authorization: Bearer <id token>" header.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return authenticate(verifier, true)
}

// OptionalAuth verifies a bearer token when one is sent and lets anonymous requests
// through. A nil verifier disables authentication entirely.
func OptionalAuth(verifier infra.TokenVerifier) gin.HandlerFunc {
	if verifier == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return authenticate(verifier, false)
}

func authenticate(verifier infra.TokenVerifier, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" && !required {
			c.Next()
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(raw))
		if err != nil || token == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxUID, token.UID)
		c.Set(ctxEmail, token.Email)
		c.Next()
	}
}

// CallerUID returns the verified uid, or "" for anonymous requests.
func CallerUID(c *gin.Context) string {
	return c.GetString(ctxUID)
}

func CallerEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}
