package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bracurobu/traction-intake/internal/session"
)

const tokenKey = "token"

// LoginRoute is where unauthenticated dashboard traffic is sent.
const LoginRoute = "/login"

// RequireSession guards dashboard routes. Without a stored token the request
// is answered 401 with the login redirect target; handlers read the token via
// SessionToken.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := store.Token(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "authentication required",
				"redirect": LoginRoute,
			})
			return
		}

		c.Set(tokenKey, token)
		c.Next()
	}
}

// SessionToken returns the bearer token injected by RequireSession.
func SessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
