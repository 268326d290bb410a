// Package session keeps the admin bearer token between requests. The token is
// an opaque string in a single named cookie; there is no refresh or rotation.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the fixed storage key for the bearer token.
const CookieName = "token"

// Session age matches a recruitment review sitting; the upstream token's real
// lifetime is unknown to us, a 401 on use is the actual expiry signal.
const maxAge = 12 * 60 * 60

// Store reads and writes the token cookie. "Cleared" (no cookie, or an empty
// one) is distinct from "present": Token reports which via its second return.
type Store struct {
	secure bool
}

func NewStore(secure bool) *Store {
	return &Store{secure: secure}
}

// Token returns the stored bearer token and whether one is present.
func (s *Store) Token(c *gin.Context) (string, bool) {
	v, err := c.Cookie(CookieName)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

// Save persists the token under the fixed cookie name.
func (s *Store) Save(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, maxAge, "/", "", s.secure, true)
}

// Clear drops the token; subsequent Token calls report absent.
func (s *Store) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
}
