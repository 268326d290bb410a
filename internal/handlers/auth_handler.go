package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bracurobu/traction-intake/internal/dtos"
	"github.com/bracurobu/traction-intake/internal/session"
	"github.com/bracurobu/traction-intake/internal/upstream"
)

// DashboardRoute is where a fresh login lands.
const DashboardRoute = "/hub"

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// AuthHandler owns the credential exchange and the session cookie.
type AuthHandler struct {
	client   Authenticator
	sessions *session.Store
	logger   *zap.Logger
}

func NewAuthHandler(client Authenticator, sessions *session.Store, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{client: client, sessions: sessions, logger: logger}
}

// Login is the POST /api/login endpoint. The token is stored only on a clean
// exchange; a success body without a token is treated as a failure.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	token, err := h.client.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, upstream.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
			return
		}
		h.logger.Warn("credential exchange failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Login failed. Please try again later."})
		return
	}

	h.sessions.Save(c, token)
	c.JSON(http.StatusOK, gin.H{"redirect": DashboardRoute})
}

// Logout is the POST /api/logout endpoint.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
}
