package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bracurobu/traction-intake/internal/dtos"
	"github.com/bracurobu/traction-intake/internal/middleware"
	"github.com/bracurobu/traction-intake/internal/services"
	"github.com/bracurobu/traction-intake/internal/session"
	"github.com/bracurobu/traction-intake/internal/upstream"
)

// DashboardHandler serves the applicant table: one upstream fetch per page
// request, view parameters applied over that page only.
type DashboardHandler struct {
	svc      *services.ListingService
	sessions *session.Store
	logger   *zap.Logger
}

func NewDashboardHandler(svc *services.ListingService, sessions *session.Store, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, sessions: sessions, logger: logger}
}

// List is the GET /api/applicants endpoint.
func (h *DashboardHandler) List(c *gin.Context) {
	var q dtos.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.svc.FetchPage(c.Request.Context(), middleware.SessionToken(c), &q)
	if err != nil {
		writeFetchError(c, err, h.sessions, h.logger)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeFetchError maps an upstream rejection to a forced re-login; anything
// else is a generic fetch failure, nothing stale is rendered.
func writeFetchError(c *gin.Context, err error, sessions *session.Store, logger *zap.Logger) {
	if errors.Is(err, upstream.ErrUnauthorized) {
		sessions.Clear(c)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "session expired",
			"redirect": middleware.LoginRoute,
		})
		return
	}
	logger.Warn("applicant page fetch failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load applicants"})
}
