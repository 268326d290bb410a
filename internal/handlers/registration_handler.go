package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bracurobu/traction-intake/internal/dtos"
	"github.com/bracurobu/traction-intake/internal/services"
)

// Copy shown on the public form; kept identical to the deployed site.
const (
	submittedMessage = "Successfully Registered. We have received your application. You'll be notified soon."
	retryMessage     = "Failed to submit the form. Please try again later."
	closedMessage    = "Recruitment is over. Check your email for further updates."
)

// RegistrationHandler owns the public form endpoints.
type RegistrationHandler struct {
	svc    *services.RegistrationService
	open   bool
	logger *zap.Logger
}

func NewRegistrationHandler(svc *services.RegistrationService, open bool, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, open: open, logger: logger}
}

// Register is the POST /api/register endpoint.
func (h *RegistrationHandler) Register(c *gin.Context) {
	if !h.open {
		c.JSON(http.StatusForbidden, gin.H{"error": closedMessage})
		return
	}

	var req dtos.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	fieldErrs, err := h.svc.Submit(c.Request.Context(), &req)
	if len(fieldErrs) > 0 {
		// Per-field messages only; nothing was sent upstream.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	if err != nil {
		// Generic retry notice, the form stays editable. No classification.
		c.JSON(http.StatusBadGateway, gin.H{"error": retryMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": submittedMessage,
	})
}

// Status is the GET /api/status endpoint; the form checks it to decide
// between the registration and closed views.
func (h *RegistrationHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"open": h.open})
}
