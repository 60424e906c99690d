package handlers

import (
	"net/http"

	"github.com/AdAtelier/atelier-go/internal/application/services"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// ContactHandlers contains the contact form handlers.
type ContactHandlers struct {
	contactService *services.ContactService
	logger         *logging.ChanneledLogger
}

// NewContactHandlers creates contact handlers with injected dependencies
func NewContactHandlers(contactService *services.ContactService, logger *logging.ChanneledLogger) *ContactHandlers {
	return &ContactHandlers{
		contactService: contactService,
		logger:         logger,
	}
}

// PostContact handles POST /api/v1/contact.
func (h *ContactHandlers) PostContact(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.contactService.ProcessContactRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true})
}
