// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"

	"github.com/AdAtelier/atelier-go/internal/application/services"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// VisitHandlers contains all visit and session-related HTTP handlers
type VisitHandlers struct {
	sessionService *services.SessionService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewVisitHandlers creates visit handlers with injected dependencies
func NewVisitHandlers(sessionService *services.SessionService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *VisitHandlers {
	return &VisitHandlers{
		sessionService: sessionService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// PostVisit handles POST /api/v1/auth/visit. It creates or restores the
// visitor session. A session ID may arrive in the header or the body; the
// header wins when both are present.
func (h *VisitHandlers) PostVisit(c *gin.Context) {
	var req services.VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if headerID := c.GetHeader(middleware.SessionHeader); headerID != "" {
		req.SessionID = &headerID
	}

	result := h.sessionService.ProcessVisitRequest(c.Request.Context(), &req)
	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error})
		return
	}

	c.Header(middleware.SessionHeader, result.SessionID)
	c.JSON(http.StatusOK, result)
}
