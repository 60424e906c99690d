package handlers

import (
	"net/http"

	"github.com/AdAtelier/atelier-go/internal/application/services"
	"github.com/AdAtelier/atelier-go/internal/domain/events"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// EventHandlers contains the interaction event ingestion handlers.
type EventHandlers struct {
	trackingService *services.TrackingService
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// NewEventHandlers creates event handlers with injected dependencies
func NewEventHandlers(trackingService *services.TrackingService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *EventHandlers {
	return &EventHandlers{
		trackingService: trackingService,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// EventBatchRequest is the body for POST /api/v1/events.
type EventBatchRequest struct {
	Events []events.Event `json:"events" binding:"required"`
}

// PostEvents handles POST /api/v1/events. It applies a batch of interaction
// events to the caller's session and returns the refreshed classification.
func (h *EventHandlers) PostEvents(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req EventBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Events) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "events batch is empty"})
		return
	}

	profile, err := h.trackingService.ProcessEvents(c.Request.Context(), sessionID, req.Events)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":       profile.Type,
		"confidence": profile.Confidence,
		"intent":     profile.Intent,
	})
}
