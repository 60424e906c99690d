package handlers

import (
	"net/http"

	"github.com/AdAtelier/atelier-go/internal/application/services"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileHandlers serves the personalization snapshot.
type ProfileHandlers struct {
	personalizationService *services.PersonalizationService
	logger                 *logging.ChanneledLogger
	perfTracker            *performance.Tracker
}

// NewProfileHandlers creates profile handlers with injected dependencies
func NewProfileHandlers(personalizationService *services.PersonalizationService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ProfileHandlers {
	return &ProfileHandlers{
		personalizationService: personalizationService,
		logger:                 logger,
		perfTracker:            perfTracker,
	}
}

// GetProfile handles GET /api/v1/profile. It returns the classified profile
// and the content bundle selected for it.
func (h *ProfileHandlers) GetProfile(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	snapshot, err := h.personalizationService.GetProfileSnapshot(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
