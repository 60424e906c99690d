package handlers

import (
	"net/http"

	"github.com/AdAtelier/atelier-go/internal/application/services"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// AchievementHandlers serves the visitor engagement record.
type AchievementHandlers struct {
	achievementService *services.AchievementService
	logger             *logging.ChanneledLogger
}

// NewAchievementHandlers creates achievement handlers with injected dependencies
func NewAchievementHandlers(achievementService *services.AchievementService, logger *logging.ChanneledLogger) *AchievementHandlers {
	return &AchievementHandlers{
		achievementService: achievementService,
		logger:             logger,
	}
}

// GetAchievements handles GET /api/v1/achievements. Loading the record
// also refreshes the daily streak.
func (h *AchievementHandlers) GetAchievements(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	result, err := h.achievementService.GetOrCreate(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.LogError(logging.ChannelBehavior, "get_achievements", err, sessionID, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load achievements"})
		return
	}

	c.JSON(http.StatusOK, result)
}
