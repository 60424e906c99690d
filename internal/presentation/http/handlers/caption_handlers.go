package handlers

import (
	"errors"
	"net/http"

	"github.com/AdAtelier/atelier-go/internal/application/services"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// CaptionHandlers contains the caption generation handlers.
type CaptionHandlers struct {
	captionService *services.CaptionService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewCaptionHandlers creates caption handlers with injected dependencies
func NewCaptionHandlers(captionService *services.CaptionService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *CaptionHandlers {
	return &CaptionHandlers{
		captionService: captionService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// PostCaptions handles POST /api/v1/captions. Gateway throttling and credit
// exhaustion map to 429 and 402 so the frontend can show the right message.
func (h *CaptionHandlers) PostCaptions(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req services.CaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageBase64 is required"})
		return
	}

	result, err := h.captionService.GenerateCaptions(c.Request.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, please try again shortly"})
		case errors.Is(err, services.ErrCreditsExhausted):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "generation credits exhausted"})
		default:
			h.logger.LogError(logging.ChannelCaptions, "generate_captions", err, sessionID, nil)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "caption generation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
