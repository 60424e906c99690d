// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"net/http"

	"github.com/AdAtelier/atelier-go/internal/application/container"
	"github.com/AdAtelier/atelier-go/internal/presentation/http/handlers"
	"github.com/AdAtelier/atelier-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	visitHandlers := handlers.NewVisitHandlers(container.SessionService, container.Logger, container.PerfTracker)
	eventHandlers := handlers.NewEventHandlers(container.TrackingService, container.Logger, container.PerfTracker)
	profileHandlers := handlers.NewProfileHandlers(container.PersonalizationService, container.Logger, container.PerfTracker)
	captionHandlers := handlers.NewCaptionHandlers(container.CaptionService, container.Logger, container.PerfTracker)
	paymentHandlers := handlers.NewPaymentHandlers(container.PaymentService, container.Logger, container.PerfTracker)
	contactHandlers := handlers.NewContactHandlers(container.ContactService, container.Logger)
	achievementHandlers := handlers.NewAchievementHandlers(container.AchievementService, container.Logger)
	presenceHandlers := handlers.NewPresenceHandlers(container.Broadcaster, container.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		// Session bootstrap does not require an existing session.
		api.POST("/auth/visit", visitHandlers.PostVisit)
		api.POST("/contact", contactHandlers.PostContact)
		api.GET("/presence/ws", presenceHandlers.GetPresence)

		// Session-scoped endpoints.
		session := api.Group("")
		session.Use(middleware.SessionMiddleware())
		{
			session.POST("/events", eventHandlers.PostEvents)
			session.GET("/profile", profileHandlers.GetProfile)
			session.POST("/captions", captionHandlers.PostCaptions)
			session.POST("/payments/verify", paymentHandlers.PostVerify)
			session.POST("/payments/redeem", paymentHandlers.PostRedeem)
			session.GET("/achievements", achievementHandlers.GetAchievements)
		}
	}

	return r
}
