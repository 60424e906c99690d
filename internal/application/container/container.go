// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/AdAtelier/atelier-go/internal/application/services"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/manager"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/clock"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/email"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/media"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/messaging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/persistence/billing"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/persistence/database"
	engagementrepo "github.com/AdAtelier/atelier-go/internal/infrastructure/persistence/engagement"
	visitorrepo "github.com/AdAtelier/atelier-go/internal/infrastructure/persistence/visitor"
	"github.com/AdAtelier/atelier-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services (stateless singletons)
	SessionService         *services.SessionService
	TrackingService        *services.TrackingService
	PersonalizationService *services.PersonalizationService
	CaptionService         *services.CaptionService
	PaymentService         *services.PaymentService
	AchievementService     *services.AchievementService
	ContactService         *services.ContactService

	// Infrastructure dependencies
	CacheManager *manager.Manager
	Broadcaster  *messaging.PresenceBroadcaster
	Clock        clock.Clock
	DB           *database.DB
	Logger       *logging.ChanneledLogger
	PerfTracker  *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer(db *database.DB, emailSvc email.Service, logger *logging.ChanneledLogger, perfTracker *performance.Tracker, clk clock.Clock) *Container {
	cacheManager := manager.NewManager(logger)

	profileRepo := visitorrepo.NewSQLProfileRepository(db, logger)
	paymentRepo := billing.NewSQLPaymentRepository(db, logger)
	engagementRepo := engagementrepo.NewSQLRecordRepository(db, logger)

	broadcaster := messaging.NewPresenceBroadcaster(
		cacheManager, clk, config.SessionStalenessWindow, config.PresenceBroadcastInterval, logger)

	sessionService := services.NewSessionService(cacheManager, profileRepo, clk, logger, perfTracker)
	trackingService := services.NewTrackingService(cacheManager, profileRepo, clk, logger, perfTracker)
	personalizationService := services.NewPersonalizationService(cacheManager, clk, logger, perfTracker)
	achievementService := services.NewAchievementService(engagementRepo, clk, logger)
	captionService := services.NewCaptionService(
		media.NewImageProcessor(config.MaxUploadDimension),
		trackingService, achievementService, broadcaster, logger, perfTracker)
	paymentService := services.NewPaymentService(paymentRepo, emailSvc, logger, perfTracker)
	contactService := services.NewContactService(emailSvc, logger)

	return &Container{
		SessionService:         sessionService,
		TrackingService:        trackingService,
		PersonalizationService: personalizationService,
		CaptionService:         captionService,
		PaymentService:         paymentService,
		AchievementService:     achievementService,
		ContactService:         contactService,

		CacheManager: cacheManager,
		Broadcaster:  broadcaster,
		Clock:        clk,
		DB:           db,
		Logger:       logger,
		PerfTracker:  perfTracker,
	}
}
