package services

import (
	"fmt"

	"github.com/AdAtelier/atelier-go/internal/domain/entities/visitor"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/interfaces"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/clock"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
)

// PersonalizationService derives the content bundle and profile snapshot
// sent to the frontend for a classified session.
type PersonalizationService struct {
	cache       interfaces.SessionCache
	clock       clock.Clock
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewPersonalizationService creates a new personalization service.
func NewPersonalizationService(cache interfaces.SessionCache, clk clock.Clock, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PersonalizationService {
	return &PersonalizationService{
		cache:       cache,
		clock:       clk,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// ProfileSnapshot is the personalization payload for one session.
type ProfileSnapshot struct {
	VisitorType        visitor.VisitorType     `json:"visitorType"`
	Intent             visitor.Intent          `json:"intent"`
	Confidence         float64                 `json:"confidence"`
	Device             visitor.Device          `json:"device"`
	IsReturningVisitor bool                    `json:"isReturningVisitor"`
	SessionDuration    int                     `json:"sessionDuration"`
	EngagementScore    int                     `json:"engagementScore"`
	EngagementLevel    visitor.EngagementLevel `json:"engagementLevel"`
	Content            visitor.ContentBundle   `json:"content"`
}

// GetProfileSnapshot builds the personalization view of a session.
func (s *PersonalizationService) GetProfileSnapshot(sessionID string) (*ProfileSnapshot, error) {
	marker := s.perfTracker.StartOperation("profile_snapshot", sessionID)
	defer marker.Complete()

	state, ok := s.cache.GetSession(sessionID)
	if !ok {
		marker.SetSuccess(false)
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}

	profile := state.Profile
	behavior := profile.Behavior
	behavior.RecordTimeOnPage(s.clock.Now())

	snapshot := &ProfileSnapshot{
		VisitorType:        profile.Type,
		Intent:             profile.Intent,
		Confidence:         profile.Confidence,
		Device:             behavior.Device,
		IsReturningVisitor: behavior.IsReturningVisitor(),
		SessionDuration:    behavior.TimeOnPage,
		EngagementScore:    behavior.EngagementScore,
		EngagementLevel:    behavior.Level(),
		Content:            visitor.SelectContent(profile.Type),
	}

	s.logger.Personalization().Debug("Profile snapshot served",
		"sessionId", sessionID,
		"visitorType", snapshot.VisitorType,
		"engagementLevel", snapshot.EngagementLevel,
		"returning", snapshot.IsReturningVisitor)

	marker.SetSuccess(true)
	return snapshot, nil
}
