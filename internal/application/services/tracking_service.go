package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AdAtelier/atelier-go/internal/domain/entities/visitor"
	"github.com/AdAtelier/atelier-go/internal/domain/events"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/interfaces"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/clock"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/pkg/config"
)

// TrackingService applies raw interaction events to session behavior and
// keeps the derived classification current.
type TrackingService struct {
	cache       interfaces.SessionCache
	profileRepo ProfileRepository
	clock       clock.Clock
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(cache interfaces.SessionCache, profileRepo ProfileRepository, clk clock.Clock, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *TrackingService {
	return &TrackingService{
		cache:       cache,
		profileRepo: profileRepo,
		clock:       clk,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// ProcessEvents applies a batch of interaction events to the session and
// reclassifies once at the end. Unknown sessions are an error; unknown
// event types are skipped. Snapshot write failures never fail the batch.
func (s *TrackingService) ProcessEvents(ctx context.Context, sessionID string, batch []events.Event) (*visitor.Profile, error) {
	marker := s.perfTracker.StartOperation("process_events", sessionID)
	defer marker.Complete()

	state, ok := s.cache.GetSession(sessionID)
	if !ok {
		marker.SetSuccess(false)
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}

	now := s.clock.Now()
	behavior := state.Profile.Behavior
	previousType := state.Profile.Type

	for _, event := range batch {
		s.applyEvent(behavior, event, now)
	}
	behavior.RecordTimeOnPage(now)
	state.Profile.Reclassify()

	if state.Profile.Type != previousType {
		s.logger.Behavior().Info("Visitor reclassified",
			"sessionId", sessionID,
			"from", previousType,
			"to", state.Profile.Type,
			"confidence", state.Profile.Confidence,
			"engagementScore", behavior.EngagementScore)
	}

	s.persistSnapshot(ctx, sessionID, state.Profile)

	marker.AddMetadata("events", len(batch))
	marker.SetSuccess(true)
	return state.Profile, nil
}

func (s *TrackingService) applyEvent(behavior *visitor.BehaviorRecord, event events.Event, now time.Time) {
	switch event.Type {
	case events.TypeClick:
		behavior.RecordClick(visitor.ClickCategory(event.Category), now)
	case events.TypePageVisit:
		behavior.RecordPageVisit(event.Path, now)
	case events.TypeScroll:
		behavior.RecordScroll(event.ScrollPercent, now)
	case events.TypeVisibility:
		if event.Visible {
			behavior.Touch(now)
		}
	default:
		s.logger.Behavior().Debug("Skipping unknown event type", "type", event.Type)
	}
}

// RecordConversion registers a CTA interaction originating server-side,
// such as a completed caption generation.
func (s *TrackingService) RecordConversion(ctx context.Context, sessionID string) {
	state, ok := s.cache.GetSession(sessionID)
	if !ok {
		return
	}
	now := s.clock.Now()
	state.Profile.Behavior.RecordClick(visitor.ClickCTA, now)
	state.Profile.Behavior.RecordTimeOnPage(now)
	state.Profile.Reclassify()
	s.persistSnapshot(ctx, sessionID, state.Profile)
}

// StartTimeTicker runs the periodic time accrual loop: every tick, each
// active session's time-on-page is recomputed and its classification
// refreshed. This mirrors the clients' elapsed-time heartbeat without
// trusting them to report it.
func (s *TrackingService) StartTimeTicker(ctx context.Context) {
	ticker := time.NewTicker(config.TimeTickerInterval)
	defer ticker.Stop()

	s.logger.Behavior().Info("Time ticker started", "interval", config.TimeTickerInterval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Behavior().Info("Time ticker stopping")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *TrackingService) tick(ctx context.Context) {
	now := s.clock.Now()
	for _, sessionID := range s.cache.ActiveSessionIDs(now, config.SessionStalenessWindow) {
		state, ok := s.cache.GetSession(sessionID)
		if !ok {
			continue
		}
		previousType := state.Profile.Type
		state.Profile.Behavior.RecordTimeOnPage(now)
		state.Profile.Reclassify()
		if state.Profile.Type != previousType {
			s.logger.Behavior().Info("Visitor reclassified on tick",
				"sessionId", sessionID, "from", previousType, "to", state.Profile.Type)
			s.persistSnapshot(ctx, sessionID, state.Profile)
		}
	}
}

func (s *TrackingService) persistSnapshot(ctx context.Context, sessionID string, profile *visitor.Profile) {
	if err := s.profileRepo.Save(ctx, sessionID, profile); err != nil {
		s.logger.LogError(logging.ChannelBehavior, "persist_snapshot", err, sessionID, nil)
	}
}
