// Package services provides application-level orchestration services
package services

import (
	"context"
	"time"

	"github.com/AdAtelier/atelier-go/internal/domain/entities/visitor"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/interfaces"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/types"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/clock"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/security"
	"github.com/AdAtelier/atelier-go/pkg/config"
)

// ProfileRepository is the persistence contract for visitor profile snapshots.
type ProfileRepository interface {
	Save(ctx context.Context, sessionID string, profile *visitor.Profile) error
	FindBySessionID(ctx context.Context, sessionID string) (*visitor.Profile, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionService handles session creation, restoration and staleness expiry.
type SessionService struct {
	cache       interfaces.SessionCache
	profileRepo ProfileRepository
	clock       clock.Clock
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewSessionService creates a new session service.
func NewSessionService(cache interfaces.SessionCache, profileRepo ProfileRepository, clk clock.Clock, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *SessionService {
	return &SessionService{
		cache:       cache,
		profileRepo: profileRepo,
		clock:       clk,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// VisitRequest represents the structure for visit creation requests.
type VisitRequest struct {
	SessionID     *string `json:"sessionId,omitempty"`
	Path          string  `json:"path"`
	ViewportWidth int     `json:"viewportWidth"`
}

// SessionResult holds the result of session operations.
type SessionResult struct {
	SessionID string           `json:"sessionId"`
	Profile   *visitor.Profile `json:"profile"`
	Restored  bool             `json:"restored"`
	Success   bool             `json:"success"`
	Error     string           `json:"error,omitempty"`
}

// ProcessVisitRequest resolves the session for an incoming visit. A known,
// fresh session is restored as-is; a stale or unknown one starts over with
// a fresh profile. Snapshot write failures never fail the visit.
func (s *SessionService) ProcessVisitRequest(ctx context.Context, req *VisitRequest) *SessionResult {
	marker := s.perfTracker.StartOperation("process_visit", stringOrEmpty(req.SessionID))
	defer marker.Complete()

	if req.Path == "" {
		req.Path = "/"
	}
	now := s.clock.Now()

	if req.SessionID != nil && *req.SessionID != "" {
		if result := s.restoreSession(ctx, *req.SessionID, now); result != nil {
			marker.SetSuccess(true)
			return result
		}
	}

	sessionID := security.GenerateULID()
	profile := visitor.NewProfile(req.Path, req.ViewportWidth, now)
	s.cache.SetSession(types.NewSessionState(sessionID, profile, now))
	s.persistSnapshot(ctx, sessionID, profile)

	s.logger.Session().Info("New session created",
		"sessionId", sessionID, "device", profile.Behavior.Device, "path", req.Path)

	marker.SetSuccess(true)
	return &SessionResult{
		SessionID: sessionID,
		Profile:   profile,
		Restored:  false,
		Success:   true,
	}
}

// restoreSession attempts to resume a prior session from cache or from the
// persisted snapshot. It returns nil when the session is unknown or stale.
func (s *SessionService) restoreSession(ctx context.Context, sessionID string, now time.Time) *SessionResult {
	if state, ok := s.cache.GetSession(sessionID); ok {
		if state.IsStale(now, config.SessionStalenessWindow) {
			s.expireSession(ctx, sessionID)
			return nil
		}
		state.Profile.Behavior.Touch(now)
		s.logger.Session().Debug("Session restored from cache", "sessionId", sessionID)
		return &SessionResult{
			SessionID: sessionID,
			Profile:   state.Profile,
			Restored:  true,
			Success:   true,
		}
	}

	profile, err := s.profileRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		s.logger.LogError(logging.ChannelSession, "restore_session", err, sessionID, nil)
		return nil
	}
	if profile == nil || profile.Behavior == nil {
		return nil
	}
	if profile.Behavior.IsStale(now, config.SessionStalenessWindow) {
		s.expireSession(ctx, sessionID)
		return nil
	}

	profile.Behavior.Touch(now)
	s.cache.SetSession(types.NewSessionState(sessionID, profile, now))
	s.logger.Session().Info("Session restored from snapshot",
		"sessionId", sessionID, "visitorType", profile.Type)
	return &SessionResult{
		SessionID: sessionID,
		Profile:   profile,
		Restored:  true,
		Success:   true,
	}
}

// expireSession drops a stale session from cache and storage.
func (s *SessionService) expireSession(ctx context.Context, sessionID string) {
	s.cache.RemoveSession(sessionID)
	if err := s.profileRepo.Delete(ctx, sessionID); err != nil {
		s.logger.LogError(logging.ChannelSession, "expire_session", err, sessionID, nil)
	}
	s.logger.Session().Info("Stale session expired", "sessionId", sessionID)
}

// persistSnapshot writes the profile snapshot, tolerating failure.
func (s *SessionService) persistSnapshot(ctx context.Context, sessionID string, profile *visitor.Profile) {
	if err := s.profileRepo.Save(ctx, sessionID, profile); err != nil {
		s.logger.LogError(logging.ChannelSession, "persist_snapshot", err, sessionID, nil)
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
