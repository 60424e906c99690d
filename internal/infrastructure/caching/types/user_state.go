// Package types defines cached session state structures.
package types

import (
	"time"

	"github.com/AdAtelier/atelier-go/internal/domain/entities/visitor"
)

// SessionState is the in-memory home of one session's visitor profile.
// The profile inside is the single source of truth between persistence
// writes; handlers never hold onto it across requests.
type SessionState struct {
	SessionID string           `json:"sessionId"`
	Profile   *visitor.Profile `json:"profile"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NewSessionState wraps a profile for caching.
func NewSessionState(sessionID string, profile *visitor.Profile, now time.Time) *SessionState {
	return &SessionState{
		SessionID: sessionID,
		Profile:   profile,
		CreatedAt: now,
	}
}

// IsStale reports whether the session has been inactive longer than window.
func (s *SessionState) IsStale(now time.Time, window time.Duration) bool {
	return s.Profile == nil || s.Profile.Behavior.IsStale(now, window)
}
