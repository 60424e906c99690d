// Package stores provides concrete cache store implementations
package stores

import (
	"sync"
	"time"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/types"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
)

// SessionsStore implements session state caching operations
type SessionsStore struct {
	sessions map[string]*types.SessionState
	mu       sync.RWMutex
	logger   *logging.ChanneledLogger
}

// NewSessionsStore creates a new sessions cache store
func NewSessionsStore(logger *logging.ChanneledLogger) *SessionsStore {
	if logger != nil {
		logger.Cache().Info("Initializing sessions cache store")
	}
	return &SessionsStore{
		sessions: make(map[string]*types.SessionState),
		logger:   logger,
	}
}

// GetSession retrieves session state by session ID
func (ss *SessionsStore) GetSession(sessionID string) (*types.SessionState, bool) {
	start := time.Now()
	ss.mu.RLock()
	state, exists := ss.sessions[sessionID]
	ss.mu.RUnlock()

	if ss.logger != nil {
		ss.logger.LogCacheOperation("get_session", sessionID, exists, time.Since(start))
	}
	return state, exists
}

// SetSession stores session state keyed by session ID
func (ss *SessionsStore) SetSession(state *types.SessionState) {
	start := time.Now()
	ss.mu.Lock()
	ss.sessions[state.SessionID] = state
	ss.mu.Unlock()

	if ss.logger != nil {
		ss.logger.LogCacheOperation("set_session", state.SessionID, true, time.Since(start))
	}
}

// RemoveSession evicts a session from the cache
func (ss *SessionsStore) RemoveSession(sessionID string) {
	ss.mu.Lock()
	delete(ss.sessions, sessionID)
	ss.mu.Unlock()

	if ss.logger != nil {
		ss.logger.Cache().Debug("Session evicted", "sessionId", sessionID)
	}
}

// SessionCount returns how many sessions are cached
func (ss *SessionsStore) SessionCount() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}

// ActiveSessionIDs returns the IDs of sessions active within window
func (ss *SessionsStore) ActiveSessionIDs(now time.Time, window time.Duration) []string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	ids := make([]string, 0, len(ss.sessions))
	for id, state := range ss.sessions {
		if !state.IsStale(now, window) {
			ids = append(ids, id)
		}
	}
	return ids
}

// PurgeStale evicts every session inactive longer than window and returns
// how many were removed
func (ss *SessionsStore) PurgeStale(now time.Time, window time.Duration) int {
	start := time.Now()
	ss.mu.Lock()
	defer ss.mu.Unlock()

	var purged int
	for id, state := range ss.sessions {
		if state.IsStale(now, window) {
			delete(ss.sessions, id)
			purged++
		}
	}

	if ss.logger != nil && purged > 0 {
		ss.logger.Cache().Info("Stale sessions purged", "count", purged, "duration", time.Since(start))
	}
	return purged
}
