// Package manager provides centralized cache operations by delegating to specialized stores.
package manager

import (
	"sync"
	"time"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/interfaces"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/stores"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/types"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
)

// Interface assertions to ensure Manager implements all required interfaces.
var _ interfaces.SessionCache = (*Manager)(nil)

// Manager provides centralized cache operations by delegating to specialized stores.
type Manager struct {
	Mu            sync.RWMutex
	LastAccessed  time.Time
	sessionsStore *stores.SessionsStore
	logger        *logging.ChanneledLogger
}

func NewManager(logger *logging.ChanneledLogger) *Manager {
	if logger != nil {
		logger.Cache().Info("Initializing cache manager", "stores", []string{"sessions"})
	}

	return &Manager{
		sessionsStore: stores.NewSessionsStore(logger),
		logger:        logger,
	}
}

func (m *Manager) GetSession(sessionID string) (*types.SessionState, bool) {
	m.touch()
	return m.sessionsStore.GetSession(sessionID)
}

func (m *Manager) SetSession(state *types.SessionState) {
	m.touch()
	m.sessionsStore.SetSession(state)
}

func (m *Manager) RemoveSession(sessionID string) {
	m.sessionsStore.RemoveSession(sessionID)
}

func (m *Manager) SessionCount() int {
	return m.sessionsStore.SessionCount()
}

func (m *Manager) ActiveSessionIDs(now time.Time, window time.Duration) []string {
	return m.sessionsStore.ActiveSessionIDs(now, window)
}

func (m *Manager) PurgeStale(now time.Time, window time.Duration) int {
	return m.sessionsStore.PurgeStale(now, window)
}

func (m *Manager) touch() {
	m.Mu.Lock()
	m.LastAccessed = time.Now().UTC()
	m.Mu.Unlock()
}
