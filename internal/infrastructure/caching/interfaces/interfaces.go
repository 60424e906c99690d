// Package interfaces defines the cache contracts consumed by services
// so tests can substitute lightweight implementations.
package interfaces

import (
	"time"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/types"
)

// SessionCache is the session state cache contract.
type SessionCache interface {
	GetSession(sessionID string) (*types.SessionState, bool)
	SetSession(state *types.SessionState)
	RemoveSession(sessionID string)
	SessionCount() int
	ActiveSessionIDs(now time.Time, window time.Duration) []string
	PurgeStale(now time.Time, window time.Duration) int
}
