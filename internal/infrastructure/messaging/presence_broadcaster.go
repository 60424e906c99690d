package messaging

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/interfaces"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/clock"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/gorilla/websocket"
)

// PresenceClient represents a single connected live-presence client.
type PresenceClient struct {
	Conn *websocket.Conn
	Send chan []byte
}

// PresencePayload is the data structure sent to the frontend on each tick.
type PresencePayload struct {
	ActiveVisitors    int   `json:"activeVisitors"`
	CaptionsGenerated int64 `json:"captionsGenerated"`
	Timestamp         int64 `json:"timestamp"`
}

// PresenceBroadcaster manages all connected presence clients and
// periodically pushes live counters to them.
type PresenceBroadcaster struct {
	clients        map[*PresenceClient]bool
	register       chan *PresenceClient
	unregister     chan *PresenceClient
	cache          interfaces.SessionCache
	clock          clock.Clock
	activityWindow time.Duration
	tickInterval   time.Duration
	captionCount   atomic.Int64
	logger         *logging.ChanneledLogger
	mu             sync.RWMutex
}

var _ Broadcaster = (*PresenceBroadcaster)(nil)

// NewPresenceBroadcaster creates a new broadcaster instance.
func NewPresenceBroadcaster(cache interfaces.SessionCache, clk clock.Clock, activityWindow, tickInterval time.Duration, logger *logging.ChanneledLogger) *PresenceBroadcaster {
	return &PresenceBroadcaster{
		clients:        make(map[*PresenceClient]bool),
		register:       make(chan *PresenceClient),
		unregister:     make(chan *PresenceClient),
		cache:          cache,
		clock:          clk,
		activityWindow: activityWindow,
		tickInterval:   tickInterval,
		logger:         logger,
	}
}

// Run starts the broadcaster's main loop. This should be run as a goroutine.
func (b *PresenceBroadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.logger.Presence().Info("Presence broadcaster stopping")
			b.closeAll()
			return

		case client := <-b.register:
			b.mu.Lock()
			b.clients[client] = true
			b.mu.Unlock()
			b.logger.Presence().Debug("Presence client registered", "clients", b.ClientCount())

		case client := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.clients[client]; ok {
				delete(b.clients, client)
				close(client.Send)
			}
			b.mu.Unlock()
			b.logger.Presence().Debug("Presence client unregistered", "clients", b.ClientCount())

		case <-ticker.C:
			b.broadcast()
		}
	}
}

// Register queues a client for registration.
func (b *PresenceBroadcaster) Register(client *PresenceClient) {
	b.register <- client
}

// Unregister queues a client for unregistration.
func (b *PresenceBroadcaster) Unregister(client *PresenceClient) {
	b.unregister <- client
}

// RecordCaptionGenerated bumps the live caption counter.
func (b *PresenceBroadcaster) RecordCaptionGenerated() {
	b.captionCount.Add(1)
}

// ClientCount returns the number of connected presence clients.
func (b *PresenceBroadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

func (b *PresenceBroadcaster) broadcast() {
	b.mu.RLock()
	empty := len(b.clients) == 0
	b.mu.RUnlock()
	if empty {
		return
	}

	now := b.clock.Now()
	payload := PresencePayload{
		ActiveVisitors:    len(b.cache.ActiveSessionIDs(now, b.activityWindow)),
		CaptionsGenerated: b.captionCount.Load(),
		Timestamp:         now.Unix(),
	}

	message, err := json.Marshal(payload)
	if err != nil {
		b.logger.Presence().Error("Failed to marshal presence payload", "error", err.Error())
		return
	}

	b.mu.RLock()
	for client := range b.clients {
		select {
		case client.Send <- message:
		default:
		}
	}
	b.mu.RUnlock()
}

func (b *PresenceBroadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for client := range b.clients {
		close(client.Send)
		delete(b.clients, client)
	}
}

// WritePump drains the client's send channel onto the websocket
// connection. It runs once per connection and exits when the channel
// closes or a write fails.
func (b *PresenceBroadcaster) WritePump(client *PresenceClient) {
	defer client.Conn.Close()
	for message := range client.Send {
		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// ReadPump consumes and discards inbound frames so the connection's
// control messages are processed, unregistering on disconnect.
func (b *PresenceBroadcaster) ReadPump(client *PresenceClient) {
	defer func() {
		b.Unregister(client)
		client.Conn.Close()
	}()
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
