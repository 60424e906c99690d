package handlers

import (
	"net/http"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/messaging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin enforcement happens in the CORS layer; the websocket
	// endpoint carries no privileged data.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PresenceHandlers upgrades connections for the live social-proof feed.
type PresenceHandlers struct {
	broadcaster *messaging.PresenceBroadcaster
	logger      *logging.ChanneledLogger
}

// NewPresenceHandlers creates presence handlers with injected dependencies
func NewPresenceHandlers(broadcaster *messaging.PresenceBroadcaster, logger *logging.ChanneledLogger) *PresenceHandlers {
	return &PresenceHandlers{
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// GetPresence handles GET /api/v1/presence/ws.
func (h *PresenceHandlers) GetPresence(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Presence().Error("Websocket upgrade failed", "error", err.Error())
		return
	}

	client := &messaging.PresenceClient{
		Conn: conn,
		Send: make(chan []byte, 8),
	}
	h.broadcaster.Register(client)

	go h.broadcaster.WritePump(client)
	go h.broadcaster.ReadPump(client)
}
