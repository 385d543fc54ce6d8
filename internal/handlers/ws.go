package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const wsWriteTimeout = 2 * time.Second

type taskEvent struct {
	Event  string `json:"event"`
	TaskID int64  `json:"task_id"`
}

// WSHub fans task events out to every connected websocket client.
type WSHub struct {
	connections map[*websocket.Conn]bool
	mutex       sync.Mutex
	logger      zerolog.Logger
}

func NewWSHub(logger zerolog.Logger) *WSHub {
	return &WSHub{
		connections: make(map[*websocket.Conn]bool),
		logger:      logger,
	}
}

func (h *WSHub) register(conn *websocket.Conn) {
	h.mutex.Lock()
	h.connections[conn] = true
	h.mutex.Unlock()
}

func (h *WSHub) unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	if h.connections[conn] {
		delete(h.connections, conn)
		conn.Close()
	}
	h.mutex.Unlock()
}

// Len reports the number of registered connections.
func (h *WSHub) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.connections)
}

// BroadcastTaskEvent sends event to all connections. A connection that
// fails to accept the write is closed and dropped.
func (h *WSHub) BroadcastTaskEvent(event string, taskID int64) {
	message, err := json.Marshal(taskEvent{Event: event, TaskID: taskID})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to marshal task event")
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			h.logger.Warn().Err(err).Str("event", event).Msg("failed to send websocket message")
			delete(h.connections, conn)
			conn.Close()
		}
	}
}

// Close disconnects every client.
func (h *WSHub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn := range h.connections {
		conn.Close()
		delete(h.connections, conn)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /ws
func (h *Handler) HandleWebSocket(c *gin.Context) {
	if h.RateLimiter != nil && !h.RateLimiter.Allow(c.ClientIP()) {
		h.logger(c).Warn().Str("ip", c.ClientIP()).Msg("too many websocket connection attempts")
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			newAPIError(kindRateLimited, "too many websocket connection attempts"))
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already answered the client
		h.logger(c).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	h.WSHub.register(conn)
	h.logger(c).Debug().Int("clients", h.WSHub.Len()).Msg("websocket client connected")

	// Incoming messages are ignored. The loop ends when the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.WSHub.unregister(conn)
			h.logger(c).Debug().Err(err).Msg("websocket client disconnected")
			return
		}
	}
}
