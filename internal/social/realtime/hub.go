package realtime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// frame is the wire format of a pushed event.
type frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes
}

func (c *client) send(f frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(f)
}

// Hub tracks one live websocket connection per user. Delivery is best effort:
// pushing to an offline user or a dead connection is a silent drop.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[string]*client),
	}
}

// Register tracks conn as the user's live connection, displacing any previous
// one. The returned func deregisters the connection; calling it more than
// once is safe.
func (h *Hub) Register(userID string, conn *websocket.Conn) func() {
	c := &client{conn: conn}

	h.mu.Lock()
	if old, ok := h.clients[userID]; ok {
		_ = old.conn.Close()
	}
	h.clients[userID] = c
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			// Only remove if this connection still owns the slot.
			if cur, ok := h.clients[userID]; ok && cur == c {
				delete(h.clients, userID)
			}
			h.mu.Unlock()
			_ = conn.Close()
		})
	}
}

// Online reports whether the user has a registered connection.
func (h *Hub) Online(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

// Push sends an event frame to the user's connection if one is registered.
// Offline users and write failures are dropped without retry.
func (h *Hub) Push(userID, event string, payload any) {
	h.mu.RLock()
	c, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	if err := c.send(frame{Event: event, Data: payload}); err != nil {
		h.logger.Debug("realtime push dropped",
			"user_id", userID,
			"event", event,
			"error", err,
		)
	}
}

// Close drops every registered connection, typically during shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		_ = c.conn.Close()
		delete(h.clients, id)
	}
}
