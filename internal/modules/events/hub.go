package events

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var errNoListener = errors.New("listener not connected")

// client pairs a connection with a write lock. The websocket protocol
// allows only one concurrent writer per connection, and broadcasts arrive
// from concurrent request handlers.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *client) ping(deadline time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, deadline)
}

// Hub tracks connected admin listeners. One connection per user; a new
// connection from the same user replaces the old one.
type Hub struct {
	connections map[int64]*client
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists && old != nil {
		_ = old.conn.Close()
	}

	h.connections[userID] = &client{conn: conn}
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, exists := h.connections[userID]; exists && cl != nil {
		_ = cl.conn.Close()
		delete(h.connections, userID)
	}
}

// Broadcast writes the message to every listener. Connections that fail
// the write are dropped.
func (h *Hub) Broadcast(message interface{}) int {
	h.mutex.RLock()
	targets := make(map[int64]*client, len(h.connections))
	for id, cl := range h.connections {
		targets[id] = cl
	}
	h.mutex.RUnlock()

	sent := 0
	for id, cl := range targets {
		if cl == nil {
			continue
		}
		if err := cl.writeJSON(message); err != nil {
			h.Unregister(id)
			continue
		}
		sent++
	}
	return sent
}

// Ping sends a control ping to the user's connection so an otherwise
// silent listener keeps answering pongs.
func (h *Hub) Ping(userID int64, deadline time.Time) error {
	h.mutex.RLock()
	cl, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || cl == nil {
		return errNoListener
	}
	return cl.ping(deadline)
}

func (h *Hub) ListenerCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, cl := range h.connections {
		if cl != nil {
			_ = cl.conn.Close()
		}
		delete(h.connections, id)
	}
}
