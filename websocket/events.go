package websocket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is a real-time inventory update pushed to connected clients.
// Types: ASSET_CREATED, ASSET_UPDATED, ASSET_DELETED, ASSIGNMENT_CREATED,
// ASSIGNMENT_UPDATED, ASSIGNMENT_DELETED.
type Event struct {
	Type      string      `json:"type"`
	EntityID  string      `json:"entityId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Actor     string      `json:"actor,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type eventHub struct {
	mutex   sync.Mutex
	clients map[*client]struct{}
}

var hub = &eventHub{clients: map[*client]struct{}{}}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and keeps the connection subscribed to the
// event feed until the peer goes away.
func ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 16)}
	hub.register(c)
	slog.Info("websocket client connected", "remote", conn.RemoteAddr())

	go c.writeLoop()
	go c.readLoop()
}

func (h *eventHub) register(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[c] = struct{}{}
}

func (h *eventHub) unregister(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (c *client) readLoop() {
	defer func() {
		hub.unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writeLoop() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// Broadcast sends the event to every connected client; slow clients are
// dropped rather than blocking the request path.
func Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal event", "error", err)
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for c := range hub.clients {
		select {
		case c.send <- data:
		default:
			delete(hub.clients, c)
			close(c.send)
		}
	}
}

func SendAssetEvent(eventType, assetID string, data interface{}, actor string) {
	Broadcast(Event{
		Type:      eventType,
		EntityID:  assetID,
		Data:      data,
		Timestamp: time.Now().UTC(),
		Actor:     actor,
	})
}

func SendAssignmentEvent(eventType, assignmentID string, data interface{}, actor string) {
	Broadcast(Event{
		Type:      eventType,
		EntityID:  assignmentID,
		Data:      data,
		Timestamp: time.Now().UTC(),
		Actor:     actor,
	})
}
