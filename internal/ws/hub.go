// Package ws relays live code edits between clients viewing the same room.
// The hub keeps no history; a client only sees edits made while it is
// connected.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
)

const (
	eventJoin       = "join"
	eventCodeChange = "code:change"
)

// Envelope is the single message shape on the socket. Type selects the
// event; the remaining fields are event-specific.
type Envelope struct {
	Type      string `json:"type"`
	RoomID    string `json:"roomId,omitempty"`
	ProblemID string `json:"problemId,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Code      string `json:"code,omitempty"`
}

type client struct {
	conn  *websocket.Conn
	group string
	send  chan []byte
}

type Hub struct {
	mu       sync.RWMutex
	rooms    map[string]map[*client]struct{}
	upgrader websocket.Upgrader
	logger   primary.Logger
}

func NewHub(logger primary.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ServeHTTP upgrades the connection and pumps messages until the client
// goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 32)}
	go c.writePump()
	h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.leave(c)
		close(c.send)
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Envelope
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case eventJoin:
			if key := groupKey(msg); key != "" {
				h.join(c, key)
			}
		case eventCodeChange:
			if c.group != "" {
				h.broadcast(c, data)
			}
		}
	}
}

func (c *client) writePump() {
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// groupKey scopes the relay: edits fan out per room, or per problem when
// the client names one.
func groupKey(msg Envelope) string {
	if msg.RoomID == "" {
		return ""
	}
	if msg.ProblemID != "" {
		return msg.RoomID + ":" + msg.ProblemID
	}
	return msg.RoomID
}

func (h *Hub) join(c *client, key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.group != "" {
		h.removeLocked(c)
	}
	c.group = key
	if h.rooms[key] == nil {
		h.rooms[key] = make(map[*client]struct{})
	}
	h.rooms[key][c] = struct{}{}
}

func (h *Hub) leave(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if peers, ok := h.rooms[c.group]; ok {
		delete(peers, c)
		if len(peers) == 0 {
			delete(h.rooms, c.group)
		}
	}
	c.group = ""
}

// broadcast fans a message out to every other client in the sender's group.
// A client with a full send buffer is skipped rather than blocking the hub.
func (h *Hub) broadcast(sender *client, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for peer := range h.rooms[sender.group] {
		if peer == sender {
			continue
		}
		select {
		case peer.send <- data:
		default:
		}
	}
}
