// Package events broadcasts task lifecycle events to connected websocket
// clients. The hub is fire-and-forget: slow or absent listeners never block
// a task operation.
package events

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"

	"tasktrack/internal/models"
)

// Actions published on the feed.
const (
	ActionCreated = "task.created"
	ActionUpdated = "task.updated"
	ActionDeleted = "task.deleted"
)

// Event is one entry on the feed.
type Event struct {
	Action string      `json:"action"`
	Task   models.Task `json:"task"`
}

// Client wraps a websocket connection. The mutex serializes writes; fasthttp
// websocket connections do not allow concurrent writers.
type Client struct {
	Conn *websocket.Conn
	mu   sync.Mutex
}

func (c *Client) send(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, message)
}

// Hub tracks connected clients and fans broadcast messages out to them.
type Hub struct {
	Register   chan *Client
	Unregister chan *Client

	broadcast chan []byte
	clients   map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[*Client]bool),
	}
}

// Run owns the client set. Call it once from a dedicated goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Conn.Close()
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				if err := client.send(message); err != nil {
					delete(h.clients, client)
					client.Conn.Close()
				}
			}
		}
	}
}

// Publish queues an event for broadcast. When the buffer is full the event
// is dropped: the feed is best-effort and must never stall a request.
func (h *Hub) Publish(action string, task models.Task) {
	if h == nil {
		return
	}
	message, err := json.Marshal(Event{Action: action, Task: task})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
	}
}
