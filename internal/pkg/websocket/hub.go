package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/pkg/notify"
)

// Message types pushed to console tabs.
const (
	TypeLogin  = "login"
	TypeLogout = "logout"
	TypeToast  = "toast"
)

// Message is one event delivered to every connected console tab.
type Message struct {
	Type string `json:"type"`

	// Level and Text are set on toasts
	Level notify.Level `json:"level,omitempty"`
	Text  string       `json:"message,omitempty"`

	UserID string    `json:"userId,omitempty"`
	At     time.Time `json:"at"`
}

// Hub keeps the set of connected tabs and fans messages out to them.
type Hub struct {
	clients map[*Client]bool

	// Outbound messages, already serialized
	broadcast chan []byte

	register   chan *Client
	unregister chan *Client

	// closed when Run returns
	done chan struct{}

	// count mirrors len(clients) for readers outside Run
	mu    sync.RWMutex
	count int

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger.With().Str("component", "events").Logger(),
	}
}

// Run owns the client set until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.setCount()
			h.logger.Info().
				Str("clientID", client.id).
				Str("addr", client.conn.RemoteAddr().String()).
				Msg("Client registered")

		case client := <-h.unregister:
			if h.clients[client] {
				h.drop(client)
				h.logger.Info().Str("clientID", client.id).Msg("Client unregistered")
			}

		case data := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// slow tab, disconnect it
					h.drop(client)
					h.logger.Warn().Str("clientID", client.id).Msg("Dropped slow client")
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.setCount()
}

func (h *Hub) setCount() {
	h.mu.Lock()
	h.count = len(h.clients)
	h.mu.Unlock()
}

// ClientCount returns the number of connected tabs.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Publish queues msg for every connected tab. It never blocks; when the queue is
// full the message is dropped and logged.
func (h *Hub) Publish(msg Message) {
	if msg.At.IsZero() {
		msg.At = time.Now()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Str("type", msg.Type).Msg("Failed to marshal event")
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn().Str("type", msg.Type).Msg("Event queue full, message dropped")
	}
}

// Notify pushes a toast to every tab.
func (h *Hub) Notify(n notify.Notification) {
	h.Publish(Message{Type: TypeToast, Level: n.Level, Text: n.Message, At: n.At})
}
