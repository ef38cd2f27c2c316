package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/mmuslimabdulj/modex/internal/auth"
	"github.com/mmuslimabdulj/modex/internal/domain"
)

// Gauge is the subset of a metrics gauge the hub reports to
type Gauge interface {
	Set(float64)
}

type event struct {
	token string
	data  []byte
}

// Hub fans session state events out to the sockets opened by that session
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]bool // token -> sockets
	count   int

	publish    chan event
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	logger *slog.Logger
	gauge  Gauge
}

// NewHub creates a new Hub
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		publish:    make(chan event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// SetGauge sets the gauge tracking open sockets
func (h *Hub) SetGauge(g Gauge) {
	h.gauge = g
}

// SessionChanged publishes the new gate outcome to the token's sockets.
// It satisfies auth.Notifier and never blocks.
func (h *Hub) SessionChanged(token string, s domain.Session) {
	data, err := EncodeSessionState(auth.Decide(s))
	if err != nil {
		h.logger.Error("encode session state", "error", err)
		return
	}
	select {
	case h.publish <- event{token: token, data: data}:
	default:
		h.logger.Warn("session event dropped, hub backlog full")
	}
}

// EncodeSessionState builds the JSON frame for an outcome
func EncodeSessionState(o auth.Outcome) ([]byte, error) {
	payload, err := json.Marshal(domain.SessionStatePayload{Outcome: o.String()})
	if err != nil {
		return nil, err
	}
	return json.Marshal(domain.Event{
		Type:      domain.EventTypeSessionState,
		Payload:   payload,
		CreatedAt: time.Now(),
	})
}

// Run starts the hub's main event loop; it returns when ctx is done
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for token, set := range h.clients {
				for c := range set {
					close(c.send)
				}
				delete(h.clients, token)
			}
			h.count = 0
			h.mu.Unlock()
			h.reportCount()
			return

		case client := <-h.register:
			h.mu.Lock()
			set, ok := h.clients[client.token]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.token] = set
			}
			set[client] = true
			h.count++
			h.mu.Unlock()
			h.reportCount()

		case client := <-h.unregister:
			h.mu.Lock()
			// Prevent double unregister
			if set, ok := h.clients[client.token]; ok && set[client] {
				delete(set, client)
				if len(set) == 0 {
					delete(h.clients, client.token)
				}
				close(client.send)
				h.count--
			}
			h.mu.Unlock()
			h.reportCount()

		case ev := <-h.publish:
			h.mu.Lock()
			for c := range h.clients[ev.token] {
				select {
				case c.send <- ev.data:
				default:
					// Client buffer full, drop the socket; the page falls back to a reload
					close(c.send)
					delete(h.clients[ev.token], c)
					h.count--
				}
			}
			h.mu.Unlock()
			h.reportCount()
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		close(c.send)
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// ClientCount returns the number of connected sockets
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

func (h *Hub) reportCount() {
	if h.gauge != nil {
		h.gauge.Set(float64(h.ClientCount()))
	}
}
