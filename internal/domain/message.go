package domain

import (
	"encoding/json"
	"time"
)

// Message is one entry of a direct-message conversation.
// SentAt is a display label only; ordering is insertion order.
type Message struct {
	ID                string `json:"id" yaml:"id"`
	AuthorID          string `json:"author_id" yaml:"author_id"`
	AuthorDisplayName string `json:"author_display_name" yaml:"author_display_name"`
	Body              string `json:"body" yaml:"body"`
	SentAt            string `json:"sent_at" yaml:"sent_at"`
}

// EventType defines the type of event pushed over the session socket
type EventType string

const (
	EventTypeSessionState EventType = "session_state"
)

// SessionStatePayload carries the gate outcome after a session change
type SessionStatePayload struct {
	Outcome string `json:"outcome"`
}

// Event is the envelope written to websocket subscribers
type Event struct {
	Type      EventType       `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}
