// Package fixture provides the roster and conversation data sources.
// The static sources stand in for a live backend; callers only see the
// RosterSource and ConversationSource interfaces.
package fixture

import (
	"context"

	"github.com/mmuslimabdulj/modex/internal/domain"
)

// RosterSource returns the current presence list in display order
type RosterSource interface {
	Roster(ctx context.Context) ([]domain.RosterEntry, error)
}

// ConversationSource returns the messages exchanged with a peer, oldest first
type ConversationSource interface {
	Conversation(ctx context.Context, peerID string) ([]domain.Message, error)
}

// StaticRoster serves a fixed roster snapshot
type StaticRoster struct {
	entries []domain.RosterEntry
}

// NewStaticRoster validates entries and wraps them in a StaticRoster
func NewStaticRoster(entries []domain.RosterEntry) (*StaticRoster, error) {
	if err := ValidateRoster(entries); err != nil {
		return nil, err
	}
	copied := make([]domain.RosterEntry, len(entries))
	copy(copied, entries)
	return &StaticRoster{entries: copied}, nil
}

// Roster returns a copy so callers cannot mutate the snapshot
func (s *StaticRoster) Roster(ctx context.Context) ([]domain.RosterEntry, error) {
	out := make([]domain.RosterEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// StaticConversation serves one message list regardless of peer.
// There is a single mocked conversation in this version.
type StaticConversation struct {
	messages []domain.Message
}

// NewStaticConversation wraps messages in a StaticConversation
func NewStaticConversation(messages []domain.Message) *StaticConversation {
	copied := make([]domain.Message, len(messages))
	copy(copied, messages)
	return &StaticConversation{messages: copied}
}

// Conversation returns the messages in insertion order
func (s *StaticConversation) Conversation(ctx context.Context, peerID string) ([]domain.Message, error) {
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}
