// Package selector holds the per-visitor view state: which panel is shown,
// which peer's conversation is open, and the unsent compose draft.
package selector

import (
	"unicode/utf8"

	"github.com/mmuslimabdulj/modex/internal/domain"
)

// State is a snapshot of a Selector
type State struct {
	ActivePanel  domain.Panel
	SelectedPeer string // empty = no peer selected
	ComposeDraft string
}

// Selector owns a State and exposes its mutations
type Selector struct {
	state State
}

// New returns a selector on the home panel with the first roster entry selected
func New(roster []domain.RosterEntry) *Selector {
	s := &Selector{state: State{ActivePanel: domain.PanelHome}}
	if len(roster) > 0 {
		s.state.SelectedPeer = roster[0].ID
	}
	return s
}

// State returns a copy of the current state
func (s *Selector) State() State {
	return s.state
}

// SelectPanel switches the active panel. The selected peer is left alone so
// returning to direct messages reopens the last conversation.
func (s *Selector) SelectPanel(p domain.Panel) {
	s.state.ActivePanel = p
}

// SelectConversationPeer changes the open conversation without switching panels
func (s *Selector) SelectConversationPeer(peerID string) {
	s.state.SelectedPeer = peerID
}

// OpenConversation selects a peer and jumps to the direct-messages panel
func (s *Selector) OpenConversation(peerID string) {
	s.SelectConversationPeer(peerID)
	s.SelectPanel(domain.PanelDirectMessages)
}

// SetDraft replaces the compose buffer, truncated to MaxDraftLength runes
func (s *Selector) SetDraft(text string) {
	if utf8.RuneCountInString(text) > domain.MaxDraftLength {
		text = string([]rune(text)[:domain.MaxDraftLength])
	}
	s.state.ComposeDraft = text
}

// ClearDraft empties the compose buffer
func (s *Selector) ClearDraft() {
	s.state.ComposeDraft = ""
}
