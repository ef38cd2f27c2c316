package selector

import (
	"sync"

	"github.com/mmuslimabdulj/modex/internal/domain"
)

// Store keeps one Selector per session token
type Store struct {
	mu        sync.Mutex
	selectors map[string]*Selector
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		selectors: make(map[string]*Selector),
	}
}

// Update runs fn against the token's selector, creating it from roster on first
// use, and returns the resulting state
func (s *Store) Update(token string, roster []domain.RosterEntry, fn func(*Selector)) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.selectors[token]
	if !ok {
		sel = New(roster)
		s.selectors[token] = sel
	}
	if fn != nil {
		fn(sel)
	}
	return sel.State()
}

// Get returns the token's state, creating a fresh selector if needed
func (s *Store) Get(token string, roster []domain.RosterEntry) State {
	return s.Update(token, roster, nil)
}

// Remove drops the token's selector
func (s *Store) Remove(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selectors, token)
}

// Count returns the number of tracked selectors
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selectors)
}

// SessionChanged drops the selector once the session no longer has a
// signed-in user, so expired or removed sessions do not keep view state.
func (s *Store) SessionChanged(token string, sess domain.Session) {
	if sess.Identity != nil || sess.Resolving {
		return
	}
	s.Remove(token)
}
