package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mmuslimabdulj/modex/internal/domain"
)

// ErrSessionNotFound is returned for unknown or expired tokens
var ErrSessionNotFound = errors.New("session not found")

// Notifier is told about every session change. Removal and expiry are
// reported as an empty Session.
type Notifier interface {
	SessionChanged(token string, s domain.Session)
}

type sessionEntry struct {
	identity  *domain.Identity
	resolving bool
	createdAt time.Time
	lastUsed  time.Time
}

// SessionStore maps opaque cookie tokens to session snapshots
type SessionStore struct {
	mu        sync.RWMutex
	sessions  map[string]*sessionEntry
	ttl       time.Duration
	notifiers []Notifier
}

// NewSessionStore creates a new session store
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = domain.SessionTTL
	}
	store := &SessionStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
	}

	go store.cleanupLoop()

	return store
}

// Subscribe adds a receiver of session change events
func (s *SessionStore) Subscribe(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifiers = append(s.notifiers, n)
}

// Create issues a new anonymous session and returns its token
func (s *SessionStore) Create() string {
	tokenBytes := make([]byte, 32) // 256 bits
	if _, err := rand.Read(tokenBytes); err != nil {
		panic(fmt.Sprintf("session token: %v", err))
	}
	token := hex.EncodeToString(tokenBytes)

	now := time.Now()
	s.mu.Lock()
	s.sessions[token] = &sessionEntry{createdAt: now, lastUsed: now}
	s.mu.Unlock()

	return token
}

// Session returns the snapshot for token. An expired session is removed and
// subscribers are told it ended.
func (s *SessionStore) Session(token string) (domain.Session, error) {
	s.mu.Lock()
	entry, ok := s.sessions[token]
	if !ok {
		s.mu.Unlock()
		return domain.Session{}, ErrSessionNotFound
	}
	if time.Since(entry.createdAt) > s.ttl {
		delete(s.sessions, token)
		ns := s.notifiers
		s.mu.Unlock()

		notify(ns, token, domain.Session{})
		return domain.Session{}, ErrSessionNotFound
	}
	entry.lastUsed = time.Now()
	snap := snapshot(entry)
	s.mu.Unlock()
	return snap, nil
}

// BeginResolve marks the session as waiting on the identity provider.
// It returns false when the token is unknown or a resolve is already running.
func (s *SessionStore) BeginResolve(token string) bool {
	s.mu.Lock()
	entry, ok := s.sessions[token]
	if !ok || entry.resolving {
		s.mu.Unlock()
		return false
	}
	entry.resolving = true
	snap, ns := snapshot(entry), s.notifiers
	s.mu.Unlock()

	notify(ns, token, snap)
	return true
}

// Resolve ends a pending resolve and stores identity, which may be nil
func (s *SessionStore) Resolve(token string, identity *domain.Identity) error {
	s.mu.Lock()
	entry, ok := s.sessions[token]
	if !ok {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	entry.resolving = false
	entry.identity = identity
	snap, ns := snapshot(entry), s.notifiers
	s.mu.Unlock()

	notify(ns, token, snap)
	return nil
}

// Remove deletes a session
func (s *SessionStore) Remove(token string) {
	s.mu.Lock()
	_, ok := s.sessions[token]
	delete(s.sessions, token)
	ns := s.notifiers
	s.mu.Unlock()

	if ok {
		notify(ns, token, domain.Session{})
	}
}

// Count returns the number of live sessions
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// cleanupLoop periodically removes expired sessions
func (s *SessionStore) cleanupLoop() {
	interval := time.Hour
	if s.ttl < interval {
		interval = s.ttl
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

// cleanup removes expired sessions and reports each one as ended
func (s *SessionStore) cleanup() {
	s.mu.Lock()
	now := time.Now()
	var expired []string
	for token, entry := range s.sessions {
		if now.Sub(entry.createdAt) > s.ttl {
			delete(s.sessions, token)
			expired = append(expired, token)
		}
	}
	ns := s.notifiers
	s.mu.Unlock()

	for _, token := range expired {
		notify(ns, token, domain.Session{})
	}
}

func snapshot(e *sessionEntry) domain.Session {
	if e.resolving {
		return domain.Session{Resolving: true}
	}
	return domain.Session{Identity: e.identity}
}

func notify(ns []Notifier, token string, snap domain.Session) {
	for _, n := range ns {
		n.SessionChanged(token, snap)
	}
}
