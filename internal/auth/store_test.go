package auth

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mmuslimabdulj/modex/internal/domain"
)

type recordingNotifier struct {
	mu     sync.Mutex
	tokens []string
	events []domain.Session
}

func (r *recordingNotifier) SessionChanged(token string, s domain.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = append(r.tokens, token)
	r.events = append(r.events, s)
}

func (r *recordingNotifier) endedTokens() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	ended := make(map[string]int)
	for i, s := range r.events {
		if Decide(s) == OutcomeRedirectToLogin {
			ended[r.tokens[i]]++
		}
	}
	return ended
}

func (r *recordingNotifier) outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Outcome, 0, len(r.events))
	for _, s := range r.events {
		out = append(out, Decide(s))
	}
	return out
}

func TestSessionStore_Create(t *testing.T) {
	store := NewSessionStore(time.Hour)

	token := store.Create()
	if len(token) != 64 { // 32 bytes = 64 hex chars
		t.Errorf("Expected 64 char token, got %d", len(token))
	}
	if store.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", store.Count())
	}

	sess, err := store.Session(token)
	if err != nil {
		t.Fatalf("Session returned error: %v", err)
	}
	if Decide(sess) != OutcomeRedirectToLogin {
		t.Errorf("New session should be anonymous, got %s", Decide(sess))
	}
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store := NewSessionStore(time.Hour)

	if _, err := store.Session("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
	if store.BeginResolve("nope") {
		t.Error("BeginResolve should fail for unknown token")
	}
	if err := store.Resolve("nope", nil); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_ResolveLifecycle(t *testing.T) {
	store := NewSessionStore(time.Hour)
	n := &recordingNotifier{}
	store.Subscribe(n)

	token := store.Create()

	if !store.BeginResolve(token) {
		t.Fatal("Expected BeginResolve to succeed")
	}
	if store.BeginResolve(token) {
		t.Error("Second BeginResolve while resolving should be refused")
	}

	sess, _ := store.Session(token)
	if Decide(sess) != OutcomeLoading {
		t.Errorf("Expected loading while resolving, got %s", Decide(sess))
	}

	if err := store.Resolve(token, domain.NewIdentity("PixelKnight", "")); err != nil {
		t.Fatal(err)
	}
	sess, _ = store.Session(token)
	if Decide(sess) != OutcomeRenderChildren {
		t.Errorf("Expected ready after resolve, got %s", Decide(sess))
	}

	got := n.outcomes()
	want := []Outcome{OutcomeLoading, OutcomeRenderChildren}
	if len(got) != len(want) {
		t.Fatalf("Expected %d notifications, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Notification %d = %s, expected %s", i, got[i], want[i])
		}
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(20 * time.Millisecond)
	n := &recordingNotifier{}
	store.Subscribe(n)
	token := store.Create()

	time.Sleep(40 * time.Millisecond)

	if _, err := store.Session(token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected expired session to be gone, got %v", err)
	}
	if store.Count() != 0 {
		t.Errorf("Expected expired session removed, got %d", store.Count())
	}
	if got := n.endedTokens(); got[token] != 1 {
		t.Errorf("Expected one ended notification for the expired token, got %v", got)
	}
}

func TestSessionStore_Cleanup(t *testing.T) {
	store := NewSessionStore(20 * time.Millisecond)
	n := &recordingNotifier{}
	store.Subscribe(n)
	first := store.Create()
	second := store.Create()

	time.Sleep(40 * time.Millisecond)
	store.cleanup()

	if store.Count() != 0 {
		t.Errorf("Expected cleanup to remove expired sessions, got %d", store.Count())
	}
	got := n.endedTokens()
	if got[first] != 1 || got[second] != 1 || len(got) != 2 {
		t.Errorf("Expected each expired token reported once, got %v", got)
	}
}

func TestSessionStore_MultipleSubscribers(t *testing.T) {
	store := NewSessionStore(time.Hour)
	a, b := &recordingNotifier{}, &recordingNotifier{}
	store.Subscribe(a)
	store.Subscribe(b)

	token := store.Create()
	store.BeginResolve(token)
	store.Remove(token)

	for name, n := range map[string]*recordingNotifier{"first": a, "second": b} {
		got := n.outcomes()
		if len(got) != 2 || got[0] != OutcomeLoading || got[1] != OutcomeRedirectToLogin {
			t.Errorf("%s subscriber: expected [loading login], got %v", name, got)
		}
	}
}

func TestSessionStore_TokensUnique(t *testing.T) {
	store := NewSessionStore(time.Hour)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := store.Create()
		if len(token) != 64 || seen[token] {
			t.Fatalf("Token %d is malformed or repeated: %q", i, token)
		}
		seen[token] = true
	}
}

func TestSessionStore_Remove(t *testing.T) {
	store := NewSessionStore(time.Hour)
	n := &recordingNotifier{}
	store.Subscribe(n)

	token := store.Create()
	store.Remove(token)
	store.Remove(token)

	if store.Count() != 0 {
		t.Errorf("Expected 0 sessions, got %d", store.Count())
	}
	if got := n.outcomes(); len(got) != 1 || got[0] != OutcomeRedirectToLogin {
		t.Errorf("Expected one login notification, got %v", got)
	}
}
