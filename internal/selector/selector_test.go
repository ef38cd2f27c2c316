package selector

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/mmuslimabdulj/modex/internal/domain"
	"github.com/mmuslimabdulj/modex/internal/fixture"
)

func TestNew_InitialState(t *testing.T) {
	s := New(fixture.DefaultRoster())
	state := s.State()

	if state.ActivePanel != domain.PanelHome {
		t.Errorf("Expected home panel, got %s", state.ActivePanel)
	}
	if state.SelectedPeer != "1" {
		t.Errorf("Expected first roster id selected, got %q", state.SelectedPeer)
	}
	if state.ComposeDraft != "" {
		t.Errorf("Expected empty draft, got %q", state.ComposeDraft)
	}
}

func TestNew_EmptyRoster(t *testing.T) {
	if peer := New(nil).State().SelectedPeer; peer != "" {
		t.Errorf("Expected no peer for empty roster, got %q", peer)
	}
}

func TestSelectPanel_Idempotent(t *testing.T) {
	for _, p := range domain.Panels {
		once := New(fixture.DefaultRoster())
		once.SelectPanel(p)

		twice := New(fixture.DefaultRoster())
		twice.SelectPanel(p)
		twice.SelectPanel(p)

		if once.State() != twice.State() {
			t.Errorf("SelectPanel(%s) twice = %+v, once = %+v", p, twice.State(), once.State())
		}
	}
}

func TestPeerSurvivesPanelSwitch(t *testing.T) {
	for _, p := range domain.Panels {
		s := New(fixture.DefaultRoster())
		s.SelectConversationPeer("3")
		s.SelectPanel(p)

		if got := s.State().SelectedPeer; got != "3" {
			t.Errorf("After SelectPanel(%s) expected peer 3, got %q", p, got)
		}
	}
}

func TestSelectConversationPeer_KeepsPanel(t *testing.T) {
	s := New(fixture.DefaultRoster())
	s.SelectPanel(domain.PanelFriends)
	s.SelectConversationPeer("2")

	if s.State().ActivePanel != domain.PanelFriends {
		t.Errorf("Expected panel unchanged, got %s", s.State().ActivePanel)
	}
}

func TestOpenConversation(t *testing.T) {
	s := New(fixture.DefaultRoster())
	s.OpenConversation("4")

	state := s.State()
	if state.ActivePanel != domain.PanelDirectMessages || state.SelectedPeer != "4" {
		t.Errorf("Expected direct messages with peer 4, got %+v", state)
	}
}

func TestDraft(t *testing.T) {
	s := New(fixture.DefaultRoster())
	s.SetDraft("gg wp")
	s.SelectPanel(domain.PanelHome)

	if s.State().ComposeDraft != "gg wp" {
		t.Errorf("Draft should survive panel switches, got %q", s.State().ComposeDraft)
	}

	s.ClearDraft()
	if s.State().ComposeDraft != "" {
		t.Errorf("Expected draft cleared, got %q", s.State().ComposeDraft)
	}

	s.SetDraft(strings.Repeat("я", domain.MaxDraftLength+10))
	if n := utf8.RuneCountInString(s.State().ComposeDraft); n != domain.MaxDraftLength {
		t.Errorf("Expected draft truncated to %d runes, got %d", domain.MaxDraftLength, n)
	}
}

func TestStore(t *testing.T) {
	store := NewStore()
	roster := fixture.DefaultRoster()

	state := store.Get("tok", roster)
	if state.ActivePanel != domain.PanelHome || state.SelectedPeer != "1" {
		t.Errorf("Unexpected initial state %+v", state)
	}

	state = store.Update("tok", roster, func(s *Selector) { s.SelectPanel(domain.PanelGroups) })
	if state.ActivePanel != domain.PanelGroups {
		t.Errorf("Expected groups, got %s", state.ActivePanel)
	}
	if other := store.Get("other", roster); other.ActivePanel != domain.PanelHome {
		t.Error("Sessions should not share selector state")
	}
	if store.Count() != 2 {
		t.Errorf("Expected 2 selectors, got %d", store.Count())
	}

	store.Remove("tok")
	if state := store.Get("tok", roster); state.ActivePanel != domain.PanelHome {
		t.Errorf("Expected fresh state after Remove, got %+v", state)
	}
}

func TestStore_Concurrency(t *testing.T) {
	store := NewStore()
	roster := fixture.DefaultRoster()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := domain.Panels[i%len(domain.Panels)]
			store.Update("shared", roster, func(s *Selector) { s.SelectPanel(p) })
		}(i)
	}
	wg.Wait()

	if !store.Get("shared", roster).ActivePanel.Valid() {
		t.Error("Expected a valid panel after concurrent updates")
	}
}

func TestStore_SessionChanged(t *testing.T) {
	tests := []struct {
		name  string
		sess  domain.Session
		keeps bool
	}{
		{"signed in", domain.Session{Identity: domain.NewIdentity("NeonWolf", "")}, true},
		{"resolving", domain.Session{Resolving: true}, true},
		{"ended", domain.Session{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			store.Get("tok", fixture.DefaultRoster())

			store.SessionChanged("tok", tt.sess)

			if got := store.Count() == 1; got != tt.keeps {
				t.Errorf("Expected selector kept=%v, got %v", tt.keeps, got)
			}
		})
	}
}
