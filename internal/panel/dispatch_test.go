package panel

import (
	"errors"
	"testing"

	"github.com/mmuslimabdulj/modex/internal/domain"
	"github.com/mmuslimabdulj/modex/internal/fixture"
	"github.com/mmuslimabdulj/modex/internal/selector"
)

func TestDispatch_TotalOverPanels(t *testing.T) {
	roster := fixture.DefaultRoster()
	messages := fixture.DefaultMessages()

	for _, p := range domain.Panels {
		state := selector.State{ActivePanel: p, SelectedPeer: "1"}
		v, err := Dispatch(state, roster, messages)
		if err != nil {
			t.Fatalf("Dispatch(%s) returned error: %v", p, err)
		}
		if v.Panel != p {
			t.Errorf("Expected view for %s, got %s", p, v.Panel)
		}
	}
}

func TestDispatch_UnknownPanel(t *testing.T) {
	_, err := Dispatch(selector.State{ActivePanel: "settings"}, nil, nil)
	if !errors.Is(err, domain.ErrUnknownPanel) {
		t.Errorf("Expected ErrUnknownPanel, got %v", err)
	}
}

func TestDispatch_HomeOnlineCount(t *testing.T) {
	roster := []domain.RosterEntry{
		{ID: "1", DisplayName: "A", Presence: domain.PresenceOnline},
		{ID: "2", DisplayName: "B", Presence: domain.PresenceIdle},
		{ID: "3", DisplayName: "C", Presence: domain.PresenceOnline},
		{ID: "4", DisplayName: "D", Presence: domain.PresenceDoNotDisturb},
		{ID: "5", DisplayName: "E", Presence: domain.PresenceOffline},
	}

	v, err := Dispatch(selector.State{ActivePanel: domain.PanelHome}, roster, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.Home.OnlineCount != 2 {
		t.Errorf("Expected 2 online, got %d", v.Home.OnlineCount)
	}
}

func TestDispatch_DirectMessages(t *testing.T) {
	roster := fixture.DefaultRoster()
	messages := fixture.DefaultMessages()

	tests := []struct {
		name  string
		peer  string
		empty bool
	}{
		{"unset peer", "", true},
		{"dangling peer", "42", true},
		{"known peer", "2", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := selector.State{ActivePanel: domain.PanelDirectMessages, SelectedPeer: tc.peer, ComposeDraft: "hi"}
			v, err := Dispatch(state, roster, messages)
			if err != nil {
				t.Fatal(err)
			}
			dm := v.DirectMessages
			if dm.Empty() != tc.empty {
				t.Fatalf("Expected Empty()=%v, got %v", tc.empty, dm.Empty())
			}
			if tc.empty {
				if len(dm.Messages) != 0 {
					t.Errorf("Empty state should carry no messages, got %d", len(dm.Messages))
				}
				return
			}
			if dm.Peer.ID != tc.peer {
				t.Errorf("Expected peer %s, got %s", tc.peer, dm.Peer.ID)
			}
			if len(dm.Messages) != len(messages) {
				t.Fatalf("Expected %d messages, got %d", len(messages), len(dm.Messages))
			}
			for i := range messages {
				if dm.Messages[i].ID != messages[i].ID {
					t.Errorf("Message order changed at %d", i)
				}
			}
			if dm.Draft != "hi" {
				t.Errorf("Expected draft bound to compose, got %q", dm.Draft)
			}
		})
	}
}

func TestDispatch_Friends(t *testing.T) {
	roster := fixture.DefaultRoster()

	v, err := Dispatch(selector.State{ActivePanel: domain.PanelFriends}, roster, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Friends.Cards) != len(roster) {
		t.Fatalf("Expected %d cards, got %d", len(roster), len(v.Friends.Cards))
	}
	for i, card := range v.Friends.Cards {
		if card.Entry.ID != roster[i].ID {
			t.Errorf("Card %d out of roster order", i)
		}
		if card.ShowActivity != (roster[i].Activity != "") {
			t.Errorf("Card %d activity badge mismatch", i)
		}
	}
	if v.Friends.Cards[4].ShowActivity {
		t.Error("TechWizard has no activity and must not show a badge")
	}
	if v.Friends.Cards[3].PresenceLabel != "Do not disturb" {
		t.Errorf("Unexpected presence label %q", v.Friends.Cards[3].PresenceLabel)
	}
}

func TestDispatch_Placeholders(t *testing.T) {
	for _, p := range []domain.Panel{domain.PanelGroups, domain.PanelChannels} {
		v, err := Dispatch(selector.State{ActivePanel: p}, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if v.Placeholder == nil || v.Placeholder.ActionLabel == "" {
			t.Errorf("Expected call-to-action for %s", p)
		}
	}
}

func TestScenario_SelectPeerAfterEmptyState(t *testing.T) {
	roster := []domain.RosterEntry{
		{ID: "1", DisplayName: "ProGamer2077", Presence: domain.PresenceOnline, Activity: "Game A"},
		{ID: "5", DisplayName: "TechWizard", Presence: domain.PresenceOffline},
	}

	// no prior peer selection
	sel := &selector.Selector{}
	sel.SelectPanel(domain.PanelDirectMessages)

	v, err := Dispatch(sel.State(), roster, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !v.DirectMessages.Empty() {
		t.Fatal("Expected empty state before a peer is selected")
	}

	sel.SelectConversationPeer("1")
	v, err = Dispatch(sel.State(), roster, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.DirectMessages.Empty() {
		t.Fatal("Expected peer header after selecting peer 1")
	}
	if v.DirectMessages.Peer.Activity != "Game A" {
		t.Errorf("Expected activity Game A, got %q", v.DirectMessages.Peer.Activity)
	}
}

func TestBuildSidebar(t *testing.T) {
	roster := fixture.DefaultRoster()
	state := selector.State{ActivePanel: domain.PanelFriends, SelectedPeer: "2"}

	sb := BuildSidebar(state, roster, domain.NewIdentity("NeonRaider", "Valorant"))

	if sb.OnlineCount != 2 {
		t.Errorf("Expected 2 online, got %d", sb.OnlineCount)
	}
	active := 0
	for _, item := range sb.Nav {
		if item.Active {
			active++
			if item.Panel != domain.PanelFriends {
				t.Errorf("Wrong nav item active: %s", item.Panel)
			}
		}
	}
	if active != 1 {
		t.Errorf("Expected exactly one active nav item, got %d", active)
	}
	for _, row := range sb.Rows {
		if row.Selected != (row.Entry.ID == "2") {
			t.Errorf("Row %s selected=%v", row.Entry.ID, row.Selected)
		}
	}
	if sb.Me.DisplayName != "NeonRaider" || sb.Me.Initials != "NE" {
		t.Errorf("Unexpected footer %+v", sb.Me)
	}

	anon := BuildSidebar(state, roster, nil)
	if anon.Me.Initials != "YU" {
		t.Errorf("Expected fallback initials, got %s", anon.Me.Initials)
	}
}
