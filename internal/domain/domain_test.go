package domain

import (
	"errors"
	"testing"
)

func TestParsePanel(t *testing.T) {
	for _, p := range Panels {
		got, err := ParsePanel(string(p))
		if err != nil {
			t.Errorf("ParsePanel(%q) returned error: %v", p, err)
		}
		if got != p {
			t.Errorf("ParsePanel(%q) = %q", p, got)
		}
	}

	if _, err := ParsePanel("settings"); !errors.Is(err, ErrUnknownPanel) {
		t.Errorf("Expected ErrUnknownPanel, got %v", err)
	}
	if Panel("").Valid() {
		t.Error("Empty panel should not be valid")
	}
}

func TestParsePresence(t *testing.T) {
	tests := []struct {
		input    string
		expected Presence
		ok       bool
	}{
		{"online", PresenceOnline, true},
		{"Idle", PresenceIdle, true},
		{"dnd", PresenceDoNotDisturb, true},
		{"doNotDisturb", PresenceDoNotDisturb, true},
		{" offline ", PresenceOffline, true},
		{"away", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		got, ok := ParsePresence(tc.input)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParsePresence(%q) = %q, %v; expected %q, %v", tc.input, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ProGamer2077", "PR"},
		{"x", "X"},
		{"", "YU"},
		{"   ", "YU"},
		{"ёжик", "ЁЖ"},
	}

	for _, tc := range tests {
		if got := Initials(tc.name); got != tc.expected {
			t.Errorf("Initials(%q) = %q, expected %q", tc.name, got, tc.expected)
		}
	}
}

func TestRosterEntry_HasActivity(t *testing.T) {
	if (RosterEntry{ID: "5", DisplayName: "TechWizard"}).HasActivity() {
		t.Error("Entry without activity should report none")
	}
	if !(RosterEntry{ID: "1", DisplayName: "ProGamer2077", Activity: "Cyberpunk 2077"}).HasActivity() {
		t.Error("Entry with activity should report it")
	}
}

func TestNewIdentity(t *testing.T) {
	a := NewIdentity("ShadowNinja", "CS:GO")
	b := NewIdentity("ShadowNinja", "CS:GO")
	if a.ID == b.ID {
		t.Error("Expected unique identity IDs")
	}
	if a.DisplayName != "ShadowNinja" || a.Activity != "CS:GO" {
		t.Errorf("Unexpected identity %+v", a)
	}
}
