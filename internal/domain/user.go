package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Presence is the availability status shown next to a roster entry
type Presence string

const (
	PresenceOnline       Presence = "online"
	PresenceIdle         Presence = "idle"
	PresenceDoNotDisturb Presence = "dnd"
	PresenceOffline      Presence = "offline"
)

// ParsePresence accepts the wire names plus the long "doNotDisturb" spelling
func ParsePresence(s string) (Presence, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online":
		return PresenceOnline, true
	case "idle":
		return PresenceIdle, true
	case "dnd", "donotdisturb":
		return PresenceDoNotDisturb, true
	case "offline":
		return PresenceOffline, true
	}
	return "", false
}

// Label returns the human readable presence text
func (p Presence) Label() string {
	switch p {
	case PresenceOnline:
		return "Online"
	case PresenceIdle:
		return "Idle"
	case PresenceDoNotDisturb:
		return "Do not disturb"
	default:
		return "Offline"
	}
}

// RosterEntry is one user in the presence list
type RosterEntry struct {
	ID          string   `json:"id" yaml:"id"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
	Presence    Presence `json:"presence" yaml:"presence"`
	Activity    string   `json:"activity,omitempty" yaml:"activity,omitempty"` // empty = nothing to show
}

// HasActivity reports whether an activity badge should be shown
func (e RosterEntry) HasActivity() bool {
	return e.Activity != ""
}

// Identity is the signed-in user as reported by the identity provider
type Identity struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Activity    string    `json:"activity,omitempty"`
}

// NewIdentity creates an Identity with a generated ID
func NewIdentity(displayName, activity string) *Identity {
	return &Identity{
		ID:          uuid.New(),
		DisplayName: displayName,
		Activity:    activity,
	}
}

// Session is a snapshot of what the identity provider knows about a visitor.
// While Resolving is true the Identity must be treated as unknown.
type Session struct {
	Identity  *Identity
	Resolving bool
}

// Initials returns the avatar fallback text: first two runes, upper-cased
func Initials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "YU"
	}
	if utf8.RuneCountInString(name) <= 2 {
		return strings.ToUpper(name)
	}
	return strings.ToUpper(string([]rune(name)[:2]))
}
