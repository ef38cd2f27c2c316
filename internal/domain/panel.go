package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownPanel means a Panel value outside the closed set reached dispatch
var ErrUnknownPanel = errors.New("unknown panel")

// Panel is the top-level view shown next to the sidebar
type Panel string

const (
	PanelHome           Panel = "home"
	PanelDirectMessages Panel = "directMessages"
	PanelGroups         Panel = "groups"
	PanelChannels       Panel = "channels"
	PanelFriends        Panel = "friends"
)

// Panels lists every panel in sidebar order
var Panels = []Panel{PanelHome, PanelDirectMessages, PanelGroups, PanelChannels, PanelFriends}

// Valid reports whether p is one of the five panels
func (p Panel) Valid() bool {
	for _, known := range Panels {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePanel converts a path segment into a Panel
func ParsePanel(s string) (Panel, error) {
	p := Panel(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPanel, s)
	}
	return p, nil
}
