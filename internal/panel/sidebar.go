package panel

import (
	"github.com/mmuslimabdulj/modex/internal/domain"
	"github.com/mmuslimabdulj/modex/internal/selector"
)

// NavItem is one sidebar navigation button
type NavItem struct {
	Panel  domain.Panel
	Label  string
	Active bool
}

// RosterRow is one sidebar presence row
type RosterRow struct {
	Entry    domain.RosterEntry
	Initials string
	Selected bool
}

// Sidebar is the render model for the left column
type Sidebar struct {
	Nav         []NavItem
	OnlineCount int
	Rows        []RosterRow
	Me          Footer
}

// Footer shows the signed-in identity
type Footer struct {
	DisplayName string
	Initials    string
	AvatarURL   string
	Activity    string
}

var navLabels = map[domain.Panel]string{
	domain.PanelHome:           "Home",
	domain.PanelDirectMessages: "Chats",
	domain.PanelGroups:         "Groups",
	domain.PanelChannels:       "Channels",
	domain.PanelFriends:        "Friends",
}

// BuildSidebar derives the sidebar from state, roster and the signed-in identity
func BuildSidebar(state selector.State, roster []domain.RosterEntry, me *domain.Identity) Sidebar {
	sb := Sidebar{
		Nav:         make([]NavItem, 0, len(domain.Panels)),
		OnlineCount: OnlineCount(roster),
		Rows:        make([]RosterRow, 0, len(roster)),
	}

	for _, p := range domain.Panels {
		sb.Nav = append(sb.Nav, NavItem{Panel: p, Label: navLabels[p], Active: p == state.ActivePanel})
	}

	for _, e := range roster {
		sb.Rows = append(sb.Rows, RosterRow{
			Entry:    e,
			Initials: domain.Initials(e.DisplayName),
			Selected: e.ID == state.SelectedPeer,
		})
	}

	sb.Me = Footer{DisplayName: "Gamer", Initials: "YU"}
	if me != nil {
		if me.DisplayName != "" {
			sb.Me.DisplayName = me.DisplayName
			sb.Me.Initials = domain.Initials(me.DisplayName)
		}
		sb.Me.AvatarURL = me.AvatarURL
		sb.Me.Activity = me.Activity
	}
	return sb
}
