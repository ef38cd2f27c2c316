// Package panel turns selector state plus roster and conversation data into
// render models, one per panel. It does no I/O.
package panel

import (
	"fmt"

	"github.com/mmuslimabdulj/modex/internal/domain"
	"github.com/mmuslimabdulj/modex/internal/selector"
)

// View is the render model for the active panel. Exactly one of the
// panel-specific fields is set, matching Panel.
type View struct {
	Panel          domain.Panel
	Home           *HomeView
	DirectMessages *DirectMessagesView
	Friends        *FriendsView
	Placeholder    *PlaceholderView
}

// HomeView is the landing panel
type HomeView struct {
	OnlineCount int
}

// DirectMessagesView is the mocked chat panel. Peer is nil for the empty state.
type DirectMessagesView struct {
	Peer     *domain.RosterEntry
	Messages []domain.Message
	Draft    string
}

// Empty reports whether the empty-state placeholder should be shown
func (v *DirectMessagesView) Empty() bool {
	return v.Peer == nil
}

// FriendsView lists every roster entry as a card
type FriendsView struct {
	Cards []FriendCard
}

// FriendCard is one entry of the friends panel
type FriendCard struct {
	Entry         domain.RosterEntry
	PresenceLabel string
	ShowActivity  bool
}

// PlaceholderView is the call-to-action used by groups and channels.
// ActionLabel is shown on a disabled button.
type PlaceholderView struct {
	Title       string
	Blurb       string
	ActionLabel string
}

// Dispatch builds the view for state.ActivePanel. An unknown panel yields
// domain.ErrUnknownPanel and must be treated as a fatal configuration error.
func Dispatch(state selector.State, roster []domain.RosterEntry, messages []domain.Message) (View, error) {
	v := View{Panel: state.ActivePanel}

	switch state.ActivePanel {
	case domain.PanelHome:
		v.Home = &HomeView{OnlineCount: OnlineCount(roster)}

	case domain.PanelDirectMessages:
		dm := &DirectMessagesView{Draft: state.ComposeDraft}
		if peer, ok := FindPeer(roster, state.SelectedPeer); ok {
			dm.Peer = &peer
			dm.Messages = messages
		}
		v.DirectMessages = dm

	case domain.PanelFriends:
		cards := make([]FriendCard, 0, len(roster))
		for _, e := range roster {
			cards = append(cards, FriendCard{
				Entry:         e,
				PresenceLabel: e.Presence.Label(),
				ShowActivity:  e.HasActivity(),
			})
		}
		v.Friends = &FriendsView{Cards: cards}

	case domain.PanelGroups:
		v.Placeholder = &PlaceholderView{
			Title:       "Groups",
			Blurb:       "Create groups to play and hang out with your friends",
			ActionLabel: "Create group",
		}

	case domain.PanelChannels:
		v.Placeholder = &PlaceholderView{
			Title:       "Channels",
			Blurb:       "Publish content and share videos with your subscribers",
			ActionLabel: "Create channel",
		}

	default:
		return View{}, fmt.Errorf("dispatch %q: %w", state.ActivePanel, domain.ErrUnknownPanel)
	}

	return v, nil
}

// OnlineCount counts roster entries whose presence is online
func OnlineCount(roster []domain.RosterEntry) int {
	n := 0
	for _, e := range roster {
		if e.Presence == domain.PresenceOnline {
			n++
		}
	}
	return n
}

// FindPeer looks up id in roster. An empty id never matches.
func FindPeer(roster []domain.RosterEntry, id string) (domain.RosterEntry, bool) {
	if id == "" {
		return domain.RosterEntry{}, false
	}
	for _, e := range roster {
		if e.ID == id {
			return e, true
		}
	}
	return domain.RosterEntry{}, false
}
