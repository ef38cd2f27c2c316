// Package pages renders the application's HTML with templ components.
package pages

import (
	"fmt"
	"net/url"

	"github.com/a-h/templ"
	"github.com/mmuslimabdulj/modex/internal/domain"
	"github.com/mmuslimabdulj/modex/internal/panel"
)

const appName = "HelDIsrdModex"

var loginFeatures = []struct{ title, blurb string }{
	{"Chats and calls", "Talk in real time"},
	{"Groups and channels", "Build communities"},
	{"Game activity", "Show what you are playing"},
}

var homeFeatures = []struct{ title, blurb string }{
	{"Text chats", "Talk with friends in real time"},
	{"Voice calls", "Crystal clear voice"},
	{"Groups and channels", "Build communities around your interests"},
	{"Game activity", "Show what you are playing"},
}

func pageTitle(title string) string {
	if title == "" {
		return appName
	}
	return title + " · " + appName
}

func panelAction(p domain.Panel) templ.SafeURL {
	return templ.SafeURL("/panel/" + url.PathEscape(string(p)))
}

// peerAction escapes the id as a single path segment, so ids containing
// '/' or '?' still route to the open-conversation handler.
func peerAction(id string) templ.SafeURL {
	return templ.SafeURL("/peer/" + url.PathEscape(id))
}

// Shell renders the sidebar next to the active panel
func Shell(sb panel.Sidebar, v panel.View) (templ.Component, error) {
	body, err := Panel(v)
	if err != nil {
		return nil, err
	}
	return shell(sb, v.Panel, body), nil
}

// Panel picks the component for the view's panel
func Panel(v panel.View) (templ.Component, error) {
	switch {
	case v.Panel == domain.PanelHome && v.Home != nil:
		return Home(*v.Home), nil
	case v.Panel == domain.PanelDirectMessages && v.DirectMessages != nil:
		return DirectMessages(*v.DirectMessages), nil
	case v.Panel == domain.PanelFriends && v.Friends != nil:
		return Friends(*v.Friends), nil
	case (v.Panel == domain.PanelGroups || v.Panel == domain.PanelChannels) && v.Placeholder != nil:
		return Placeholder(*v.Placeholder), nil
	}
	return nil, fmt.Errorf("render %q: %w", v.Panel, domain.ErrUnknownPanel)
}
