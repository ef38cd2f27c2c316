package fixture

import "github.com/mmuslimabdulj/modex/internal/domain"

// DefaultRoster is the built-in presence list
func DefaultRoster() []domain.RosterEntry {
	return []domain.RosterEntry{
		{ID: "1", DisplayName: "ProGamer2077", Presence: domain.PresenceOnline, Activity: "Cyberpunk 2077"},
		{ID: "2", DisplayName: "ShadowNinja", Presence: domain.PresenceOnline, Activity: "CS:GO"},
		{ID: "3", DisplayName: "DragonSlayer", Presence: domain.PresenceIdle, Activity: "Elden Ring"},
		{ID: "4", DisplayName: "MysticMage", Presence: domain.PresenceDoNotDisturb, Activity: "Baldurs Gate 3"},
		{ID: "5", DisplayName: "TechWizard", Presence: domain.PresenceOffline},
	}
}

// DefaultMessages is the built-in mocked conversation
func DefaultMessages() []domain.Message {
	return []domain.Message{
		{ID: "1", AuthorID: "1", AuthorDisplayName: "ProGamer2077", Body: "Who's up for the raid tonight?", SentAt: "18:32"},
		{ID: "2", AuthorID: "2", AuthorDisplayName: "ShadowNinja", Body: "I'm in, let's get a team together!", SentAt: "18:35"},
		{ID: "3", AuthorID: "3", AuthorDisplayName: "DragonSlayer", Body: "I'll tank, we need healers", SentAt: "18:37"},
	}
}
