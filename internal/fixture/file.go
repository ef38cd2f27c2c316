package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmuslimabdulj/modex/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateID is returned when two roster entries share an ID
	ErrDuplicateID = errors.New("duplicate roster id")
	// ErrEmptyName is returned when a roster entry has no display name
	ErrEmptyName = errors.New("empty display name")
	// ErrEmptyID is returned when a roster entry has no ID
	ErrEmptyID = errors.New("empty roster id")
	// ErrInvalidPresence is returned for a presence outside the known set
	ErrInvalidPresence = errors.New("invalid presence")
)

// File is the on-disk fixture layout
type File struct {
	Roster   []rosterRecord   `yaml:"roster"`
	Messages []domain.Message `yaml:"messages"`
}

type rosterRecord struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Presence    string `yaml:"presence"`
	Activity    string `yaml:"activity,omitempty"`
}

// Sources bundles the two data sources built from one fixture set
type Sources struct {
	Roster       *StaticRoster
	Conversation *StaticConversation
}

// Defaults builds sources from the built-in fixture
func Defaults() *Sources {
	roster, err := NewStaticRoster(DefaultRoster())
	if err != nil {
		// built-in data is fixed; failing here is a programming error
		panic(err)
	}
	return &Sources{
		Roster:       roster,
		Conversation: NewStaticConversation(DefaultMessages()),
	}
}

// Load builds sources from a YAML fixture file, or the defaults when path is empty
func Load(path string) (*Sources, error) {
	if path == "" {
		return Defaults(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	sources, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("fixtures %s: %w", path, err)
	}
	return sources, nil
}

// Decode parses a YAML fixture document
func Decode(r io.Reader) (*Sources, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	entries := make([]domain.RosterEntry, 0, len(file.Roster))
	for i, rec := range file.Roster {
		presence, ok := domain.ParsePresence(rec.Presence)
		if !ok {
			return nil, fmt.Errorf("roster[%d]: %w: %q", i, ErrInvalidPresence, rec.Presence)
		}
		entries = append(entries, domain.RosterEntry{
			ID:          strings.TrimSpace(rec.ID),
			DisplayName: strings.TrimSpace(rec.DisplayName),
			Presence:    presence,
			Activity:    strings.TrimSpace(rec.Activity),
		})
	}

	roster, err := NewStaticRoster(entries)
	if err != nil {
		return nil, err
	}
	return &Sources{
		Roster:       roster,
		Conversation: NewStaticConversation(file.Messages),
	}, nil
}

// ValidateRoster checks ID uniqueness and non-empty fields
func ValidateRoster(entries []domain.RosterEntry) error {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("roster[%d]: %w", i, ErrEmptyID)
		}
		if e.DisplayName == "" {
			return fmt.Errorf("roster[%d] %s: %w", i, e.ID, ErrEmptyName)
		}
		if seen[e.ID] {
			return fmt.Errorf("roster[%d]: %w: %s", i, ErrDuplicateID, e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
