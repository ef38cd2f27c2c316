package auth

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/mmuslimabdulj/modex/internal/domain"
)

// Provider is the external identity service. Both calls may block and fail.
type Provider interface {
	SignIn(ctx context.Context) (*domain.Identity, error)
	SignOut(ctx context.Context, identity *domain.Identity) error
}

// Handle parts for generated gamer names
var handlePrefixes = []string{
	"Shadow", "Pixel", "Turbo", "Neon", "Cyber", "Frost", "Blaze", "Storm",
	"Iron", "Ghost", "Lunar", "Solar", "Rogue", "Hyper", "Void", "Crimson",
	"Silent", "Rapid", "Mystic", "Toxic", "Atomic", "Savage", "Glitch", "Nova",
}

var handleSuffixes = []string{
	"Ninja", "Wizard", "Slayer", "Sniper", "Knight", "Ranger", "Raider", "Hunter",
	"Mage", "Tank", "Healer", "Viking", "Samurai", "Pilot", "Runner", "Dragon",
	"Phoenix", "Wolf", "Falcon", "Golem", "Paladin", "Bard", "Druid", "Monk",
}

var activities = []string{
	"Valorant", "Dota 2", "Minecraft", "Apex Legends", "Fortnite",
	"League of Legends", "Rocket League", "Overwatch 2",
}

// LocalProvider signs visitors in with a generated, unique gamer handle
type LocalProvider struct {
	mu       sync.Mutex
	existing map[string]bool
}

// NewLocalProvider creates a new LocalProvider
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{
		existing: make(map[string]bool),
	}
}

// SignIn creates an identity with a handle no other signed-in visitor holds
func (p *LocalProvider) SignIn(ctx context.Context) (*domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var name string
	maxAttempts := 100

	for i := 0; i < maxAttempts; i++ {
		name = handlePrefixes[rand.Intn(len(handlePrefixes))] + handleSuffixes[rand.Intn(len(handleSuffixes))]

		if !p.existing[name] {
			break
		}

		// Add suffix if still duplicate after max attempts
		if i == maxAttempts-1 {
			name = fmt.Sprintf("%s%d", name, rand.Intn(999))
		}
	}

	p.existing[name] = true
	activity := activities[rand.Intn(len(activities))]

	return domain.NewIdentity(name, activity), nil
}

// SignOut releases the identity's handle
func (p *LocalProvider) SignOut(ctx context.Context, identity *domain.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if identity == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.existing, identity.DisplayName)
	return nil
}

// ActiveCount returns the number of handles in use
func (p *LocalProvider) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.existing)
}
