package user

import (
	"context"
	"time"

	"github.com/gridloom/gridloom/internal/catalog"
	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/event"
	"github.com/gridloom/gridloom/internal/repository"
)

// Service defines the interface for account and wardrobe operations
type Service interface {
	// Register creates the account with its starting coin grant. Registering
	// an existing uid returns the existing account unchanged.
	Register(ctx context.Context, uid, email string) (*domain.Account, bool, error)

	// GetAccount returns balance and profile, served through the cache
	GetAccount(ctx context.Context, uid string) (*domain.Account, error)

	// UpdateProfile replaces the account's profile fields
	UpdateProfile(ctx context.Context, uid string, profile domain.Profile) error

	// EquipItem resolves the item's slot and points the slot at the item.
	// The item must be in the user's inventory or the fallback table.
	EquipItem(ctx context.Context, uid, itemID string) (domain.EquippedMap, error)

	// GetEquipped returns the user's slot map
	GetEquipped(ctx context.Context, uid string) (domain.EquippedMap, error)

	// GetInventory returns inventory entries joined with resolved items
	GetInventory(ctx context.Context, uid string) ([]domain.OwnedItem, error)

	// RefreshAccount drops the cached entry so the next read hits the store.
	// Wired to listing.sold events.
	RefreshAccount(uid string)
}

type service struct {
	repo      repository.Account
	catalog   catalog.Service
	publisher event.Bus
	cache     *accountCache
	now       func() time.Time
}

// Option configures the service
type Option func(*service)

// WithClock overrides the time source, for tests
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithCache overrides cache sizing
func WithCache(size int, ttl time.Duration) Option {
	return func(s *service) { s.cache = newAccountCache(size, ttl) }
}

// NewService creates a new account service. publisher may be nil; the
// service then skips post-commit events.
func NewService(repo repository.Account, catalogSvc catalog.Service, publisher event.Bus, opts ...Option) Service {
	s := &service{
		repo:      repo,
		catalog:   catalogSvc,
		publisher: publisher,
		cache:     newAccountCache(DefaultCacheSize, DefaultCacheTTL),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) RefreshAccount(uid string) {
	s.cache.Invalidate(uid)
}
