package market

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gridloom/gridloom/internal/catalog"
	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/event"
	"github.com/gridloom/gridloom/internal/repository"
)

// BrowseFilter narrows and orders the listings returned by BrowseListings
type BrowseFilter struct {
	Slot string // empty or "all" keeps every slot
	Sort string // one of domain.SortRecent, SortPriceAsc, SortPriceDesc; empty means recent
}

// Service defines the interface for marketplace operations. Every operation
// takes the acting identity as an explicit uid; the engine holds no session
// state of its own.
type Service interface {
	// CreateListing puts an owned item up for sale at a fixed positive price
	CreateListing(ctx context.Context, seller, itemID string, price int64) (*domain.Listing, error)

	// CancelListing removes a listing. Only the seller may cancel.
	CancelListing(ctx context.Context, requester, listingID string) error

	// BuyListing atomically transfers coins and item ownership and removes
	// the listing. When two buyers race, exactly one succeeds; the other
	// gets domain.ErrListingNotFound.
	BuyListing(ctx context.Context, buyer, listingID string) (*domain.Purchase, error)

	// BrowseListings returns listings decorated for the viewer
	BrowseListings(ctx context.Context, viewer string, filter BrowseFilter) ([]domain.ListingView, error)
}

type service struct {
	repo      repository.Market
	catalog   catalog.Service
	publisher event.Bus
	now       func() time.Time
	newID     func() string
}

// Option configures the service
type Option func(*service)

// WithClock overrides the time source, for tests
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithIDGenerator overrides listing id generation, for tests
func WithIDGenerator(newID func() string) Option {
	return func(s *service) { s.newID = newID }
}

// NewService creates a new marketplace service. publisher may be nil; the
// service then skips post-commit events.
func NewService(repo repository.Market, catalogSvc catalog.Service, publisher event.Bus, opts ...Option) Service {
	s := &service{
		repo:      repo,
		catalog:   catalogSvc,
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
