package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gridloom/gridloom/internal/domain"
)

// Type represents the type of an event
type Type string

// Event types published by the marketplace and account services
const (
	ListingCreated  Type = domain.EventTypeListingCreated
	ListingCanceled Type = domain.EventTypeListingCanceled
	ListingSold     Type = domain.EventTypeListingSold
	UserRegistered  Type = domain.EventTypeUserRegistered
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// NewListingSoldEvent builds the post-commit event for a completed purchase
func NewListingSoldEvent(listing domain.Listing, buyer string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ListingSold,
		Payload: domain.ListingSoldPayload{
			ListingID: listing.ID,
			ItemID:    listing.ItemID,
			Seller:    listing.Seller,
			Buyer:     buyer,
			Price:     listing.Price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewListingCreatedEvent builds the post-commit event for a new listing
func NewListingCreatedEvent(listing domain.Listing) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ListingCreated,
		Payload: domain.ListingChangedPayload{
			ListingID: listing.ID,
			ItemID:    listing.ItemID,
			Seller:    listing.Seller,
			Price:     listing.Price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewListingCanceledEvent builds the post-commit event for a canceled listing
func NewListingCanceledEvent(listing domain.Listing) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ListingCanceled,
		Payload: domain.ListingChangedPayload{
			ListingID: listing.ID,
			ItemID:    listing.ItemID,
			Seller:    listing.Seller,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewUserRegisteredEvent builds the event for a fresh account grant
func NewUserRegisteredEvent(uid string, coins int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UserRegistered,
		Payload: domain.UserRegisteredPayload{
			UID:       uid,
			Coins:     coins,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously in subscription order. Callers that must
	// not block on handlers publish through the ResilientPublisher.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
