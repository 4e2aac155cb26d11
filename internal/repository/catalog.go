package repository

import (
	"context"

	"github.com/gridloom/gridloom/internal/domain"
)

// Catalog defines the interface for item catalog persistence
type Catalog interface {
	// GetItem returns the catalog row for the id, or nil when the store has
	// no record. Callers fall back to the built-in table before reporting
	// the item unknown.
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)

	GetItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error)

	// UpsertItem inserts or replaces a catalog row during config sync.
	// Returns true when a new row was created.
	UpsertItem(ctx context.Context, item domain.Item) (bool, error)
}
