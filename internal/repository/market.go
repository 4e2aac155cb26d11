package repository

import (
	"context"

	"github.com/gridloom/gridloom/internal/domain"
)

// Market defines the interface for marketplace persistence
type Market interface {
	// Listing reads outside any transaction
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
	ListListings(ctx context.Context) ([]domain.Listing, error)

	// Ownership reads used for precondition checks and viewer tagging
	HasInventoryEntry(ctx context.Context, uid, itemID string) (bool, error)
	ListOwnedItemIDs(ctx context.Context, uid string) (map[string]struct{}, error)

	// BeginTx starts an atomic unit for listing mutation
	BeginTx(ctx context.Context) (MarketTx, error)
}

// MarketTx defines the interface for marketplace transactions. Reads that
// feed a mutation decision take row-level locks so two concurrent buys of
// the same listing serialize: the loser observes the deleted listing.
type MarketTx interface {
	Tx

	// GetListingForUpdate locks and returns the listing, or nil when it no
	// longer exists.
	GetListingForUpdate(ctx context.Context, listingID string) (*domain.Listing, error)

	// GetAccountForUpdate locks and returns the account, or nil when absent.
	GetAccountForUpdate(ctx context.Context, uid string) (*domain.Account, error)

	// UpsertCoins sets the coin balance, creating a bare account row when the
	// uid has none. Used for the seller-side credit where the reference
	// behavior treats a missing record as a zero baseline.
	UpsertCoins(ctx context.Context, uid string, coins int64) error

	HasInventoryEntry(ctx context.Context, uid, itemID string) (bool, error)
	InsertInventoryEntry(ctx context.Context, entry domain.InventoryEntry) error
	DeleteInventoryEntry(ctx context.Context, uid, itemID string) error

	HasOpenListing(ctx context.Context, seller, itemID string) (bool, error)
	InsertListing(ctx context.Context, listing domain.Listing) error
	DeleteListing(ctx context.Context, listingID string) error
}
