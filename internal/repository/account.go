package repository

import (
	"context"

	"github.com/gridloom/gridloom/internal/domain"
)

// Account defines the interface for account and wardrobe persistence
type Account interface {
	// GetAccount returns the account, or nil when the uid is unregistered
	GetAccount(ctx context.Context, uid string) (*domain.Account, error)

	// CreateAccount inserts a new account row. Returns false without error
	// when the uid already exists, so registration stays idempotent.
	CreateAccount(ctx context.Context, account domain.Account) (bool, error)

	UpdateProfile(ctx context.Context, uid string, profile domain.Profile) error

	// Inventory and equipped map
	ListInventory(ctx context.Context, uid string) ([]domain.InventoryEntry, error)
	HasInventoryEntry(ctx context.Context, uid, itemID string) (bool, error)
	GetEquipped(ctx context.Context, uid string) (domain.EquippedMap, error)
	UpsertEquipped(ctx context.Context, uid string, equipped domain.EquippedMap) error
}
