package user

import (
	"context"
	"sync"

	"github.com/gridloom/gridloom/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Account for testing
type FakeRepository struct {
	mu        sync.RWMutex
	accounts  map[string]domain.Account
	inventory map[string]map[string]domain.InventoryEntry
	equipped  map[string]domain.EquippedMap

	// GetAccountErr forces account reads to fail when set
	GetAccountErr error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		accounts:  make(map[string]domain.Account),
		inventory: make(map[string]map[string]domain.InventoryEntry),
		equipped:  make(map[string]domain.EquippedMap),
	}
}

func (f *FakeRepository) SeedInventoryEntry(entry domain.InventoryEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inventory[entry.UID] == nil {
		f.inventory[entry.UID] = make(map[string]domain.InventoryEntry)
	}
	f.inventory[entry.UID][entry.ItemID] = entry
}

func (f *FakeRepository) GetAccount(ctx context.Context, uid string) (*domain.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.GetAccountErr != nil {
		return nil, f.GetAccountErr
	}
	a, ok := f.accounts[uid]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *FakeRepository) CreateAccount(ctx context.Context, account domain.Account) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.accounts[account.UID]; exists {
		return false, nil
	}
	f.accounts[account.UID] = account
	return true, nil
}

func (f *FakeRepository) UpdateProfile(ctx context.Context, uid string, profile domain.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := f.accounts[uid]
	a.UID = uid
	a.Profile = profile
	f.accounts[uid] = a
	return nil
}

func (f *FakeRepository) ListInventory(ctx context.Context, uid string) ([]domain.InventoryEntry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]domain.InventoryEntry, 0, len(f.inventory[uid]))
	for _, e := range f.inventory[uid] {
		out = append(out, e)
	}
	return out, nil
}

func (f *FakeRepository) HasInventoryEntry(ctx context.Context, uid, itemID string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.inventory[uid][itemID]
	return ok, nil
}

// ListOwnedItemIDs lets the fake double as the catalog's inventory reader
func (f *FakeRepository) ListOwnedItemIDs(ctx context.Context, uid string) (map[string]struct{}, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]struct{}, len(f.inventory[uid]))
	for id := range f.inventory[uid] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (f *FakeRepository) GetEquipped(ctx context.Context, uid string) (domain.EquippedMap, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	stored, ok := f.equipped[uid]
	if !ok {
		return nil, nil
	}
	out := make(domain.EquippedMap, len(stored))
	for k, v := range stored {
		out[k] = v
	}
	return out, nil
}

func (f *FakeRepository) UpsertEquipped(ctx context.Context, uid string, equipped domain.EquippedMap) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := make(domain.EquippedMap, len(equipped))
	for k, v := range equipped {
		stored[k] = v
	}
	f.equipped[uid] = stored
	return nil
}
