package catalog

import (
	"context"

	"github.com/gridloom/gridloom/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Catalog for testing. It lives in this package so catalog tests
// do not need a database.
type FakeRepository struct {
	items map[string]domain.Item

	// GetItemErr forces reads to fail when set
	GetItemErr error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{items: make(map[string]domain.Item)}
}

func (f *FakeRepository) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	if f.GetItemErr != nil {
		return nil, f.GetItemErr
	}
	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *FakeRepository) GetItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	if f.GetItemErr != nil {
		return nil, f.GetItemErr
	}
	out := make(map[string]domain.Item)
	for _, id := range itemIDs {
		if item, ok := f.items[id]; ok {
			out[id] = item
		}
	}
	return out, nil
}

func (f *FakeRepository) UpsertItem(ctx context.Context, item domain.Item) (bool, error) {
	_, exists := f.items[item.ID]
	f.items[item.ID] = item
	return !exists, nil
}

// fakeInventoryReader returns a fixed owned-id set per uid
type fakeInventoryReader struct {
	owned map[string]map[string]struct{}
}

func (f *fakeInventoryReader) ListOwnedItemIDs(ctx context.Context, uid string) (map[string]struct{}, error) {
	ids, ok := f.owned[uid]
	if !ok {
		return map[string]struct{}{}, nil
	}
	return ids, nil
}
