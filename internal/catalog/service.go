package catalog

import (
	"context"
	"fmt"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/logger"
	"github.com/gridloom/gridloom/internal/repository"
)

// Service defines the interface for catalog and inventory reads
type Service interface {
	// ResolveItem looks up an item in the store, then in the built-in
	// fallback table. A miss in both returns domain.ErrItemNotFound; callers
	// treat that as "unknown item, display degraded", not a hard failure.
	ResolveItem(ctx context.Context, itemID string) (*domain.Item, error)

	// ResolveItems resolves a batch of ids in one store round trip. Ids that
	// resolve nowhere are simply absent from the result.
	ResolveItems(ctx context.Context, itemIDs []string) (map[string]domain.Item, error)

	// ListOwnedItemIDs enumerates the user's inventory relation. Used to tag
	// listings the viewer already owns; cosmetic, never an access-control
	// signal.
	ListOwnedItemIDs(ctx context.Context, uid string) (map[string]struct{}, error)
}

// InventoryReader is the narrow slice of the market repository the catalog
// needs for ownership enumeration
type InventoryReader interface {
	ListOwnedItemIDs(ctx context.Context, uid string) (map[string]struct{}, error)
}

type service struct {
	repo      repository.Catalog
	inventory InventoryReader
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog, inventory InventoryReader) Service {
	return &service{repo: repo, inventory: inventory}
}

func (s *service) ResolveItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item != nil {
		return item, nil
	}

	if fb, ok := FallbackItem(itemID); ok {
		logger.FromContext(ctx).Debug("Item resolved from fallback table", "item_id", itemID)
		return fb, nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
}

func (s *service) ResolveItems(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	if len(itemIDs) == 0 {
		return map[string]domain.Item{}, nil
	}

	resolved, err := s.repo.GetItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	for _, id := range itemIDs {
		if _, ok := resolved[id]; ok {
			continue
		}
		if fb, found := FallbackItem(id); found {
			resolved[id] = *fb
		}
	}

	return resolved, nil
}

func (s *service) ListOwnedItemIDs(ctx context.Context, uid string) (map[string]struct{}, error) {
	owned, err := s.inventory.ListOwnedItemIDs(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned items: %w", err)
	}
	return owned, nil
}
