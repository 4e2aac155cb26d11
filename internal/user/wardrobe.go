package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/gridloom/gridloom/internal/catalog"
	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/logger"
)

// EquipItem points the item's slot at the item. Ownership is required for
// store-backed items; the built-in fallback items are wearable by everyone
// so a fresh avatar always renders.
func (s *service) EquipItem(ctx context.Context, uid, itemID string) (domain.EquippedMap, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipItemCalled, "uid", uid, "item", itemID)

	item, err := s.catalog.ResolveItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, fmt.Errorf(ErrMsgItemUnknownFmt, itemID, domain.ErrItemNotFound)
		}
		return nil, fmt.Errorf("failed to resolve item: %w", err)
	}

	if _, isFallback := catalog.FallbackItem(itemID); !isFallback {
		owned, err := s.repo.HasInventoryEntry(ctx, uid, itemID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCheckOwnershipFailed, err)
		}
		if !owned {
			return nil, fmt.Errorf(ErrMsgNotOwnedFmt, itemID, domain.ErrNotOwned)
		}
	}

	equipped, err := s.repo.GetEquipped(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEquippedFailed, err)
	}
	if equipped == nil {
		equipped = domain.EquippedMap{}
	}
	equipped[item.Slot] = itemID

	if err := s.repo.UpsertEquipped(ctx, uid, equipped); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveEquippedFailed, err)
	}

	log.Info(LogMsgItemEquipped, "uid", uid, "item", itemID, "slot", item.Slot)
	return equipped, nil
}

func (s *service) GetEquipped(ctx context.Context, uid string) (domain.EquippedMap, error) {
	equipped, err := s.repo.GetEquipped(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEquippedFailed, err)
	}
	if equipped == nil {
		equipped = domain.EquippedMap{}
	}
	return equipped, nil
}

// GetInventory joins the inventory relation with resolved catalog items.
// Entries whose item resolves nowhere are kept with a nil Item so the owner
// can still see (and sell) the row.
func (s *service) GetInventory(ctx context.Context, uid string) ([]domain.OwnedItem, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGetInventoryCalled, "uid", uid)

	entries, err := s.repo.ListInventory(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
	}

	itemIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		itemIDs = append(itemIDs, e.ItemID)
	}
	items, err := s.catalog.ResolveItems(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owned items: %w", err)
	}

	owned := make([]domain.OwnedItem, 0, len(entries))
	for _, e := range entries {
		oi := domain.OwnedItem{Entry: e}
		if item, ok := items[e.ItemID]; ok {
			resolved := item
			oi.Item = &resolved
		}
		owned = append(owned, oi)
	}
	return owned, nil
}
