package domain

import "time"

// InventoryEntry records that a user owns an item. Existence of the entry is
// the ownership relation; an item id appears in at most one user's inventory
// at a time, which the market's buy unit preserves.
type InventoryEntry struct {
	UID        string    `json:"uid"`
	ItemID     string    `json:"item_id"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// OwnedItem is an inventory entry joined with its resolved catalog item for
// display. Item is nil when the id resolves neither in the catalog nor in the
// fallback table; the UI renders such entries degraded rather than hiding them.
type OwnedItem struct {
	Entry InventoryEntry `json:"entry"`
	Item  *Item          `json:"item,omitempty"`
}

// EquippedMap maps slot name to the equipped item id for one user
type EquippedMap map[string]string
