package catalog

import "github.com/gridloom/gridloom/internal/domain"

// fallbackItems is the built-in substitute for catalog data, keyed by the
// same id space as the store. It covers the default avatar pieces so a fresh
// deployment renders before the catalog has been seeded, and keeps old
// inventories displayable if a catalog row goes missing.
var fallbackItems = map[string]domain.Item{
	"base_default": {
		ID:          "base_default",
		DisplayName: "Base Shell",
		Slot:        domain.SlotBaseBody,
		Rarity:      domain.RarityCommon,
		Layers:      []domain.Layer{{Src: "assets/body/base_default.svg", Z: 10}},
	},
	"eyes_default": {
		ID:          "eyes_default",
		DisplayName: "Default Eyes",
		Slot:        domain.SlotEyes,
		Rarity:      domain.RarityCommon,
		Layers:      []domain.Layer{{Src: "assets/eyes/eyes_default.svg", Z: 30}},
	},
	"hair_001": {
		ID:          "hair_001",
		DisplayName: "Black Hair",
		Slot:        domain.SlotHair,
		Rarity:      domain.RarityCommon,
		Layers:      []domain.Layer{{Src: "assets/hair/hair_001.svg", Z: 20}},
	},
	"top_001": {
		ID:          "top_001",
		DisplayName: "Black Tee",
		Slot:        domain.SlotTop,
		Rarity:      domain.RarityCommon,
		Layers:      []domain.Layer{{Src: "assets/top/top_001.svg", Z: 40}},
	},
	"bottom_001": {
		ID:          "bottom_001",
		DisplayName: "Blue Jeans",
		Slot:        domain.SlotBottom,
		Rarity:      domain.RarityCommon,
		Layers:      []domain.Layer{{Src: "assets/bottom/bottom_001.svg", Z: 50}},
	},
	"acc_001": {
		ID:          "acc_001",
		DisplayName: "Gold Chain",
		Slot:        domain.SlotAccessory1,
		Rarity:      domain.RarityUncommon,
		Layers:      []domain.Layer{{Src: "assets/accessories/acc_001.svg", Z: 35}},
	},
	"acc_002": {
		ID:          "acc_002",
		DisplayName: "Silver Ring",
		Slot:        domain.SlotAccessory2,
		Rarity:      domain.RarityRare,
		Layers:      []domain.Layer{{Src: "assets/accessories/acc_002.svg", Z: 60}},
	},
}

// FallbackItem returns the built-in definition for the id, if one exists
func FallbackItem(itemID string) (*domain.Item, bool) {
	item, ok := fallbackItems[itemID]
	if !ok {
		return nil, false
	}
	// Copy so callers cannot mutate the table
	out := item
	out.Layers = append([]domain.Layer(nil), item.Layers...)
	return &out, true
}
