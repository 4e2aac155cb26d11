package domain

// Item is a static catalog entry. Catalog entries are seeded from the JSON
// config and never mutated by user actions; they are referenced by id from
// inventories, equipped maps and listings.
type Item struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Slot        string  `json:"slot"`
	Rarity      Rarity  `json:"rarity"`
	Layers      []Layer `json:"layers"`
}

// Layer is one sprite in an item's layer stack. Lower Z values are drawn
// first, so the highest Z ends up on top.
type Layer struct {
	Src string `json:"src"`
	Z   int    `json:"z"`
}

// Rarity represents the visual rarity tier of an item
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityUnknown  Rarity = "unknown"
)

// ParseRarity maps a stored rarity string to a known tier, falling back to
// RarityUnknown for anything unrecognized so stale catalog rows still render.
func ParseRarity(s string) Rarity {
	switch Rarity(s) {
	case RarityCommon, RarityUncommon, RarityRare:
		return Rarity(s)
	default:
		return RarityUnknown
	}
}

// Equipment slot names used by the avatar renderer. A user's equipped map
// holds at most one item id per slot.
const (
	SlotBaseBody   = "baseBody"
	SlotEyes       = "eyes"
	SlotHair       = "hair"
	SlotTop        = "top"
	SlotBottom     = "bottom"
	SlotAccessory1 = "accessory1"
	SlotAccessory2 = "accessory2"
)

// KnownSlots lists every slot the renderer understands, used by request
// validation for the market slot filter.
var KnownSlots = []string{
	SlotBaseBody,
	SlotEyes,
	SlotHair,
	SlotTop,
	SlotBottom,
	SlotAccessory1,
	SlotAccessory2,
}

// IsKnownSlot reports whether slot names an equipment position
func IsKnownSlot(slot string) bool {
	for _, s := range KnownSlots {
		if s == slot {
			return true
		}
	}
	return false
}
