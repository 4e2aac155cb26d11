package domain

import "time"

// Listing is an open offer to sell one inventory item for a fixed coin price.
// A listing has exactly two states: open (the row exists) and deleted (it
// does not). Cancellation and a successful purchase both end in deletion.
type Listing struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Seller    string    `json:"seller"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// ListingView is a listing decorated for a particular viewer: the resolved
// catalog item (nil when unresolvable), whether the viewer already owns the
// item, and whether the viewer is the seller. The owned flag is cosmetic only.
type ListingView struct {
	Listing     Listing `json:"listing"`
	Item        *Item   `json:"item,omitempty"`
	Owned       bool    `json:"owned"`
	IsSeller    bool    `json:"is_seller"`
	MissingItem bool    `json:"missing_item"`
}

// Purchase is the outcome of a successful buy: the listing that was consumed
// and the buyer's balance after the debit.
type Purchase struct {
	Listing       Listing   `json:"listing"`
	BuyerCoins    int64     `json:"buyer_coins"`
	SellerCoins   int64     `json:"seller_coins"`
	TransferredAt time.Time `json:"transferred_at"`
}

// Listing sort orders accepted by the market browse operation
const (
	SortRecent    = "recent"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// IsKnownSort reports whether sort names a supported listing order
func IsKnownSort(sort string) bool {
	switch sort {
	case SortRecent, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}
