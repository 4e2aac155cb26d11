package domain

// Event type names published by the market and account services
const (
	EventTypeListingCreated  = "listing.created"
	EventTypeListingCanceled = "listing.canceled"
	EventTypeListingSold     = "listing.sold"
	EventTypeUserRegistered  = "user.registered"
)

// ListingSoldPayload is the typed payload for listing.sold events. Handlers
// use it to refresh the cached balances and owned-id sets of both parties
// after the purchase has committed.
type ListingSoldPayload struct {
	ListingID string `json:"listing_id"`
	ItemID    string `json:"item_id"`
	Seller    string `json:"seller"`
	Buyer     string `json:"buyer"`
	Price     int64  `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// ListingChangedPayload is the typed payload for listing.created and
// listing.canceled events
type ListingChangedPayload struct {
	ListingID string `json:"listing_id"`
	ItemID    string `json:"item_id"`
	Seller    string `json:"seller"`
	Price     int64  `json:"price,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// UserRegisteredPayload is the typed payload for user.registered events
type UserRegisteredPayload struct {
	UID       string `json:"uid"`
	Coins     int64  `json:"coins"`
	Timestamp int64  `json:"timestamp"`
}
