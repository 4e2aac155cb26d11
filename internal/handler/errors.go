package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest = "Invalid request body"

	// Path parameter error messages
	ErrMsgMissingUID       = "Missing uid path parameter"
	ErrMsgMissingItemID    = "Missing item id path parameter"
	ErrMsgMissingListingID = "Missing listing id path parameter"

	// Query parameter error messages
	ErrMsgInvalidSlotFilter = "Invalid slot filter"
	ErrMsgInvalidSortOrder  = "Invalid sort order. Valid options: recent, price-asc, price-desc"

	// Account operation error messages
	ErrMsgRegisterFailed      = "Failed to register"
	ErrMsgGetAccountFailed    = "Failed to get account"
	ErrMsgUpdateProfileFailed = "Failed to update profile"
	ErrMsgGetInventoryFailed  = "Failed to get inventory"
	ErrMsgEquipItemFailed     = "Failed to equip item"

	// Market operation error messages
	ErrMsgCreateListingFailed = "Failed to create listing"
	ErrMsgCancelListingFailed = "Failed to cancel listing"
	ErrMsgBuyListingFailed    = "Failed to buy listing"
	ErrMsgBrowseFailed        = "Failed to browse listings"

	// Item operation error messages
	ErrMsgGetItemFailed = "Failed to get item"
)
