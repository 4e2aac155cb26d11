package market

// ==================== Error Messages ====================

// Formatted error messages for listings
const (
	ErrMsgInvalidPriceFmt   = "invalid price %d: %w"
	ErrMsgNotOwnedFmt       = "item %s not in inventory: %w"
	ErrMsgUnknownItemFmt    = "item %s: %w"
	ErrMsgDuplicateFmt      = "item %s already listed by seller: %w"
	ErrMsgListingGoneFmt    = "listing %s: %w"
	ErrMsgSelfPurchaseFmt   = "listing %s: %w"
	ErrMsgNotSellerFmt      = "listing %s belongs to another seller: %w"
	ErrMsgBuyerMissingFmt   = "buyer %s: %w"
	ErrMsgNotEnoughCoinsFmt = "need %d coins, have %d: %w"
	ErrMsgUnknownSortFmt    = "unknown sort order %q: %w"
	ErrMsgUnknownSlotFmt    = "unknown slot filter %q: %w"
)

// Database operation error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgCheckOwnershipFailed    = "failed to check ownership: %w"
	ErrMsgCheckDuplicateFailed    = "failed to check for duplicate listing: %w"
	ErrMsgReadListingFailed       = "failed to read listing: %w"
	ErrMsgReadAccountFailed       = "failed to read account: %w"
	ErrMsgInsertListingFailed     = "failed to insert listing: %w"
	ErrMsgDeleteListingFailed     = "failed to delete listing: %w"
	ErrMsgMoveInventoryFailed     = "failed to move inventory entry: %w"
	ErrMsgUpdateCoinsFailed       = "failed to update coins: %w"
	ErrMsgListListingsFailed      = "failed to list listings: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCreateListingCalled = "CreateListing called"
	LogMsgListingCreated      = "Listing created"
	LogMsgCancelListingCalled = "CancelListing called"
	LogMsgListingCanceled     = "Listing canceled"
	LogMsgBuyListingCalled    = "BuyListing called"
	LogMsgListingSold         = "Listing sold"
	LogMsgBuyLostRace         = "Buy aborted, listing already gone"
	LogMsgBrowseCalled        = "BrowseListings called"
)
