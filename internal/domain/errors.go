package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound = "account not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Market errors
	ErrMsgListingNotFound   = "listing no longer exists"
	ErrMsgDuplicateListing  = "item is already listed"
	ErrMsgNotOwned          = "item not in inventory"
	ErrMsgSelfPurchase      = "cannot buy your own listing"
	ErrMsgInsufficientFunds = "not enough coins"
	ErrMsgNotSeller         = "only the seller can cancel a listing"
	ErrMsgInvalidPrice      = "price must be a positive integer"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Store errors
	ErrMsgStoreConflict = "conflicting concurrent update"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Market precondition errors
	ErrListingNotFound   = errors.New(ErrMsgListingNotFound)
	ErrDuplicateListing  = errors.New(ErrMsgDuplicateListing)
	ErrNotOwned          = errors.New(ErrMsgNotOwned)
	ErrSelfPurchase      = errors.New(ErrMsgSelfPurchase)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Authorization errors
	ErrNotSeller = errors.New(ErrMsgNotSeller)

	// Validation errors
	ErrInvalidPrice = errors.New(ErrMsgInvalidPrice)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Store errors. ErrStoreConflict is surfaced when the store aborts an
	// atomic unit because a concurrent unit wrote a document it read. It is
	// never retried automatically; the caller decides.
	ErrStoreConflict = errors.New(ErrMsgStoreConflict)
)
