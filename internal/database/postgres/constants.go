package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeSerializationFailure and PgErrorCodeDeadlockDetected mark
	// transactions that lost a concurrency conflict and must be surfaced,
	// not retried silently
	PgErrorCodeSerializationFailure = "40001"
	PgErrorCodeDeadlockDetected     = "40P01"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Account Operations
const (
	ErrMsgFailedToInsertAccount  = "failed to insert account"
	ErrMsgFailedToGetAccount     = "failed to get account"
	ErrMsgFailedToUpdateProfile  = "failed to update profile"
	ErrMsgFailedToUpdateCoins    = "failed to update coins"
	ErrMsgFailedToListInventory  = "failed to list inventory"
	ErrMsgFailedToCheckInventory = "failed to check inventory"
	ErrMsgFailedToInsertEntry    = "failed to insert inventory entry"
	ErrMsgFailedToDeleteEntry    = "failed to delete inventory entry"
	ErrMsgFailedToGetEquipped    = "failed to get equipped map"
	ErrMsgFailedToSaveEquipped   = "failed to save equipped map"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetItem    = "failed to get item"
	ErrMsgFailedToGetItems   = "failed to get items"
	ErrMsgFailedToUpsertItem = "failed to upsert item"
)

// Error Messages - Listing Operations
const (
	ErrMsgFailedToGetListing    = "failed to get listing"
	ErrMsgFailedToListListings  = "failed to list listings"
	ErrMsgFailedToInsertListing = "failed to insert listing"
	ErrMsgFailedToDeleteListing = "failed to delete listing"
	ErrMsgFailedToCheckListing  = "failed to check for open listing"
)
