package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgAccountMissingFmt = "account %s: %w"
	ErrMsgItemUnknownFmt    = "item %s: %w"
	ErrMsgNotOwnedFmt       = "item %s not in inventory: %w"

	ErrMsgCreateAccountFailed  = "failed to create account: %w"
	ErrMsgGetAccountFailed     = "failed to get account: %w"
	ErrMsgUpdateProfileFailed  = "failed to update profile: %w"
	ErrMsgListInventoryFailed  = "failed to list inventory: %w"
	ErrMsgCheckOwnershipFailed = "failed to check ownership: %w"
	ErrMsgGetEquippedFailed    = "failed to get equipped map: %w"
	ErrMsgSaveEquippedFailed   = "failed to save equipped map: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRegisterCalled      = "Register called"
	LogMsgAccountCreated      = "Account created"
	LogMsgAccountExists       = "Account already registered"
	LogMsgGetAccountCalled    = "GetAccount called"
	LogMsgUpdateProfileCalled = "UpdateProfile called"
	LogMsgProfileUpdated      = "Profile updated"
	LogMsgEquipItemCalled     = "EquipItem called"
	LogMsgItemEquipped        = "Item equipped"
	LogMsgGetInventoryCalled  = "GetInventory called"
)
