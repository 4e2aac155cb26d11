package repository

import "context"

// Tx defines the interface for transactional operations. A Tx is an atomic
// unit against the store: every write issued through it becomes visible at
// Commit or not at all, reads within the unit are consistent, and a write
// conflict with a concurrent unit aborts the transaction with
// domain.ErrStoreConflict instead of corrupting state.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
