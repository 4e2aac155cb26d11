package repository

import (
	"context"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/logger"
)

// SafeRollback rolls back a transaction, logging any error. Deferring it
// after a successful Commit produces a closed-tx error, which is expected
// and suppressed.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if err.Error() != domain.ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
