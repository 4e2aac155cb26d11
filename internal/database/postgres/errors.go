package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gridloom/gridloom/internal/domain"
)

// translateConflict maps PostgreSQL concurrency failures onto the domain
// sentinels the services branch on. Other errors pass through untouched.
func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case PgErrorCodeUniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrDuplicateListing, pgErr.ConstraintName)
	case PgErrorCodeSerializationFailure, PgErrorCodeDeadlockDetected:
		return fmt.Errorf("%w: %s", domain.ErrStoreConflict, pgErr.Code)
	}
	return err
}
