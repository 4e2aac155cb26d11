package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridloom/gridloom/internal/domain"
)

// AccountRepository implements the account repository for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetAccount(ctx context.Context, uid string) (*domain.Account, error) {
	query := `
		SELECT uid, email, coins, profile, created_at
		FROM users
		WHERE uid = $1
	`
	var account domain.Account
	err := r.db.QueryRow(ctx, query, uid).Scan(
		&account.UID, &account.Email, &account.Coins, &account.Profile, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return &account, nil
}

// CreateAccount inserts the account row. ON CONFLICT DO NOTHING keeps
// registration idempotent; the command tag tells us whether the row is new.
func (r *AccountRepository) CreateAccount(ctx context.Context, account domain.Account) (bool, error) {
	query := `
		INSERT INTO users (uid, email, coins, profile, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (uid) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query,
		account.UID, account.Email, account.Coins, account.Profile, account.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertAccount, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, uid string, profile domain.Profile) error {
	query := `UPDATE users SET profile = $1 WHERE uid = $2`
	_, err := r.db.Exec(ctx, query, profile, uid)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateProfile, err)
	}
	return nil
}

func (r *AccountRepository) ListInventory(ctx context.Context, uid string) ([]domain.InventoryEntry, error) {
	query := `
		SELECT uid, item_id, acquired_at
		FROM inventory
		WHERE uid = $1
		ORDER BY acquired_at DESC
	`
	rows, err := r.db.Query(ctx, query, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.UID, &e.ItemID, &e.AcquiredAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *AccountRepository) HasInventoryEntry(ctx context.Context, uid, itemID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM inventory WHERE uid = $1 AND item_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, uid, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckInventory, err)
	}
	return exists, nil
}

func (r *AccountRepository) GetEquipped(ctx context.Context, uid string) (domain.EquippedMap, error) {
	query := `SELECT slots FROM equipped WHERE uid = $1`
	var equipped domain.EquippedMap
	err := r.db.QueryRow(ctx, query, uid).Scan(&equipped)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEquipped, err)
	}
	return equipped, nil
}

func (r *AccountRepository) UpsertEquipped(ctx context.Context, uid string, equipped domain.EquippedMap) error {
	query := `
		INSERT INTO equipped (uid, slots)
		VALUES ($1, $2)
		ON CONFLICT (uid) DO UPDATE SET slots = EXCLUDED.slots
	`
	if _, err := r.db.Exec(ctx, query, uid, equipped); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveEquipped, err)
	}
	return nil
}
