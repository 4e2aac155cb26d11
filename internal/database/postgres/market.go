package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/repository"
)

// MarketRepository implements the marketplace repository for PostgreSQL.
// Writes go through marketTx so the purchase effects commit as one unit.
type MarketRepository struct {
	db *pgxpool.Pool
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

func (r *MarketRepository) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	query := `
		SELECT listing_id, item_id, seller, price, created_at
		FROM listings
		WHERE listing_id = $1
	`
	listing, err := scanListing(r.db.QueryRow(ctx, query, listingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetListing, err)
	}
	return listing, nil
}

func (r *MarketRepository) ListListings(ctx context.Context) ([]domain.Listing, error) {
	query := `
		SELECT listing_id, item_id, seller, price, created_at
		FROM listings
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListListings, err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListListings, err)
		}
		listings = append(listings, *listing)
	}
	return listings, rows.Err()
}

func (r *MarketRepository) HasInventoryEntry(ctx context.Context, uid, itemID string) (bool, error) {
	return hasInventoryEntry(ctx, r.db, uid, itemID)
}

func (r *MarketRepository) ListOwnedItemIDs(ctx context.Context, uid string) (map[string]struct{}, error) {
	query := `SELECT item_id FROM inventory WHERE uid = $1`
	rows, err := r.db.Query(ctx, query, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	defer rows.Close()

	owned := make(map[string]struct{})
	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
		}
		owned[itemID] = struct{}{}
	}
	return owned, rows.Err()
}

func (r *MarketRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &marketTx{tx: tx}, nil
}

// marketTx wraps a pgx transaction. Row locks taken by the ForUpdate reads
// hold until Commit or Rollback, which is what serializes racing buyers.
type marketTx struct {
	tx pgx.Tx
}

func (t *marketTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return translateConflict(err)
	}
	return nil
}

func (t *marketTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *marketTx) GetListingForUpdate(ctx context.Context, listingID string) (*domain.Listing, error) {
	query := `
		SELECT listing_id, item_id, seller, price, created_at
		FROM listings
		WHERE listing_id = $1
		FOR UPDATE
	`
	listing, err := scanListing(t.tx.QueryRow(ctx, query, listingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateConflict(fmt.Errorf("%s: %w", ErrMsgFailedToGetListing, err))
	}
	return listing, nil
}

func (t *marketTx) GetAccountForUpdate(ctx context.Context, uid string) (*domain.Account, error) {
	query := `
		SELECT uid, email, coins, profile, created_at
		FROM users
		WHERE uid = $1
		FOR UPDATE
	`
	var account domain.Account
	err := t.tx.QueryRow(ctx, query, uid).Scan(
		&account.UID, &account.Email, &account.Coins, &account.Profile, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateConflict(fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err))
	}
	return &account, nil
}

// UpsertCoins sets the balance, creating the row when the account record is
// missing (a seller can be paid into a fresh row).
func (t *marketTx) UpsertCoins(ctx context.Context, uid string, coins int64) error {
	query := `
		INSERT INTO users (uid, coins)
		VALUES ($1, $2)
		ON CONFLICT (uid) DO UPDATE SET coins = EXCLUDED.coins
	`
	if _, err := t.tx.Exec(ctx, query, uid, coins); err != nil {
		return translateConflict(fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCoins, err))
	}
	return nil
}

func (t *marketTx) HasInventoryEntry(ctx context.Context, uid, itemID string) (bool, error) {
	return hasInventoryEntry(ctx, t.tx, uid, itemID)
}

func (t *marketTx) InsertInventoryEntry(ctx context.Context, entry domain.InventoryEntry) error {
	query := `
		INSERT INTO inventory (uid, item_id, acquired_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid, item_id) DO UPDATE SET acquired_at = EXCLUDED.acquired_at
	`
	if _, err := t.tx.Exec(ctx, query, entry.UID, entry.ItemID, entry.AcquiredAt); err != nil {
		return translateConflict(fmt.Errorf("%s: %w", ErrMsgFailedToInsertEntry, err))
	}
	return nil
}

func (t *marketTx) DeleteInventoryEntry(ctx context.Context, uid, itemID string) error {
	query := `DELETE FROM inventory WHERE uid = $1 AND item_id = $2`
	if _, err := t.tx.Exec(ctx, query, uid, itemID); err != nil {
		return translateConflict(fmt.Errorf("%s: %w", ErrMsgFailedToDeleteEntry, err))
	}
	return nil
}

func (t *marketTx) HasOpenListing(ctx context.Context, seller, itemID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM listings WHERE seller = $1 AND item_id = $2)`
	var exists bool
	if err := t.tx.QueryRow(ctx, query, seller, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckListing, err)
	}
	return exists, nil
}

func (t *marketTx) InsertListing(ctx context.Context, listing domain.Listing) error {
	query := `
		INSERT INTO listings (listing_id, item_id, seller, price, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := t.tx.Exec(ctx, query,
		listing.ID, listing.ItemID, listing.Seller, listing.Price, listing.CreatedAt)
	if err != nil {
		return translateConflict(fmt.Errorf("%s: %w", ErrMsgFailedToInsertListing, err))
	}
	return nil
}

func (t *marketTx) DeleteListing(ctx context.Context, listingID string) error {
	query := `DELETE FROM listings WHERE listing_id = $1`
	if _, err := t.tx.Exec(ctx, query, listingID); err != nil {
		return translateConflict(fmt.Errorf("%s: %w", ErrMsgFailedToDeleteListing, err))
	}
	return nil
}

// querier covers both the pool and an open transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func hasInventoryEntry(ctx context.Context, q querier, uid, itemID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM inventory WHERE uid = $1 AND item_id = $2)`
	var exists bool
	if err := q.QueryRow(ctx, query, uid, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckInventory, err)
	}
	return exists, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var listing domain.Listing
	if err := row.Scan(&listing.ID, &listing.ItemID, &listing.Seller, &listing.Price, &listing.CreatedAt); err != nil {
		return nil, err
	}
	return &listing, nil
}
