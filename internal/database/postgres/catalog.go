package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridloom/gridloom/internal/domain"
)

// CatalogRepository implements the item catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `
		SELECT item_id, display_name, slot, rarity, layers
		FROM items
		WHERE item_id = $1
	`
	item, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

func (r *CatalogRepository) GetItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	items := make(map[string]domain.Item, len(itemIDs))
	if len(itemIDs) == 0 {
		return items, nil
	}

	query := `
		SELECT item_id, display_name, slot, rarity, layers
		FROM items
		WHERE item_id = ANY($1)
	`
	rows, err := r.db.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
		}
		items[item.ID] = *item
	}
	return items, rows.Err()
}

// UpsertItem writes a catalog row, reporting whether it was newly created.
// Used by the startup catalog sync.
func (r *CatalogRepository) UpsertItem(ctx context.Context, item domain.Item) (bool, error) {
	query := `
		INSERT INTO items (item_id, display_name, slot, rarity, layers)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    slot = EXCLUDED.slot,
		    rarity = EXCLUDED.rarity,
		    layers = EXCLUDED.layers
		RETURNING (xmax = 0) AS inserted
	`
	var inserted bool
	err := r.db.QueryRow(ctx, query,
		item.ID, item.DisplayName, item.Slot, string(item.Rarity), item.Layers).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertItem, err)
	}
	return inserted, nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	var rarity string
	if err := row.Scan(&item.ID, &item.DisplayName, &item.Slot, &rarity, &item.Layers); err != nil {
		return nil, err
	}
	item.Rarity = domain.ParseRarity(rarity)
	return &item, nil
}
