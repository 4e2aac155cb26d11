package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gridloom/gridloom/internal/catalog"
	"github.com/gridloom/gridloom/internal/repository"
)

// SyncCatalog loads the item catalog from its JSON config, validates it, and
// syncs it into the database. Items already present are updated in place so a
// restart always serves the current catalog.
func SyncCatalog(ctx context.Context, repo repository.Catalog, path string) error {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	loader := catalog.NewLoader()

	cfg, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := loader.Validate(cfg); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	result, err := loader.SyncToDatabase(ctx, cfg, repo)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if result.ItemsInserted == 0 && result.ItemsUpdated == 0 {
		slog.Info(LogMsgCatalogUnchanged)
		return nil
	}

	slog.Info(LogMsgCatalogSynced,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated)

	return nil
}
