package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/logger"
	"github.com/gridloom/gridloom/internal/repository"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItemID = errors.New("duplicate item id")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// Config represents the JSON configuration for the item catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	ID          string         `json:"id"`
	DisplayName string         `json:"display_name"`
	Slot        string         `json:"slot"`
	Rarity      string         `json:"rarity"`
	Layers      []domain.Layer `json:"layers"`
}

// SyncResult contains the result of syncing the catalog to the database
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
}

// Loader handles loading and validating the item catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog) (*SyncResult, error)
}

type itemLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: no items defined", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(config.Items))
	for _, def := range config.Items {
		if def.ID == "" {
			return fmt.Errorf("%w: item with empty id", ErrInvalidConfig)
		}
		if _, dup := seen[def.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateItemID, def.ID)
		}
		seen[def.ID] = struct{}{}

		if def.DisplayName == "" {
			return fmt.Errorf("%w: item %s has no display name", ErrInvalidConfig, def.ID)
		}
		if !domain.IsKnownSlot(def.Slot) {
			return fmt.Errorf("%w: item %s has unknown slot %q", ErrInvalidConfig, def.ID, def.Slot)
		}
		if len(def.Layers) == 0 {
			return fmt.Errorf("%w: item %s has no layers", ErrInvalidConfig, def.ID)
		}
		for _, layer := range def.Layers {
			if layer.Src == "" {
				return fmt.Errorf("%w: item %s has a layer with empty src", ErrInvalidConfig, def.ID)
			}
		}
	}

	return nil
}

// SyncToDatabase upserts the configured items into the catalog table
func (l *itemLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{}

	for _, def := range config.Items {
		item := domain.Item{
			ID:          def.ID,
			DisplayName: def.DisplayName,
			Slot:        def.Slot,
			Rarity:      domain.ParseRarity(def.Rarity),
			Layers:      def.Layers,
		}

		created, err := repo.UpsertItem(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert item %s: %w", def.ID, err)
		}
		if created {
			result.ItemsInserted++
			log.Debug("Catalog item inserted", "item_id", def.ID)
		} else {
			result.ItemsUpdated++
		}
	}

	return result, nil
}
