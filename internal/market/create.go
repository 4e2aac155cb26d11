package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/event"
	"github.com/gridloom/gridloom/internal/logger"
	"github.com/gridloom/gridloom/internal/metrics"
	"github.com/gridloom/gridloom/internal/repository"
)

func (s *service) CreateListing(ctx context.Context, seller, itemID string, price int64) (*domain.Listing, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateListingCalled, "seller", seller, "item", itemID, "price", price)

	// 1. Validate request
	if price <= 0 {
		return nil, fmt.Errorf(ErrMsgInvalidPriceFmt, price, domain.ErrInvalidPrice)
	}

	// 2. Resolve the item so unknown ids are rejected before any write
	if _, err := s.catalog.ResolveItem(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve item: %w", err)
	}

	// 3. Begin transaction. Ownership check, duplicate check and insert run
	// in one atomic unit so two near-simultaneous creates cannot both land.
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	owned, err := tx.HasInventoryEntry(ctx, seller, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckOwnershipFailed, err)
	}
	if !owned {
		return nil, fmt.Errorf(ErrMsgNotOwnedFmt, itemID, domain.ErrNotOwned)
	}

	dupe, err := tx.HasOpenListing(ctx, seller, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckDuplicateFailed, err)
	}
	if dupe {
		return nil, fmt.Errorf(ErrMsgDuplicateFmt, itemID, domain.ErrDuplicateListing)
	}

	// 4. Insert the listing
	listing := domain.Listing{
		ID:        s.newID(),
		ItemID:    itemID,
		Seller:    seller,
		Price:     price,
		CreatedAt: s.now(),
	}
	if err := tx.InsertListing(ctx, listing); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertListingFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		// The unique (item, seller) constraint can still fire here when a
		// concurrent create slipped between check and commit
		if errors.Is(err, domain.ErrDuplicateListing) {
			return nil, fmt.Errorf(ErrMsgDuplicateFmt, itemID, domain.ErrDuplicateListing)
		}
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ListingsCreated.WithLabelValues(itemID).Inc()

	// 5. Post-commit event, best-effort
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, event.NewListingCreatedEvent(listing))
	}

	log.Info(LogMsgListingCreated, "listing_id", listing.ID, "seller", seller, "item", itemID, "price", price)
	return &listing, nil
}
