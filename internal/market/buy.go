package market

import (
	"context"
	"fmt"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/event"
	"github.com/gridloom/gridloom/internal/logger"
	"github.com/gridloom/gridloom/internal/metrics"
	"github.com/gridloom/gridloom/internal/repository"
)

func (s *service) BuyListing(ctx context.Context, buyer, listingID string) (*domain.Purchase, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyListingCalled, "buyer", buyer, "listing_id", listingID)

	// 1. Begin the atomic unit. Every precondition is re-checked inside it;
	// state read before BeginTx could be stale by the time we commit.
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 2. Lock the listing. A concurrent buyer that committed first leaves
	// nothing to lock, which is the clean "lost the race" outcome.
	listing, err := tx.GetListingForUpdate(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadListingFailed, err)
	}
	if listing == nil {
		log.Info(LogMsgBuyLostRace, "listing_id", listingID, "buyer", buyer)
		metrics.PurchaseConflicts.Inc()
		return nil, fmt.Errorf(ErrMsgListingGoneFmt, listingID, domain.ErrListingNotFound)
	}

	if listing.Seller == buyer {
		return nil, fmt.Errorf(ErrMsgSelfPurchaseFmt, listingID, domain.ErrSelfPurchase)
	}

	// 3. Check the buyer's funds
	buyerAcct, err := tx.GetAccountForUpdate(ctx, buyer)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadAccountFailed, err)
	}
	if buyerAcct == nil {
		return nil, fmt.Errorf(ErrMsgBuyerMissingFmt, buyer, domain.ErrAccountNotFound)
	}
	if buyerAcct.Coins < listing.Price {
		return nil, fmt.Errorf(ErrMsgNotEnoughCoinsFmt, listing.Price, buyerAcct.Coins, domain.ErrInsufficientFunds)
	}

	// The seller's record may be missing entirely; the credit then starts
	// from a zero baseline rather than failing the purchase.
	sellerCoins := int64(0)
	sellerAcct, err := tx.GetAccountForUpdate(ctx, listing.Seller)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadAccountFailed, err)
	}
	if sellerAcct != nil {
		sellerCoins = sellerAcct.Coins
	}

	// 4. The five effects, all inside the unit
	buyerAfter := buyerAcct.Coins - listing.Price
	sellerAfter := sellerCoins + listing.Price
	transferredAt := s.now()

	if err := tx.UpsertCoins(ctx, buyer, buyerAfter); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateCoinsFailed, err)
	}
	if err := tx.UpsertCoins(ctx, listing.Seller, sellerAfter); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateCoinsFailed, err)
	}
	if err := tx.InsertInventoryEntry(ctx, domain.InventoryEntry{
		UID:        buyer,
		ItemID:     listing.ItemID,
		AcquiredAt: transferredAt,
	}); err != nil {
		return nil, fmt.Errorf(ErrMsgMoveInventoryFailed, err)
	}
	if err := tx.DeleteInventoryEntry(ctx, listing.Seller, listing.ItemID); err != nil {
		return nil, fmt.Errorf(ErrMsgMoveInventoryFailed, err)
	}
	if err := tx.DeleteListing(ctx, listing.ID); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteListingFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.Purchases.WithLabelValues(listing.ItemID).Inc()
	metrics.CoinsTransferred.Add(float64(listing.Price))

	// 5. Post-commit cache refresh rides on this event; its failure never
	// unwinds the committed purchase
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, event.NewListingSoldEvent(*listing, buyer))
	}

	log.Info(LogMsgListingSold,
		"listing_id", listing.ID,
		"item", listing.ItemID,
		"seller", listing.Seller,
		"buyer", buyer,
		"price", listing.Price)

	return &domain.Purchase{
		Listing:       *listing,
		BuyerCoins:    buyerAfter,
		SellerCoins:   sellerAfter,
		TransferredAt: transferredAt,
	}, nil
}
