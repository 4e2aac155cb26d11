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

func (s *service) CancelListing(ctx context.Context, requester, listingID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCancelListingCalled, "requester", requester, "listing_id", listingID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	listing, err := tx.GetListingForUpdate(ctx, listingID)
	if err != nil {
		return fmt.Errorf(ErrMsgReadListingFailed, err)
	}
	if listing == nil {
		return fmt.Errorf(ErrMsgListingGoneFmt, listingID, domain.ErrListingNotFound)
	}

	// Authorization is enforced here, not in the client: only the seller may
	// cancel. No balance or inventory rows are touched.
	if listing.Seller != requester {
		return fmt.Errorf(ErrMsgNotSellerFmt, listingID, domain.ErrNotSeller)
	}

	if err := tx.DeleteListing(ctx, listingID); err != nil {
		return fmt.Errorf(ErrMsgDeleteListingFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ListingsCanceled.Inc()

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, event.NewListingCanceledEvent(*listing))
	}

	log.Info(LogMsgListingCanceled, "listing_id", listingID, "seller", requester)
	return nil
}
