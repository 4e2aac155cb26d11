package market

import (
	"context"
	"fmt"
	"sort"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/logger"
)

func (s *service) BrowseListings(ctx context.Context, viewer string, filter BrowseFilter) ([]domain.ListingView, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgBrowseCalled, "viewer", viewer, "slot", filter.Slot, "sort", filter.Sort)

	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	listings, err := s.repo.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListListingsFailed, err)
	}

	// Resolve every referenced item in one pass; unresolvable ids produce
	// degraded views rather than dropped listings
	itemIDs := make([]string, 0, len(listings))
	for _, l := range listings {
		itemIDs = append(itemIDs, l.ItemID)
	}
	items, err := s.catalog.ResolveItems(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve listed items: %w", err)
	}

	owned := map[string]struct{}{}
	if viewer != "" {
		owned, err = s.catalog.ListOwnedItemIDs(ctx, viewer)
		if err != nil {
			return nil, fmt.Errorf("failed to list owned items: %w", err)
		}
	}

	views := make([]domain.ListingView, 0, len(listings))
	for _, l := range listings {
		view := domain.ListingView{
			Listing:  l,
			IsSeller: viewer != "" && l.Seller == viewer,
		}
		if item, ok := items[l.ItemID]; ok {
			resolved := item
			view.Item = &resolved
		} else {
			view.MissingItem = true
		}
		if _, ok := owned[l.ItemID]; ok {
			view.Owned = true
		}

		if !matchesSlot(view, filter.Slot) {
			continue
		}
		views = append(views, view)
	}

	sortViews(views, filter.Sort)
	return views, nil
}

func validateFilter(filter BrowseFilter) error {
	if filter.Slot != "" && filter.Slot != "all" && !domain.IsKnownSlot(filter.Slot) {
		return fmt.Errorf(ErrMsgUnknownSlotFmt, filter.Slot, domain.ErrInvalidInput)
	}
	if filter.Sort != "" && !domain.IsKnownSort(filter.Sort) {
		return fmt.Errorf(ErrMsgUnknownSortFmt, filter.Sort, domain.ErrInvalidInput)
	}
	return nil
}

func matchesSlot(view domain.ListingView, slot string) bool {
	if slot == "" || slot == "all" {
		return true
	}
	// Listings whose item cannot be resolved have no slot and only show up
	// in the unfiltered view
	return view.Item != nil && view.Item.Slot == slot
}

func sortViews(views []domain.ListingView, order string) {
	switch order {
	case domain.SortPriceAsc:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Listing.Price < views[j].Listing.Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Listing.Price > views[j].Listing.Price
		})
	default: // recent first
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Listing.CreatedAt.After(views[j].Listing.CreatedAt)
		})
	}
}
