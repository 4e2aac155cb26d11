package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gridloom/gridloom/internal/logger"
	"github.com/gridloom/gridloom/internal/market"
)

// BrowseQuery represents the accepted listing query parameters
type BrowseQuery struct {
	Slot string `validate:"slot"`
	Sort string `validate:"listingsort"`
}

// HandleBrowseListings returns open listings decorated for the viewer.
// viewer is passed as the optional ?viewer= query parameter; anonymous
// browsing gets no ownership tags.
func HandleBrowseListings(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		query := BrowseQuery{
			Slot: r.URL.Query().Get("slot"),
			Sort: r.URL.Query().Get("sort"),
		}
		if err := GetValidator().ValidateStruct(query); err != nil {
			log.Warn("Browse query failed validation", "slot", query.Slot, "sort", query.Sort)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		viewer := r.URL.Query().Get("viewer")
		views, err := svc.BrowseListings(r.Context(), viewer, market.BrowseFilter{
			Slot: query.Slot,
			Sort: query.Sort,
		})
		if err != nil {
			log.Error("Failed to browse listings", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Debug("Listings retrieved", "count", len(views))
		respondJSON(w, http.StatusOK, views)
	}
}

// CreateListingRequest represents the body of the create listing request
type CreateListingRequest struct {
	Seller string `json:"seller" validate:"required,max=128"`
	ItemID string `json:"item_id" validate:"required,max=128"`
	Price  int64  `json:"price" validate:"required,gt=0"`
}

// HandleCreateListing puts an owned item up for sale
// @Summary Create a listing
// @Description Lists an owned item for a fixed coin price
// @Tags market
// @Accept json
// @Produce json
// @Success 201 {object} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /market/listings [post]
func HandleCreateListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create listing request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Create listing request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		listing, err := svc.CreateListing(r.Context(), req.Seller, req.ItemID, req.Price)
		if err != nil {
			log.Error("Failed to create listing", "error", err, "seller", req.Seller, "item", req.ItemID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, listing)
	}
}

// CancelListingRequest carries the acting identity for a cancel
type CancelListingRequest struct {
	Requester string `json:"requester" validate:"required,max=128"`
}

// HandleCancelListing removes a listing; only the seller may cancel
func HandleCancelListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		listingID := chi.URLParam(r, "listingID")
		if listingID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingListingID)
			return
		}

		var req CancelListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode cancel listing request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Cancel listing request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		if err := svc.CancelListing(r.Context(), req.Requester, listingID); err != nil {
			log.Error("Failed to cancel listing", "error", err, "listing_id", listingID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Listing canceled"})
	}
}

// BuyListingRequest carries the acting identity for a purchase
type BuyListingRequest struct {
	Buyer string `json:"buyer" validate:"required,max=128"`
}

// HandleBuyListing executes the atomic purchase
// @Summary Buy a listing
// @Description Transfers coins and item ownership atomically; a lost race reads as the listing being gone
// @Tags market
// @Accept json
// @Produce json
// @Success 200 {object} domain.Purchase
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /market/listings/{listingID}/buy [post]
func HandleBuyListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		listingID := chi.URLParam(r, "listingID")
		if listingID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingListingID)
			return
		}

		var req BuyListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode buy listing request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Buy listing request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		purchase, err := svc.BuyListing(r.Context(), req.Buyer, listingID)
		if err != nil {
			log.Error("Failed to buy listing", "error", err, "listing_id", listingID, "buyer", req.Buyer)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, purchase)
	}
}
