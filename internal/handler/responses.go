package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gridloom/gridloom/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer; headers are already written so an
	// encode failure can only be logged
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgAccountNotFoundError = "Account not found"
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgListingNotFoundError = "Listing no longer exists"
	ErrMsgAlreadyListedError   = "That item is already listed"
	ErrMsgNotInInventoryError  = "You don't have that item"
	ErrMsgSelfPurchaseError    = "You cannot buy your own listing"
	ErrMsgNotEnoughCoinsError  = "Not enough coins"
	ErrMsgNotSellerError       = "Only the seller can cancel a listing"
	ErrMsgInvalidPriceError    = "Price must be a positive whole number"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgStoreConflictError   = "The marketplace is busy. Please try again."
)

// mapServiceErrorToUserMessage maps domain errors to user-facing HTTP
// responses. Losing a purchase race surfaces as the listing being gone, the
// same as buying from a stale page.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundError
	case errors.Is(err, domain.ErrDuplicateListing):
		return http.StatusConflict, ErrMsgAlreadyListedError
	case errors.Is(err, domain.ErrNotOwned):
		return http.StatusBadRequest, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrSelfPurchase):
		return http.StatusForbidden, ErrMsgSelfPurchaseError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrNotSeller):
		return http.StatusForbidden, ErrMsgNotSellerError
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, ErrMsgInvalidPriceError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrStoreConflict):
		return http.StatusConflict, ErrMsgStoreConflictError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
