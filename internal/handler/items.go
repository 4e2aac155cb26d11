package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gridloom/gridloom/internal/catalog"
	"github.com/gridloom/gridloom/internal/logger"
)

// HandleGetItem resolves a catalog item, fallback table included
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID := chi.URLParam(r, "itemID")
		if itemID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingItemID)
			return
		}

		item, err := svc.ResolveItem(r.Context(), itemID)
		if err != nil {
			log.Warn("Failed to resolve item", "error", err, "item", itemID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}
