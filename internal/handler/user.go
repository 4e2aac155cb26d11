package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/logger"
	"github.com/gridloom/gridloom/internal/user"
)

// RegisterRequest represents the body of the register request
type RegisterRequest struct {
	UID   string `json:"uid" validate:"required,max=128"`
	Email string `json:"email" validate:"omitempty,email"`
}

// RegisterResponse wraps the account with whether it was newly created
type RegisterResponse struct {
	Account *domain.Account `json:"account"`
	Created bool            `json:"created"`
}

// HandleRegister handles account registration with the starting coin grant
// @Summary Register an account
// @Description Creates the account with its starting coins; repeat calls return the existing account
// @Tags user
// @Accept json
// @Produce json
// @Success 200 {object} RegisterResponse
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Router /user/register [post]
func HandleRegister(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode register request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Register request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		account, created, err := svc.Register(r.Context(), req.UID, req.Email)
		if err != nil {
			log.Error("Failed to register", "error", err, "uid", req.UID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		respondJSON(w, status, RegisterResponse{Account: account, Created: created})
	}
}

// HandleGetAccount returns the account's balance and profile
func HandleGetAccount(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		uid := chi.URLParam(r, "uid")
		if uid == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingUID)
			return
		}

		account, err := svc.GetAccount(r.Context(), uid)
		if err != nil {
			log.Error("Failed to get account", "error", err, "uid", uid)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, account)
	}
}

// UpdateProfileRequest represents the body of the profile update request
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"max=64"`
	Pronouns    string `json:"pronouns" validate:"max=32"`
	Status      string `json:"status" validate:"max=128"`
	Tagline     string `json:"tagline" validate:"max=128"`
	Bio         string `json:"bio" validate:"max=1024"`
	Theme       string `json:"theme" validate:"max=32"`
	Accent      string `json:"accent" validate:"max=32"`
}

// HandleUpdateProfile replaces the account's profile fields
func HandleUpdateProfile(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		uid := chi.URLParam(r, "uid")
		if uid == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingUID)
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode profile request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Profile request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		profile := domain.Profile{
			DisplayName: req.DisplayName,
			Pronouns:    req.Pronouns,
			Status:      req.Status,
			Tagline:     req.Tagline,
			Bio:         req.Bio,
			Theme:       req.Theme,
			Accent:      req.Accent,
		}
		if err := svc.UpdateProfile(r.Context(), uid, profile); err != nil {
			log.Error("Failed to update profile", "error", err, "uid", uid)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Profile updated"})
	}
}

// HandleGetInventory returns the user's inventory joined with resolved items
func HandleGetInventory(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		uid := chi.URLParam(r, "uid")
		if uid == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingUID)
			return
		}

		owned, err := svc.GetInventory(r.Context(), uid)
		if err != nil {
			log.Error("Failed to get inventory", "error", err, "uid", uid)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Debug("Inventory retrieved", "uid", uid, "count", len(owned))
		respondJSON(w, http.StatusOK, owned)
	}
}

// EquipRequest represents the body of the equip request
type EquipRequest struct {
	ItemID string `json:"item_id" validate:"required,max=128"`
}

// EquipResponse returns the full slot map after the change
type EquipResponse struct {
	Equipped domain.EquippedMap `json:"equipped"`
}

// HandleEquipItem points the item's slot at the item
func HandleEquipItem(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		uid := chi.URLParam(r, "uid")
		if uid == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingUID)
			return
		}

		var req EquipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode equip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Equip request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		equipped, err := svc.EquipItem(r.Context(), uid, req.ItemID)
		if err != nil {
			log.Error("Failed to equip item", "error", err, "uid", uid, "item", req.ItemID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, EquipResponse{Equipped: equipped})
	}
}
