// internal/recommendation/handlers.go

package recommendation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Shivansh-sp/eduvisor/internal/auth"
	"github.com/Shivansh-sp/eduvisor/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	response, err := h.service.GetRecommendations(r.Context(), userID)
	if err != nil {
		utils.ErrorResponse(w, "Failed to generate recommendations", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, response, http.StatusOK)
}

func (h *Handler) RefreshRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	response, err := h.service.RefreshRecommendations(r.Context(), userID)
	if err != nil {
		utils.ErrorResponse(w, "Failed to refresh recommendations", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, response, http.StatusOK)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.service.GetOrCreateProfile(r.Context(), userID)
	if err != nil {
		utils.ErrorResponse(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, profile, http.StatusOK)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrProfileConflict) {
			utils.ErrorResponse(w, "Profile was modified by another request, please retry", http.StatusConflict)
			return
		}
		utils.ErrorResponse(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, response, http.StatusOK)
}

func (h *Handler) TrackBehavior(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req TrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.TrackBehavior(r.Context(), userID, &req); err != nil {
		utils.ErrorResponse(w, "Failed to track behavior", http.StatusInternalServerError)
		return
	}

	utils.MessageResponse(w, "Behavior tracked", http.StatusOK)
}
