// internal/colleges/handlers.go

package colleges

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Shivansh-sp/eduvisor/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListColleges(w http.ResponseWriter, r *http.Request) {
	params := &ListParams{
		State:    r.URL.Query().Get("state"),
		City:     r.URL.Query().Get("city"),
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
		Page:     1,
		Limit:    20,
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil {
			params.Page = p
		}
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			params.Limit = l
		}
	}
	if maxFee := r.URL.Query().Get("max_fee"); maxFee != "" {
		if f, err := strconv.ParseFloat(maxFee, 64); err == nil {
			params.MaxFee = f
		}
	}

	result, err := h.service.ListColleges(r.Context(), params)
	if err != nil {
		utils.ErrorResponse(w, "Failed to list colleges", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, result, http.StatusOK)
}

func (h *Handler) GetCollege(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ErrorResponse(w, "Invalid college ID", http.StatusBadRequest)
		return
	}

	college, err := h.service.GetCollege(r.Context(), id)
	if err != nil {
		if err == ErrCollegeNotFound {
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.ErrorResponse(w, "Failed to get college", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, college, http.StatusOK)
}

func (h *Handler) CreateCollege(w http.ResponseWriter, r *http.Request) {
	var req CreateCollegeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	college, err := h.service.CreateCollege(r.Context(), &req)
	if err != nil {
		utils.ErrorResponse(w, "Failed to create college", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, college, http.StatusCreated)
}

func (h *Handler) UpdateCollege(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ErrorResponse(w, "Invalid college ID", http.StatusBadRequest)
		return
	}

	var req UpdateCollegeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	college, err := h.service.UpdateCollege(r.Context(), id, &req)
	if err != nil {
		if err == ErrCollegeNotFound {
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.ErrorResponse(w, "Failed to update college", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, college, http.StatusOK)
}

func (h *Handler) DeleteCollege(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ErrorResponse(w, "Invalid college ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCollege(r.Context(), id); err != nil {
		if err == ErrCollegeNotFound {
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.ErrorResponse(w, "Failed to delete college", http.StatusInternalServerError)
		return
	}

	utils.MessageResponse(w, "College deleted", http.StatusOK)
}

func parseIDParam(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars["id"], 10, 64)
}
