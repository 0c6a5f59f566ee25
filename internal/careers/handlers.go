// internal/careers/handlers.go

package careers

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

func (h *Handler) ListCareers(w http.ResponseWriter, r *http.Request) {
	params := &ListParams{
		Demand:   r.URL.Query().Get("demand"),
		Industry: r.URL.Query().Get("industry"),
		Search:   r.URL.Query().Get("search"),
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

	result, err := h.service.ListCareers(r.Context(), params)
	if err != nil {
		utils.ErrorResponse(w, "Failed to list careers", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, result, http.StatusOK)
}

func (h *Handler) GetCareer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ErrorResponse(w, "Invalid career ID", http.StatusBadRequest)
		return
	}

	career, err := h.service.GetCareer(r.Context(), id)
	if err != nil {
		if err == ErrCareerNotFound {
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.ErrorResponse(w, "Failed to get career", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, career, http.StatusOK)
}

func (h *Handler) CreateCareer(w http.ResponseWriter, r *http.Request) {
	var req CreateCareerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	career, err := h.service.CreateCareer(r.Context(), &req)
	if err != nil {
		utils.ErrorResponse(w, "Failed to create career", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, career, http.StatusCreated)
}

func (h *Handler) UpdateCareer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ErrorResponse(w, "Invalid career ID", http.StatusBadRequest)
		return
	}

	var req UpdateCareerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	career, err := h.service.UpdateCareer(r.Context(), id, &req)
	if err != nil {
		if err == ErrCareerNotFound {
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.ErrorResponse(w, "Failed to update career", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, career, http.StatusOK)
}

func (h *Handler) DeleteCareer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ErrorResponse(w, "Invalid career ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCareer(r.Context(), id); err != nil {
		if err == ErrCareerNotFound {
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.ErrorResponse(w, "Failed to delete career", http.StatusInternalServerError)
		return
	}

	utils.MessageResponse(w, "Career deleted", http.StatusOK)
}

func parseIDParam(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars["id"], 10, 64)
}
