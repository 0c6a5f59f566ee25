// internal/courses/handlers.go

package courses

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

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	params := &ListParams{
		Category: r.URL.Query().Get("category"),
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
	if maxFee := r.URL.Query().Get("max_fee"); maxFee != "" {
		if f, err := strconv.ParseFloat(maxFee, 64); err == nil {
			params.MaxFee = f
		}
	}

	result, err := h.service.ListCourses(r.Context(), params)
	if err != nil {
		utils.ErrorResponse(w, "Failed to list courses", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, result, http.StatusOK)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ErrorResponse(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	course, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		if err == ErrCourseNotFound {
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.ErrorResponse(w, "Failed to get course", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, course, http.StatusOK)
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	course, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		utils.ErrorResponse(w, "Failed to create course", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, course, http.StatusCreated)
}

func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ErrorResponse(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	var req UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	course, err := h.service.UpdateCourse(r.Context(), id, &req)
	if err != nil {
		if err == ErrCourseNotFound {
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.ErrorResponse(w, "Failed to update course", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, course, http.StatusOK)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ErrorResponse(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCourse(r.Context(), id); err != nil {
		if err == ErrCourseNotFound {
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.ErrorResponse(w, "Failed to delete course", http.StatusInternalServerError)
		return
	}

	utils.MessageResponse(w, "Course deleted", http.StatusOK)
}

func parseIDParam(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars["id"], 10, 64)
}
