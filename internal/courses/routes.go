package courses

import (
	"github.com/gorilla/mux"

	"github.com/Shivansh-sp/eduvisor/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/courses").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.ListCourses).Methods("GET")
	api.HandleFunc("", handler.CreateCourse).Methods("POST")
	api.HandleFunc("/{id}", handler.GetCourse).Methods("GET")
	api.HandleFunc("/{id}", handler.UpdateCourse).Methods("PUT")
	api.HandleFunc("/{id}", handler.DeleteCourse).Methods("DELETE")
}
