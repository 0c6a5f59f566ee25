package careers

import (
	"github.com/gorilla/mux"

	"github.com/Shivansh-sp/eduvisor/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/careers").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.ListCareers).Methods("GET")
	api.HandleFunc("", handler.CreateCareer).Methods("POST")
	api.HandleFunc("/{id}", handler.GetCareer).Methods("GET")
	api.HandleFunc("/{id}", handler.UpdateCareer).Methods("PUT")
	api.HandleFunc("/{id}", handler.DeleteCareer).Methods("DELETE")
}
