package colleges

import (
	"github.com/gorilla/mux"

	"github.com/Shivansh-sp/eduvisor/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/colleges").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.ListColleges).Methods("GET")
	api.HandleFunc("", handler.CreateCollege).Methods("POST")
	api.HandleFunc("/{id}", handler.GetCollege).Methods("GET")
	api.HandleFunc("/{id}", handler.UpdateCollege).Methods("PUT")
	api.HandleFunc("/{id}", handler.DeleteCollege).Methods("DELETE")
}
