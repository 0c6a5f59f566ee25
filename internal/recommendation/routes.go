package recommendation

import (
	"github.com/gorilla/mux"

	"github.com/Shivansh-sp/eduvisor/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/recommendations").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.GetRecommendations).Methods("GET")
	api.HandleFunc("/refresh", handler.RefreshRecommendations).Methods("POST")
	api.HandleFunc("/profile", handler.GetProfile).Methods("GET")
	api.HandleFunc("/profile", handler.UpdateProfile).Methods("PUT")
	api.HandleFunc("/track", handler.TrackBehavior).Methods("POST")
}
