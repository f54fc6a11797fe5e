// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/geliogabalus/pf2e-ratings/handlers"
	"github.com/geliogabalus/pf2e-ratings/middleware"
	"github.com/geliogabalus/pf2e-ratings/oauth"
	"github.com/geliogabalus/pf2e-ratings/session"
	"github.com/geliogabalus/pf2e-ratings/store"
)

func NewRouter(ratingStore *store.RatingStore, sessions *session.Store, gateway *oauth.Gateway) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	entryHandler := handlers.NewEntryHandler(ratingStore)
	ratingHandler := handlers.NewRatingHandler(ratingStore)
	identityHandler := handlers.NewIdentityHandler(ratingStore, sessions, gateway)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Entries and ratings
	mux.HandleFunc("GET /entry/{category}", middleware.WithLogging(entryHandler.ListByCategory))
	mux.HandleFunc("POST /entry/{category}", middleware.WithLogging(entryHandler.Register))
	mux.HandleFunc("GET /entry/{id}/ratings", middleware.WithLogging(ratingHandler.GetEntryHistogram))

	// Per-user ratings
	mux.HandleFunc("GET /user/{userId}/{entryId}", middleware.WithLogging(ratingHandler.GetUserRating))
	mux.HandleFunc("PUT /user/{userId}/{entryId}", middleware.WithLogging(ratingHandler.UpsertUserRating))

	// Identity linking
	mux.HandleFunc("GET /oauth2", middleware.WithLogging(identityHandler.Callback))
	mux.HandleFunc("GET /oauth2/{state}", middleware.WithLogging(identityHandler.PollProfile))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pf2e-ratings API v1"))
	})

	return middleware.CORS(mux)
}
