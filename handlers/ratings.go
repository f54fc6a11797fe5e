// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/geliogabalus/pf2e-ratings/middleware"
	"github.com/geliogabalus/pf2e-ratings/models"
	"github.com/geliogabalus/pf2e-ratings/store"
)

type RatingHandler struct {
	store *store.RatingStore
}

func NewRatingHandler(s *store.RatingStore) *RatingHandler {
	return &RatingHandler{store: s}
}

// GetEntryHistogram handles GET /entry/:id/ratings
// Returns the per-star counts for an entry; all-zero when nobody has rated
// it, including entries that were never registered.
func (h *RatingHandler) GetEntryHistogram(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")
	if entryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "entry id is required")
		return
	}

	hist, err := h.store.GetEntryHistogram(r.Context(), entryID)
	if err != nil {
		slog.Error("failed to fetch histogram", "error", err, "entry_id", entryID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch ratings")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, hist)
}

// GetUserRating handles GET /user/:userId/:entryId
// Returns the user's current star value, or a null rating if they have none.
func (h *RatingHandler) GetUserRating(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	entryID := r.PathValue("entryId")
	if userID == "" || entryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id and entry id are required")
		return
	}

	rating, err := h.store.GetUserRating(r.Context(), userID, entryID)
	if err != nil {
		slog.Error("failed to fetch user rating", "error", err, "user_id", userID, "entry_id", entryID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch rating")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserRatingResponse{Rating: rating})
}

// UpsertUserRating handles PUT /user/:userId/:entryId
// Records the user's star value; a later write for the same pair overwrites
// the earlier one. The user row is created lazily on first rating.
func (h *RatingHandler) UpsertUserRating(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	entryID := r.PathValue("entryId")
	if userID == "" || entryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id and entry id are required")
		return
	}

	var req models.UpsertRatingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.EnsureUser(r.Context(), userID, ""); err != nil {
		slog.Error("failed to ensure user", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save rating")
		return
	}

	if err := h.store.UpsertUserRating(r.Context(), userID, entryID, req.Rating); err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			middleware.ErrorResponse(w, http.StatusBadRequest, verr.Msg)
			return
		}
		slog.Error("failed to save rating", "error", err, "user_id", userID, "entry_id", entryID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save rating")
		return
	}

	slog.Info("rating saved", "user_id", userID, "entry_id", entryID, "rating", req.Rating)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Rating saved successfully",
	})
}
