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

type EntryHandler struct {
	store *store.RatingStore
}

func NewEntryHandler(s *store.RatingStore) *EntryHandler {
	return &EntryHandler{store: s}
}

// ListByCategory handles GET /entry/:category
// Returns every entry in the category with its current average rating.
// An unknown category is an empty listing, not an error.
func (h *EntryHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "category is required")
		return
	}

	items, err := h.store.GetEntriesByCategory(r.Context(), category)
	if err != nil {
		slog.Error("failed to list entries", "error", err, "category", category)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch ratings")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, items)
}

// Register handles POST /entry/:category
// Registers an entry on first sight of an item by a client. Idempotent.
func (h *EntryHandler) Register(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	var req models.RegisterEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Id is required")
		return
	}

	if err := h.store.EnsureEntry(r.Context(), req.ID, category); err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			middleware.ErrorResponse(w, http.StatusBadRequest, verr.Msg)
			return
		}
		slog.Error("failed to register entry", "error", err, "entry_id", req.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add new entry")
		return
	}

	slog.Info("entry registered", "entry_id", req.ID, "category", category)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterEntryResponse{
		Message: "Entry added successfully",
	})
}
