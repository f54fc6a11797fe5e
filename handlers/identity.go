// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/geliogabalus/pf2e-ratings/middleware"
	"github.com/geliogabalus/pf2e-ratings/models"
	"github.com/geliogabalus/pf2e-ratings/oauth"
	"github.com/geliogabalus/pf2e-ratings/session"
	"github.com/geliogabalus/pf2e-ratings/store"
)

type IdentityHandler struct {
	store    *store.RatingStore
	sessions *session.Store
	gateway  *oauth.Gateway
}

func NewIdentityHandler(s *store.RatingStore, sessions *session.Store, gateway *oauth.Gateway) *IdentityHandler {
	return &IdentityHandler{store: s, sessions: sessions, gateway: gateway}
}

// terminalPage is what the user sees in the browser tab the provider
// redirected. The waiting client learns the outcome through its poll, so the
// page is the same whether or not the exchange succeeded.
const terminalPage = `<!DOCTYPE html>
<html>
<head><title>PF2e Ratings</title></head>
<body>
<p>Authentication complete. You can close this window and return to the game.</p>
</body>
</html>`

// Callback handles GET /oauth2?code&state - the provider redirect.
// On success the state token is linked to the fetched profile for the
// polling client to consume. Failures are logged only: this request comes
// from the provider, not from the waiting client.
func (h *IdentityHandler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")

	if code == "" || state == "" {
		slog.Warn("oauth callback missing code or state", "has_code", code != "", "has_state", state != "")
		renderTerminalPage(w)
		return
	}

	profile, err := h.gateway.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("oauth exchange failed", "error", err)
		renderTerminalPage(w)
		return
	}

	if err := h.store.EnsureUser(r.Context(), profile.ID, profile.Username); err != nil {
		slog.Error("failed to ensure user after exchange", "error", err, "user_id", profile.ID)
		renderTerminalPage(w)
		return
	}

	h.sessions.Put(state, profile)
	slog.Info("identity linked", "user_id", profile.ID)

	renderTerminalPage(w)
}

func renderTerminalPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(terminalPage))
}

// PollProfile handles GET /oauth2/:state - the client's poll for a linked
// profile. The first poll that observes the profile consumes it; every later
// poll for the same token, and any poll before the link completes, gets the
// "not found" body. Both cases are 200: not-linked-yet is the expected
// steady state of an in-progress login, not an error.
func (h *IdentityHandler) PollProfile(w http.ResponseWriter, r *http.Request) {
	state := r.PathValue("state")
	if state == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "state is required")
		return
	}

	profile, err := h.sessions.Consume(state)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			slog.Error("failed to consume session", "error", err)
		}
		middleware.JSONResponse(w, http.StatusOK, models.ErrorResponse{Error: "not found"})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}
