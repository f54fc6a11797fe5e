// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/geliogabalus/pf2e-ratings/auth"
	"github.com/geliogabalus/pf2e-ratings/models"
)

// Polling cadence of the login handshake: one poll every 2 seconds for at
// most 2 minutes, i.e. 60 attempts.
const (
	DefaultPollInterval = 2 * time.Second
	DefaultPollTimeout  = 120 * time.Second
)

// ErrLoginActive is returned when Start is called while a login flow is
// already polling. A second "log in" click must not spawn a second poller.
var ErrLoginActive = errors.New("a login flow is already in progress")

// LoginConfig configures a LoginFlow.
type LoginConfig struct {
	// AuthorizeURL builds the provider authorization page URL for a state
	// token. Typically oauth.Gateway.AuthorizeURL, or a hardcoded template.
	AuthorizeURL func(state string) string

	// OpenURL opens the authorization page in a new browsing context.
	OpenURL func(url string) error

	// PollInterval and PollTimeout override the default cadence (tests).
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// LoginFlow drives the client side of the identity handshake: mint a state
// token, open the provider page, poll until the profile appears or the
// window elapses.
type LoginFlow struct {
	ds     *DataSource
	cfg    LoginConfig
	active atomic.Bool
}

func NewLoginFlow(ds *DataSource, cfg LoginConfig) *LoginFlow {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = DefaultPollTimeout
	}
	return &LoginFlow{ds: ds, cfg: cfg}
}

// Active reports whether a login flow is currently polling.
func (f *LoginFlow) Active() bool {
	return f.active.Load()
}

// Start runs one complete login attempt and blocks until it resolves.
//
// Outcomes:
//   - (profile, nil): the user completed the provider login and the poll
//     consumed the linked profile
//   - (nil, nil): the window elapsed with no profile - the user stays
//     anonymous and the login control becomes available again
//   - (nil, ctx.Err()): the surrounding UI was torn down
//   - (nil, ErrLoginActive): another flow is already polling
func (f *LoginFlow) Start(ctx context.Context) (*models.Profile, error) {
	if !f.active.CompareAndSwap(false, true) {
		return nil, ErrLoginActive
	}
	defer f.active.Store(false)

	state, err := auth.GenerateStateToken()
	if err != nil {
		return nil, err
	}

	if err := f.cfg.OpenURL(f.cfg.AuthorizeURL(state)); err != nil {
		return nil, err
	}

	attempts := int(f.cfg.PollTimeout / f.cfg.PollInterval)
	ticker := time.NewTicker(f.cfg.PollInterval)
	defer ticker.Stop()

	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			profile, err := f.ds.GetLinkedProfile(ctx, state)
			if err != nil {
				// A failed poll counts as a miss; the next tick retries
				slog.Warn("profile poll failed", "error", err)
				continue
			}
			if profile != nil {
				slog.Info("identity linked", "user_id", profile.ID)
				return profile, nil
			}
		}
	}

	// Window elapsed: remain anonymous, not an error
	slog.Info("login window elapsed without a linked profile")
	return nil, nil
}
