// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/geliogabalus/pf2e-ratings/models"
)

// ErrNotFound is returned when no linked profile exists for a state token.
// It is the expected steady state of an in-progress poll, not a failure.
var ErrNotFound = errors.New("session not found")

// DefaultTTL bounds how long an unconsumed session survives.
const DefaultTTL = 10 * time.Minute

const sweepInterval = time.Minute

type entry struct {
	profile   models.Profile
	expiresAt time.Time
}

// Store maps one-time state tokens to linked provider profiles during the
// OAuth handshake. Entries are single-use and evicted after the TTL whether
// or not anyone ever polls for them.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration

	stop chan struct{}
	done chan struct{}
}

// NewStore creates a session store. A ttl of zero selects DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Put links a state token to a fetched profile. Overwrites any previous
// profile for the same token and restarts its TTL.
func (s *Store) Put(state string, profile models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[state] = entry{
		profile:   profile,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Consume atomically returns the profile for a state token and removes it.
// The first successful poll wins; every later call for the same token, and
// any call for an expired token, gets ErrNotFound.
func (s *Store) Consume(state string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[state]
	if !ok {
		return models.Profile{}, ErrNotFound
	}
	delete(s.entries, state)

	// Lazy expiry: the sweeper may not have run yet
	if time.Now().After(e.expiresAt) {
		return models.Profile{}, ErrNotFound
	}

	return e.profile, nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Start launches the background sweep that evicts expired sessions, so
// tokens whose logins never complete do not accumulate. Call Stop to halt it.
func (s *Store) Start() {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-stop:
				return
			}
		}
	}()
}

// Stop halts the background sweep. Safe to call once after Start.
func (s *Store) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop = nil
	s.done = nil
	s.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

func (s *Store) sweep() {
	now := time.Now()

	s.mu.Lock()
	var evicted int
	for state, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, state)
			evicted++
		}
	}
	remaining := len(s.entries)
	s.mu.Unlock()

	if evicted > 0 {
		slog.Info("evicted expired identity sessions", "evicted", evicted, "remaining", remaining)
	}
}
