// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/geliogabalus/pf2e-ratings/models"
)

// RatingSession backs one rating dialog: it loads the entry's histogram and
// the user's existing rating on open, tracks star clicks in memory, and
// commits at most one write when the dialog closes.
//
// A session belongs to a single dialog instance and is not safe for
// concurrent use, matching the single-threaded UI that drives it.
type RatingSession struct {
	ds      *DataSource
	userID  string // empty for anonymous viewers
	entryID string

	histogram models.Histogram
	original  *int
	current   *int
	closed    bool
}

// OpenRatingSession loads the data a rating dialog shows. For an anonymous
// viewer pass an empty userID; the session then never writes.
func OpenRatingSession(ctx context.Context, ds *DataSource, userID, entryID string) (*RatingSession, error) {
	s := &RatingSession{
		ds:      ds,
		userID:  userID,
		entryID: entryID,
	}

	hist, err := ds.GetEntryRatings(ctx, entryID)
	if err != nil {
		return nil, err
	}
	s.histogram = hist

	if userID != "" {
		rating, err := ds.GetUserRating(ctx, userID, entryID)
		if err != nil {
			return nil, err
		}
		s.original = rating
		s.current = rating
	}

	return s, nil
}

// Histogram returns the per-star counts loaded on open.
func (s *RatingSession) Histogram() models.Histogram {
	return s.histogram
}

// Current returns the star value the dialog shows right now.
func (s *RatingSession) Current() *int {
	return s.current
}

// Identified reports whether the session can commit a rating.
func (s *RatingSession) Identified() bool {
	return s.userID != ""
}

// Select records a star click in memory only. No network call happens until
// the session closes.
func (s *RatingSession) Select(star int) error {
	if star < models.MinRating || star > models.MaxRating {
		return fmt.Errorf("star value %d out of range", star)
	}
	v := star
	s.current = &v
	return nil
}

// Close commits the selection if the user is identified and it differs from
// the rating loaded on open; otherwise it commits nothing. A failed commit
// is logged and returned so the UI can tell the user the save did not
// happen, but the session closes either way and nothing retries
// automatically. Closing twice is a no-op.
//
// Commit-on-close keeps write volume down; the trade-off is that a crash
// before close discards the pending selection. That is a documented
// limitation of the design, not a bug.
func (s *RatingSession) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.userID == "" || s.current == nil {
		return nil
	}
	if s.original != nil && *s.original == *s.current {
		return nil
	}

	if err := s.ds.PutUserRating(ctx, s.userID, s.entryID, *s.current); err != nil {
		slog.Error("failed to save rating on close", "error", err, "entry_id", s.entryID)
		return err
	}
	return nil
}

// Closed reports whether Close has run.
func (s *RatingSession) Closed() bool {
	return s.closed
}
