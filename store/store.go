// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/geliogabalus/pf2e-ratings/models"
)

// RatingStore persists entries, users, and per-user ratings. Histograms and
// averages are derived from user_rating rows at read time, so the per-entry
// bucket sum always equals the number of raters.
type RatingStore struct {
	db *sql.DB
}

func New(db *sql.DB) *RatingStore {
	return &RatingStore{db: db}
}

// EnsureEntry registers an entry if it does not exist yet. Idempotent: a
// second call with the same id is a no-op, and the category set on first
// sight is never changed.
func (s *RatingStore) EnsureEntry(ctx context.Context, id, category string) error {
	if id == "" {
		return &ValidationError{Msg: "entry id is required"}
	}
	if !models.ValidCategory(category) {
		return &ValidationError{Msg: fmt.Sprintf("unknown category %q", category)}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entry (id, category)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`, id, category)
	if err != nil {
		slog.Error("failed to insert entry", "error", err, "entry_id", id)
		return &StorageError{Op: "ensure entry", Err: err}
	}

	return nil
}

// GetEntriesByCategory returns every entry in the category keyed by id,
// each with its current average rating (nil when unrated). An unknown
// category yields an empty map, not an error.
func (s *RatingStore) GetEntriesByCategory(ctx context.Context, category string) (map[string]models.RatingItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, AVG(ur.rating)
		FROM entry e
		LEFT JOIN user_rating ur ON ur.entry_id = e.id
		WHERE e.category = $1
		GROUP BY e.id
	`, category)
	if err != nil {
		slog.Error("failed to query entries", "error", err, "category", category)
		return nil, &StorageError{Op: "get entries by category", Err: err}
	}
	defer rows.Close()

	items := make(map[string]models.RatingItem)
	for rows.Next() {
		var id string
		var avg sql.NullFloat64
		if err := rows.Scan(&id, &avg); err != nil {
			slog.Error("failed to scan entry row", "error", err)
			return nil, &StorageError{Op: "get entries by category", Err: err}
		}
		item := models.RatingItem{ID: id}
		if avg.Valid {
			item.Rating = &avg.Float64
		}
		items[id] = item
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "get entries by category", Err: err}
	}

	return items, nil
}

// GetEntryHistogram returns the per-star rating counts for an entry. An
// entry with no ratings, including one that was never registered, yields an
// all-zero histogram rather than an error.
func (s *RatingStore) GetEntryHistogram(ctx context.Context, entryID string) (models.Histogram, error) {
	var hist models.Histogram

	rows, err := s.db.QueryContext(ctx, `
		SELECT rating, COUNT(*)
		FROM user_rating
		WHERE entry_id = $1
		GROUP BY rating
	`, entryID)
	if err != nil {
		slog.Error("failed to query histogram", "error", err, "entry_id", entryID)
		return hist, &StorageError{Op: "get entry histogram", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var star, count int
		if err := rows.Scan(&star, &count); err != nil {
			slog.Error("failed to scan histogram row", "error", err)
			return hist, &StorageError{Op: "get entry histogram", Err: err}
		}
		if star >= models.MinRating && star <= models.MaxRating {
			hist[star] = count
		}
	}
	if err := rows.Err(); err != nil {
		return hist, &StorageError{Op: "get entry histogram", Err: err}
	}

	return hist, nil
}

// GetUserRating returns the user's current star value for an entry, or nil
// if they have not rated it.
func (s *RatingStore) GetUserRating(ctx context.Context, userID, entryID string) (*int, error) {
	var rating int
	err := s.db.QueryRowContext(ctx, `
		SELECT rating FROM user_rating
		WHERE user_id = $1 AND entry_id = $2
	`, userID, entryID).Scan(&rating)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		slog.Error("failed to query user rating", "error", err, "user_id", userID, "entry_id", entryID)
		return nil, &StorageError{Op: "get user rating", Err: err}
	}

	return &rating, nil
}

// UpsertUserRating records the user's current star value for an entry.
// Last write wins on the (user_id, entry_id) key; the insert-or-update is a
// single statement, so concurrent raters cannot lose updates.
func (s *RatingStore) UpsertUserRating(ctx context.Context, userID, entryID string, rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return &ValidationError{Msg: fmt.Sprintf("rating must be between %d and %d", models.MinRating, models.MaxRating)}
	}
	if userID == "" || entryID == "" {
		return &ValidationError{Msg: "user id and entry id are required"}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_rating (user_id, entry_id, rating, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, entry_id)
		DO UPDATE SET rating = excluded.rating, updated_at = CURRENT_TIMESTAMP
	`, userID, entryID, rating)
	if err != nil {
		slog.Error("failed to upsert user rating", "error", err, "user_id", userID, "entry_id", entryID)
		return &StorageError{Op: "upsert user rating", Err: err}
	}

	return nil
}

// EnsureUser creates the user on first sight and refreshes the display name
// on every later call. Idempotent. An empty username never clobbers a stored
// one - the lazy creation on the rating path has no profile to offer.
func (s *RatingStore) EnsureUser(ctx context.Context, id, username string) error {
	if id == "" {
		return &ValidationError{Msg: "user id is required"}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_user (id, username)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET username =
			CASE WHEN excluded.username = '' THEN app_user.username ELSE excluded.username END
	`, id, username)
	if err != nil {
		slog.Error("failed to upsert user", "error", err, "user_id", id)
		return &StorageError{Op: "ensure user", Err: err}
	}

	return nil
}

// CountEntryRatings returns how many users currently have a rating for the
// entry.
func (s *RatingStore) CountEntryRatings(ctx context.Context, entryID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM user_rating WHERE entry_id = $1
	`, entryID).Scan(&count)
	if err != nil {
		slog.Error("failed to count entry ratings", "error", err, "entry_id", entryID)
		return 0, &StorageError{Op: "count entry ratings", Err: err}
	}
	return count, nil
}
