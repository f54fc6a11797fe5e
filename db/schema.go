// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Rateable content items
CREATE TABLE IF NOT EXISTS entry (
    id TEXT PRIMARY KEY,
    category TEXT NOT NULL CHECK (category IN ('spell', 'equipment', 'feat')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_entry_category ON entry(category);

-- Users identified by the OAuth provider's stable account ID.
-- No password column: identity comes from the provider.
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- One row per (user, entry) pair; later writes overwrite earlier ones.
-- Histograms and averages are derived from this table at read time.
CREATE TABLE IF NOT EXISTS user_rating (
    user_id TEXT NOT NULL,
    entry_id TEXT NOT NULL,
    rating INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (user_id, entry_id)
);

CREATE INDEX IF NOT EXISTS idx_user_rating_entry ON user_rating(entry_id);
`
