// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/geliogabalus/pf2e-ratings/cliparse"
	"github.com/geliogabalus/pf2e-ratings/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// A single connection keeps the memory database alive and mirrors the
// single-writer engine used in production.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              8080,
		DatabaseURL:       ":memory:",
		DatabaseType:      "sqlite",
		OAuthClientID:     "test-client-id",
		OAuthClientSecret: "test-client-secret",
		PublicBaseURL:     "https://ratings.test",
		SessionTTL:        10 * time.Minute,
	}
}

// RandomEntryID returns a compendium-style entry ID unique to this test run
func RandomEntryID() string {
	return "Compendium.pf2e.spells-srd.Item." + uuid.NewString()
}

// CreateTestEntry inserts an entry directly into the database
func CreateTestEntry(t *testing.T, db *sql.DB, id, category string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO entry (id, category) VALUES ($1, $2)
	`, id, category)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}
}

// CreateTestUser inserts a user directly into the database
func CreateTestUser(t *testing.T, db *sql.DB, id, username string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO app_user (id, username) VALUES ($1, $2)
	`, id, username)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestRating inserts a user rating directly into the database
func CreateTestRating(t *testing.T, db *sql.DB, userID, entryID string, rating int) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO user_rating (user_id, entry_id, rating) VALUES ($1, $2, $3)
	`, userID, entryID, rating)
	if err != nil {
		t.Fatalf("Failed to create test rating: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
