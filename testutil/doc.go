// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides shared helpers for tests.

# Database

SetupTestDB returns an in-memory SQLite database with the full schema
applied, capped at one connection so the memory database persists for the
test's lifetime:

	db := testutil.SetupTestDB(t)
	defer db.Close()

# Seeding

CreateTestEntry, CreateTestUser, and CreateTestRating insert rows directly,
bypassing the store, so store behavior can be asserted against known state.
RandomEntryID mints compendium-style entry IDs.

# HTTP

MakeRequest, AssertStatus, and AssertJSON wrap the httptest boilerplate used
by handler and router tests.
*/
package testutil
