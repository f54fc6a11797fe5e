// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The SQL is dialect-neutral and runs unchanged on SQLite and PostgreSQL.

# Tables

  - entry: rateable content items (id + category)
  - app_user: users keyed by the OAuth provider's account ID
  - user_rating: one current star value per (user, entry) pair

# Relationships

	entry 1──* user_rating
	app_user 1──* user_rating

There is deliberately no materialized histogram table. Per-star counts and
averages are aggregated from user_rating at read time, so the "sum of
histogram buckets equals number of raters" invariant holds by construction.

# Indexes

  - entry.category (category listings)
  - user_rating.entry_id (histogram aggregation)
*/
package db
