// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists entries, users, and per-user star ratings.

# Contract

All operations are idempotent where repetition is meaningful:

  - EnsureEntry: insert-or-ignore on the entry ID; category immutable
  - EnsureUser: insert-or-refresh on the provider account ID
  - UpsertUserRating: atomic insert-or-update on (user, entry); last write wins

Reads never invent errors for missing data: GetEntryHistogram returns an
all-zero histogram for an unknown entry, GetUserRating returns nil, and
GetEntriesByCategory returns an empty map for an unknown category.

# Derived Aggregates

There is one source of truth for an entry's rating distribution: the
user_rating rows. Histograms and category averages are computed by SQL
aggregation at read time, so sum(histogram buckets) == count of raters holds
for every entry with no reconciliation logic.

# Errors

ValidationError for malformed input (unknown category, out-of-range star);
StorageError for engine failures, logged where they occur and propagated so
callers know whether a save actually happened. Both unwrap with errors.As.

Every write is durable before the call returns; there is no write-behind
caching layer.
*/
package store
