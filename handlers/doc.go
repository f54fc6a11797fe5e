// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the PF2e Ratings API.

# Handler Types

Each handler is a struct created via a constructor that accepts its
dependencies:

  - EntryHandler: category listings and entry registration
  - RatingHandler: histograms and per-user rating read/write
  - IdentityHandler: OAuth callback and profile polling

# Rating Flow

Clients seed their display from the category listing, register entries on
first sight, and write ratings keyed by (user, entry):

	GET /entry/{category}        → ListByCategory
	POST /entry/{category}       → Register
	GET /entry/{id}/ratings      → GetEntryHistogram
	GET /user/{userId}/{entryId} → GetUserRating
	PUT /user/{userId}/{entryId} → UpsertUserRating

# Identity Flow

The login handshake is asynchronous. The provider calls the server; the
client polls:

	GET /oauth2?code&state → Callback (provider redirect; fills session store)
	GET /oauth2/{state}    → PollProfile (single-use consume)

PollProfile answers 200 in both directions: a linked profile once, and
{"error":"not found"} before the link completes or after the token is spent.
The polling client cannot tell a failed exchange from a slow user - it gives
up when its timeout elapses.
*/
package handlers
