// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared across
the PF2e Ratings API.

# Categories

Entries belong to exactly one category, fixed at registration:

  - spell
  - equipment
  - feat

ValidCategory checks membership; the store rejects anything else.

# Ratings

Star values are integers 1..5 (MinRating..MaxRating). Histogram holds the
per-star counts for one entry and marshals to the {"1":n,...,"5":n} wire shape.
RatingItem carries the derived average for category listings, with a null
rating for entries nobody has rated.

# Identity

Profile is the identity fetched from the OAuth provider: the provider's stable
account ID plus a display name. No credentials are ever stored.
*/
package models
