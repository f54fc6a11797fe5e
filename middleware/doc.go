// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Helpers

  - WithLogging: per-request slog entries (start, completion, duration)
  - JSONResponse / ErrorResponse: consistent JSON envelopes
  - ParseJSONBody: request body decoding
  - CORS: wildcard cross-origin policy for the many independent game clients

# Error Envelope

ErrorResponse writes models.ErrorResponse:

	{"error": "Bad Request", "message": "rating must be between 1 and 5"}
*/
package middleware
