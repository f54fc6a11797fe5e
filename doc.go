// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the PF2e Ratings API server.

PF2e Ratings lets many independent game-client installations share 1-5 star
community ratings for compendium items (spells, equipment, feats), optionally
attaching a rating to a Discord identity instead of a local account.

# Starting the Server

The server reads environment variables (a local .env file works too) or CLI
flags:

	DATABASE_URL=./ratings.db OAUTH_CLIENT_ID=... OAUTH_CLIENT_SECRET=... \
	PUBLIC_BASE_URL=https://ratings.example.org go run main.go

Or with flags:

	go run main.go -p 8080 -d ./ratings.db --base-url https://ratings.example.org

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - PUBLIC_BASE_URL (--base-url): public URL the OAuth provider redirects to
  - OAUTH_CLIENT_ID / OAUTH_CLIENT_SECRET: provider application credentials

Optional settings:

  - PORT (-p): server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SESSION_TTL (--session-ttl): identity session retention (default: 10m)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: rating persistence with derived histograms
  - session: in-memory identity sessions for the OAuth handshake
  - oauth: the provider exchange gateway
  - handlers: HTTP request handlers (entries, ratings, identity)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - auth: token generation
  - db: schema creation
  - cliparse: configuration parsing
  - client: Go client for the API (login polling, commit-on-close ratings)

See package documentation for each component.
*/
package main
