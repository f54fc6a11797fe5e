// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and environment
variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

CLI flags take precedence; environment variables fill anything left unset.
main loads a .env file (via godotenv) before calling ParseFlags, so a local
.env behaves exactly like exported variables.

# Settings

Required:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - PUBLIC_BASE_URL (--base-url): public URL of this server; the OAuth
    redirect target is <base-url>/oauth2
  - OAUTH_CLIENT_ID (--oauth-client-id): provider application ID
  - OAUTH_CLIENT_SECRET (--oauth-client-secret): provider application secret

Optional:

  - PORT (-p): server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SESSION_TTL (--session-ttl): identity session retention window
    (default: 10m)
*/
package cliparse
