// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

Uses Go 1.22+ net/http.ServeMux method patterns:

	GET  /health
	GET  /entry/{category}
	POST /entry/{category}
	GET  /entry/{id}/ratings
	GET  /user/{userId}/{entryId}
	PUT  /user/{userId}/{entryId}
	GET  /oauth2
	GET  /oauth2/{state}
	GET  /

Every route except health and root is wrapped in request logging, and the
whole mux sits behind the wildcard CORS middleware because the API is called
from many independently hosted game clients.
*/
package router
