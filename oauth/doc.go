// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package oauth performs the server side of the identity-linking handshake.

# Flow

The client opens the provider's authorization page (AuthorizeURL) carrying a
one-time state token. The provider redirects the server callback with an
authorization code; Exchange then makes exactly two provider calls:

 1. POST token endpoint: authorization code → access token
 2. GET profile endpoint: access token → {id, username}

The handler layer stores the result in the session store for the polling
client to pick up. A failed exchange is logged server-side only: the
callback request came from the provider, not from the waiting client, so the
client learns about failure through its poll timeout.

# Provider

Production uses Discord with scope=identify (DiscordEndpoints). Endpoints are
injectable for tests.
*/
package oauth
