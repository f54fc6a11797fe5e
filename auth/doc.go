// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates the random identifiers used across the service.

# State Tokens

GenerateStateToken mints the one-time login correlator:

	state, err := auth.GenerateStateToken()

A state token is 42 base62 characters from crypto/rand. The client sends it to
the provider's authorization page; the provider echoes it back to the server
callback; the client polls the server with it. It is single-use and never
stored durably.

# IDs

GenerateID produces random hex IDs of arbitrary byte length for tests and
tooling.
*/
package auth
