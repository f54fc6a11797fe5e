// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds the ephemeral identity sessions created during the
OAuth handshake.

# Lifecycle

A session is keyed by the client's one-time state token and progresses:

	PendingExchange → Linked → Consumed
	             \→ Expired (TTL, whether or not ever polled)

Put records the linked profile when the provider callback completes its
exchange. Consume is the atomic get-and-consume used by the polling client:
the first poll that observes a profile removes it, so a spent state token can
never be replayed. Two near-simultaneous polls cannot both win - consumption
is a check-and-clear under the store lock.

# Eviction

Sessions live only in process memory. Entries expire after the TTL via a
background sweep (Start/Stop) plus a lazy check on Consume, so abandoned
logins cannot grow the map without bound.
*/
package session
