// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// StateTokenLength is the length of a login state token in base62 characters.
// 42 characters of base62 is ~250 bits of entropy.
const StateTokenLength = 42

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateStateToken creates the one-time correlator between a client-initiated
// login and the provider callback. Base62 keeps it URL-safe without escaping.
func GenerateStateToken() (string, error) {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	b := make([]byte, StateTokenLength)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	for i, v := range b {
		b[i] = base62Chars[int(v)%len(base62Chars)]
	}
	return string(b), nil
}
