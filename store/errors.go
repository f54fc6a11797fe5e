// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "fmt"

// ValidationError reports malformed input: an unknown category or an
// out-of-range star value. Maps to a 400-class response; never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// StorageError reports a failure of the underlying persistence engine. It is
// logged where it occurs and propagated to the caller, because it controls
// whether an end user is told their save succeeded.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
