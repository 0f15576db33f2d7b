// Package repository defines sentinel errors shared by all repositories so
// that services and handlers can branch on failure kind with errors.Is
// instead of matching message text.
package repository

import "errors"

// ErrInvalidArgument is returned for malformed input (non-positive seat or
// capacity counts). No state was touched; safe to retry after correction.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned when the referenced show is not registered.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when registering a show id twice.
var ErrAlreadyExists = errors.New("already exists")

// ErrInsufficientCapacity is returned by TryReserve when the show exists but
// has fewer remaining seats than requested. State is unchanged. This is an
// expected, user-facing outcome, not an infrastructure failure.
var ErrInsufficientCapacity = errors.New("insufficient capacity")

// ErrStoreUnavailable is returned when a backing store cannot be reached.
// The booking flow guarantees compensation has completed before this error
// surfaces, so callers may retry the whole operation.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrFatalInconsistency is returned when a compensating release failed after
// a capacity decrement was committed. Remaining capacity is now under-
// reported and cannot be repaired automatically; this must reach operators.
var ErrFatalInconsistency = errors.New("fatal capacity inconsistency")
