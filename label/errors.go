// SPDX-License-Identifier: MIT
// Package label: sentinel error set. All exported operations return these
// sentinels (possibly wrapped with context via fmt.Errorf("...: %w", ...));
// tests and callers match them with errors.Is.

package label

import "errors"

var (
	// ErrDuplicateLabel is returned when a Set would contain a repeated
	// token. Uniqueness is a construction invariant; this is fatal.
	ErrDuplicateLabel = errors.New("label: duplicate token")

	// ErrLabelNotFound is returned by Find when the token is absent from
	// the Set. Surfaced to the caller, never retried.
	ErrLabelNotFound = errors.New("label: token not found")

	// ErrShapeMismatch indicates that a composite Set (or tuple stream)
	// cannot be factored into the requested shape because the element
	// counts disagree.
	ErrShapeMismatch = errors.New("label: token count does not match shape")

	// ErrOutOfRange indicates a positional access outside [0, Len).
	ErrOutOfRange = errors.New("label: index out of range")
)
