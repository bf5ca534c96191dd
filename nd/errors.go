// SPDX-License-Identifier: MIT
// Package nd: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the nd
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package nd

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "nd: ..." for consistency and to allow easy
// grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when context is
// essential — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (a negative extent, or a permutation that is not a permutation).
	ErrBadShape = errors.New("nd: invalid shape")

	// ErrSizeMismatch indicates that a data buffer length does not match the
	// element count implied by the shape.
	ErrSizeMismatch = errors.New("nd: data length does not match shape")

	// ErrOutOfRange indicates that an index is outside valid bounds, or that
	// a multi-index has the wrong number of coordinates.
	ErrOutOfRange = errors.New("nd: index out of range")

	// ErrBadAxis indicates an axis specifier outside [0, rank) after
	// negative-axis resolution.
	ErrBadAxis = errors.New("nd: axis out of range")

	// ErrRankMismatch indicates that inputs disagree in rank where a common
	// rank is required (concatenation after dropping empties, reductions).
	ErrRankMismatch = errors.New("nd: rank mismatch")

	// ErrEmptyInput indicates that an operation requiring at least one
	// non-empty array received none.
	ErrEmptyInput = errors.New("nd: no non-empty input arrays")

	// ErrBroadcast indicates that two shapes cannot be broadcast together
	// (a dimension pair differs and neither extent is 1).
	ErrBroadcast = errors.New("nd: shapes are not broadcast-compatible")
)
