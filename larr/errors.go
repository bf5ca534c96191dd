// SPDX-License-Identifier: MIT
// Package larr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the larr
// package. Lookup failures surface label.ErrLabelNotFound and kernel errors
// surface the nd sentinels, both wrapped — errors.Is matches through.

package larr

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// shape/label-count violations -> lookup failures -> key/value kind errors
// -> positional range errors.

var (
	// ErrShapeMismatch is returned when label count and axis extent
	// disagree — at construction and after every shape-changing operation.
	// Fatal, not recovered.
	ErrShapeMismatch = errors.New("larr: label count does not match axis extent")

	// ErrBadAxis indicates an axis specifier outside the valid range after
	// negative-axis resolution.
	ErrBadAxis = errors.New("larr: axis out of range")

	// ErrBadKey indicates an indexing key of unrecognized kind, a second
	// ellipsis, more consuming keys than axes, or a key kind unsupported in
	// the current operation (e.g. NewAxis inside Assign). Fatal, reported
	// immediately.
	ErrBadKey = errors.New("larr: unsupported indexing key")

	// ErrBadValue indicates an assignment payload or mapping leaf of
	// unsupported kind.
	ErrBadValue = errors.New("larr: unsupported value kind")

	// ErrNotScalar is returned by Float on an array that still has axes.
	ErrNotScalar = errors.New("larr: array is not a scalar")

	// ErrOutOfRange indicates a positional index outside the axis extent
	// (after negative wrapping).
	ErrOutOfRange = errors.New("larr: index out of range")
)
