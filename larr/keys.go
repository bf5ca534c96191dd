// Package larr: the indexing key vocabulary. Sel and Assign accept a
// heterogeneous key sequence, one entry per consumed axis plus optional
// Ellipsis/NewAxis markers:
//
//	string    — label lookup on the axis; collapses it
//	[]string  — multi-label selection; axis preserved, given order
//	int       — positional; negative wraps; collapses the axis
//	[]int     — positional gather; negatives wrap; axis preserved
//	Span, All — positional slice; axis preserved
//	[]bool    — mask selection along the axis; axis preserved
//	Ellipsis  — keep the remaining unaddressed axes untouched
//	NewAxis   — insert a length-1 axis labeled "1" (Sel only)
//	Fancy     — multi-dimensional positional block; the axis is replaced by
//	            the block's dimensions, labels factored via Combine/Decompose
//	            (Sel only)

package larr

import "fmt"

// Span selects a positional range [Start, Stop) with the given Step along
// one axis. Negative Start/Stop wrap modulo the axis extent; a zero Step
// means 1. A negative Step walks backwards (Stop still exclusive).
type Span struct {
	Start, Stop, Step int

	full bool
}

// All spans the whole axis regardless of its extent.
var All = Span{full: true}

// S is shorthand for a unit-step span [start, stop).
func S(start, stop int) Span { return Span{Start: start, Stop: stop, Step: 1} }

// ellipsisKey and newAxisKey are unexported marker types; use the package
// variables below as keys.
type (
	ellipsisKey struct{}
	newAxisKey  struct{}
)

// Ellipsis expands to "keep all remaining axes untouched", consuming exactly
// the axes needed to align the rest of the key sequence with the rank.
// At most one Ellipsis may appear in a key sequence.
var Ellipsis = ellipsisKey{}

// NewAxis inserts a length-1 axis with the singleton label "1" at its
// position, without consuming a source axis.
var NewAxis = newAxisKey{}

// newAxisToken is the label assigned to axes inserted by NewAxis.
const newAxisToken = "1"

// Fancy is a multi-dimensional positional index block. Selecting with a
// Fancy key replaces the addressed axis with the block's dimensions; the
// resulting labels are factored per dimension from the indexed sub-labels.
type Fancy struct {
	shape []int
	idx   []int
}

// NewFancy builds a fancy index block of the given shape from the row-major
// flat index list. The block must be rank 1 or higher and idx must hold
// exactly the implied element count.
func NewFancy(shape []int, idx []int) (Fancy, error) {
	if len(shape) == 0 {
		return Fancy{}, fmt.Errorf("NewFancy: scalar block: %w", ErrBadKey)
	}
	n := 1
	for _, e := range shape {
		if e < 0 {
			return Fancy{}, fmt.Errorf("NewFancy(%v): %w", shape, ErrBadKey)
		}
		n *= e
	}
	if n != len(idx) {
		return Fancy{}, fmt.Errorf("NewFancy(%v): %d indices: %w", shape, len(idx), ErrBadKey)
	}

	return Fancy{shape: append([]int(nil), shape...), idx: append([]int(nil), idx...)}, nil
}

// Shape returns a copy of the block's dimensions.
func (f Fancy) Shape() []int { return append([]int(nil), f.shape...) }
