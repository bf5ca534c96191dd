// Package larr: axis folding. Combine merges two axes into one composite
// axis labeled with the delimiter-joined cross product; DropEmpty removes
// the all-NaN hyperplanes that padding leaves behind.

package larr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/larray/label"
	"github.com/katalvlaran/larray/nd"
)

// Combine folds axis i into axis j (i < j), returning an array of rank-1
// fewer axes. The merged axis sits at position j-1 with extent
// shape[i]·shape[j], labeled left+delim+right in row-major order (axis i
// varies slowest); two distinct pairs joining to the same composite token
// are fatal (label.ErrDuplicateLabel through label.Combine).
//
// The buffer is rebuilt by slicing off axis i index by index and
// concatenating the slices along the merged axis, so the composite order
// matches the labels. By default the result then drops all-NaN hyperplanes
// (padding from earlier concatenations collapses away); WithKeepEmpty
// retains them.
//
// Stage 1 (Validate): 0 ≤ i < j < rank.
// Stage 2 (Merge): cross-product labels; slice-and-concatenate buffer.
// Stage 3 (Sweep): optional drop-empty pass.
// Complexity: O(size · rank).
func (a *Array) Combine(i, j int, opts ...Option) (*Array, error) {
	o := a.opt.apply(opts...)
	rank := a.Rank()
	if i < 0 || j >= rank || i >= j {
		return nil, fmt.Errorf("Combine(%d,%d) on rank %d: %w", i, j, rank, ErrBadAxis)
	}

	left, err := label.New(a.labels[i].Tokens(), label.WithDelimiter(o.delim))
	if err != nil {
		return nil, fmt.Errorf("Combine: %w", err)
	}
	merged, err := label.Combine(left, a.labels[j])
	if err != nil {
		return nil, fmt.Errorf("Combine: %w", err)
	}

	extent := a.buf.Shape()[i]
	slices := make([]*nd.Dense, extent)
	for t := 0; t < extent; t++ {
		if slices[t], err = a.buf.Slice1(i, t); err != nil {
			return nil, fmt.Errorf("Combine: %w", err)
		}
	}
	// Axis j sits at j-1 once axis i is sliced away.
	buf, err := nd.ConcatPad(slices, j-1)
	if err != nil {
		return nil, fmt.Errorf("Combine: %w", err)
	}

	sets := make([]*label.Set, 0, rank-1)
	for d := 0; d < rank; d++ {
		switch d {
		case i:
		case j:
			sets = append(sets, merged)
		default:
			sets = append(sets, a.labels[d].Clone())
		}
	}

	out, err := a.derive(buf, sets)
	if err != nil {
		return nil, err
	}
	if o.dropEmpty {
		return out.DropEmpty()
	}

	return out, nil
}

// DropEmpty removes, along every axis independently, the positions whose
// whole hyperplane holds only NaN. Labels of the dropped positions go with
// them. Positions whose hyperplane mixes NaN with data survive untouched.
// Complexity: O(size · rank) per axis.
func (a *Array) DropEmpty() (*Array, error) {
	shape := a.buf.Shape()
	picks := make([][]int, a.Rank())
	for d := range picks {
		keep := make([]int, 0, shape[d])
		for t := 0; t < shape[d]; t++ {
			if !a.allNaNAt(d, t) {
				keep = append(keep, t)
			}
		}
		picks[d] = keep
	}

	buf, err := a.buf.Gather(picks)
	if err != nil {
		return nil, fmt.Errorf("DropEmpty: %w", err)
	}
	sets := make([]*label.Set, len(picks))
	for d, p := range picks {
		if sets[d], err = a.labels[d].Pick(p); err != nil {
			return nil, fmt.Errorf("DropEmpty: %w", err)
		}
	}

	return a.derive(buf, sets)
}

// allNaNAt reports whether the hyperplane at index t of the given axis is
// entirely NaN.
func (a *Array) allNaNAt(axis, t int) bool {
	s, err := a.buf.Slice1(axis, t)
	if err != nil {
		return false
	}
	for _, v := range s.Data() {
		if !math.IsNaN(v) {
			return false
		}
	}

	return true
}
