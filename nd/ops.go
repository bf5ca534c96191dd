// Package nd: elementwise kernels and axis reductions.
// Map and Zip follow numpy broadcasting semantics; Reduce collapses one or
// more axes through a Reducer. NaN-aware reducers treat NaN as the "missing"
// sentinel and skip it.

package nd

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Reducer collapses a group of values into one. The group holds every value
// sharing the surviving-axis coordinates; it is never retained after return.
type Reducer func(group []float64) float64

// Sum adds all values in the group.
func Sum(group []float64) float64 { return floats.Sum(group) }

// Mean averages the group (NaN-propagating).
func Mean(group []float64) float64 {
	if len(group) == 0 {
		return math.NaN()
	}

	return stat.Mean(group, nil)
}

// Max returns the largest value in the group (NaN for an empty group).
func Max(group []float64) float64 {
	if len(group) == 0 {
		return math.NaN()
	}

	return floats.Max(group)
}

// Min returns the smallest value in the group (NaN for an empty group).
func Min(group []float64) float64 {
	if len(group) == 0 {
		return math.NaN()
	}

	return floats.Min(group)
}

// NaNSum adds the non-NaN values in the group (0 when all are NaN).
func NaNSum(group []float64) float64 {
	var acc float64
	for _, v := range group {
		if !math.IsNaN(v) {
			acc += v
		}
	}

	return acc
}

// NaNMean averages the non-NaN values in the group (NaN when all are NaN).
func NaNMean(group []float64) float64 {
	var acc float64
	var n int
	for _, v := range group {
		if !math.IsNaN(v) {
			acc += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}

	return acc / float64(n)
}

// Map applies f to every element, returning a fresh Dense of the same shape.
// Complexity: O(size).
func Map(a *Dense, f func(float64) float64) *Dense {
	out := a.Clone()
	for i, v := range out.data {
		out.data[i] = f(v)
	}

	return out
}

// BroadcastShape computes the common shape of two operand shapes under
// numpy-style broadcasting (align right; dimension pairs must match or one
// of them must be 1). Returns ErrBroadcast on incompatibility.
// Complexity: O(rank).
func BroadcastShape(a, b []int) ([]int, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make([]int, rank)
	for d := 0; d < rank; d++ {
		ea, eb := 1, 1
		if d >= rank-len(a) {
			ea = a[d-(rank-len(a))]
		}
		if d >= rank-len(b) {
			eb = b[d-(rank-len(b))]
		}
		switch {
		case ea == eb:
			out[d] = ea
		case ea == 1:
			out[d] = eb
		case eb == 1:
			out[d] = ea
		default:
			return nil, fmt.Errorf("BroadcastShape(%v,%v) axis %d: %w", a, b, d, ErrBroadcast)
		}
	}

	return out, nil
}

// broadcastFlat maps an output multi-index to a flat offset of src, treating
// size-1 source dimensions as stretched.
func broadcastFlat(src *Dense, outIx []int) int {
	off := len(outIx) - len(src.shape)
	flat := 0
	for d := range src.shape {
		i := outIx[off+d]
		if src.shape[d] == 1 {
			i = 0
		}
		flat += i * src.strides[d]
	}

	return flat
}

// Zip combines two arrays elementwise under broadcasting.
// Stage 1 (Validate): compute the broadcast shape (ErrBroadcast on failure).
// Stage 2 (Execute): walk the output index space, pulling the stretched
// source elements and applying f.
// Complexity: O(output size · rank).
func Zip(a, b *Dense, f func(x, y float64) float64) (*Dense, error) {
	shape, err := BroadcastShape(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	out, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	if out.Size() == 0 {
		return out, nil
	}
	ix := make([]int, len(shape))
	for {
		of, _ := out.flatIndex(ix)
		out.data[of] = f(a.data[broadcastFlat(a, ix)], b.data[broadcastFlat(b, ix)])
		if !nextRowMajor(ix, shape) {
			break
		}
	}

	return out, nil
}

// BroadcastTo stretches a to the target shape, materializing the repeated
// elements. The target must equal the broadcast of the two shapes; a source
// of higher rank than the target is ErrBroadcast.
// Complexity: O(target size · rank).
func BroadcastTo(a *Dense, shape []int) (*Dense, error) {
	common, err := BroadcastShape(a.shape, shape)
	if err != nil {
		return nil, err
	}
	if len(common) != len(shape) {
		return nil, fmt.Errorf("BroadcastTo(%v) from %v: %w", shape, a.shape, ErrBroadcast)
	}
	for d, e := range common {
		if e != shape[d] {
			return nil, fmt.Errorf("BroadcastTo(%v) from %v, axis %d: %w", shape, a.shape, d, ErrBroadcast)
		}
	}

	out, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	if out.Size() == 0 {
		return out, nil
	}
	ix := make([]int, len(shape))
	for {
		of, _ := out.flatIndex(ix)
		out.data[of] = a.data[broadcastFlat(a, ix)]
		if !nextRowMajor(ix, shape) {
			break
		}
	}

	return out, nil
}

// Reduce collapses the given axes through r. When keepDims is true the
// reduced axes survive with extent 1; otherwise they are dropped. Negative
// axes resolve against the rank.
// Stage 1 (Validate): resolve, dedupe and bounds-check axes.
// Stage 2 (Execute): for each surviving coordinate, gather the group across
// the reduced axes and apply r.
// Complexity: O(size · rank) time, O(reduced-group size) scratch memory.
func Reduce(a *Dense, axes []int, keepDims bool, r Reducer) (*Dense, error) {
	rank := a.Rank()
	reduced := make([]bool, rank)
	norm := append([]int(nil), axes...)
	sort.Ints(norm)
	for _, ax := range norm {
		for ax < 0 {
			ax += rank
		}
		if ax >= rank {
			return nil, fmt.Errorf("Reduce(axis=%d) on rank %d: %w", ax, rank, ErrBadAxis)
		}
		reduced[ax] = true
	}

	outShape := make([]int, 0, rank)
	innerShape := make([]int, 0, rank)
	for d := 0; d < rank; d++ {
		if reduced[d] {
			innerShape = append(innerShape, a.shape[d])
			if keepDims {
				outShape = append(outShape, 1)
			}
		} else {
			outShape = append(outShape, a.shape[d])
		}
	}

	out, err := Zeros(outShape...)
	if err != nil {
		return nil, err
	}
	if out.Size() == 0 {
		return out, nil
	}

	group := make([]float64, 0, SizeOf(innerShape))
	outerShape := make([]int, 0, rank)
	for d := 0; d < rank; d++ {
		if !reduced[d] {
			outerShape = append(outerShape, a.shape[d])
		}
	}

	outer := make([]int, len(outerShape))
	inner := make([]int, len(innerShape))
	full := make([]int, rank)
	oix := make([]int, len(outShape))
	for {
		group = group[:0]
		for i := range inner {
			inner[i] = 0
		}
		for {
			// Interleave the fixed outer coordinates with the running
			// inner (reduced-axis) coordinates.
			oi, ii := 0, 0
			for d := 0; d < rank; d++ {
				if reduced[d] {
					full[d] = inner[ii]
					ii++
				} else {
					full[d] = outer[oi]
					oi++
				}
			}
			ff, _ := a.flatIndex(full)
			group = append(group, a.data[ff])
			if !nextRowMajor(inner, innerShape) {
				break
			}
		}

		// Surviving coordinates of the output cell.
		oi, od := 0, 0
		for d := 0; d < rank; d++ {
			if reduced[d] {
				if keepDims {
					oix[od] = 0
					od++
				}
			} else {
				oix[od] = outer[oi]
				oi++
				od++
			}
		}
		of, _ := out.flatIndex(oix)
		out.data[of] = r(group)
		if !nextRowMajor(outer, outerShape) {
			break
		}
	}

	return out, nil
}
