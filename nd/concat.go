// Package nd: NaN-padding concatenation and the homogeneous-shape resolver.
// These routines unify heterogeneously shaped arrays: every dimension except
// the concatenation axis is padded (independently) to the maximum extent
// across inputs, padding cells taking the NaN sentinel.

package nd

import (
	"fmt"
	"math"
)

// HomogeneousShapes returns the shape of every non-empty input, verifying
// that all inputs share a common rank.
// Stage 1 (Validate): drop empty-sized inputs; require at least one left.
// Stage 2 (Execute): collect shapes; any rank disagreement is ErrRankMismatch.
// Complexity: O(n · rank).
func HomogeneousShapes(arrs []*Dense) ([][]int, error) {
	kept := dropEmpty(arrs)
	if len(kept) == 0 {
		return nil, fmt.Errorf("HomogeneousShapes: %w", ErrEmptyInput)
	}
	rank := kept[0].Rank()
	shapes := make([][]int, len(kept))
	for i, a := range kept {
		if a.Rank() != rank {
			return nil, fmt.Errorf("HomogeneousShapes: rank %d vs %d: %w", a.Rank(), rank, ErrRankMismatch)
		}
		shapes[i] = a.Shape()
	}

	return shapes, nil
}

// BoundingShape computes the smallest shape that bounds every non-empty
// input along all axes (the elementwise maximum extent).
// Complexity: O(n · rank).
func BoundingShape(arrs []*Dense) ([]int, error) {
	shapes, err := HomogeneousShapes(arrs)
	if err != nil {
		return nil, err
	}
	bound := append([]int(nil), shapes[0]...)
	for _, s := range shapes[1:] {
		for d, e := range s {
			if e > bound[d] {
				bound[d] = e
			}
		}
	}

	return bound, nil
}

// dropEmpty filters out zero-size inputs, preserving order.
func dropEmpty(arrs []*Dense) []*Dense {
	kept := make([]*Dense, 0, len(arrs))
	for _, a := range arrs {
		if a != nil && a.Size() > 0 {
			kept = append(kept, a)
		}
	}

	return kept
}

// ConcatPad concatenates arrays along axis, padding every non-concatenation
// dimension to the maximum extent across inputs with NaN. The concatenation
// axis itself is the sum of per-input extents, unpadded.
// Stage 1 (Validate): drop empties (all empty ⇒ ErrEmptyInput); resolve a
// negative axis against the maximum rank; require a common rank.
// Stage 2 (Prepare): bounding shape over non-concatenation axes; allocate a
// NaN-filled result.
// Stage 3 (Execute): copy each input into its slot at the running offset
// along the concatenation axis.
// Complexity: O(result size) memory, O(Σ input sizes · rank) copy time.
func ConcatPad(arrs []*Dense, axis int) (*Dense, error) {
	kept := dropEmpty(arrs)
	if len(kept) == 0 {
		return nil, fmt.Errorf("ConcatPad: %w", ErrEmptyInput)
	}

	maxRank := 0
	for _, a := range kept {
		if a.Rank() > maxRank {
			maxRank = a.Rank()
		}
	}
	if maxRank == 0 {
		return nil, fmt.Errorf("ConcatPad of scalars: %w", ErrBadAxis)
	}
	for axis < 0 {
		axis += maxRank
	}
	if axis >= maxRank {
		return nil, fmt.Errorf("ConcatPad(axis=%d) with rank %d: %w", axis, maxRank, ErrBadAxis)
	}

	bound, err := BoundingShape(kept)
	if err != nil {
		return nil, err
	}

	// Result shape: bounding extents everywhere, summed extents on axis.
	total := 0
	for _, a := range kept {
		total += a.shape[axis]
	}
	outShape := append([]int(nil), bound...)
	outShape[axis] = total

	out, err := Full(math.NaN(), outShape...)
	if err != nil {
		return nil, err
	}

	offset := 0
	for _, a := range kept {
		if err = copyAt(out, a, axis, offset); err != nil {
			return nil, err
		}
		offset += a.shape[axis]
	}

	return out, nil
}

// StackPad stacks arrays along a new leading axis of size 1 per input, then
// concatenates along it; heterogeneous shapes pad with NaN as in ConcatPad.
// Complexity: as ConcatPad plus one ExpandDims copy per input.
func StackPad(arrs []*Dense) (*Dense, error) {
	expanded := make([]*Dense, 0, len(arrs))
	for _, a := range arrs {
		if a == nil || a.Size() == 0 {
			continue
		}
		e, err := a.ExpandDims(0)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, e)
	}

	return ConcatPad(expanded, 0)
}

// copyAt copies src into dst with the given offset along axis; all other
// axes land at the origin (padding beyond src extents stays NaN).
func copyAt(dst, src *Dense, axis, offset int) error {
	ix := make([]int, src.Rank())
	tgt := make([]int, src.Rank())
	for {
		copy(tgt, ix)
		tgt[axis] += offset
		sf, err := src.flatIndex(ix)
		if err != nil {
			return err
		}
		df, err := dst.flatIndex(tgt)
		if err != nil {
			return err
		}
		dst.data[df] = src.data[sf]
		if !nextRowMajor(ix, src.shape) {
			break
		}
	}

	return nil
}
