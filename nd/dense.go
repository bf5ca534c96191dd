// Package nd: Dense is the concrete rank-N buffer behind every labeled array.
// It generalizes the classic flat row-major matrix layout to arbitrary rank,
// storing elements in a single slice for performance and cache friendliness.

package nd

import (
	"fmt"
	"math"
	"strings"
)

// Order selects the fill order used by shape-changing operations.
type Order int

const (
	// RowMajor enumerates elements with the last axis varying fastest
	// (the native storage order of Dense).
	RowMajor Order = iota

	// ColumnMajor enumerates elements with the first axis varying fastest.
	ColumnMajor
)

// Dense is a rank-N array of float64 values in row-major layout.
// shape holds one extent per axis; data holds Size() elements.
// A rank-0 Dense is a scalar and holds exactly one element.
type Dense struct {
	shape   []int     // per-axis extents; empty for a scalar
	strides []int     // row-major strides derived from shape
	data    []float64 // flat backing storage, length == Size()
}

// SizeOf returns the element count implied by shape (1 for rank 0).
// Complexity: O(rank).
func SizeOf(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}

	return n
}

// stridesOf derives row-major strides from shape.
func stridesOf(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		st[d] = acc
		acc *= shape[d]
	}

	return st
}

// validShape reports whether every extent is non-negative.
func validShape(shape []int) bool {
	for _, s := range shape {
		if s < 0 {
			return false
		}
	}

	return true
}

// NewDense wraps data as a Dense of the given shape.
// Stage 1 (Validate): extents must be non-negative; len(data) must equal the
// implied element count.
// Stage 2 (Finalize): the slice is adopted as-is — the caller cedes ownership
// of data to the returned value (no defensive copy).
// Complexity: O(rank).
func NewDense(shape []int, data []float64) (*Dense, error) {
	if !validShape(shape) {
		return nil, fmt.Errorf("NewDense(%v): %w", shape, ErrBadShape)
	}
	if len(data) != SizeOf(shape) {
		return nil, fmt.Errorf("NewDense(%v): have %d elements: %w", shape, len(data), ErrSizeMismatch)
	}

	return &Dense{shape: append([]int(nil), shape...), strides: stridesOf(shape), data: data}, nil
}

// Zeros creates a zero-filled Dense of the given shape.
func Zeros(shape ...int) (*Dense, error) {
	if !validShape(shape) {
		return nil, fmt.Errorf("Zeros(%v): %w", shape, ErrBadShape)
	}

	return &Dense{shape: append([]int(nil), shape...), strides: stridesOf(shape), data: make([]float64, SizeOf(shape))}, nil
}

// Full creates a Dense of the given shape with every cell set to fill.
func Full(fill float64, shape ...int) (*Dense, error) {
	d, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = fill
	}

	return d, nil
}

// Scalar wraps a single value as a rank-0 Dense.
func Scalar(v float64) *Dense {
	return &Dense{shape: nil, strides: nil, data: []float64{v}}
}

// Rank returns the number of axes.
func (d *Dense) Rank() int { return len(d.shape) }

// Size returns the total element count (1 for a scalar).
func (d *Dense) Size() int { return len(d.data) }

// Shape returns a copy of the per-axis extents.
func (d *Dense) Shape() []int { return append([]int(nil), d.shape...) }

// Dim returns the extent of one axis, or ErrBadAxis.
func (d *Dense) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(d.shape) {
		return 0, fmt.Errorf("Dim(%d): %w", axis, ErrBadAxis)
	}

	return d.shape[axis], nil
}

// Data exposes the flat backing slice. Writes through the returned slice
// mutate the array; safe only under single-writer discipline.
func (d *Dense) Data() []float64 { return d.data }

// flatIndex converts a multi-index to a flat offset or returns ErrOutOfRange.
// Stage 1 (Validate): coordinate count equals rank; 0 ≤ ix[d] < shape[d].
// Stage 2 (Execute): accumulate stride products.
// Complexity: O(rank).
func (d *Dense) flatIndex(ix []int) (int, error) {
	if len(ix) != len(d.shape) {
		return 0, fmt.Errorf("index %v on rank %d: %w", ix, len(d.shape), ErrOutOfRange)
	}
	flat := 0
	for a, i := range ix {
		if i < 0 || i >= d.shape[a] {
			return 0, fmt.Errorf("index %v, axis %d: %w", ix, a, ErrOutOfRange)
		}
		flat += i * d.strides[a]
	}

	return flat, nil
}

// At retrieves the element at the given multi-index.
func (d *Dense) At(ix ...int) (float64, error) {
	flat, err := d.flatIndex(ix)
	if err != nil {
		return 0, err
	}

	return d.data[flat], nil
}

// SetAt assigns v at the given multi-index.
func (d *Dense) SetAt(v float64, ix ...int) error {
	flat, err := d.flatIndex(ix)
	if err != nil {
		return err
	}
	d.data[flat] = v

	return nil
}

// Clone returns a deep copy of the array.
// Complexity: O(size).
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{shape: append([]int(nil), d.shape...), strides: append([]int(nil), d.strides...), data: cp}
}

// nextRowMajor advances ix through shape with the last axis fastest.
// Returns false once the index space is exhausted.
func nextRowMajor(ix, shape []int) bool {
	for d := len(shape) - 1; d >= 0; d-- {
		ix[d]++
		if ix[d] < shape[d] {
			return true
		}
		ix[d] = 0
	}

	return false
}

// NextIndex advances ix through shape in row-major order, for callers
// iterating an index space of their own. Returns false once exhausted.
func NextIndex(ix, shape []int) bool { return nextRowMajor(ix, shape) }

// nextColMajor advances ix through shape with the first axis fastest.
func nextColMajor(ix, shape []int) bool {
	for d := 0; d < len(shape); d++ {
		ix[d]++
		if ix[d] < shape[d] {
			return true
		}
		ix[d] = 0
	}

	return false
}

// Reshape reinterprets the buffer under a new shape with the same element
// count, materializing a fresh Dense.
// Stage 1 (Validate): shape extents and element count.
// Stage 2 (Execute): RowMajor keeps the flat order; ColumnMajor reads the
// source and writes the target with the first axis varying fastest.
// Complexity: O(size).
func (d *Dense) Reshape(shape []int, order Order) (*Dense, error) {
	if !validShape(shape) {
		return nil, fmt.Errorf("Reshape(%v): %w", shape, ErrBadShape)
	}
	if SizeOf(shape) != len(d.data) {
		return nil, fmt.Errorf("Reshape(%v) of %v: %w", shape, d.shape, ErrSizeMismatch)
	}

	if order == RowMajor {
		cp := make([]float64, len(d.data))
		copy(cp, d.data)

		return NewDense(shape, cp)
	}

	// Column-major: collect source values with the first axis fastest, then
	// scatter them into the target in the same enumeration order.
	out, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	if len(d.data) == 0 {
		return out, nil
	}
	seq := make([]float64, 0, len(d.data))
	src := make([]int, len(d.shape))
	for {
		flat, _ := d.flatIndex(src)
		seq = append(seq, d.data[flat])
		if !nextColMajor(src, d.shape) {
			break
		}
	}
	dst := make([]int, len(shape))
	for _, v := range seq {
		flat, _ := out.flatIndex(dst)
		out.data[flat] = v
		if !nextColMajor(dst, shape) {
			break
		}
	}

	return out, nil
}

// Transpose permutes axes, materializing a fresh Dense. An empty perm
// reverses the axis order. Each output axis d takes its extent (and data)
// from source axis perm[d].
// Complexity: O(size).
func (d *Dense) Transpose(perm ...int) (*Dense, error) {
	rank := len(d.shape)
	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}
	if len(perm) != rank {
		return nil, fmt.Errorf("Transpose(%v) on rank %d: %w", perm, rank, ErrBadShape)
	}
	seen := make([]bool, rank)
	outShape := make([]int, rank)
	for i, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return nil, fmt.Errorf("Transpose(%v): %w", perm, ErrBadShape)
		}
		seen[p] = true
		outShape[i] = d.shape[p]
	}

	out, err := Zeros(outShape...)
	if err != nil {
		return nil, err
	}
	if len(d.data) == 0 {
		return out, nil
	}
	ix := make([]int, rank)
	src := make([]int, rank)
	for {
		for i, p := range perm {
			src[p] = ix[i]
		}
		sf, _ := d.flatIndex(src)
		of, _ := out.flatIndex(ix)
		out.data[of] = d.data[sf]
		if !nextRowMajor(ix, outShape) {
			break
		}
	}

	return out, nil
}

// ExpandDims inserts a length-1 axis at the given position (0 ≤ axis ≤ rank).
// Complexity: O(size) for the copy.
func (d *Dense) ExpandDims(axis int) (*Dense, error) {
	if axis < 0 || axis > len(d.shape) {
		return nil, fmt.Errorf("ExpandDims(%d): %w", axis, ErrBadAxis)
	}
	shape := make([]int, 0, len(d.shape)+1)
	shape = append(shape, d.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, d.shape[axis:]...)
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return NewDense(shape, cp)
}

// Gather selects elements along every axis simultaneously (cross-product
// selection). sel holds one index list per axis; a nil entry keeps the whole
// axis. The output extent along axis d is len(sel[d]).
// Complexity: O(output size · rank).
func (d *Dense) Gather(sel [][]int) (*Dense, error) {
	if len(sel) != len(d.shape) {
		return nil, fmt.Errorf("Gather: %d selectors on rank %d: %w", len(sel), len(d.shape), ErrRankMismatch)
	}
	outShape := make([]int, len(d.shape))
	picks := make([][]int, len(d.shape))
	var a int
	for a = range d.shape {
		if sel[a] == nil {
			all := make([]int, d.shape[a])
			for i := range all {
				all[i] = i
			}
			picks[a] = all
		} else {
			for _, i := range sel[a] {
				if i < 0 || i >= d.shape[a] {
					return nil, fmt.Errorf("Gather axis %d index %d: %w", a, i, ErrOutOfRange)
				}
			}
			picks[a] = sel[a]
		}
		outShape[a] = len(picks[a])
	}

	out, err := Zeros(outShape...)
	if err != nil {
		return nil, err
	}
	if out.Size() == 0 {
		return out, nil
	}
	ix := make([]int, len(outShape))
	src := make([]int, len(outShape))
	for {
		for a = range src {
			src[a] = picks[a][ix[a]]
		}
		sf, _ := d.flatIndex(src)
		of, _ := out.flatIndex(ix)
		out.data[of] = d.data[sf]
		if !nextRowMajor(ix, outShape) {
			break
		}
	}

	return out, nil
}

// Slice1 collapses one axis at a fixed index, returning an array of rank-1
// fewer axes.
// Complexity: O(output size · rank).
func (d *Dense) Slice1(axis, idx int) (*Dense, error) {
	if axis < 0 || axis >= len(d.shape) {
		return nil, fmt.Errorf("Slice1(%d,%d): %w", axis, idx, ErrBadAxis)
	}
	if idx < 0 || idx >= d.shape[axis] {
		return nil, fmt.Errorf("Slice1(%d,%d): %w", axis, idx, ErrOutOfRange)
	}
	sel := make([][]int, len(d.shape))
	sel[axis] = []int{idx}
	g, err := d.Gather(sel)
	if err != nil {
		return nil, err
	}
	outShape := make([]int, 0, len(d.shape)-1)
	outShape = append(outShape, d.shape[:axis]...)
	outShape = append(outShape, d.shape[axis+1:]...)

	return NewDense(outShape, g.data)
}

// Equal reports deep equality of shape and contents. When nanEqual is true,
// NaN compares equal to NaN (sentinel-aware comparison).
// Complexity: O(size).
func (d *Dense) Equal(o *Dense, nanEqual bool) bool {
	if o == nil || len(d.shape) != len(o.shape) {
		return false
	}
	for a := range d.shape {
		if d.shape[a] != o.shape[a] {
			return false
		}
	}
	for i, v := range d.data {
		w := o.data[i]
		if v == w {
			continue
		}
		if nanEqual && math.IsNaN(v) && math.IsNaN(w) {
			continue
		}

		return false
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
func (d *Dense) String() string {
	var sb strings.Builder
	d.writeBlock(&sb, 0, 0)

	return sb.String()
}

// writeBlock recursively renders the block rooted at the given axis/offset.
func (d *Dense) writeBlock(sb *strings.Builder, axis, offset int) {
	if axis == len(d.shape) {
		fmt.Fprintf(sb, "%g", d.data[offset])

		return
	}
	sb.WriteString("[")
	for i := 0; i < d.shape[axis]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		d.writeBlock(sb, axis+1, offset+i*d.strides[axis])
	}
	sb.WriteString("]")
}
