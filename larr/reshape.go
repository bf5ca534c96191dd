// Package larr: label-preserving reshape. The buffer is reinterpreted under
// the new shape in the chosen fill order and the labels follow the elements:
// each element carries its per-axis token tuple into the new layout, and the
// tuples are factored back into one Set per target axis.

package larr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/larray/label"
	"github.com/katalvlaran/larray/nd"
)

// advance steps ix through shape in the given fill order.
func advance(ix, shape []int, order nd.Order) bool {
	if order == nd.RowMajor {
		return nd.NextIndex(ix, shape)
	}
	for d := 0; d < len(shape); d++ {
		ix[d]++
		if ix[d] < shape[d] {
			return true
		}
		ix[d] = 0
	}

	return false
}

// sameShape reports elementwise shape equality.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for d, e := range a {
		if b[d] != e {
			return false
		}
	}

	return true
}

// Reshape returns an array of the given shape holding the same elements, in
// row-major fill order by default (WithColumnMajor switches to the first
// axis varying fastest). Reshaping to the identical shape is a pure clone
// with labels untouched.
//
// Relabeling: every element keeps its tuple of per-axis tokens through the
// move; the tuples are then factored into one fresh Set per target axis via
// the longest-common-subsequence heuristic (label.FactorTuples). Factoring
// fallbacks warn through the configured logger and never fail the reshape.
//
// Stage 1 (Validate): extents and element count (kernel checks).
// Stage 2 (Move): reinterpret the buffer in the fill order.
// Stage 3 (Relabel): factor the carried tuples per target axis.
// Complexity: O(size · rank) plus the factoring cost.
func (a *Array) Reshape(shape []int, opts ...Option) (*Array, error) {
	o := a.opt.apply(opts...)

	if sameShape(shape, a.buf.Shape()) {
		return a.Clone(), nil
	}

	buf, err := a.buf.Reshape(shape, o.order)
	if err != nil {
		return nil, fmt.Errorf("Reshape: %w", err)
	}

	size := a.Size()
	tuples := make([][]string, size)
	if size > 0 {
		// Row-major strides of the target shape, to place each tuple at the
		// flat position its element landed on.
		strides := make([]int, len(shape))
		acc := 1
		for d := len(shape) - 1; d >= 0; d-- {
			strides[d] = acc
			acc *= shape[d]
		}

		srcShape := a.buf.Shape()
		src := make([]int, a.Rank())
		out := make([]int, len(shape))
		for {
			// Composite tokens split into their components so that factoring
			// can regroup them along the target axes.
			tup := make([]string, 0, a.Rank())
			for d, i := range src {
				tok, _ := a.labels[d].At(i)
				tup = append(tup, strings.Split(tok, o.delim)...)
			}
			flat := 0
			for d := range out {
				flat += out[d] * strides[d]
			}
			tuples[flat] = tup
			if !advance(src, srcShape, o.order) {
				break
			}
			advance(out, shape, o.order)
		}
	}

	sets, err := label.FactorTuples(tuples, shape,
		label.WithDelimiter(o.delim), label.WithWarnLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("Reshape: %w", err)
	}

	return a.derive(buf, sets)
}
