// Package larr: elementwise and reducing operations lifted from the nd
// kernel to the labeled level. The contract is simple: an operation that
// preserves the shape keeps the labels; a reduction drops (or joins) the
// labels of the axes it collapses.

package larr

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/larray/label"
	"github.com/katalvlaran/larray/nd"
)

// cloneSets deep-copies a label Set slice.
func cloneSets(sets []*label.Set) []*label.Set {
	out := make([]*label.Set, len(sets))
	for i, s := range sets {
		out[i] = s.Clone()
	}

	return out
}

// Apply runs an arbitrary buffer transformation under the receiver's labels.
// op receives a private clone and must preserve the shape; a shape-changing
// op is rejected as ErrShapeMismatch.
func (a *Array) Apply(op func(*nd.Dense) (*nd.Dense, error)) (*Array, error) {
	out, err := op(a.buf.Clone())
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	return a.derive(out, cloneSets(a.labels))
}

// Map applies f to every element, labels unchanged.
// Complexity: O(size).
func (a *Array) Map(f func(float64) float64) *Array {
	return &Array{buf: nd.Map(a.buf, f), labels: cloneSets(a.labels), opt: a.opt}
}

// Zip combines two arrays elementwise under broadcasting. The broadcast
// result must keep the receiver's shape (the second operand may be smaller);
// the receiver's labels carry over and the second operand's labels are not
// consulted.
// Complexity: O(size · rank).
func (a *Array) Zip(b *Array, f func(x, y float64) float64) (*Array, error) {
	out, err := nd.Zip(a.buf, b.buf, f)
	if err != nil {
		return nil, fmt.Errorf("Zip: %w", err)
	}

	return a.derive(out, cloneSets(a.labels))
}

// Reduce collapses the given axes through r. Dropped axes lose their label
// Sets; with keepDims each reduced axis survives with extent 1 carrying the
// single joined summary token of its former Set. Negative axes resolve
// against the rank.
// Complexity: O(size · rank).
func (a *Array) Reduce(axes []int, keepDims bool, r nd.Reducer) (*Array, error) {
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

	out, err := nd.Reduce(a.buf, axes, keepDims, r)
	if err != nil {
		return nil, fmt.Errorf("Reduce: %w", err)
	}

	sets := make([]*label.Set, 0, rank)
	for d := 0; d < rank; d++ {
		if !reduced[d] {
			sets = append(sets, a.labels[d].Clone())

			continue
		}
		if keepDims {
			// A single token is unique by construction.
			joined, _ := label.New([]string{a.labels[d].Join()}, label.WithDelimiter(a.opt.delim))
			sets = append(sets, joined)
		}
	}

	return a.derive(out, sets)
}

// Add returns the elementwise sum (broadcasting b over the receiver).
func (a *Array) Add(b *Array) (*Array, error) {
	return a.Zip(b, func(x, y float64) float64 { return x + y })
}

// Sub returns the elementwise difference.
func (a *Array) Sub(b *Array) (*Array, error) {
	return a.Zip(b, func(x, y float64) float64 { return x - y })
}

// Mul returns the elementwise (Hadamard) product.
func (a *Array) Mul(b *Array) (*Array, error) {
	return a.Zip(b, func(x, y float64) float64 { return x * y })
}

// Scale multiplies every element by k.
func (a *Array) Scale(k float64) *Array {
	return a.Map(func(v float64) float64 { return v * k })
}

// Sum collapses the given axes (all of them when none given) by summation.
func (a *Array) Sum(axes ...int) (*Array, error) {
	return a.Reduce(allIfEmpty(axes, a.Rank()), false, nd.Sum)
}

// Mean collapses the given axes by the NaN-propagating mean.
func (a *Array) Mean(axes ...int) (*Array, error) {
	return a.Reduce(allIfEmpty(axes, a.Rank()), false, nd.Mean)
}

// NaNMean collapses the given axes by the mean over non-NaN cells, the
// reduction of choice over padded data.
func (a *Array) NaNMean(axes ...int) (*Array, error) {
	return a.Reduce(allIfEmpty(axes, a.Rank()), false, nd.NaNMean)
}

// allIfEmpty expands an empty axis list to every axis.
func allIfEmpty(axes []int, rank int) []int {
	if len(axes) > 0 {
		return axes
	}
	all := make([]int, rank)
	for i := range all {
		all[i] = i
	}

	return all
}
