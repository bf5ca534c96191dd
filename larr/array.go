// Package larr: the Array entity — construction, invariant checking,
// accessors, equality and axis permutation.

package larr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/larray/label"
	"github.com/katalvlaran/larray/nd"
)

// Array is a dense numeric buffer of rank N owning exactly N label Sets,
// one per axis. Invariant: labels[i].Len() == shape[i] for every axis i,
// checked at construction and after every shape-changing operation.
//
// An Array exclusively owns its label Sets; arrays derived via indexing or
// reshaping own freshly computed Sets. The numeric buffer of a derived
// array is always freshly allocated — mutating a derived array never
// affects its parent.
type Array struct {
	buf    *nd.Dense
	labels []*label.Set
	opt    options
}

// New wraps a raw buffer with default positional labels ("0".."n-1" per
// axis). The buffer is adopted, not copied.
// Complexity: O(rank · max extent).
func New(buf *nd.Dense, opts ...Option) *Array {
	o := gatherOptions(opts...)
	shape := buf.Shape()
	sets := make([]*label.Set, len(shape))
	for i, e := range shape {
		sets[i] = label.Default(e, label.WithDelimiter(o.delim))
	}

	return &Array{buf: buf, labels: sets, opt: o}
}

// NewLabeled wraps a raw buffer with explicit per-axis label Sets.
// Stage 1 (Validate): one Set per axis, each matching its extent
// (ErrShapeMismatch — fatal). Missing trailing Sets default to positional.
// Stage 2 (Finalize): Sets are adopted as given; the buffer is not copied.
// Complexity: O(rank).
func NewLabeled(buf *nd.Dense, sets []*label.Set, opts ...Option) (*Array, error) {
	o := gatherOptions(opts...)
	shape := buf.Shape()
	if len(sets) > len(shape) {
		return nil, fmt.Errorf("NewLabeled: %d label sets for rank %d: %w", len(sets), len(shape), ErrShapeMismatch)
	}
	owned := make([]*label.Set, len(shape))
	for i, e := range shape {
		if i < len(sets) && sets[i] != nil {
			if sets[i].Len() != e {
				return nil, fmt.Errorf("NewLabeled: axis %d has %d labels for extent %d: %w",
					i, sets[i].Len(), e, ErrShapeMismatch)
			}
			owned[i] = sets[i]
		} else {
			owned[i] = label.Default(e, label.WithDelimiter(o.delim))
		}
	}

	return &Array{buf: buf, labels: owned, opt: o}, nil
}

// derive wraps an operation result with the receiver's inherited options,
// re-checking the shape invariant.
func (a *Array) derive(buf *nd.Dense, sets []*label.Set) (*Array, error) {
	shape := buf.Shape()
	if len(sets) != len(shape) {
		return nil, fmt.Errorf("derive: %d label sets for rank %d: %w", len(sets), len(shape), ErrShapeMismatch)
	}
	for i, e := range shape {
		if sets[i].Len() != e {
			return nil, fmt.Errorf("derive: axis %d has %d labels for extent %d: %w",
				i, sets[i].Len(), e, ErrShapeMismatch)
		}
	}

	return &Array{buf: buf, labels: sets, opt: a.opt}, nil
}

// Rank returns the number of axes.
func (a *Array) Rank() int { return a.buf.Rank() }

// Shape returns a copy of the per-axis extents.
func (a *Array) Shape() []int { return a.buf.Shape() }

// Size returns the total element count.
func (a *Array) Size() int { return a.buf.Size() }

// Raw exposes the underlying buffer as a read/write view with no labels.
// Collaborators (statistics, signal processing) operate on this view and
// re-wrap results with the original or reduced label Sets.
func (a *Array) Raw() *nd.Dense { return a.buf }

// LabelSets returns read-only copies of the per-axis label Sets.
func (a *Array) LabelSets() []*label.Set {
	out := make([]*label.Set, len(a.labels))
	for i, s := range a.labels {
		out[i] = s.Clone()
	}

	return out
}

// Labels returns a copy of the Set owning one axis.
func (a *Array) Labels(axis int) (*label.Set, error) {
	if axis < 0 || axis >= len(a.labels) {
		return nil, fmt.Errorf("Labels(%d): %w", axis, ErrBadAxis)
	}

	return a.labels[axis].Clone(), nil
}

// Float unwraps a rank-0 array into its bare numeric scalar.
func (a *Array) Float() (float64, error) {
	if a.Rank() != 0 {
		return 0, fmt.Errorf("Float on rank %d: %w", a.Rank(), ErrNotScalar)
	}

	return a.buf.Data()[0], nil
}

// Clone returns a deep, independent copy.
func (a *Array) Clone() *Array {
	sets := make([]*label.Set, len(a.labels))
	for i, s := range a.labels {
		sets[i] = s.Clone()
	}

	return &Array{buf: a.buf.Clone(), labels: sets, opt: a.opt}
}

// Equal reports structural equality: buffer equality with NaN-aware
// comparison AND label Set equality on every axis.
// Complexity: O(size + labels).
func (a *Array) Equal(b *Array) bool {
	if b == nil || !a.buf.Equal(b.buf, true) {
		return false
	}
	for i, s := range a.labels {
		if !s.Equal(b.labels[i]) {
			return false
		}
	}

	return true
}

// Transpose permutes buffer axes and label Sets together. An empty perm
// reverses the axis order.
// Complexity: O(size).
func (a *Array) Transpose(perm ...int) (*Array, error) {
	rank := a.Rank()
	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}
	buf, err := a.buf.Transpose(perm...)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	sets := make([]*label.Set, rank)
	for i, p := range perm {
		sets[i] = a.labels[p].Clone()
	}

	return a.derive(buf, sets)
}

// Swap exchanges two axes (buffer and label Sets move together).
func (a *Array) Swap(i, j int) (*Array, error) {
	rank := a.Rank()
	if i < 0 || i >= rank || j < 0 || j >= rank {
		return nil, fmt.Errorf("Swap(%d,%d) on rank %d: %w", i, j, rank, ErrBadAxis)
	}
	perm := make([]int, rank)
	for d := range perm {
		perm[d] = d
	}
	perm[i], perm[j] = j, i

	return a.Transpose(perm...)
}

// String implements fmt.Stringer: the buffer followed by the label Sets.
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString(a.buf.String())
	sb.WriteString("\nlabels=(")
	for i, s := range a.labels {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteString(")")

	return sb.String()
}
