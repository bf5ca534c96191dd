// Package larr: indexed assignment with grow-on-write semantics.

package larr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/larray/nd"
)

// asDense coerces an assignment payload into a buffer.
func asDense(value any) (*nd.Dense, error) {
	switch v := value.(type) {
	case float64:
		return nd.Scalar(v), nil
	case int:
		return nd.Scalar(float64(v)), nil
	case []float64:
		return nd.NewDense([]int{len(v)}, append([]float64(nil), v...))
	case *nd.Dense:
		return v, nil
	case *Array:
		return v.buf, nil
	default:
		return nil, fmt.Errorf("value %T: %w", value, ErrBadValue)
	}
}

// growAxis appends one NaN hyperplane along dim and registers tok on the
// axis, extending the extent by one.
func (a *Array) growAxis(dim int, tok string) error {
	shape := a.buf.Shape()
	shape[dim] = 1
	pad, err := nd.Full(math.NaN(), shape...)
	if err != nil {
		return err
	}
	grown, err := nd.ConcatPad([]*nd.Dense{a.buf, pad}, dim)
	if err != nil {
		return err
	}
	a.buf = grown

	return a.labels[dim].Grow(tok)
}

// grownFor stages the grow-on-write pass: every single string key naming a
// token its axis has not seen extends that axis. Multi-label, positional
// and span keys never grow. With nothing to grow the receiver itself comes
// back; otherwise a staged copy carrying the grown buffer and cloned label
// sets, so the receiver stays untouched until the caller commits.
func (a *Array) grownFor(keys []any) (*Array, error) {
	rank := a.Rank()
	consuming := 0
	for _, k := range keys {
		switch k.(type) {
		case ellipsisKey, newAxisKey:
		default:
			consuming++
		}
	}
	if consuming > rank {
		// buildPlan reports the excess.
		return a, nil
	}

	staged := a
	dim := 0
	for _, k := range keys {
		switch key := k.(type) {
		case ellipsisKey:
			dim += rank - consuming
		case newAxisKey:
		case string:
			if !staged.labels[dim].Has(key) {
				if staged == a {
					staged = &Array{buf: a.buf, labels: cloneSets(a.labels), opt: a.opt}
				}
				if err := staged.growAxis(dim, key); err != nil {
					return nil, err
				}
			}
			dim++
		default:
			dim++
		}
	}

	return staged, nil
}

// Assign writes value into the selection addressed by keys, broadcasting it
// over the target region in place. Accepted values: float64, int, []float64,
// *nd.Dense and *Array (labels of an Array value are ignored). NewAxis and
// Fancy keys are not accepted here.
//
// Grow-on-write: a single string key naming an unseen token extends that
// axis by one, new cells taking NaN, before the write resolves. Every other
// lookup failure is an error and the array is left unchanged. Growth stages
// on a copy and commits only once the whole write succeeds, so a failing
// Assign never leaves a phantom axis behind.
//
// Stage 1 (Coerce): turn the value into a buffer.
// Stage 2 (Grow): stage axis growth for unseen string keys.
// Stage 3 (Compile): build the selection plan against the staged shape.
// Stage 4 (Scatter): broadcast the value over the target region, write cell
// by cell, then commit the staged growth.
// Complexity: O(target size · rank).
func (a *Array) Assign(value any, keys ...any) error {
	val, err := asDense(value)
	if err != nil {
		return fmt.Errorf("Assign: %w", err)
	}
	staged, err := a.grownFor(keys)
	if err != nil {
		return fmt.Errorf("Assign: %w", err)
	}
	plan, err := staged.buildPlan(keys, false)
	if err != nil {
		return fmt.Errorf("Assign: %w", err)
	}

	target := make([]int, len(plan.picks))
	for d, p := range plan.picks {
		target[d] = len(p)
	}
	src, err := nd.BroadcastTo(val, target)
	if err != nil {
		return fmt.Errorf("Assign: %w", err)
	}

	if src.Size() > 0 {
		ix := make([]int, len(target))
		dst := make([]int, len(target))
		for {
			for d := range ix {
				dst[d] = plan.picks[d][ix[d]]
			}
			v, _ := src.At(ix...)
			if err = staged.buf.SetAt(v, dst...); err != nil {
				return fmt.Errorf("Assign: %w", err)
			}
			if !nd.NextIndex(ix, target) {
				break
			}
		}
	}
	a.buf, a.labels = staged.buf, staged.labels

	return nil
}
