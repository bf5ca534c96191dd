// Package larr: the Sel indexing protocol. A heterogeneous key sequence is
// compiled into a selection plan (one pick list per source axis plus output
// slot bookkeeping), executed as a single Gather, and re-wrapped with
// freshly computed label Sets.

package larr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/larray/label"
	"github.com/katalvlaran/larray/nd"
)

// slotKind classifies one dimension of the selection result.
type slotKind int

const (
	slotAxis  slotKind = iota // surviving source axis
	slotNew                   // inserted length-1 axis
	slotFancy                 // axis replaced by a fancy block's dimensions
)

// slot records where one output dimension comes from.
type slot struct {
	kind slotKind
	axis int // source axis for slotAxis/slotFancy
}

// selPlan is the compiled form of a key sequence. A collapsed axis holds a
// single pick and no output slot.
type selPlan struct {
	picks [][]int // selected positions per source axis
	fancy *Fancy  // at most one fancy block
	slots []slot  // output dimensions in order
}

// wrapIndex resolves a possibly negative position against the axis extent.
// Negative indices wrap modulo the extent; positions at or beyond the
// extent are ErrOutOfRange.
func wrapIndex(i, extent int) (int, error) {
	if i >= extent || extent == 0 {
		return 0, fmt.Errorf("index %d on extent %d: %w", i, extent, ErrOutOfRange)
	}
	if i < 0 {
		i %= extent
		if i < 0 {
			i += extent
		}
	}

	return i, nil
}

// expand materializes the span's positions against the axis extent.
// Out-of-range endpoints clamp, as positional slices conventionally do.
func (sp Span) expand(extent int) []int {
	if sp.full {
		out := make([]int, extent)
		for i := range out {
			out[i] = i
		}

		return out
	}
	step := sp.Step
	if step == 0 {
		step = 1
	}
	start, stop := sp.Start, sp.Stop
	if start < 0 {
		start += extent
	}
	if stop < 0 {
		stop += extent
	}
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > extent {
			return extent
		}

		return v
	}
	start, stop = clamp(start), clamp(stop)

	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		if start == extent {
			start = extent - 1
		}
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}

	return out
}

// buildPlan compiles keys into a selection plan.
// Stage 1 (Validate): at most one Ellipsis; consuming keys must not exceed
// the rank; marker keys (NewAxis, Fancy) only where allowed.
// Stage 2 (Execute): walk the keys left to right, resolving each against
// the current axis; the Ellipsis absorbs every axis not consumed elsewhere;
// trailing axes are kept untouched.
// Complexity: O(keys + selected positions).
func (a *Array) buildPlan(keys []any, markers bool) (*selPlan, error) {
	rank := a.Rank()
	consuming, ellipses := 0, 0
	for _, k := range keys {
		switch k.(type) {
		case ellipsisKey:
			ellipses++
		case newAxisKey:
		default:
			consuming++
		}
	}
	if ellipses > 1 {
		return nil, fmt.Errorf("more than one ellipsis: %w", ErrBadKey)
	}
	if consuming > rank {
		return nil, fmt.Errorf("%d consuming keys for rank %d: %w", consuming, rank, ErrBadKey)
	}

	p := &selPlan{picks: make([][]int, rank)}
	dim := 0
	keepAll := func() {
		p.picks[dim] = All.expand(a.buf.Shape()[dim])
		p.slots = append(p.slots, slot{kind: slotAxis, axis: dim})
		dim++
	}

	for _, k := range keys {
		switch key := k.(type) {
		case ellipsisKey:
			for i := 0; i < rank-consuming; i++ {
				keepAll()
			}
		case newAxisKey:
			if !markers {
				return nil, fmt.Errorf("NewAxis in assignment: %w", ErrBadKey)
			}
			p.slots = append(p.slots, slot{kind: slotNew})
		default:
			if err := p.resolveKey(a, dim, key, markers); err != nil {
				return nil, err
			}
			dim++
		}
	}
	for dim < rank {
		keepAll()
	}

	return p, nil
}

// resolveKey resolves one axis-consuming key against axis dim.
func (p *selPlan) resolveKey(a *Array, dim int, k any, markers bool) error {
	extent := a.buf.Shape()[dim]
	set := a.labels[dim]

	switch key := k.(type) {
	case int:
		i, err := wrapIndex(key, extent)
		if err != nil {
			return fmt.Errorf("axis %d: %w", dim, err)
		}
		p.picks[dim] = []int{i}

	case string:
		i, err := set.Find(key)
		if err != nil {
			return fmt.Errorf("axis %d: %w", dim, err)
		}
		p.picks[dim] = []int{i}

	case []string:
		picks := make([]int, len(key))
		for n, tok := range key {
			i, err := set.Find(tok)
			if err != nil {
				return fmt.Errorf("axis %d: %w", dim, err)
			}
			picks[n] = i
		}
		p.picks[dim] = picks
		p.slots = append(p.slots, slot{kind: slotAxis, axis: dim})

	case []int:
		picks := make([]int, len(key))
		for n, raw := range key {
			i, err := wrapIndex(raw, extent)
			if err != nil {
				return fmt.Errorf("axis %d: %w", dim, err)
			}
			picks[n] = i
		}
		p.picks[dim] = picks
		p.slots = append(p.slots, slot{kind: slotAxis, axis: dim})

	case []bool:
		if len(key) != extent {
			return fmt.Errorf("axis %d: mask length %d for extent %d: %w", dim, len(key), extent, ErrBadKey)
		}
		var picks []int
		for i, keep := range key {
			if keep {
				picks = append(picks, i)
			}
		}
		if picks == nil {
			picks = []int{}
		}
		p.picks[dim] = picks
		p.slots = append(p.slots, slot{kind: slotAxis, axis: dim})

	case Span:
		p.picks[dim] = key.expand(extent)
		p.slots = append(p.slots, slot{kind: slotAxis, axis: dim})

	case Fancy:
		if !markers {
			return fmt.Errorf("fancy key in assignment: %w", ErrBadKey)
		}
		if p.fancy != nil {
			return fmt.Errorf("more than one fancy key: %w", ErrBadKey)
		}
		picks := make([]int, len(key.idx))
		for n, raw := range key.idx {
			i, err := wrapIndex(raw, extent)
			if err != nil {
				return fmt.Errorf("axis %d: %w", dim, err)
			}
			picks[n] = i
		}
		p.picks[dim] = picks
		p.fancy = &key
		p.slots = append(p.slots, slot{kind: slotFancy, axis: dim})

	default:
		return fmt.Errorf("key %T on axis %d: %w", k, dim, ErrBadKey)
	}

	return nil
}

// Sel evaluates a heterogeneous key sequence and returns the selection as a
// fresh Array (see the package documentation for the key vocabulary).
// The result's rank equals the number of surviving axes, each carrying a
// freshly computed label Set; a fully collapsed selection is rank 0 and
// unwraps via Float.
// Stage 1 (Compile): buildPlan.
// Stage 2 (Execute): one Gather over the source buffer.
// Stage 3 (Relabel): pick, insert or factor labels per output slot.
// Complexity: O(result size · rank).
func (a *Array) Sel(keys ...any) (*Array, error) {
	plan, err := a.buildPlan(keys, true)
	if err != nil {
		return nil, fmt.Errorf("Sel: %w", err)
	}

	g, err := a.buf.Gather(plan.picks)
	if err != nil {
		return nil, fmt.Errorf("Sel: %w", err)
	}

	var shape []int
	var sets []*label.Set
	for _, sl := range plan.slots {
		switch sl.kind {
		case slotNew:
			ns, _ := label.New([]string{newAxisToken}, label.WithDelimiter(a.opt.delim))
			shape = append(shape, 1)
			sets = append(sets, ns)

		case slotAxis:
			ps, pickErr := a.labels[sl.axis].Pick(plan.picks[sl.axis])
			if pickErr != nil {
				return nil, fmt.Errorf("Sel axis %d: %w", sl.axis, pickErr)
			}
			shape = append(shape, len(plan.picks[sl.axis]))
			sets = append(sets, ps)

		case slotFancy:
			// One tuple per block element, split on the delimiter; factoring
			// yields one label Set per block dimension.
			tuples := make([][]string, len(plan.picks[sl.axis]))
			for i, pos := range plan.picks[sl.axis] {
				tok, _ := a.labels[sl.axis].At(pos)
				tuples[i] = strings.Split(tok, a.opt.delim)
			}
			fsets, facErr := label.FactorTuples(tuples, plan.fancy.shape,
				label.WithDelimiter(a.opt.delim), label.WithWarnLogger(a.opt.logger))
			if facErr != nil {
				return nil, fmt.Errorf("Sel: %w", facErr)
			}
			shape = append(shape, plan.fancy.shape...)
			sets = append(sets, fsets...)
		}
	}

	// Collapsed axes are size-1 in the gathered buffer and absent from the
	// slot list; dropping them (and splitting the fancy dimension) is a pure
	// reinterpretation of the row-major data.
	buf, err := nd.NewDense(shape, g.Data())
	if err != nil {
		return nil, fmt.Errorf("Sel: %w", err)
	}

	return a.derive(buf, sets)
}
