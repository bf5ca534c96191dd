// Package larr: the nested-mapping bridge. Mapping is an insertion-ordered
// string-keyed tree of numeric leaves; FromMapping flattens such a tree into
// a labeled array (ragged branches NaN-padded) and ToMapping inverts it up
// to the padding cells.

package larr

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/larray/label"
	"github.com/katalvlaran/larray/nd"
)

// Mapping is a string-keyed tree preserving insertion order with O(1)
// membership. Values are float64, []float64 or *Mapping. The zero value is
// not usable; construct via NewMapping.
type Mapping struct {
	keys []string
	vals map[string]any
}

// NewMapping returns an empty ordered mapping.
func NewMapping() *Mapping {
	return &Mapping{vals: make(map[string]any)}
}

// Set stores v under key, appending the key to the order when unseen.
// Accepted value kinds: float64, int (widened), []float64, *Mapping;
// anything else is ErrBadValue.
func (m *Mapping) Set(key string, v any) error {
	switch t := v.(type) {
	case float64, []float64, *Mapping:
	case int:
		v = float64(t)
	default:
		return fmt.Errorf("Set(%q) with %T: %w", key, v, ErrBadValue)
	}
	if _, seen := m.vals[key]; !seen {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v

	return nil
}

// Get returns the value under key and whether it is present.
func (m *Mapping) Get(key string) (any, bool) {
	v, ok := m.vals[key]

	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string { return append([]string(nil), m.keys...) }

// Len returns the number of keys.
func (m *Mapping) Len() int { return len(m.keys) }

// Walk visits every numeric leaf in insertion order, passing the full key
// path. A []float64 leaf is expanded element by element with its position
// as the final path component. The path slice is reused between calls.
func (m *Mapping) Walk(fn func(path []string, v float64)) {
	m.walk(nil, fn)
}

func (m *Mapping) walk(path []string, fn func(path []string, v float64)) {
	for _, k := range m.keys {
		switch t := m.vals[k].(type) {
		case float64:
			fn(append(path, k), t)
		case []float64:
			for i, v := range t {
				fn(append(path, k, strconv.Itoa(i)), v)
			}
		case *Mapping:
			t.walk(append(path, k), fn)
		}
	}
}

// deepMerge folds src into dst: unseen keys append, nested mappings merge
// recursively, and a later leaf overwrites an earlier one.
func (m *Mapping) deepMerge(src *Mapping) {
	for _, k := range src.keys {
		sv := src.vals[k]
		if dv, ok := m.vals[k]; ok {
			dm, dOK := dv.(*Mapping)
			sm, sOK := sv.(*Mapping)
			if dOK && sOK {
				dm.deepMerge(sm)

				continue
			}
		}
		_ = m.Set(k, sv)
	}
}

// CombineMapping folds key level i into level j (i < j, root is level 0):
// every key at depth i disappears and each key at depth j underneath it
// gains the folded key plus delim as a prefix. Branches that collapse onto
// the same path deep-merge; a later leaf wins a conflict. A numeric leaf
// sitting above level j on a folded path cannot move down and is
// ErrBadValue.
// Complexity: O(nodes).
func CombineMapping(m *Mapping, i, j int, delim string) (*Mapping, error) {
	if i < 0 || i >= j {
		return nil, fmt.Errorf("CombineMapping(%d,%d): %w", i, j, ErrBadAxis)
	}
	if delim == "" {
		delim = DefaultDelimiter
	}

	return foldLevel(m, i, j, 0, "", delim)
}

// foldLevel walks the tree carrying the folded key until level j is reached.
func foldLevel(m *Mapping, i, j, depth int, carry, delim string) (*Mapping, error) {
	out := NewMapping()
	for _, k := range m.keys {
		v := m.vals[k]
		switch {
		case depth == i:
			sub, ok := v.(*Mapping)
			if !ok {
				return nil, fmt.Errorf("CombineMapping: leaf %q at folded level %d: %w", k, i, ErrBadValue)
			}
			merged, err := foldLevel(sub, i, j, depth+1, k, delim)
			if err != nil {
				return nil, err
			}
			out.deepMerge(merged)

		case depth == j:
			if err := out.Set(carry+delim+k, v); err != nil {
				return nil, err
			}

		default:
			sub, ok := v.(*Mapping)
			if !ok {
				if depth > i {
					return nil, fmt.Errorf("CombineMapping: leaf %q above level %d: %w", k, j, ErrBadValue)
				}
				if err := out.Set(k, v); err != nil {
					return nil, err
				}

				continue
			}
			child, err := foldLevel(sub, i, j, depth+1, carry, delim)
			if err != nil {
				return nil, err
			}
			if prev, ok := out.vals[k].(*Mapping); ok {
				prev.deepMerge(child)
			} else if err = out.Set(k, child); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// collectKeys unions the keys seen at every depth, first-seen order. A
// []float64 leaf contributes positional keys for its own depth.
func collectKeys(v any, depth int, levels *[][]string, seen *[]map[string]struct{}) {
	grow := func() {
		for len(*levels) <= depth {
			*levels = append(*levels, nil)
			*seen = append(*seen, make(map[string]struct{}))
		}
	}
	add := func(tok string) {
		if _, dup := (*seen)[depth][tok]; dup {
			return
		}
		(*seen)[depth][tok] = struct{}{}
		(*levels)[depth] = append((*levels)[depth], tok)
	}

	switch t := v.(type) {
	case *Mapping:
		grow()
		for _, k := range t.keys {
			add(k)
			collectKeys(t.vals[k], depth+1, levels, seen)
		}
	case []float64:
		grow()
		for i := range t {
			add(strconv.Itoa(i))
		}
	}
}

// innerDense builds the positional buffer of a subtree: children stack
// along a new leading axis, ragged shapes NaN-padded.
func innerDense(v any) (*nd.Dense, error) {
	switch t := v.(type) {
	case float64:
		return nd.Scalar(t), nil
	case []float64:
		return nd.NewDense([]int{len(t)}, append([]float64(nil), t...))
	case *Mapping:
		children := make([]*nd.Dense, 0, len(t.keys))
		for _, k := range t.keys {
			c, err := innerDense(t.vals[k])
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}

		return nd.StackPad(children)
	default:
		return nil, fmt.Errorf("mapping leaf %T: %w", v, ErrBadValue)
	}
}

// FromMapping flattens a nested mapping into a labeled array. Level keys
// become the label Sets, one level per axis, unioned across branches in
// first-seen order; branch buffers stack positionally, ragged shapes
// NaN-padded, and the whole buffer pads out to the unioned label extents.
// Branches of unequal depth (a leaf next to a subtree) are ErrRankMismatch
// through the stacking kernel.
// Stage 1 (Survey): per-level key union.
// Stage 2 (Stack): recursive NaN-padded stacking of child buffers.
// Stage 3 (Embed): pad the stacked buffer to the label extents; wrap.
// Complexity: O(result size · rank).
func FromMapping(m *Mapping, opts ...Option) (*Array, error) {
	o := gatherOptions(opts...)

	var levels [][]string
	var seen []map[string]struct{}
	collectKeys(m, 0, &levels, &seen)
	if len(levels) == 0 {
		return nil, fmt.Errorf("FromMapping: empty mapping: %w", nd.ErrEmptyInput)
	}

	buf, err := innerDense(m)
	if err != nil {
		return nil, fmt.Errorf("FromMapping: %w", err)
	}
	if buf.Rank() != len(levels) {
		return nil, fmt.Errorf("FromMapping: buffer rank %d for %d key levels: %w",
			buf.Rank(), len(levels), nd.ErrRankMismatch)
	}

	shape := make([]int, len(levels))
	for d, toks := range levels {
		shape[d] = len(toks)
	}
	full, err := nd.Full(math.NaN(), shape...)
	if err != nil {
		return nil, fmt.Errorf("FromMapping: %w", err)
	}
	if buf.Size() > 0 {
		ix := make([]int, buf.Rank())
		for {
			v, _ := buf.At(ix...)
			if err = full.SetAt(v, ix...); err != nil {
				return nil, fmt.Errorf("FromMapping: %w", err)
			}
			if !nd.NextIndex(ix, buf.Shape()) {
				break
			}
		}
	}

	sets := make([]*label.Set, len(levels))
	for d, toks := range levels {
		if sets[d], err = label.New(toks, label.WithDelimiter(o.delim)); err != nil {
			return nil, fmt.Errorf("FromMapping: %w", err)
		}
	}

	arr, err := NewLabeled(full, sets, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromMapping: %w", err)
	}

	return arr, nil
}

// ToMapping unfolds the array back into a nested mapping, one key level per
// axis. NaN leaves are omitted (they are padding by convention), but a
// branch whose leaves are all NaN still appears as an empty mapping. A
// scalar array has no keys to unfold and is ErrNotScalar's counterpart,
// ErrBadValue.
// Complexity: O(size · rank).
func (a *Array) ToMapping() (*Mapping, error) {
	if a.Rank() == 0 {
		return nil, fmt.Errorf("ToMapping on a scalar: %w", ErrBadValue)
	}

	m := NewMapping()
	extent := a.buf.Shape()[0]
	for t := 0; t < extent; t++ {
		key, err := a.labels[0].At(t)
		if err != nil {
			return nil, fmt.Errorf("ToMapping: %w", err)
		}

		if a.Rank() == 1 {
			v, _ := a.buf.At(t)
			if math.IsNaN(v) {
				continue
			}
			if err = m.Set(key, v); err != nil {
				return nil, err
			}

			continue
		}

		sub, err := a.buf.Slice1(0, t)
		if err != nil {
			return nil, fmt.Errorf("ToMapping: %w", err)
		}
		child, err := a.derive(sub, cloneSets(a.labels[1:]))
		if err != nil {
			return nil, fmt.Errorf("ToMapping: %w", err)
		}
		cm, err := child.ToMapping()
		if err != nil {
			return nil, err
		}
		if err = m.Set(key, cm); err != nil {
			return nil, err
		}
	}

	return m, nil
}
