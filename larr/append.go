// Package larr: padded concatenation of two labeled arrays.

package larr

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/larray/label"
	"github.com/katalvlaran/larray/nd"
)

// Append concatenates b after the receiver along axis, padding every other
// dimension to the larger extent with NaN. An empty operand contributes
// nothing: the result is a clone of the other one. A negative axis resolves
// against the rank.
//
// Label policy (warnings go to the configured logger, never aborting):
//   - concatenation axis: the receiver's tokens followed by b's; a colliding
//     token from b is renamed with a numeric delimiter suffix.
//   - every other axis: when the shorter operand's tokens are a prefix of
//     the longer's, the longer's tokens cover the padded extent; otherwise
//     the longer operand's labels win and the mismatch is logged.
//
// Complexity: O(result size · rank).
func (a *Array) Append(b *Array, axis int, opts ...Option) (*Array, error) {
	o := a.opt.apply(opts...)
	if b == nil || b.Size() == 0 {
		return a.Clone(), nil
	}
	if a.Size() == 0 {
		return b.Clone(), nil
	}

	rank := a.Rank()
	if b.Rank() != rank {
		return nil, fmt.Errorf("Append: rank %d vs %d: %w", rank, b.Rank(), nd.ErrRankMismatch)
	}
	for axis < 0 {
		axis += rank
	}
	if axis >= rank {
		return nil, fmt.Errorf("Append(axis=%d) on rank %d: %w", axis, rank, ErrBadAxis)
	}

	buf, err := nd.ConcatPad([]*nd.Dense{a.buf, b.buf}, axis)
	if err != nil {
		return nil, fmt.Errorf("Append: %w", err)
	}

	sets := make([]*label.Set, rank)
	for d := 0; d < rank; d++ {
		if d == axis {
			if sets[d], err = concatLabels(a.labels[d], b.labels[d], o); err != nil {
				return nil, fmt.Errorf("Append: %w", err)
			}
		} else {
			sets[d] = coverLabels(a.labels[d], b.labels[d], o)
		}
	}

	return a.derive(buf, sets)
}

// concatLabels joins two token sequences for a concatenation axis, renaming
// collisions from the second operand with a numeric delimiter suffix.
func concatLabels(x, y *label.Set, o options) (*label.Set, error) {
	tokens := x.Tokens()
	seen := make(map[string]struct{}, len(tokens)+y.Len())
	for _, t := range tokens {
		seen[t] = struct{}{}
	}
	for _, t := range y.Tokens() {
		u := t
		for n := 1; ; n++ {
			if _, dup := seen[u]; !dup {
				break
			}
			u = fmt.Sprintf("%s%s%d", t, o.delim, n)
		}
		if u != t {
			o.logger.Warn("append renamed a colliding label",
				zap.String("label", t),
				zap.String("renamed", u))
		}
		seen[u] = struct{}{}
		tokens = append(tokens, u)
	}

	return label.New(tokens, label.WithDelimiter(o.delim))
}

// coverLabels picks the labels covering a padded (non-concatenation) axis:
// the longer operand's tokens, logging when the shorter operand disagrees
// on the shared prefix.
func coverLabels(x, y *label.Set, o options) *label.Set {
	longer, shorter := x, y
	if y.Len() > x.Len() {
		longer, shorter = y, x
	}
	for i, t := range shorter.Tokens() {
		lt, _ := longer.At(i)
		if lt != t {
			o.logger.Warn("append label mismatch on a shared axis",
				zap.Int("position", i),
				zap.String("kept", lt),
				zap.String("dropped", t))

			break
		}
	}
	// Tokens are unique already; only the delimiter is normalized.
	s, _ := label.New(longer.Tokens(), label.WithDelimiter(o.delim))

	return s
}
