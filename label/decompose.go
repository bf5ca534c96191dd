// Package label: best-effort factoring of composite labels back into
// per-axis Sets. This is the approximate inverse of Combine and the engine
// behind label-preserving reshape.

package label

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// FactorTuples factors a stream of per-element label tuples into one Set per
// axis of shape. tuples must hold exactly prod(shape) entries, listed in
// row-major order of shape; tuples[p] carries the component tokens of the
// p-th element.
//
// Algorithm, per axis a and index j along it: collect the tuples whose
// axis-a coordinate is j, and extract their longest common token-wise
// subsequence as the representative label. When no common subsequence
// exists, fall back to the ordered distinct tokens of the group; when the
// per-axis labels then violate uniqueness, substitute positional labels for
// the whole axis. Fallbacks are reported through the warning logger and
// never abort the operation (best-effort by contract).
//
// Complexity: O(axes · extent · group LCS).
func FactorTuples(tuples [][]string, shape []int, opts ...Option) ([]*Set, error) {
	o := gatherOptions(opts...)

	total := 1
	for _, e := range shape {
		total *= e
	}
	if len(tuples) != total {
		return nil, fmt.Errorf("FactorTuples: %d tuples for shape %v: %w", len(tuples), shape, ErrShapeMismatch)
	}

	// Row-major strides of the output shape.
	strides := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= shape[d]
	}

	sets := make([]*Set, len(shape))
	for a := range shape {
		tokens := make([]string, shape[a])
		fellBack := false
		for j := 0; j < shape[a]; j++ {
			group := make([][]string, 0, total/maxInt(shape[a], 1))
			for p := 0; p < total; p++ {
				if (p/strides[a])%shape[a] == j {
					group = append(group, tuples[p])
				}
			}
			rep := commonSubsequence(group)
			if len(rep) == 0 {
				rep = distinctTokens(group)
				fellBack = true
			}
			if len(rep) == 0 {
				rep = []string{strconv.Itoa(j)}
				fellBack = true
			}
			tokens[j] = strings.Join(rep, o.delim)
		}

		set, err := New(tokens, WithDelimiter(o.delim))
		if err != nil {
			// Uniqueness violated after trimming: positional labels are the
			// documented last resort.
			o.logger.Warn("label factoring fell back to positional labels",
				zap.Int("axis", a),
				zap.Strings("candidates", tokens))
			set = Default(shape[a], WithDelimiter(o.delim))
		} else if fellBack {
			o.logger.Warn("label factoring found no common subsequence",
				zap.Int("axis", a))
		}
		sets[a] = set
	}

	return sets, nil
}

// Decompose reconstructs per-axis Sets from a composite Set that resulted
// from reshaping or combining, given the target shape to factor it into.
// Composite tokens are split on the Set's delimiter and factored via
// FactorTuples. Not guaranteed to invert Combine exactly when labels are not
// globally unique after trimming.
// Complexity: as FactorTuples plus O(tokens) splitting.
func Decompose(composite *Set, shape []int, opts ...Option) ([]*Set, error) {
	merged := append([]Option{WithDelimiter(composite.delim)}, opts...)
	o := gatherOptions(merged...)

	tuples := make([][]string, composite.Len())
	for i, t := range composite.tokens {
		tuples[i] = strings.Split(t, o.delim)
	}

	sets, err := FactorTuples(tuples, shape, merged...)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	return sets, nil
}

// distinctTokens flattens the group and keeps the distinct tokens in
// first-seen order (O(1) amortized membership check).
func distinctTokens(group [][]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, seq := range group {
		for _, t := range seq {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}

	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
