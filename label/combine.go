// Package label: cross-product composition of two Sets.

package label

import "fmt"

// Combine produces the Set whose tokens are every pairwise delimiter-joined
// concatenation a+delim+b, for a in left and b in right, in row-major order
// (left varies slowest). Used when two axes merge into one. The left Set's
// delimiter wins.
// Stage 1 (Execute): materialize the cross product.
// Stage 2 (Validate): construction re-checks uniqueness — two distinct pairs
// can collide once joined (e.g. "x-y"+"z" vs "x"+"y-z"), which is fatal.
// Complexity: O(len(left)·len(right)).
func Combine(left, right *Set) (*Set, error) {
	tokens := make([]string, 0, len(left.tokens)*len(right.tokens))
	for _, a := range left.tokens {
		for _, b := range right.tokens {
			tokens = append(tokens, a+left.delim+b)
		}
	}
	out, err := New(tokens, WithDelimiter(left.delim))
	if err != nil {
		return nil, fmt.Errorf("Combine: %w", err)
	}

	return out, nil
}
