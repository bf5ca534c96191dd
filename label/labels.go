// Package label: the Set type — an ordered collection of unique tokens
// assigned to one axis of a labeled array.

package label

import (
	"fmt"
	"strconv"
	"strings"
)

// Set is an ordered sequence of unique string tokens naming the positions
// along one axis. The zero value is not usable; construct via New or
// Default. A Set is replaced wholesale when its axis is sliced, reshaped,
// combined or decomposed; the only in-place mutation is Grow, used by
// grow-on-write assignment.
type Set struct {
	tokens []string
	index  map[string]int // lazily built by Find; nil until first lookup
	delim  string
}

// New constructs a Set from tokens, enforcing the uniqueness invariant.
// Stage 1 (Validate): reject duplicate tokens (ErrDuplicateLabel — fatal).
// Stage 2 (Finalize): copy the token slice; the index map is built lazily.
// Complexity: O(n) time and memory.
func New(tokens []string, opts ...Option) (*Set, error) {
	o := gatherOptions(opts...)
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			return nil, fmt.Errorf("New(%q): %w", t, ErrDuplicateLabel)
		}
		seen[t] = struct{}{}
	}

	return &Set{tokens: append([]string(nil), tokens...), delim: o.delim}, nil
}

// Default constructs the positional Set "0".."n-1" assigned to unlabeled
// axes. Complexity: O(n).
func Default(n int, opts ...Option) *Set {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = strconv.Itoa(i)
	}
	// Positional tokens are unique by construction.
	s, _ := New(tokens, opts...)

	return s
}

// Len returns the number of tokens (== the axis extent).
func (s *Set) Len() int { return len(s.tokens) }

// Delim returns the delimiter this Set joins and splits composite tokens with.
func (s *Set) Delim() string { return s.delim }

// At returns the token at position i, or ErrOutOfRange.
func (s *Set) At(i int) (string, error) {
	if i < 0 || i >= len(s.tokens) {
		return "", fmt.Errorf("At(%d) on %d tokens: %w", i, len(s.tokens), ErrOutOfRange)
	}

	return s.tokens[i], nil
}

// Tokens returns a copy of the ordered token sequence.
func (s *Set) Tokens() []string { return append([]string(nil), s.tokens...) }

// Find locates the position of token within the Set.
// The index map is built on first use and reused afterwards (request-scoped
// to this Set; there is no global cache).
// Complexity: O(n) once, O(1) amortized.
func (s *Set) Find(token string) (int, error) {
	if s.index == nil {
		s.index = make(map[string]int, len(s.tokens))
		for i, t := range s.tokens {
			s.index[t] = i
		}
	}
	i, ok := s.index[token]
	if !ok {
		return 0, fmt.Errorf("Find(%q): %w", token, ErrLabelNotFound)
	}

	return i, nil
}

// Has reports whether token is present.
func (s *Set) Has(token string) bool {
	_, err := s.Find(token)

	return err == nil
}

// Grow appends a previously unseen token, extending the axis by one.
// This is the explicit grow-on-write entry point used by indexed
// assignment; a duplicate token is ErrDuplicateLabel.
// Complexity: O(1) amortized.
func (s *Set) Grow(token string) error {
	if s.Has(token) {
		return fmt.Errorf("Grow(%q): %w", token, ErrDuplicateLabel)
	}
	s.tokens = append(s.tokens, token)
	s.index[token] = len(s.tokens) - 1

	return nil
}

// Pick builds a new Set from the tokens at the given positions, in the
// given order. Duplicated positions violate uniqueness and fail.
// Complexity: O(k).
func (s *Set) Pick(positions []int) (*Set, error) {
	tokens := make([]string, len(positions))
	for i, p := range positions {
		t, err := s.At(p)
		if err != nil {
			return nil, err
		}
		tokens[i] = t
	}

	return New(tokens, WithDelimiter(s.delim))
}

// Join collapses the whole Set into a single delimiter-joined summary token
// (used by dimension-preserving reductions).
func (s *Set) Join() string { return strings.Join(s.tokens, s.delim) }

// Equal reports token-wise equality (order-sensitive). Delimiters do not
// participate in equality.
func (s *Set) Equal(o *Set) bool {
	if o == nil || len(s.tokens) != len(o.tokens) {
		return false
	}
	for i, t := range s.tokens {
		if o.tokens[i] != t {
			return false
		}
	}

	return true
}

// Clone returns an independent copy (the lazy index is not shared).
func (s *Set) Clone() *Set {
	return &Set{tokens: append([]string(nil), s.tokens...), delim: s.delim}
}

// String implements fmt.Stringer.
func (s *Set) String() string {
	return "(" + strings.Join(s.tokens, ", ") + ")"
}
