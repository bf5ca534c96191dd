package larr_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/larray/larr"
)

// mustMapping builds a Mapping from alternating key/value pairs.
func mustMapping(t *testing.T, pairs ...any) *larr.Mapping {
	t.Helper()
	m := larr.NewMapping()
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, m.Set(pairs[i].(string), pairs[i+1]),
			"fixture Set(%v) must succeed", pairs[i])
	}

	return m
}

// walkLines renders every leaf as "path=value" for order-sensitive
// comparison.
func walkLines(m *larr.Mapping) []string {
	var out []string
	m.Walk(func(path []string, v float64) {
		line := ""
		for i, p := range path {
			if i > 0 {
				line += "."
			}
			line += p
		}
		out = append(out, fmt.Sprintf("%s=%g", line, v))
	})

	return out
}

// TestMapping_Order preserves insertion order through Set, Get and
// overwrite.
func TestMapping_Order(t *testing.T) {
	m := mustMapping(t, "z", 1.0, "a", 2.0)

	assert.Equal(t, []string{"z", "a"}, m.Keys(), "insertion order, not sorted")

	require.NoError(t, m.Set("z", 9.0), "overwrite must succeed")
	assert.Equal(t, []string{"z", "a"}, m.Keys(), "overwrite keeps the position")
	v, ok := m.Get("z")
	assert.True(t, ok, "the key is present")
	assert.Equal(t, 9.0, v, "the new value is stored")

	_, ok = m.Get("missing")
	assert.False(t, ok, "an absent key reports false")

	assert.ErrorIs(t, m.Set("bad", "text"), larr.ErrBadValue,
		"non-numeric leaves are rejected")
}

// TestMapping_Walk expands vector leaves element by element.
func TestMapping_Walk(t *testing.T) {
	m := mustMapping(t,
		"a", mustMapping(t, "b", 1.0),
		"v", []float64{7, 8})

	assert.Equal(t, []string{"a.b=1", "v.0=7", "v.1=8"}, walkLines(m),
		"leaves appear in insertion order, vectors expanded")
}

// TestFromMapping_RaggedPad builds the canonical ragged scenario: the
// missing (d,c) leaf pads with NaN.
func TestFromMapping_RaggedPad(t *testing.T) {
	m := mustMapping(t,
		"a", mustMapping(t, "b", 1.0, "c", 2.0),
		"d", mustMapping(t, "b", 3.0))

	a, err := larr.FromMapping(m)
	require.NoError(t, err, "flattening must succeed")
	assertData(t, a, []int{2, 2}, []float64{1, 2, 3, nan})
	assert.Equal(t, []string{"a", "d"}, tokens(t, a, 0), "level-0 keys label axis 0")
	assert.Equal(t, []string{"b", "c"}, tokens(t, a, 1), "level-1 union labels axis 1")
}

// TestFromMapping_ThreeLevels reproduces the deeper reference scenario with
// a ragged innermost level.
func TestFromMapping_ThreeLevels(t *testing.T) {
	m := mustMapping(t,
		"a", mustMapping(t,
			"b", mustMapping(t, "c", 1.0, "d", 2.0, "e", 3.0),
			"f", mustMapping(t, "c", 4.0, "d", 5.0)))

	a, err := larr.FromMapping(m)
	require.NoError(t, err, "flattening must succeed")
	assertData(t, a, []int{1, 2, 3}, []float64{1, 2, 3, 4, 5, nan})
	assert.Equal(t, []string{"a"}, tokens(t, a, 0), "level 0")
	assert.Equal(t, []string{"b", "f"}, tokens(t, a, 1), "level 1")
	assert.Equal(t, []string{"c", "d", "e"}, tokens(t, a, 2), "level-2 union")
}

// TestToMapping_RoundTrip drops the NaN padding on the way back and keeps
// everything else.
func TestToMapping_RoundTrip(t *testing.T) {
	m := mustMapping(t,
		"a", mustMapping(t, "b", 1.0, "c", 2.0),
		"d", mustMapping(t, "b", 3.0))

	a, err := larr.FromMapping(m)
	require.NoError(t, err, "flattening must succeed")

	back, err := a.ToMapping()
	require.NoError(t, err, "unfolding must succeed")
	assert.Equal(t, walkLines(m), walkLines(back), "round trip up to NaN leaves")
}

// TestFromMapping_VectorLeaves treats []float64 leaves as a positional
// innermost level.
func TestFromMapping_VectorLeaves(t *testing.T) {
	m := mustMapping(t,
		"u", []float64{1, 2, 3},
		"v", []float64{4, 5})

	a, err := larr.FromMapping(m)
	require.NoError(t, err, "flattening must succeed")
	assertData(t, a, []int{2, 3}, []float64{1, 2, 3, 4, 5, nan})
	assert.Equal(t, []string{"0", "1", "2"}, tokens(t, a, 1), "positional inner labels")
}

// TestCombineMapping folds a key level into a deeper one with delimiter
// joins and a deep merge of collapsing branches.
func TestCombineMapping(t *testing.T) {
	m := mustMapping(t,
		"a", mustMapping(t, "b", 1.0, "c", 2.0),
		"d", mustMapping(t, "b", 3.0))

	got, err := larr.CombineMapping(m, 0, 1, "-")
	require.NoError(t, err, "adjacent fold must succeed")
	assert.Equal(t, []string{"a-b", "a-c", "d-b"}, got.Keys(), "folded keys join in order")
	assert.Equal(t, []string{"a-b=1", "a-c=2", "d-b=3"}, walkLines(got), "values follow")

	deep := mustMapping(t,
		"a", mustMapping(t,
			"b", mustMapping(t, "c", 1.0),
			"f", mustMapping(t, "c", 4.0)))
	folded, err := larr.CombineMapping(deep, 0, 2, "-")
	require.NoError(t, err, "fold across a level must succeed")
	assert.Equal(t, []string{"b.a-c=1", "f.a-c=4"}, walkLines(folded),
		"the folded key lands at the target level")

	_, err = larr.CombineMapping(m, 1, 1, "-")
	assert.ErrorIs(t, err, larr.ErrBadAxis, "levels must be strictly increasing")

	_, err = larr.CombineMapping(m, 0, 2, "-")
	assert.ErrorIs(t, err, larr.ErrBadValue, "a leaf above the target level cannot fold")
}
