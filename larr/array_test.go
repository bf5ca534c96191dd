package larr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/larray/label"
	"github.com/katalvlaran/larray/larr"
	"github.com/katalvlaran/larray/nd"
)

var nan = math.NaN()

// mustDense builds a fixture buffer or fails the test immediately.
func mustDense(t *testing.T, shape []int, data []float64) *nd.Dense {
	t.Helper()
	d, err := nd.NewDense(shape, data)
	require.NoError(t, err, "fixture NewDense(%v) must construct", shape)

	return d
}

// mustSet builds a fixture label Set.
func mustSet(t *testing.T, tokens ...string) *label.Set {
	t.Helper()
	s, err := label.New(tokens)
	require.NoError(t, err, "fixture New(%v) must construct", tokens)

	return s
}

// grid22 is the canonical 2x2 fixture: rows (x, y), columns (p, q),
// values 1..4 row-major.
func grid22(t *testing.T) *larr.Array {
	t.Helper()
	a, err := larr.NewLabeled(
		mustDense(t, []int{2, 2}, []float64{1, 2, 3, 4}),
		[]*label.Set{mustSet(t, "x", "y"), mustSet(t, "p", "q")})
	require.NoError(t, err, "fixture array must construct")

	return a
}

// tokens extracts one axis' tokens or fails.
func tokens(t *testing.T, a *larr.Array, axis int) []string {
	t.Helper()
	s, err := a.Labels(axis)
	require.NoError(t, err, "axis %d must have labels", axis)

	return s.Tokens()
}

// TestNew_DefaultLabels wraps a buffer with positional labels per axis.
func TestNew_DefaultLabels(t *testing.T) {
	a := larr.New(mustDense(t, []int{2, 3}, make([]float64, 6)))

	assert.Equal(t, []string{"0", "1"}, tokens(t, a, 0), "axis 0 defaults positional")
	assert.Equal(t, []string{"0", "1", "2"}, tokens(t, a, 1), "axis 1 defaults positional")
}

// TestNewLabeled_Invariant enforces one matching label per position and
// fills missing trailing sets positionally.
func TestNewLabeled_Invariant(t *testing.T) {
	buf := mustDense(t, []int{2, 2}, make([]float64, 4))

	_, err := larr.NewLabeled(buf, []*label.Set{mustSet(t, "only")})
	assert.ErrorIs(t, err, larr.ErrShapeMismatch, "1 label for extent 2 must error")

	_, err = larr.NewLabeled(buf, []*label.Set{
		mustSet(t, "x", "y"), mustSet(t, "p", "q"), mustSet(t, "extra"),
	})
	assert.ErrorIs(t, err, larr.ErrShapeMismatch, "more sets than axes must error")

	a, err := larr.NewLabeled(buf, []*label.Set{mustSet(t, "x", "y")})
	require.NoError(t, err, "missing trailing set must default")
	assert.Equal(t, []string{"0", "1"}, tokens(t, a, 1), "trailing axis is positional")
}

// TestFloat unwraps a rank-0 array and rejects anything larger.
func TestFloat(t *testing.T) {
	s := larr.New(nd.Scalar(7))
	v, err := s.Float()
	require.NoError(t, err, "a scalar must unwrap")
	assert.Equal(t, 7.0, v, "the wrapped value comes back")

	_, err = grid22(t).Float()
	assert.ErrorIs(t, err, larr.ErrNotScalar, "a matrix is not a scalar")
}

// TestClone_Independence verifies that mutating a clone leaves the original
// alone.
func TestClone_Independence(t *testing.T) {
	a := grid22(t)
	c := a.Clone()

	require.NoError(t, c.Assign(99.0, "x", "p"), "assigning the clone must succeed")
	v, _ := a.Raw().At(0, 0)
	assert.Equal(t, 1.0, v, "the original keeps its value")
	w, _ := c.Raw().At(0, 0)
	assert.Equal(t, 99.0, w, "the clone holds the new value")
}

// TestEqual_LabelsAndNaN requires both buffer and labels to match, with
// NaN comparing equal to NaN.
func TestEqual_LabelsAndNaN(t *testing.T) {
	a, err := larr.NewLabeled(
		mustDense(t, []int{2}, []float64{1, nan}),
		[]*label.Set{mustSet(t, "x", "y")})
	require.NoError(t, err, "fixture must construct")

	same, err := larr.NewLabeled(
		mustDense(t, []int{2}, []float64{1, nan}),
		[]*label.Set{mustSet(t, "x", "y")})
	require.NoError(t, err, "fixture must construct")
	assert.True(t, a.Equal(same), "same buffer, same labels, NaN-aware")

	relabeled, err := larr.NewLabeled(
		mustDense(t, []int{2}, []float64{1, nan}),
		[]*label.Set{mustSet(t, "x", "z")})
	require.NoError(t, err, "fixture must construct")
	assert.False(t, a.Equal(relabeled), "label difference breaks equality")
	assert.False(t, a.Equal(nil), "nil never compares equal")
}

// TestTranspose_LabelsFollow moves label sets together with the buffer.
func TestTranspose_LabelsFollow(t *testing.T) {
	a := grid22(t)

	tr, err := a.Transpose()
	require.NoError(t, err, "transpose must succeed")
	assert.Equal(t, []string{"p", "q"}, tokens(t, tr, 0), "columns become rows")
	assert.Equal(t, []string{"x", "y"}, tokens(t, tr, 1), "rows become columns")
	v, _ := tr.Raw().At(0, 1)
	assert.Equal(t, 3.0, v, "cell (p,y) was cell (y,p)")

	sw, err := a.Swap(0, 1)
	require.NoError(t, err, "swap must succeed")
	assert.True(t, tr.Equal(sw), "swapping the only two axes equals the transpose")

	_, err = a.Swap(0, 2)
	assert.ErrorIs(t, err, larr.ErrBadAxis, "swap beyond the rank must error")
}
