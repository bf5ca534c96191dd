package larr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/larray/larr"
	"github.com/katalvlaran/larray/nd"
)

// TestMapScale applies elementwise transforms without touching labels.
func TestMapScale(t *testing.T) {
	a := grid22(t)

	doubled := a.Scale(2)
	assertData(t, doubled, []int{2, 2}, []float64{2, 4, 6, 8})
	assert.Equal(t, []string{"x", "y"}, tokens(t, doubled, 0), "labels are untouched")

	shifted := a.Map(func(v float64) float64 { return v + 10 })
	assertData(t, shifted, []int{2, 2}, []float64{11, 12, 13, 14})
	assertData(t, a, []int{2, 2}, []float64{1, 2, 3, 4})
}

// TestZip_LabelPropagation broadcasts the second operand and keeps the
// receiver's labels without consulting the other side's.
func TestZip_LabelPropagation(t *testing.T) {
	a := grid22(t)
	row := larr.New(mustDense(t, []int{2}, []float64{10, 20}))

	got, err := a.Add(row)
	require.NoError(t, err, "broadcast add must succeed")
	assertData(t, got, []int{2, 2}, []float64{11, 22, 13, 24})
	assert.Equal(t, []string{"x", "y"}, tokens(t, got, 0), "receiver labels propagate")
	assert.Equal(t, []string{"p", "q"}, tokens(t, got, 1), "receiver labels propagate")

	// Broadcasting the receiver up to the operand would break the label
	// invariant, so it is rejected.
	wide := larr.New(mustDense(t, []int{3, 2, 2}, make([]float64, 12)))
	_, err = a.Add(wide)
	assert.ErrorIs(t, err, larr.ErrShapeMismatch, "the result must keep the receiver's shape")
}

// TestSubMul covers the remaining arithmetic conveniences.
func TestSubMul(t *testing.T) {
	a := grid22(t)

	diff, err := a.Sub(a)
	require.NoError(t, err, "self-subtraction must succeed")
	assertData(t, diff, []int{2, 2}, []float64{0, 0, 0, 0})

	prod, err := a.Mul(a)
	require.NoError(t, err, "self-product must succeed")
	assertData(t, prod, []int{2, 2}, []float64{1, 4, 9, 16})
}

// TestReduce_LabelHandling drops reduced labels, or joins them into one
// summary token when the axis is kept.
func TestReduce_LabelHandling(t *testing.T) {
	a := grid22(t)

	sums, err := a.Sum(1)
	require.NoError(t, err, "row sums must succeed")
	assertData(t, sums, []int{2}, []float64{3, 7})
	assert.Equal(t, []string{"x", "y"}, tokens(t, sums, 0), "surviving axis keeps labels")

	kept, err := a.Reduce([]int{1}, true, nd.Max)
	require.NoError(t, err, "keepDims reduction must succeed")
	assertData(t, kept, []int{2, 1}, []float64{2, 4})
	assert.Equal(t, []string{"p-q"}, tokens(t, kept, 1), "kept axis carries the joined token")

	total, err := a.Sum()
	require.NoError(t, err, "full reduction must succeed")
	v, err := total.Float()
	require.NoError(t, err, "full reduction yields a scalar")
	assert.Equal(t, 10.0, v, "sum of 1..4")

	_, err = a.Reduce([]int{2}, false, nd.Sum)
	assert.ErrorIs(t, err, larr.ErrBadAxis, "axis beyond the rank must error")
}

// TestNaNMean_SkipsPadding averages only the real cells of padded data.
func TestNaNMean_SkipsPadding(t *testing.T) {
	a := larr.New(mustDense(t, []int{2, 2}, []float64{1, nan, 3, 5}))

	m, err := a.NaNMean(1)
	require.NoError(t, err, "NaN-skipping mean must succeed")
	assertData(t, m, []int{2}, []float64{1, 4})
}

// TestApply_ShapeContract runs an arbitrary kernel op and rejects one that
// changes the shape.
func TestApply_ShapeContract(t *testing.T) {
	a := grid22(t)

	neg, err := a.Apply(func(d *nd.Dense) (*nd.Dense, error) {
		return nd.Map(d, func(v float64) float64 { return -v }), nil
	})
	require.NoError(t, err, "shape-preserving op must succeed")
	assertData(t, neg, []int{2, 2}, []float64{-1, -2, -3, -4})

	_, err = a.Apply(func(d *nd.Dense) (*nd.Dense, error) {
		return d.Reshape([]int{4}, nd.RowMajor)
	})
	assert.ErrorIs(t, err, larr.ErrShapeMismatch, "a shape-changing op breaks the contract")
}
