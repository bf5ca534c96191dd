package nd_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// empty returns a rank-1 buffer of size zero.
func empty(t *testing.T) *nd.Dense {
	t.Helper()
	d, err := nd.Zeros(0)
	require.NoError(t, err, "empty fixture must construct")

	return d
}

// assertSame compares two buffers with NaN treated as equal to NaN.
func assertSame(t *testing.T, want, got *nd.Dense) {
	t.Helper()
	assert.Equal(t, want.Shape(), got.Shape(), "shapes must match")
	assert.Empty(t, cmp.Diff(want.Data(), got.Data(), cmpopts.EquateNaNs()),
		"contents must match up to NaN")
}

// TestConcatPad_PaddingVectors drives ConcatPad through the reference
// padding scenarios: ragged extents fill with NaN on every non-concat axis,
// empties drop out, negative axes resolve from the end.
func TestConcatPad_PaddingVectors(t *testing.T) {
	cases := []struct {
		name string
		arrs func(t *testing.T) []*nd.Dense
		axis int
		want func(t *testing.T) *nd.Dense
	}{
		{
			name: "leading empty then ragged rows along axis 0",
			arrs: func(t *testing.T) []*nd.Dense {
				return []*nd.Dense{
					empty(t),
					mustDense(t, []int{2, 2}, []float64{1, 2, 3, 4}),
					mustDense(t, []int{2, 3}, []float64{5, 6, 7, 8, 9, 10}),
				}
			},
			axis: 0,
			want: func(t *testing.T) *nd.Dense {
				return mustDense(t, []int{4, 3},
					[]float64{1, 2, nan, 3, 4, nan, 5, 6, 7, 8, 9, 10})
			},
		},
		{
			name: "column join pads the shorter column along axis 1",
			arrs: func(t *testing.T) []*nd.Dense {
				return []*nd.Dense{
					mustDense(t, []int{2, 1}, []float64{1, 1}),
					mustDense(t, []int{3, 1}, []float64{0, 0, 0}),
				}
			},
			axis: 1,
			want: func(t *testing.T) *nd.Dense {
				return mustDense(t, []int{3, 2}, []float64{1, 0, 1, 0, nan, 0})
			},
		},
		{
			name: "depth join of rank-3 blocks along axis 2",
			arrs: func(t *testing.T) []*nd.Dense {
				return []*nd.Dense{
					mustDense(t, []int{2, 1, 1}, []float64{1, 2}),
					mustDense(t, []int{2, 2, 1}, []float64{3, 4, 5, 6}),
				}
			},
			axis: 2,
			want: func(t *testing.T) *nd.Dense {
				return mustDense(t, []int{2, 2, 2},
					[]float64{1, 3, nan, 4, 2, 5, nan, 6})
			},
		},
		{
			name: "empty input in the middle is dropped",
			arrs: func(t *testing.T) []*nd.Dense {
				return []*nd.Dense{
					mustDense(t, []int{2, 2}, []float64{1, 2, 3, 4}),
					empty(t),
					mustDense(t, []int{2, 3}, []float64{5, 6, 7, 8, 9, 10}),
				}
			},
			axis: 0,
			want: func(t *testing.T) *nd.Dense {
				return mustDense(t, []int{4, 3},
					[]float64{1, 2, nan, 3, 4, nan, 5, 6, 7, 8, 9, 10})
			},
		},
		{
			name: "empty inputs at both ends leave the survivor untouched",
			arrs: func(t *testing.T) []*nd.Dense {
				return []*nd.Dense{
					empty(t),
					mustDense(t, []int{2, 2}, []float64{1, 2, 3, 4}),
					empty(t),
				}
			},
			axis: 0,
			want: func(t *testing.T) *nd.Dense {
				return mustDense(t, []int{2, 2}, []float64{1, 2, 3, 4})
			},
		},
		{
			name: "negative axis resolves to the last axis",
			arrs: func(t *testing.T) []*nd.Dense {
				return []*nd.Dense{
					mustDense(t, []int{2, 1, 1}, []float64{1, 2}),
					mustDense(t, []int{2, 2, 1}, []float64{3, 4, 5, 6}),
				}
			},
			axis: -1,
			want: func(t *testing.T) *nd.Dense {
				return mustDense(t, []int{2, 2, 2},
					[]float64{1, 3, nan, 4, 2, 5, nan, 6})
			},
		},
		{
			name: "an all-NaN input keeps its cells as NaN, not as padding",
			arrs: func(t *testing.T) []*nd.Dense {
				return []*nd.Dense{
					mustDense(t, []int{2, 2}, []float64{nan, nan, nan, nan}),
					mustDense(t, []int{2, 3}, []float64{5, 6, 7, 8, 9, 10}),
				}
			},
			axis: 0,
			want: func(t *testing.T) *nd.Dense {
				return mustDense(t, []int{4, 3},
					[]float64{nan, nan, nan, nan, nan, nan, 5, 6, 7, 8, 9, 10})
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := nd.ConcatPad(tc.arrs(t), tc.axis)
			require.NoError(t, err, "ConcatPad must succeed")
			assertSame(t, tc.want(t), got)
		})
	}
}

// TestStackPad_NewAxis stacks two ragged matrices along a fresh leading
// axis, padding the narrower one with NaN.
func TestStackPad_NewAxis(t *testing.T) {
	got, err := nd.StackPad([]*nd.Dense{
		mustDense(t, []int{2, 2}, []float64{1, 2, 3, 4}),
		mustDense(t, []int{2, 3}, []float64{5, 6, 7, 8, 9, 10}),
	})
	require.NoError(t, err, "StackPad must succeed")

	want := mustDense(t, []int{2, 2, 3},
		[]float64{1, 2, nan, 3, 4, nan, 5, 6, 7, 8, 9, 10})
	assertSame(t, want, got)
}

// TestConcatPad_Errors covers the fatal inputs: nothing left after dropping
// empties, scalar operands, rank disagreement, axis out of range.
func TestConcatPad_Errors(t *testing.T) {
	_, err := nd.ConcatPad([]*nd.Dense{empty(t), empty(t)}, 0)
	assert.ErrorIs(t, err, nd.ErrEmptyInput, "all-empty input must error")

	_, err = nd.ConcatPad([]*nd.Dense{nd.Scalar(1), nd.Scalar(2)}, 0)
	assert.ErrorIs(t, err, nd.ErrBadAxis, "scalar operands have no axis to join")

	_, err = nd.ConcatPad([]*nd.Dense{
		mustDense(t, []int{2, 2}, []float64{1, 2, 3, 4}),
		mustDense(t, []int{4}, []float64{5, 6, 7, 8}),
	}, 0)
	assert.ErrorIs(t, err, nd.ErrRankMismatch, "rank disagreement must error")

	_, err = nd.ConcatPad([]*nd.Dense{
		mustDense(t, []int{2, 2}, []float64{1, 2, 3, 4}),
	}, 2)
	assert.ErrorIs(t, err, nd.ErrBadAxis, "axis beyond the rank must error")
}

// TestHomogeneousShapes_And_Bounding verifies shape collection and the
// elementwise-max bounding shape.
func TestHomogeneousShapes_And_Bounding(t *testing.T) {
	arrs := []*nd.Dense{
		empty(t),
		mustDense(t, []int{2, 3}, make([]float64, 6)),
		mustDense(t, []int{4, 1}, make([]float64, 4)),
	}

	shapes, err := nd.HomogeneousShapes(arrs)
	require.NoError(t, err, "HomogeneousShapes must succeed")
	assert.Equal(t, [][]int{{2, 3}, {4, 1}}, shapes, "empties drop, shapes keep order")

	bound, err := nd.BoundingShape(arrs)
	require.NoError(t, err, "BoundingShape must succeed")
	assert.Equal(t, []int{4, 3}, bound, "bounding shape is the elementwise max")
}
