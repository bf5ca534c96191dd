// Package nd implements the raw rank-N dense kernel underneath labeled
// arrays: flat row-major float64 buffers with shape/stride arithmetic,
// NaN-padding concatenation of heterogeneously shaped inputs, broadcasting
// elementwise combination, and axis reductions.
//
// 🚀 What is nd?
//
//	The unlabeled half of the engine. Everything here operates on plain
//	numeric buffers and knows nothing about axis labels:
//	  • Dense       — rank-N row-major buffer (At/Set, Reshape, Transpose,
//	    Gather, Slice1, ExpandDims, NaN-aware Equal)
//	  • ConcatPad   — concatenate arrays of different shapes along an axis,
//	    padding every non-concatenation dimension with NaN
//	  • StackPad    — same, but stacking along a new leading axis
//	  • Map/Zip     — elementwise kernels with numpy-style broadcasting
//	  • Reduce      — axis reductions (Sum, Mean, Max, Min, NaNSum, NaNMean)
//	  • Elbow       — index of the point furthest above the first→last chord
//
// ✨ Key properties:
//   - NaN is the sentinel for "missing": padding cells are NaN, and the
//     NaN-aware reducers and Equal treat it consistently
//   - Every operation returns a freshly allocated Dense; inputs are never
//     mutated except through SetAt/Data on the owning value
//   - Errors are package-level sentinels matched via errors.Is
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/larray/nd"
//
//	a, _ := nd.NewDense([]int{2, 2}, []float64{1, 2, 3, 4})
//	b, _ := nd.NewDense([]int{2, 3}, []float64{5, 6, 7, 8, 9, 10})
//	out, _ := nd.ConcatPad([]*nd.Dense{a, b}, 0) // shape (4,3), NaN-padded
//
// Complexity: all kernels are linear in the number of visited cells; no
// operation allocates more than one output buffer plus O(rank) bookkeeping.
package nd
