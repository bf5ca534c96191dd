// Package larr implements the Labeled Array: a dense numeric buffer of rank
// N owning exactly one label Set per axis, addressable by position and by
// name, with axis-combination algebra and NaN-padded merging.
//
// 🚀 What is larr?
//
//	The central entity of the engine. An Array behaves like a nested
//	dictionary whose values live in one flat numeric buffer:
//	  • Sel / Assign — mixed keys: labels, label lists, ints (negatives
//	    wrap), spans, All, Ellipsis, NewAxis, boolean masks, fancy index
//	    blocks; string keys collapse their axis, assignment through an
//	    unseen label grows it (explicit grow-on-write)
//	  • Reshape      — label-preserving: per-axis labels are re-factored
//	    from the cross-product tuple stream, not merely reindexed
//	  • Combine      — fold one axis into another; labels cross-multiply,
//	    the buffer is rebuilt through the NaN-padding concatenator
//	  • Append       — concatenate two labeled arrays of possibly different
//	    shapes; mismatched extents pad with the NaN sentinel
//	  • DropEmpty    — remove every all-NaN hyperplane on every axis
//	  • FromMapping / ToMapping — bridge to ordered nested mappings, with
//	    YAML adapters on top
//	  • FromSignal   — bridge from channel×time (optionally trial- and
//	    frequency-structured) signal collaborators
//
// ✨ Invariants:
//   - labels[i].Len() == shape[i] for every axis, always — checked at
//     construction and re-established after every shape-changing operation
//   - no label Set ever contains a duplicate token
//   - a fully collapsed selection is a rank-0 Array; Float() unwraps it
//
// ⚙️ Concurrency:
//
//	Pure value semantics with no internal locking. Derived arrays are
//	independent. Assign mutates the receiver (buffer, and label Set when
//	growing); that is safe only under single-writer discipline.
//
// ⚙️ Usage:
//
//	buf, _ := nd.NewDense([]int{2, 2}, []float64{1, 1, 1, 1})
//	xs, _ := label.New([]string{"x", "y"})
//	ps, _ := label.New([]string{"p", "q"})
//	a, _ := larr.NewLabeled(buf, []*label.Set{xs, ps})
//	row, _ := a.Sel("x")       // rank-1, labels (p, q)
//	v, _ := row.Sel("q")       // rank-0
//	f, _ := v.Float()          // 1.0
package larr
