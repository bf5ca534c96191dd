// Package label implements the ordered, unique token sets that name the
// positions along one axis of a labeled array, and the algebra that keeps
// them consistent under axis merging and splitting.
//
// 🚀 What is label?
//
//	Three operations cover the whole algebra:
//	  • Combine    — cross-product merge of two Sets into one, tokens joined
//	    by a delimiter in row-major order (used when two axes fold into one)
//	  • Decompose  — the approximate inverse: factor a composite Set back
//	    into per-axis Sets by extracting the longest common token-wise
//	    subsequence of each index group
//	  • FactorTuples — the same factoring over raw per-element label tuples,
//	    used by label-preserving reshape
//
// ✨ Guarantees and caveats:
//   - A Set never contains a duplicate token; violating this at construction
//     is a fatal error (ErrDuplicateLabel)
//   - Find is O(1) after the first lookup (a lazily built index map; no
//     global caches)
//   - Decompose is best-effort by contract: when an index group shares no
//     common subsequence it falls back to the ordered distinct tokens, and
//     as a last resort to positional labels — reported through the warning
//     logger, never as an error
//
// ⚙️ Usage:
//
//	a, _ := label.New([]string{"a", "b"})
//	b, _ := label.New([]string{"c", "d", "e"})
//	ab, _ := label.Combine(a, b) // a-c, a-d, a-e, b-c, b-d, b-e
//	parts, _ := label.Decompose(ab, []int{2, 3})
//	// parts[0] = {a, b}, parts[1] = {c, d, e}
package label
