// Package larray is an in-memory engine for labeled dense arrays — numeric
// tensors whose axes carry ordered, unique string labels, addressable both by
// position and by name.
//
// 🚀 What is larray?
//
//	A pure, single-threaded computational library that brings together:
//		• Raw kernel: rank-N row-major buffers, NaN-padding concatenation,
//		  broadcasting, axis reductions (nd/)
//		• Label algebra: ordered unique label sets, cross-product Combine and
//		  best-effort Decompose via common-subsequence factoring (label/)
//		• Labeled arrays: mixed label/position/slice/ellipsis indexing,
//		  label-preserving reshape, axis combine, padded append, and a
//		  nested-mapping bridge with YAML support (larr/)
//
// ✨ Why choose larray?
//
//   - Dictionary ergonomics, array performance – address cells by name,
//     compute on a flat float64 buffer
//   - Ragged-data friendly – heterogeneous shapes unify through NaN padding
//   - Deterministic – no global state, no hidden caches, value semantics
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under three subpackages:
//
//	nd/    — rank-N dense kernel: shapes, strides, padding, broadcasting
//	label/ — Label Set algebra: Combine, Decompose, token factoring
//	larr/  — the Labeled Array entity, mapping and signal bridges
//
// Quick example:
//
//	a, _ := larr.FromMapping(m)        // nested mapping → labeled tensor
//	sub, _ := a.Sel("power", larr.All) // label indexing keeps the rest
//	mean, _ := sub.NaNMean(0)          // reductions drop the reduced labels
//
// Dive into the per-package example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/larray
package larray
