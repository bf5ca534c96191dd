// SPDX-License-Identifier: MIT

// Package larr: functional configuration for arrays and shape-changing
// operations. Options set at construction time (delimiter, warning logger)
// are inherited by every derived array; per-call options (fill order,
// drop-empty policy) apply to a single operation.

package larr

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/larray/nd"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDelimiter joins label components when axes combine and is the
	// split point when composite labels are factored back apart.
	DefaultDelimiter = "-"

	// DefaultDropEmpty controls whether Combine removes all-NaN hyperplanes
	// from its result (mirrors the source behavior of axis folding over
	// padded data).
	DefaultDropEmpty = true
)

// Internal panic messages (no magic strings).
const (
	panicEmptyDelimiter = "larr: WithDelimiter: delimiter must be non-empty"
	panicNilLogger      = "larr: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	delim     string      // DefaultDelimiter
	logger    *zap.Logger // warning side-channel; zap.NewNop() by default
	order     nd.Order    // fill order for Reshape; RowMajor by default
	dropEmpty bool        // DefaultDropEmpty (Combine only)
}

// WithDelimiter sets the delimiter used when labels combine or factor.
// Panics on an empty delimiter (programmer error).
func WithDelimiter(delim string) Option {
	if delim == "" {
		panic(panicEmptyDelimiter)
	}

	return func(o *options) { o.delim = delim }
}

// WithLogger sets the warning side-channel (best-effort fallbacks in label
// factoring and append-union conflicts report here; they never abort the
// operation). Panics on nil — use zap.NewNop() to silence explicitly.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

// WithColumnMajor makes Reshape enumerate elements with the first axis
// varying fastest (Fortran fill order) instead of the default row-major.
func WithColumnMajor() Option {
	return func(o *options) { o.order = nd.ColumnMajor }
}

// WithKeepEmpty disables the drop-empty pass that Combine runs by default
// on its merged result.
func WithKeepEmpty() Option {
	return func(o *options) { o.dropEmpty = false }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		delim:     DefaultDelimiter,
		logger:    zap.NewNop(),
		order:     nd.RowMajor,
		dropEmpty: DefaultDropEmpty,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// apply re-resolves per-call options on top of an array's inherited ones.
func (o options) apply(user ...Option) options {
	out := o
	// Per-call defaults that must not leak between calls.
	out.order = nd.RowMajor
	out.dropEmpty = DefaultDropEmpty
	for _, set := range user {
		set(&out)
	}

	return out
}
