// SPDX-License-Identifier: MIT

// Package label: functional configuration for Sets and factoring routines.
// Follows the usual pattern: Option setters over an unexported options
// struct, documented defaults as constants, strong validation in the
// constructors (panic only on nonsensical values — programmer error).

package label

import "go.uber.org/zap"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDelimiter joins token components when combining label sets and
	// splits composite tokens when decomposing them.
	DefaultDelimiter = "-"
)

// Internal panic messages (no magic strings).
const (
	panicEmptyDelimiter = "label: WithDelimiter: delimiter must be non-empty"
	panicNilLogger      = "label: WithWarnLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	delim  string      // DefaultDelimiter
	logger *zap.Logger // warning side-channel; zap.NewNop() by default
}

// WithDelimiter sets the token-joining delimiter used by Combine, Decompose
// and Join. Panics on an empty delimiter (a composite token would become
// unsplittable).
func WithDelimiter(delim string) Option {
	if delim == "" {
		panic(panicEmptyDelimiter)
	}

	return func(o *options) { o.delim = delim }
}

// WithWarnLogger sets the side-channel logger used to report best-effort
// factoring fallbacks. Warnings never abort an operation. Panics on nil.
func WithWarnLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

// gatherOptions applies user setters on top of the documented defaults.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{
		delim:  DefaultDelimiter,
		logger: zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
