// Package larr: bridge from external recording types. Any producer exposing
// its samples as a dense buffer plus axis metadata can enter the labeled
// world through FromSignal without depending on this package's internals.

package larr

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/larray/label"
	"github.com/katalvlaran/larray/nd"
)

// Signal is a two-dimensional recording: channels by sample times.
// Data returns a buffer of shape (len(Channels), len(Times)).
type Signal interface {
	Data() *nd.Dense
	Channels() []string
	Times() []float64
}

// TrialSignal is a Signal segmented into trials: Data gains a leading trial
// axis of extent len(Events), each entry naming the trial's event or
// condition.
type TrialSignal interface {
	Signal
	Events() []string
}

// SpectralSignal is a Signal decomposed per frequency: Data gains a
// frequency axis between the channel and time axes, of extent
// len(Frequencies).
type SpectralSignal interface {
	Signal
	Frequencies() []float64
}

// floatTokens renders numeric axis coordinates as labels, shortest exact
// form.
func floatTokens(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return out
}

// FromSignal wraps a recording as a labeled array. Axis order is fixed:
// trials (when the value is a TrialSignal), channels, frequencies (when a
// SpectralSignal), times. The buffer is copied; its shape must match the
// metadata extents (ErrShapeMismatch otherwise). Duplicate coordinates on
// any axis are label.ErrDuplicateLabel.
// Complexity: O(size).
func FromSignal(s Signal, opts ...Option) (*Array, error) {
	o := gatherOptions(opts...)
	var sets []*label.Set

	add := func(tokens []string, axis string) error {
		set, err := label.New(tokens, label.WithDelimiter(o.delim))
		if err != nil {
			return fmt.Errorf("FromSignal %s axis: %w", axis, err)
		}
		sets = append(sets, set)

		return nil
	}

	if ts, ok := s.(TrialSignal); ok {
		if err := add(ts.Events(), "trial"); err != nil {
			return nil, err
		}
	}
	if err := add(s.Channels(), "channel"); err != nil {
		return nil, err
	}
	if fs, ok := s.(SpectralSignal); ok {
		if err := add(floatTokens(fs.Frequencies()), "frequency"); err != nil {
			return nil, err
		}
	}
	if err := add(floatTokens(s.Times()), "time"); err != nil {
		return nil, err
	}

	arr, err := NewLabeled(s.Data().Clone(), sets, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromSignal: %w", err)
	}

	return arr, nil
}
