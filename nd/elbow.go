// Package nd: elbow-point detection for monotone-ish series.

package nd

import (
	"fmt"
	"math"
)

// Elbow draws a chord between the first and last points of series and
// returns the index of the point furthest above that chord. Points below the
// chord contribute zero distance, so the result always sits on the convex
// side of the curve.
// Stage 1 (Validate): at least two points are required.
// Stage 2 (Execute): project each point onto the chord direction and measure
// the perpendicular residual.
// Stage 3 (Select): ArgMax over the residuals.
// Complexity: O(n) time and memory.
func Elbow(series []float64) (int, error) {
	n := len(series)
	if n < 2 {
		return 0, fmt.Errorf("Elbow: need >= 2 points, have %d: %w", n, ErrEmptyInput)
	}

	// Chord direction, normalized.
	dx := float64(n - 1)
	dy := series[n-1] - series[0]
	norm := math.Hypot(dx, dy)
	ux, uy := dx/norm, dy/norm

	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		// Vector from the first point to point i.
		vx := float64(i)
		vy := series[i] - series[0]
		// Perpendicular residual = v - (v·u)u.
		dot := vx*ux + vy*uy
		rx := vx - dot*ux
		ry := vy - dot*uy
		if ry < 0 {
			// Below the chord contributes nothing.
			continue
		}
		dist[i] = math.Hypot(rx, ry)
	}

	return ArgMax(dist), nil
}

// ArgMax returns the index of the maximum value (first winner on ties).
// NaN entries are skipped; an all-NaN series yields index 0.
func ArgMax(series []float64) int {
	best, bestVal := 0, math.Inf(-1)
	for i, v := range series {
		if math.IsNaN(v) {
			continue
		}
		if v > bestVal {
			best, bestVal = i, v
		}
	}

	return best
}
