// Package sampler turns a continuous impact function into a bounded,
// renderable series of points.
//
// The sampler walks stepCount+1 evenly spaced positions of [tStart, tEnd]
// and keeps only finite values within [0, 1]. Positions where the curve is
// undefined (curve.ErrDomain) are skipped, not substituted. Any other error
// from the evaluated function is treated as a bug and aborts the pass.
package sampler

import (
	"errors"
	"fmt"
	"math"

	"github.com/eulerxyz/impactcurve/internal/curve"
	"github.com/eulerxyz/impactcurve/internal/model"
)

var (
	// ErrInvalidSteps is returned when stepCount < 1.
	ErrInvalidSteps = errors.New("sampler: step count must be at least 1")

	// ErrInvalidRange is returned when the interval is not finite or tEnd < tStart.
	ErrInvalidRange = errors.New("sampler: invalid sampling interval")
)

// Func evaluates the curve at normalized position t.
type Func func(t float64) (float64, error)

// Stats counts what happened to each candidate of a pass.
type Stats struct {
	Candidates int
	Kept       int
	Domain     int // undefined at t
	OutOfRange int // defined but outside [0, 1]
}

// SampleSeries samples fn over [tStart, tEnd] and returns the kept points
// in increasing t. An empty result is valid output.
func SampleSeries(fn Func, tStart, tEnd float64, stepCount int) ([]model.Point, error) {
	points, _, err := Sample(fn, tStart, tEnd, stepCount)
	return points, err
}

// Sample is SampleSeries that also reports per-candidate outcomes.
func Sample(fn Func, tStart, tEnd float64, stepCount int) ([]model.Point, Stats, error) {
	var stats Stats
	if stepCount < 1 {
		return nil, stats, fmt.Errorf("%w: got %d", ErrInvalidSteps, stepCount)
	}
	if math.IsNaN(tStart) || math.IsInf(tStart, 0) ||
		math.IsNaN(tEnd) || math.IsInf(tEnd, 0) || tEnd < tStart {
		return nil, stats, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, tStart, tEnd)
	}

	dt := (tEnd - tStart) / float64(stepCount)
	points := make([]model.Point, 0, stepCount+1)

	for i := 0; i <= stepCount; i++ {
		t := tStart + float64(i)*dt
		if i == stepCount {
			t = tEnd
		}
		stats.Candidates++

		v, err := fn(t)
		if err != nil {
			if errors.Is(err, curve.ErrDomain) {
				stats.Domain++
				continue
			}
			return nil, stats, fmt.Errorf("sampler: evaluate t=%g: %w", t, err)
		}
		if math.IsNaN(v) || v < 0 || v > 1 {
			stats.OutOfRange++
			continue
		}
		points = append(points, model.Point{T: t, Impact: v})
		stats.Kept++
	}
	return points, stats, nil
}

// SampleSide samples the price impact of one side of m over its domain.
func SampleSide(m *curve.Model, side model.Side, stepCount int) (model.Series, Stats, error) {
	start, end := side.Domain()
	points, stats, err := Sample(func(t float64) (float64, error) {
		return m.PriceImpact(side, t)
	}, start, end, stepCount)
	if err != nil {
		return model.Series{Side: side}, stats, err
	}
	return model.Series{Side: side, Points: points}, stats, nil
}
