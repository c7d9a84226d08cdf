// Package curve implements the bonding invariant of a two-asset pool that
// interpolates between a constant-sum and a constant-product market maker.
//
// Each side of the curve has its own concentration parameter c:
//   - c = 0 behaves like constant product (x*y = k around the centre)
//   - c = 1 is a straight line (constant sum at the reference price)
//   - values in between blend the two
//
// The math runs on float64. Every function reports undefined inputs (zero
// reserves, zero denominators, negative radicands) as ErrDomain instead of
// letting NaN or ±Inf escape.
package curve

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned when a formula is undefined at the requested point.
var ErrDomain = errors.New("curve: point outside the domain of the invariant")

// ImpliedValue returns the counter-asset reserve implied by the invariant
// when the driving reserve sits at x:
//
//	y = y0 + (px/py) * (x0 - x) * (c + (1 - c) * x0/x)
func ImpliedValue(x, x0, y0, px, py, c float64) (float64, error) {
	if x == 0 {
		return 0, fmt.Errorf("%w: reserve is zero", ErrDomain)
	}
	inner := c + (1-c)*(x0/x)
	return finite(y0 + (px/py)*(x0-x)*inner)
}

// MarginalPriceSlope returns dy/dx of the invariant at reserve level x,
// the local exchange rate:
//
//	dy/dx = -(px/py) * (c + (1 - c) * (x0/x)^2)
//
// Strictly negative for valid parameters.
func MarginalPriceSlope(x, px, py, x0, c float64) (float64, error) {
	if x == 0 {
		return 0, fmt.Errorf("%w: reserve is zero", ErrDomain)
	}
	r := x0 / x
	return finite(-(px / py) * (c + (1-c)*r*r))
}

// ReserveForSlope solves MarginalPriceSlope for x given a slope value:
//
//	x = x0 / sqrt(((py/px) * (-slope) - c) / (1 - c))
func ReserveForSlope(slope, px, py, x0, c float64) (float64, error) {
	denominator := 1 - c
	if denominator == 0 {
		return 0, fmt.Errorf("%w: constant-sum curve has no unique reserve for a price", ErrDomain)
	}
	inner := ((py/px)*(-slope) - c) / denominator
	if !(inner > 0) {
		return 0, fmt.Errorf("%w: no real reserve for slope %g", ErrDomain, slope)
	}
	return finite(x0 / math.Sqrt(inner))
}

// InverseTradeSize returns the reserve level at which the price impact
// equals targetImpact. The impact is first turned back into the marginal
// slope it came from, slope = -(px/py) / (1 - impact), then solved with
// ReserveForSlope.
func InverseTradeSize(targetImpact, px, py, x0, c float64) (float64, error) {
	ratio := 1 - targetImpact
	if !(ratio > 0) {
		return 0, fmt.Errorf("%w: impact %g is not below 1", ErrDomain, targetImpact)
	}
	return ReserveForSlope(-(px/py)/ratio, px, py, x0, c)
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite result", ErrDomain)
	}
	return v, nil
}
