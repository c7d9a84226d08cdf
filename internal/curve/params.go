package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/eulerxyz/impactcurve/internal/model"
)

var (
	// ErrInvalidParams matches every parameter validation failure.
	ErrInvalidParams = errors.New("curve: invalid pool parameters")

	// ErrInvalidReserve is returned when x0 or y0 is not a positive number.
	ErrInvalidReserve = fmt.Errorf("%w: reserves must be positive", ErrInvalidParams)

	// ErrInvalidPrice is returned when px or py is not a positive number.
	ErrInvalidPrice = fmt.Errorf("%w: prices must be positive", ErrInvalidParams)

	// ErrInvalidConcentration is returned when cx or cy is outside [0, 1].
	ErrInvalidConcentration = fmt.Errorf("%w: concentration must be within [0, 1]", ErrInvalidParams)
)

// Validate checks the pool invariants: finite positive reserves and
// prices, concentrations within [0, 1].
func Validate(p model.Params) error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"x0", p.X0}, {"y0", p.Y0}} {
		if !positive(f.v) {
			return fmt.Errorf("%w: %s=%g", ErrInvalidReserve, f.name, f.v)
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"px", p.Px}, {"py", p.Py}} {
		if !positive(f.v) {
			return fmt.Errorf("%w: %s=%g", ErrInvalidPrice, f.name, f.v)
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"cx", p.Cx}, {"cy", p.Cy}} {
		if !(f.v >= 0 && f.v <= 1) {
			return fmt.Errorf("%w: %s=%g", ErrInvalidConcentration, f.name, f.v)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
