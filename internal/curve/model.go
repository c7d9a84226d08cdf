package curve

import (
	"fmt"

	"github.com/eulerxyz/impactcurve/internal/model"
)

// Model evaluates the curve for one validated parameter set.
// It is stateless: parameters are fixed at construction and every method is
// a pure function of its arguments.
type Model struct {
	p model.Params
}

// NewModel validates p and returns a model over it.
func NewModel(p model.Params) (*Model, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	return &Model{p: p}, nil
}

// Params returns the parameters the model was built with.
func (m *Model) Params() model.Params {
	return m.p
}

// sideParams is the per-side view of the pool. The Y side is the X side
// with the roles of the two assets swapped.
type sideParams struct {
	anchor  float64 // reserve of the drained asset at the centre
	counter float64 // reserve of the other asset at the centre
	pIn     float64 // reference price of the drained asset
	pOut    float64 // reference price of the other asset
	c       float64
}

func (m *Model) side(s model.Side) sideParams {
	if s == model.SideX {
		return sideParams{anchor: m.p.X0, counter: m.p.Y0, pIn: m.p.Px, pOut: m.p.Py, c: m.p.Cx}
	}
	return sideParams{anchor: m.p.Y0, counter: m.p.X0, pIn: m.p.Py, pOut: m.p.Px, c: m.p.Cy}
}

// ReserveAt maps the normalized position t to the absolute reserve of the
// drained asset: (t+1)*x0 on the X side, (1-t)*y0 on the Y side.
func (m *Model) ReserveAt(s model.Side, t float64) float64 {
	if s == model.SideX {
		return (t + 1) * m.p.X0
	}
	return (1 - t) * m.p.Y0
}

// PriceRatio returns the reference price divided by the local marginal
// price at t. It is 1 at the centre and falls towards 0 as the drained
// reserve empties.
func (m *Model) PriceRatio(s model.Side, t float64) (float64, error) {
	slope, err := m.slopeAt(s, t)
	if err != nil {
		return 0, err
	}
	sp := m.side(s)
	return finite((sp.pIn / sp.pOut) / -slope)
}

// PriceImpact returns the fractional deviation of the marginal price from
// the reference price at t: 0 at the centre, growing with trade size.
func (m *Model) PriceImpact(s model.Side, t float64) (float64, error) {
	ratio, err := m.PriceRatio(s, t)
	if err != nil {
		return 0, err
	}
	return 1 - ratio, nil
}

// TradeSizeForImpact returns the normalized position t at which the side
// reaches the given price impact. It inverts PriceImpact.
func (m *Model) TradeSizeForImpact(s model.Side, impact float64) (float64, error) {
	sp := m.side(s)
	reserve, err := InverseTradeSize(impact, sp.pIn, sp.pOut, sp.anchor, sp.c)
	if err != nil {
		return 0, err
	}
	if s == model.SideX {
		return reserve/sp.anchor - 1, nil
	}
	return 1 - reserve/sp.anchor, nil
}

// CounterAmount returns how much of the other asset enters the pool when
// the drained reserve moves to position t.
func (m *Model) CounterAmount(s model.Side, t float64) (float64, error) {
	sp := m.side(s)
	v, err := ImpliedValue(m.ReserveAt(s, t), sp.anchor, sp.counter, sp.pIn, sp.pOut, sp.c)
	if err != nil {
		return 0, err
	}
	return v - sp.counter, nil
}

// slopeAt is the marginal price of the side, in units of the other asset
// per unit of the drained asset.
func (m *Model) slopeAt(s model.Side, t float64) (float64, error) {
	sp := m.side(s)
	slope, err := MarginalPriceSlope(m.ReserveAt(s, t), sp.pIn, sp.pOut, sp.anchor, sp.c)
	if err != nil {
		return 0, fmt.Errorf("side %s at t=%g: %w", s, t, err)
	}
	return slope, nil
}
