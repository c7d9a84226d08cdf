package curve

import (
	"github.com/shopspring/decimal"

	"github.com/eulerxyz/impactcurve/internal/model"
)

// PriceScale is the number of decimal places quotes are rounded to.
var PriceScale int32 = 8

// Quote returns the swap snapshot at position t of side s: the signed
// amounts of X and Y that move, their share of the centre reserves, the
// local exchange rates and the price impact.
func (m *Model) Quote(s model.Side, t float64) (*model.Quote, error) {
	impact, err := m.PriceImpact(s, t)
	if err != nil {
		return nil, err
	}
	counter, err := m.CounterAmount(s, t)
	if err != nil {
		return nil, err
	}
	slope, err := m.slopeAt(s, t)
	if err != nil {
		return nil, err
	}
	inverse, err := finite(1 / -slope)
	if err != nil {
		return nil, err
	}

	var amountX, amountY, rateXY, rateYX float64
	if s == model.SideX {
		amountX = t * m.p.X0
		amountY = counter
		rateXY, rateYX = -slope, inverse
	} else {
		amountX = counter
		amountY = -t * m.p.Y0
		rateXY, rateYX = inverse, -slope
	}

	return &model.Quote{
		Side:        s,
		T:           t,
		PriceImpact: round(impact),
		AmountX:     round(amountX),
		AmountXPct:  round(amountX / m.p.X0 * 100),
		AmountY:     round(amountY),
		AmountYPct:  round(amountY / m.p.Y0 * 100),
		RateXY:      round(rateXY),
		RateYX:      round(rateYX),
	}, nil
}

func round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(PriceScale)
}
