// Package model defines the core domain types shared across the curve engine.
// Curve math runs on float64; quoted swap amounts and exchange rates use
// shopspring/decimal so renderers never see float formatting artifacts.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Params describes a two-asset pool whose invariant blends a constant-sum
// and a constant-product curve independently on each side of the centre.
// Immutable for the duration of an evaluation.
type Params struct {
	X0 float64 `json:"x0"` // X reserve at the centre point
	Y0 float64 `json:"y0"` // Y reserve at the centre point
	Px float64 `json:"px"` // reference price of X
	Py float64 `json:"py"` // reference price of Y
	Cx float64 `json:"cx"` // X-side concentration, 0 = constant product, 1 = constant sum
	Cy float64 `json:"cy"` // Y-side concentration
}

// DefaultParams returns the reference pool used by the chart front-end.
func DefaultParams() Params {
	return Params{X0: 5, Y0: 10, Px: 2, Py: 1, Cx: 0, Cy: 0}
}

// Side selects one half of the curve.
type Side int

const (
	// SideX covers t ∈ [-1, 0]: X is drained out of the pool.
	SideX Side = iota
	// SideY covers t ∈ [0, 1]: Y is drained out of the pool.
	SideY
)

func (s Side) String() string {
	switch s {
	case SideX:
		return "X"
	case SideY:
		return "Y"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Domain returns the normalized t interval sampled for the side.
func (s Side) Domain() (start, end float64) {
	if s == SideX {
		return -1, 0
	}
	return 0, 1
}

func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Side) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	side, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// ParseSide parses "X" or "Y" (either case).
func ParseSide(s string) (Side, error) {
	switch s {
	case "X", "x":
		return SideX, nil
	case "Y", "y":
		return SideY, nil
	}
	return 0, fmt.Errorf("model: unknown side %q (expected X or Y)", s)
}

// Point is one sampled position on the curve. t is the normalized trade
// position (negative = X side, positive = Y side), Impact is in [0, 1].
type Point struct {
	T      float64
	Impact float64
}

// MarshalJSON encodes the point as [t, impact], the pair shape chart
// libraries take as series data.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.T, p.Impact})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("model: point must be a [t, impact] pair: %w", err)
	}
	p.T, p.Impact = pair[0], pair[1]
	return nil
}

// Series is the ordered (increasing t) set of valid points for one side.
// It may hold fewer points than were requested.
type Series struct {
	Side   Side    `json:"side"`
	Points []Point `json:"points"`
}

// Len returns the number of kept points.
func (s Series) Len() int { return len(s.Points) }

// Empty reports whether no point of the side was representable.
func (s Series) Empty() bool { return len(s.Points) == 0 }

// Warning is a soft diagnostic attached to a curve.
type Warning struct {
	Side    Side   `json:"side"`
	Message string `json:"message"`
}

// Curve is the result of one evaluation request: both sampled sides for a
// single parameter set. ID only correlates log lines; curves are never
// stored.
type Curve struct {
	ID        string    `json:"id"`
	Params    Params    `json:"params"`
	Steps     int       `json:"steps"`
	X         Series    `json:"x"`
	Y         Series    `json:"y"`
	Warnings  []Warning `json:"warnings,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Series returns the sampled series of the given side.
func (c *Curve) Series(side Side) Series {
	if side == SideX {
		return c.X
	}
	return c.Y
}

// Quote is the swap snapshot at one point of the curve: how much of each
// asset moves and the local exchange rates there.
// Swap amounts are signed: negative leaves the pool.
type Quote struct {
	Side        Side            `json:"side"`
	T           float64         `json:"t"`
	PriceImpact decimal.Decimal `json:"price_impact"` // fraction in [0, 1]
	AmountX     decimal.Decimal `json:"amount_x"`
	AmountXPct  decimal.Decimal `json:"amount_x_pct"` // AmountX / x0 * 100
	AmountY     decimal.Decimal `json:"amount_y"`
	AmountYPct  decimal.Decimal `json:"amount_y_pct"` // AmountY / y0 * 100
	RateXY      decimal.Decimal `json:"rate_xy"`      // Y received per X
	RateYX      decimal.Decimal `json:"rate_yx"`      // X received per Y
}
