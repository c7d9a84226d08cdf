// Package impactcurve computes and samples the price-impact curve of a
// two-asset pool whose invariant blends constant-sum and constant-product
// behaviour, with a separate concentration parameter on each side.
//
// The output of an evaluation is two ordered series of (t, impact) points:
// the X side over t ∈ [-1, 0] and the Y side over t ∈ [0, 1]. They meet at
// t = 0, where the impact is zero. Rendering is left to the caller.
//
//	c, err := impactcurve.Evaluate(impactcurve.DefaultParams(), 100)
//	if err != nil { ... }
//	for _, pt := range c.X.Points { ... }
package impactcurve

import (
	"log/slog"
	"os"

	"github.com/eulerxyz/impactcurve/internal/config"
	"github.com/eulerxyz/impactcurve/internal/curve"
	"github.com/eulerxyz/impactcurve/internal/engine"
	"github.com/eulerxyz/impactcurve/internal/model"
	"github.com/eulerxyz/impactcurve/internal/sampler"
)

type (
	Params  = model.Params
	Side    = model.Side
	Point   = model.Point
	Series  = model.Series
	Curve   = model.Curve
	Quote   = model.Quote
	Warning = model.Warning
)

const (
	SideX = model.SideX
	SideY = model.SideY

	DefaultSteps = config.DefaultSteps
	StepsHighRes = config.StepsHighRes
)

var (
	ErrDomain               = curve.ErrDomain
	ErrInvalidParams        = curve.ErrInvalidParams
	ErrInvalidReserve       = curve.ErrInvalidReserve
	ErrInvalidPrice         = curve.ErrInvalidPrice
	ErrInvalidConcentration = curve.ErrInvalidConcentration
	ErrInvalidSteps         = sampler.ErrInvalidSteps
	ErrInvalidRange         = sampler.ErrInvalidRange
)

// Curve model primitives.
var (
	ImpliedValue       = curve.ImpliedValue
	MarginalPriceSlope = curve.MarginalPriceSlope
	InverseTradeSize   = curve.InverseTradeSize
	ReserveForSlope    = curve.ReserveForSlope
	Validate           = curve.Validate
)

// DefaultParams returns the reference pool {x0:5, y0:10, px:2, py:1, cx:0, cy:0}.
func DefaultParams() Params {
	return model.DefaultParams()
}

// PriceImpact returns the price impact of side at normalized position t.
func PriceImpact(side Side, t float64, p Params) (float64, error) {
	m, err := curve.NewModel(p)
	if err != nil {
		return 0, err
	}
	return m.PriceImpact(side, t)
}

// SampleSeries samples fn at steps+1 evenly spaced positions of
// [tStart, tEnd], skipping undefined and out-of-range values.
func SampleSeries(fn func(t float64) (float64, error), tStart, tEnd float64, steps int) ([]Point, error) {
	return sampler.SampleSeries(fn, tStart, tEnd, steps)
}

// Evaluate samples both sides of the curve for p using the default logger.
func Evaluate(p Params, steps int) (*Curve, error) {
	svc, err := engine.NewService(steps, nil)
	if err != nil {
		return nil, err
	}
	return svc.Evaluate(p)
}

// EvaluateConfig loads parameters and resolution from cfgFile, the
// IMPACTCURVE_* environment and defaults, then evaluates the curve. A nil
// logger writes JSON to stderr at the configured log level.
func EvaluateConfig(cfgFile string, logger *slog.Logger) (*Curve, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	}
	logger = logger.With("component", "impactcurve")
	svc, err := engine.NewService(cfg.Steps, logger)
	if err != nil {
		return nil, err
	}
	return svc.Evaluate(cfg.Params)
}

// QuoteAt returns the swap amounts and exchange rates at position t.
func QuoteAt(p Params, side Side, t float64) (*Quote, error) {
	m, err := curve.NewModel(p)
	if err != nil {
		return nil, err
	}
	return m.Quote(side, t)
}

// TradeSizeForImpact returns the normalized position at which side reaches
// the given price impact.
func TradeSizeForImpact(p Params, side Side, impact float64) (float64, error) {
	m, err := curve.NewModel(p)
	if err != nil {
		return 0, err
	}
	return m.TradeSizeForImpact(side, impact)
}
