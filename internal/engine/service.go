// Package engine evaluates price-impact curves: it validates pool
// parameters, samples both sides of the curve and reports diagnostics.
//
// Evaluations share no state. Each call builds a fresh model and returns a
// fresh Curve, so a Service is safe for concurrent use.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/eulerxyz/impactcurve/internal/curve"
	"github.com/eulerxyz/impactcurve/internal/metrics"
	"github.com/eulerxyz/impactcurve/internal/model"
	"github.com/eulerxyz/impactcurve/internal/sampler"
)

// Service evaluates curves at a fixed sampling resolution.
type Service struct {
	steps  int
	logger *slog.Logger
}

// NewService creates a service sampling each side with steps intervals.
// A nil logger uses slog.Default().
func NewService(steps int, logger *slog.Logger) (*Service, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", sampler.ErrInvalidSteps, steps)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{steps: steps, logger: logger}, nil
}

// Steps returns the sampling resolution.
func (s *Service) Steps() int {
	return s.steps
}

// Evaluate samples both sides of the curve for p. Invalid parameters are
// returned as an error wrapping curve.ErrInvalidParams; undefined points are
// dropped from the series.
func (s *Service) Evaluate(p model.Params) (*model.Curve, error) {
	start := time.Now()

	m, err := s.model(p)
	if err != nil {
		return nil, err
	}

	c := &model.Curve{
		ID:        uuid.New().String(),
		Params:    p,
		Steps:     s.steps,
		CreatedAt: start.UTC(),
	}

	// The two passes read the same immutable model and write disjoint fields.
	var g errgroup.Group
	for _, side := range []model.Side{model.SideX, model.SideY} {
		side := side
		g.Go(func() error {
			series, stats, err := sampler.SampleSide(m, side, s.steps)
			if err != nil {
				return fmt.Errorf("sample side %s: %w", side, err)
			}
			metrics.RecordSamples(side.String(), stats.Kept, stats.Domain, stats.OutOfRange)
			if side == model.SideX {
				c.X = series
			} else {
				c.Y = series
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("curve evaluation failed", "id", c.ID, "err", err)
		return nil, err
	}

	s.warnEmpty(c)

	elapsed := time.Since(start)
	metrics.EvaluationDuration.Observe(elapsed.Seconds())

	s.logger.Debug("curve evaluated",
		"id", c.ID,
		"steps", s.steps,
		"x_points", c.X.Len(),
		"y_points", c.Y.Len(),
		"elapsed", elapsed,
	)
	return c, nil
}

// Quote returns the swap snapshot at position t of the given side.
func (s *Service) Quote(p model.Params, side model.Side, t float64) (*model.Quote, error) {
	m, err := s.model(p)
	if err != nil {
		return nil, err
	}
	return m.Quote(side, t)
}

// TradeSizeForImpact returns the normalized position at which side reaches
// the given price impact.
func (s *Service) TradeSizeForImpact(p model.Params, side model.Side, impact float64) (float64, error) {
	m, err := s.model(p)
	if err != nil {
		return 0, err
	}
	return m.TradeSizeForImpact(side, impact)
}

// warnEmpty attaches a warning for every side that kept no point.
func (s *Service) warnEmpty(c *model.Curve) {
	for _, series := range []model.Series{c.X, c.Y} {
		if !series.Empty() {
			continue
		}
		metrics.EmptySeriesTotal.WithLabelValues(series.Side.String()).Inc()
		c.Warnings = append(c.Warnings, model.Warning{
			Side:    series.Side,
			Message: "no representable points in [0, 1]; concentration may be at a degenerate extreme",
		})
		s.logger.Warn("empty curve series",
			"id", c.ID,
			"side", series.Side.String(),
			"cx", c.Params.Cx,
			"cy", c.Params.Cy,
		)
	}
}

func (s *Service) model(p model.Params) (*curve.Model, error) {
	m, err := curve.NewModel(p)
	if err != nil {
		metrics.ConfigErrorsTotal.Inc()
		s.logger.Warn("rejected pool parameters", "err", err)
		return nil, err
	}
	return m, nil
}
