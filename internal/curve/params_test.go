package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/eulerxyz/impactcurve/internal/model"
)

func TestNewModel_Valid(t *testing.T) {
	p := model.DefaultParams()
	m, err := NewModel(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Params() != p {
		t.Errorf("expected params %+v, got %+v", p, m.Params())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *model.Params)
		want   error
	}{
		{"zero x0", func(p *model.Params) { p.X0 = 0 }, ErrInvalidReserve},
		{"negative y0", func(p *model.Params) { p.Y0 = -1 }, ErrInvalidReserve},
		{"infinite x0", func(p *model.Params) { p.X0 = math.Inf(1) }, ErrInvalidReserve},
		{"nan y0", func(p *model.Params) { p.Y0 = math.NaN() }, ErrInvalidReserve},
		{"zero px", func(p *model.Params) { p.Px = 0 }, ErrInvalidPrice},
		{"negative py", func(p *model.Params) { p.Py = -2 }, ErrInvalidPrice},
		{"cx above one", func(p *model.Params) { p.Cx = 1.01 }, ErrInvalidConcentration},
		{"cy below zero", func(p *model.Params) { p.Cy = -0.1 }, ErrInvalidConcentration},
		{"nan cx", func(p *model.Params) { p.Cx = math.NaN() }, ErrInvalidConcentration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.DefaultParams()
			tt.mutate(&p)
			err := Validate(p)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("every validation error should match ErrInvalidParams, got %v", err)
			}
			if _, err := NewModel(p); err == nil {
				t.Error("NewModel should reject invalid params")
			}
		})
	}
}

func TestValidate_ConcentrationBounds(t *testing.T) {
	p := model.DefaultParams()
	p.Cx, p.Cy = 0, 1
	if err := Validate(p); err != nil {
		t.Errorf("bounds of [0, 1] should be accepted, got %v", err)
	}
}
