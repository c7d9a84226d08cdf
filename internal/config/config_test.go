package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/eulerxyz/impactcurve/internal/curve"
	"github.com/eulerxyz/impactcurve/internal/model"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Params != model.DefaultParams() {
		t.Errorf("expected default params, got %+v", cfg.Params)
	}
	if cfg.Steps != DefaultSteps {
		t.Errorf("expected %d steps, got %d", DefaultSteps, cfg.Steps)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.Level())
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("IMPACTCURVE_STEPS", "1000")
	t.Setenv("IMPACTCURVE_POOL_CX", "0.25")
	t.Setenv("IMPACTCURVE_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Steps != StepsHighRes {
		t.Errorf("expected %d steps, got %d", StepsHighRes, cfg.Steps)
	}
	if cfg.Params.Cx != 0.25 {
		t.Errorf("expected cx=0.25, got %v", cfg.Params.Cx)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.Level())
	}
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "impactcurve.yaml", `
steps: 250
pool:
  x0: 100
  y0: 200
  px: 1
  py: 0.5
  cx: 0.9
  cy: 0.1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.Params{X0: 100, Y0: 200, Px: 1, Py: 0.5, Cx: 0.9, Cy: 0.1}
	if cfg.Params != want {
		t.Errorf("expected %+v, got %+v", want, cfg.Params)
	}
	if cfg.Steps != 250 {
		t.Errorf("expected 250 steps, got %d", cfg.Steps)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "impactcurve.yaml", "steps: 250\n")
	t.Setenv("IMPACTCURVE_STEPS", "40")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Steps != 40 {
		t.Errorf("expected env to win with 40 steps, got %d", cfg.Steps)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"zero steps", map[string]string{"IMPACTCURVE_STEPS": "0"}, ErrInvalidSteps},
		{"negative reserve", map[string]string{"IMPACTCURVE_POOL_X0": "-5"}, curve.ErrInvalidReserve},
		{"concentration above one", map[string]string{"IMPACTCURVE_POOL_CY": "1.5"}, curve.ErrInvalidConcentration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_BadLogLevel(t *testing.T) {
	t.Setenv("IMPACTCURVE_LOG_LEVEL", "chatty")
	if _, err := Load(""); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}
