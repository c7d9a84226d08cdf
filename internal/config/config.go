// Package config loads engine settings from defaults, environment
// variables (IMPACTCURVE_*) and an optional config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/eulerxyz/impactcurve/internal/curve"
	"github.com/eulerxyz/impactcurve/internal/model"
)

const (
	// DefaultSteps is the chart resolution used by default.
	DefaultSteps = 100
	// StepsHighRes is the fine-grained resolution.
	StepsHighRes = 1000
)

// ErrInvalidSteps is returned when the configured step count is below 1.
var ErrInvalidSteps = errors.New("config: steps must be at least 1")

// Config holds the engine settings.
type Config struct {
	Params   model.Params
	Steps    int
	LogLevel string
}

// Load merges the config file (if any), environment and defaults into
// Config. An empty cfgFile looks for ./impactcurve.{yaml,json,toml} and
// silently continues without one.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("IMPACTCURVE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	def := model.DefaultParams()
	v.SetDefault("steps", DefaultSteps)
	v.SetDefault("log-level", "info")
	v.SetDefault("pool.x0", def.X0)
	v.SetDefault("pool.y0", def.Y0)
	v.SetDefault("pool.px", def.Px)
	v.SetDefault("pool.py", def.Py)
	v.SetDefault("pool.cx", def.Cx)
	v.SetDefault("pool.cy", def.Cy)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("impactcurve")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Params: model.Params{
			X0: v.GetFloat64("pool.x0"),
			Y0: v.GetFloat64("pool.y0"),
			Px: v.GetFloat64("pool.px"),
			Py: v.GetFloat64("pool.py"),
			Cx: v.GetFloat64("pool.cx"),
			Cy: v.GetFloat64("pool.cy"),
		},
		Steps:    v.GetInt("steps"),
		LogLevel: v.GetString("log-level"),
	}

	if cfg.Steps < 1 {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidSteps, cfg.Steps)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if err := curve.Validate(cfg.Params); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Level returns the configured log level, info if unset.
func (c Config) Level() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: invalid log-level %q: %w", s, err)
	}
	return l, nil
}
