// SPDX-License-Identifier: MIT

// Package config loads the numlab YAML configuration: logging, plot output
// and the iteration budgets of every solver.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numlab/interp"
	"github.com/katalvlaran/numlab/nlsys"
	"github.com/katalvlaran/numlab/ode"
	"github.com/katalvlaran/numlab/roots"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root of numlab.yaml.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Plot   PlotConfig   `yaml:"plot"`
	Linsys LinsysConfig `yaml:"linsys"`
	Roots  RootsConfig  `yaml:"roots"`
	System SystemConfig `yaml:"system"`
	Interp InterpConfig `yaml:"interp"`
	ODE    ODEConfig    `yaml:"ode"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// PlotConfig controls image output; Dir is required when Enabled.
type PlotConfig struct {
	Enabled bool    `yaml:"enabled"`
	Dir     string  `yaml:"dir" validate:"required_if=Enabled true"`
	Format  string  `yaml:"format" validate:"oneof=png svg pdf"`
	Width   float64 `yaml:"width" validate:"gt=0"`
	Height  float64 `yaml:"height" validate:"gt=0"`
}

// LinsysConfig bounds Jacobi iteration; 0 means unbounded.
type LinsysConfig struct {
	MaxIterations int `yaml:"max_iterations" validate:"gte=0"`
}

// RootsConfig bounds the scalar root finders.
type RootsConfig struct {
	MaxIterations int `yaml:"max_iterations" validate:"gt=0"`
	GridCells     int `yaml:"grid_cells" validate:"gte=1"`
}

// SystemConfig bounds Newton's method for systems.
type SystemConfig struct {
	MaxIterations int `yaml:"max_iterations" validate:"gt=0"`
}

// InterpConfig controls the uniform-spacing guard.
type InterpConfig struct {
	CheckSpacing     bool    `yaml:"check_spacing"`
	SpacingTolerance float64 `yaml:"spacing_tolerance" validate:"gt=0"`
}

// ODEConfig bounds step doubling and Milne's corrector.
type ODEConfig struct {
	MaxRefinements     int  `yaml:"max_refinements" validate:"gte=0"`
	MaxCorrectorPasses int  `yaml:"max_corrector_passes" validate:"gt=0"`
	ExactError         bool `yaml:"exact_error"`
}

// Default returns the built-in configuration; it matches the package defaults.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "warn", Format: "text"},
		Plot:   PlotConfig{Enabled: false, Dir: "plots", Format: "png", Width: 8, Height: 5},
		Linsys: LinsysConfig{MaxIterations: 0},
		Roots:  RootsConfig{MaxIterations: roots.DefaultMaxIterations, GridCells: roots.DefaultGridCells},
		System: SystemConfig{MaxIterations: nlsys.DefaultMaxIterations},
		Interp: InterpConfig{CheckSpacing: true, SpacingTolerance: interp.DefaultSpacingTolerance},
		ODE:    ODEConfig{MaxRefinements: ode.DefaultMaxRefinements, MaxCorrectorPasses: ode.DefaultMaxCorrectorPasses},
	}
}

var validate = validator.New()

// Validate checks the struct tags and wraps failures in ErrInvalid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Load reads path over the defaults, so omitted keys keep their default
// values. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, cfg)
}

// Parse decodes YAML over base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := base.Validate(); err != nil {
		return Config{}, err
	}

	return base, nil
}

// Write stores c as YAML at path, creating parent directories.
func Write(path string, c Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Logger builds the slog logger described by l, writing to w.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch l.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
