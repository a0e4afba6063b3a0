// Package config provides the analysis parameters: embedded defaults,
// optionally overlaid by a user YAML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathmap/pathing"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned by Validate for out-of-range or unknown values.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every analysis parameter.
type Config struct {
	Choke    ChokeConfig    `yaml:"choke"`
	Openness OpennessConfig `yaml:"openness"`
	Bases    BasesConfig    `yaml:"bases"`
	Log      LogConfig      `yaml:"log"`

	// Derived values computed by Validate
	Derived DerivedConfig `yaml:"-"`
}

// ChokeConfig holds choke detection parameters.
type ChokeConfig struct {
	DetectionThreshold float64 `yaml:"detection_threshold"` // narrowest width that counts, in cells
	DetectionAgreement float64 `yaml:"detection_agreement"` // max distance between agreeing candidates
	MovementType       string  `yaml:"movement_type"`
}

// OpennessConfig holds openness parameters.
type OpennessConfig struct {
	NeighborhoodRadius float64  `yaml:"neighborhood_radius"` // disk sampled around bases
	MovementTypes      []string `yaml:"movement_types"`
}

// BasesConfig holds base patch parameters.
type BasesConfig struct {
	PatchCastCells int `yaml:"patch_cast_cells"`
}

// LogConfig holds logger defaults; command-line flags override them.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// DerivedConfig holds the parsed forms of string-valued settings.
type DerivedConfig struct {
	ChokeType     pathing.MovementType
	OpennessTypes []pathing.MovementType
}

// Default returns the embedded defaults. It panics if they do not parse,
// which only a broken build can cause.
func Default() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}

	return cfg
}

// Load reads the YAML file at path over the embedded defaults and
// validates the result. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse overlays data on the embedded defaults and validates the result.
// Only keys present in data are overwritten.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and names and fills Derived.
func (c *Config) Validate() error {
	switch {
	case c.Choke.DetectionThreshold <= 0:
		return fmt.Errorf("%w: choke.detection_threshold %v must be positive", ErrInvalid, c.Choke.DetectionThreshold)
	case c.Choke.DetectionAgreement < 0:
		return fmt.Errorf("%w: choke.detection_agreement %v must not be negative", ErrInvalid, c.Choke.DetectionAgreement)
	case c.Openness.NeighborhoodRadius < 0:
		return fmt.Errorf("%w: openness.neighborhood_radius %v must not be negative", ErrInvalid, c.Openness.NeighborhoodRadius)
	case c.Bases.PatchCastCells <= 0:
		return fmt.Errorf("%w: bases.patch_cast_cells %d must be positive", ErrInvalid, c.Bases.PatchCastCells)
	case len(c.Openness.MovementTypes) == 0:
		return fmt.Errorf("%w: openness.movement_types is empty", ErrInvalid)
	}

	ct, err := pathing.ParseMovementType(c.Choke.MovementType)
	if err != nil {
		return fmt.Errorf("%w: choke.movement_type: %w", ErrInvalid, err)
	}
	types := make([]pathing.MovementType, 0, len(c.Openness.MovementTypes))
	for _, name := range c.Openness.MovementTypes {
		t, err := pathing.ParseMovementType(name)
		if err != nil {
			return fmt.Errorf("%w: openness.movement_types: %w", ErrInvalid, err)
		}
		types = append(types, t)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	c.Derived = DerivedConfig{ChokeType: ct, OpennessTypes: types}

	return nil
}
