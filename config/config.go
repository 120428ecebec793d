// Package config provides configuration loading and access for the renderer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all renderer configuration parameters.
type Config struct {
	Seed       uint64           `yaml:"seed"`
	Image      ImageConfig      `yaml:"image"`
	Forces     ForcesConfig     `yaml:"forces"`
	Faucets    FaucetsConfig    `yaml:"faucets"`
	Streams    StreamsConfig    `yaml:"streams"`
	Render     RenderConfig     `yaml:"render"`
	Turbulence TurbulenceConfig `yaml:"turbulence"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// LogNormalShape parameterizes a log-normal distribution by its center
// and multiplicative spread: ln(center) is the underlying normal's mean
// and ln(mult_spread) its standard deviation.
type LogNormalShape struct {
	Center     float64 `yaml:"center"`
	MultSpread float64 `yaml:"mult_spread"`
}

// NormalShape parameterizes a normal distribution.
type NormalShape struct {
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
}

// ExponentialShape parameterizes an exponential distribution by its mean.
type ExponentialShape struct {
	Mean float64 `yaml:"mean"`
}

// ImageConfig holds output image dimensions.
type ImageConfig struct {
	Size int `yaml:"size"` // square canvas, in pixels
}

// ForcesConfig holds force field generation parameters.
type ForcesConfig struct {
	Count    int            `yaml:"count"`
	Strength LogNormalShape `yaml:"strength"`
	Spread   LogNormalShape `yaml:"spread"`
}

// FaucetsConfig holds faucet generation parameters. Each faucet is a
// source distribution streams draw their initial state from.
type FaucetsConfig struct {
	Count          int              `yaml:"count"`
	ColorCenter    NormalShape      `yaml:"color_center"`    // per channel
	ColorSpread    ExponentialShape `yaml:"color_spread"`    // per channel
	PositionSpread ExponentialShape `yaml:"position_spread"` // per axis
	VelocitySpread ExponentialShape `yaml:"velocity_spread"` // per axis
}

// StreamsConfig holds stream generation parameters.
type StreamsConfig struct {
	Count int              `yaml:"count"`
	Decay ExponentialShape `yaml:"decay"` // mean 0 = use 1/size
}

// RenderConfig holds integration and tone-mapping parameters.
type RenderConfig struct {
	MaxDecayFactor float64 `yaml:"max_decay_factor"` // stop once decay_rate*age reaches this
	VelocityCap    float64 `yaml:"velocity_cap"`
	ColorCap       float64 `yaml:"color_cap"`
	Workers        int     `yaml:"workers"` // 1 = sequential, bit-reproducible
}

// TurbulenceConfig holds the optional coherent-noise force layer.
// Strength 0 disables it.
type TurbulenceConfig struct {
	Strength float64 `yaml:"strength"`
	Scale    float64 `yaml:"scale"` // noise frequency in 1/pixels
	Octaves  int     `yaml:"octaves"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Size      float64 // Image.Size as float64
	DecayMean float64 // Streams.Decay.Mean, defaulted to 1/size
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. Invalid distribution
// parameters fail here, before any sampling happens.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks every distribution shape and bound. The returned error
// names the offending parameter.
func (c *Config) Validate() error {
	if c.Image.Size <= 0 {
		return fmt.Errorf("config: image.size must be positive, got %d", c.Image.Size)
	}
	if c.Forces.Count < 0 {
		return fmt.Errorf("config: forces.count must not be negative, got %d", c.Forces.Count)
	}
	if c.Streams.Count < 0 {
		return fmt.Errorf("config: streams.count must not be negative, got %d", c.Streams.Count)
	}
	if c.Streams.Count > 0 && c.Faucets.Count <= 0 {
		return fmt.Errorf("config: faucets.count must be positive when streams.count > 0, got %d", c.Faucets.Count)
	}
	if c.Forces.Count > 0 {
		if err := validateLogNormal("forces.strength", c.Forces.Strength); err != nil {
			return err
		}
		if err := validateLogNormal("forces.spread", c.Forces.Spread); err != nil {
			return err
		}
	}
	if c.Faucets.Count > 0 {
		if c.Faucets.ColorCenter.Std < 0 {
			return fmt.Errorf("config: faucets.color_center.std must not be negative, got %v", c.Faucets.ColorCenter.Std)
		}
		if err := validateExponential("faucets.color_spread", c.Faucets.ColorSpread); err != nil {
			return err
		}
		if err := validateExponential("faucets.position_spread", c.Faucets.PositionSpread); err != nil {
			return err
		}
		if err := validateExponential("faucets.velocity_spread", c.Faucets.VelocitySpread); err != nil {
			return err
		}
	}
	if c.Streams.Decay.Mean < 0 {
		return fmt.Errorf("config: streams.decay.mean must not be negative, got %v", c.Streams.Decay.Mean)
	}
	if c.Render.MaxDecayFactor <= 0 {
		return fmt.Errorf("config: render.max_decay_factor must be positive, got %v", c.Render.MaxDecayFactor)
	}
	if c.Render.VelocityCap <= 0 {
		return fmt.Errorf("config: render.velocity_cap must be positive, got %v", c.Render.VelocityCap)
	}
	if c.Render.ColorCap <= 0 {
		return fmt.Errorf("config: render.color_cap must be positive, got %v", c.Render.ColorCap)
	}
	if c.Render.Workers < 1 {
		return fmt.Errorf("config: render.workers must be at least 1, got %d", c.Render.Workers)
	}
	if c.Turbulence.Strength < 0 {
		return fmt.Errorf("config: turbulence.strength must not be negative, got %v", c.Turbulence.Strength)
	}
	if c.Turbulence.Strength > 0 {
		if c.Turbulence.Scale <= 0 {
			return fmt.Errorf("config: turbulence.scale must be positive, got %v", c.Turbulence.Scale)
		}
		if c.Turbulence.Octaves < 1 {
			return fmt.Errorf("config: turbulence.octaves must be at least 1, got %d", c.Turbulence.Octaves)
		}
	}
	return nil
}

func validateLogNormal(name string, s LogNormalShape) error {
	if s.Center <= 0 {
		return fmt.Errorf("config: %s.center must be positive, got %v", name, s.Center)
	}
	if s.MultSpread < 1 {
		return fmt.Errorf("config: %s.mult_spread must be at least 1, got %v", name, s.MultSpread)
	}
	return nil
}

func validateExponential(name string, s ExponentialShape) error {
	if s.Mean <= 0 {
		return fmt.Errorf("config: %s.mean must be positive, got %v", name, s.Mean)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Size = float64(c.Image.Size)

	// Mean stream lifetime defaults to one canvas crossing.
	c.Derived.DecayMean = c.Streams.Decay.Mean
	if c.Derived.DecayMean == 0 {
		c.Derived.DecayMean = 1 / c.Derived.Size
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
