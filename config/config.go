// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Clock modes.
const (
	ClockWall = "wall"
	ClockTick = "tick"
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Arena      ArenaConfig      `yaml:"arena"`
	Entity     EntityConfig     `yaml:"entity"`
	Collision  CollisionConfig  `yaml:"collision"`
	Population PopulationConfig `yaml:"population"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Clock      ClockConfig      `yaml:"clock"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds the dimensions of the area particles move in.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EntityConfig holds entity geometry and motion parameters.
type EntityConfig struct {
	Radius       float64 `yaml:"radius"`
	BounceMargin float64 `yaml:"bounce_margin"`
	SpawnInset   float64 `yaml:"spawn_inset"`
	Speed        float64 `yaml:"speed"`
}

// CollisionConfig holds collision resolution parameters.
type CollisionConfig struct {
	CooldownMS float64 `yaml:"cooldown_ms"`
}

// PopulationConfig holds initial counts per type.
type PopulationConfig struct {
	Rock     int `yaml:"rock"`
	Paper    int `yaml:"paper"`
	Scissors int `yaml:"scissors"`
	Lizard   int `yaml:"lizard"`
	Spock    int `yaml:"spock"`
}

// TelemetryConfig holds sampling parameters.
type TelemetryConfig struct {
	SampleInterval int `yaml:"sample_interval"`
}

// ClockConfig selects the time source used for collision cooldowns.
type ClockConfig struct {
	Mode   string  `yaml:"mode"`
	TickMS float64 `yaml:"tick_ms"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ArenaW32     float32       // Arena.Width as float32
	ArenaH32     float32       // Arena.Height as float32
	Radius32     float32       // Entity.Radius as float32
	Margin32     float32       // Entity.BounceMargin as float32
	Cooldown     time.Duration // Collision.CooldownMS
	TickDuration time.Duration // Clock.TickMS
}

// Counts returns the initial population in type order (rock, paper, scissors, lizard, spock).
func (p PopulationConfig) Counts() [5]int {
	return [5]int{p.Rock, p.Paper, p.Scissors, p.Lizard, p.Spock}
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadBytes(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes merges a YAML overlay onto the embedded defaults.
func LoadBytes(overlay []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Only overwrites fields present in the overlay
	if len(overlay) > 0 {
		if err := yaml.Unmarshal(overlay, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the values the simulation relies on.
func (c *Config) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must be positive, got %dx%d", c.Arena.Width, c.Arena.Height))
	}
	if c.Entity.Radius <= 0 {
		errs = append(errs, fmt.Errorf("entity.radius must be positive, got %v", c.Entity.Radius))
	}
	if c.Entity.SpawnInset < c.Entity.Radius {
		errs = append(errs, fmt.Errorf("entity.spawn_inset (%v) must be at least entity.radius (%v)", c.Entity.SpawnInset, c.Entity.Radius))
	}
	if 2*c.Entity.SpawnInset >= float64(min(c.Arena.Width, c.Arena.Height)) {
		errs = append(errs, fmt.Errorf("entity.spawn_inset (%v) leaves no room in a %dx%d arena", c.Entity.SpawnInset, c.Arena.Width, c.Arena.Height))
	}
	if c.Entity.BounceMargin <= 0 {
		errs = append(errs, fmt.Errorf("entity.bounce_margin must be positive, got %v", c.Entity.BounceMargin))
	}
	if c.Entity.Speed < 0 || c.Entity.Speed > c.Entity.BounceMargin {
		errs = append(errs, fmt.Errorf("entity.speed must be within [0, bounce_margin=%v], got %v", c.Entity.BounceMargin, c.Entity.Speed))
	}
	if c.Collision.CooldownMS < 0 {
		errs = append(errs, fmt.Errorf("collision.cooldown_ms must not be negative, got %v", c.Collision.CooldownMS))
	}
	for i, n := range c.Population.Counts() {
		if n < 0 {
			errs = append(errs, fmt.Errorf("population count %d is negative: %d", i, n))
		}
	}
	if c.Telemetry.SampleInterval <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.sample_interval must be positive, got %d", c.Telemetry.SampleInterval))
	}
	// Headless runs and sweeps use the tick clock whatever the mode says
	if !(c.Clock.TickMS*float64(time.Millisecond) >= 1) {
		errs = append(errs, fmt.Errorf("clock.tick_ms must be at least 1ns, got %v", c.Clock.TickMS))
	}
	switch c.Clock.Mode {
	case ClockWall, ClockTick:
	default:
		errs = append(errs, fmt.Errorf("clock.mode must be %q or %q, got %q", ClockWall, ClockTick, c.Clock.Mode))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ArenaW32 = float32(c.Arena.Width)
	c.Derived.ArenaH32 = float32(c.Arena.Height)
	c.Derived.Radius32 = float32(c.Entity.Radius)
	c.Derived.Margin32 = float32(c.Entity.BounceMargin)
	c.Derived.Cooldown = time.Duration(c.Collision.CooldownMS * float64(time.Millisecond))
	c.Derived.TickDuration = time.Duration(c.Clock.TickMS * float64(time.Millisecond))
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
