// Package config provides configuration loading and access for the
// simulation engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters. Behavioral constants
// of the update loop are engine semantics and live in code; this covers
// the environment, initial seeding and run/telemetry settings.
type Config struct {
	Environment EnvironmentConfig `yaml:"environment"`
	Seeding     SeedingConfig     `yaml:"seeding"`
	Run         RunConfig         `yaml:"run"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
}

// EnvironmentConfig holds the ambient conditions. Conditions outside
// [0, 1] are saturated at simulation construction, never rejected.
type EnvironmentConfig struct {
	Temperature float64         `yaml:"temperature"`
	LightLevel  float64         `yaml:"light_level"`
	Moisture    float64         `yaml:"moisture"`
	Resources   ResourcesConfig `yaml:"resources"`
}

// ResourcesConfig holds the environment's resource pool.
type ResourcesConfig struct {
	Organic  float64 `yaml:"organic"`
	Minerals float64 `yaml:"minerals"`
	Light    float64 `yaml:"light"`
}

// SeedingConfig describes the founder population.
type SeedingConfig struct {
	Count          int         `yaml:"count"`
	Motility       RangeConfig `yaml:"motility"`
	Photosynthesis RangeConfig `yaml:"photosynthesis"`
	Size           RangeConfig `yaml:"size"`
}

// RangeConfig is a uniform [Min, Max] draw.
type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RunConfig holds run-level settings.
type RunConfig struct {
	Generations int   `yaml:"generations"`
	Seed        int64 `yaml:"seed"` // 0 = time-based
}

// TelemetryConfig holds telemetry settings.
type TelemetryConfig struct {
	LogEvery int `yaml:"log_every"` // log stats every n generations (0 = never)
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
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

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

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

	return cfg, nil
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
