// Package config holds the harness configuration: a single explicit struct
// assembled once from an optional YAML file and CLI flags, then passed to
// every component.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"goldout/internal/baseline"
)

// DefaultFile is the config file consulted when --config is not given.
const DefaultFile = "goldout.yaml"

// Config is the full harness configuration.
type Config struct {
	InputDir    string        // Directory of input files (required)
	ExpectedDir string        // Baseline storage directory
	Filter      []string      // Extension filter, empty accepts all files
	Command     []string      // Command template tokens
	Range       string        // Line range expression, empty keeps full output
	Record      bool          // Record baselines before testing
	Timeout     time.Duration // Per-command limit, zero means none
}

// Default returns a config with defaults applied.
func Default() Config {
	return Config{ExpectedDir: baseline.DefaultDir}
}

// configFile represents the YAML file structure
type configFile struct {
	Dir         string   `yaml:"dir"`
	ExpectedDir string   `yaml:"expected_dir"`
	Filter      []string `yaml:"filter,omitempty"`
	Command     []string `yaml:"command,omitempty"`
	Range       string   `yaml:"range,omitempty"`
	Timeout     string   `yaml:"timeout,omitempty"`
}

// Parse parses YAML content into a Config.
func Parse(content []byte) (Config, error) {
	var cf configFile
	if err := yaml.Unmarshal(content, &cf); err != nil {
		return Config{}, fmt.Errorf("invalid YAML: %w", err)
	}

	cfg := Default()
	cfg.InputDir = cf.Dir
	if cf.ExpectedDir != "" {
		cfg.ExpectedDir = cf.ExpectedDir
	}
	cfg.Filter = cf.Filter
	cfg.Command = cf.Command
	cfg.Range = cf.Range

	if cf.Timeout != "" {
		d, err := time.ParseDuration(cf.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid timeout '%s': %w", cf.Timeout, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Load reads and parses a config file from path.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(content)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays override on base: any value set in override wins. Boolean
// and duration zero values in override leave base untouched except Record,
// which is flag-only and always taken from override.
func Merge(base, override Config) Config {
	merged := base
	if override.InputDir != "" {
		merged.InputDir = override.InputDir
	}
	if override.ExpectedDir != "" {
		merged.ExpectedDir = override.ExpectedDir
	}
	if len(override.Filter) > 0 {
		merged.Filter = override.Filter
	}
	if len(override.Command) > 0 {
		merged.Command = override.Command
	}
	if override.Range != "" {
		merged.Range = override.Range
	}
	if override.Timeout > 0 {
		merged.Timeout = override.Timeout
	}
	merged.Record = base.Record || override.Record
	return merged
}
