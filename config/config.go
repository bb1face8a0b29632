// Package config holds the workload sizes and sampling settings for a
// benchmark run, loadable from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unitoftime/ecsbench"
)

type Config struct {
	Entities     int `yaml:"entities"`       // referrers per access scenario
	PointsPerRef int `yaml:"points_per_ref"` // handles per referrer
	IterPoints   int `yaml:"iter_points"`    // elements per iteration scenario
	Warmup       int `yaml:"warmup"`         // discarded passes
	Samples      int `yaml:"samples"`        // timed passes
}

func Default() Config {
	return Config{
		Entities:     ecsbench.DefaultEntities,
		PointsPerRef: ecsbench.DefaultPointsPerRef,
		IterPoints:   ecsbench.DefaultIterPoints,
		Warmup:       10,
		Samples:      100,
	}
}

// FromFile loads a config from a YAML file. Fields left out of the file
// keep their defaults.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
	return FromYAML(data)
}

// FromYAML parses YAML data on top of the defaults.
func FromYAML(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Entities <= 0 {
		return fmt.Errorf("entities must be positive, got %d", c.Entities)
	}
	if c.PointsPerRef <= 0 {
		return fmt.Errorf("points_per_ref must be positive, got %d", c.PointsPerRef)
	}
	if c.IterPoints <= 0 {
		return fmt.Errorf("iter_points must be positive, got %d", c.IterPoints)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warmup must not be negative, got %d", c.Warmup)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	return nil
}
