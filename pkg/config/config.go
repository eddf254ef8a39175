// Package config provides configuration loading and validation for
// imgsplit. It handles loading configuration from YAML files and
// provides default values matching the CLI defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"imgsplit/pkg/naming"
	"imgsplit/pkg/segmentation"
)

// Config represents the splitter configuration loaded from YAML
type Config struct {
	// Segmentation parameters control separator detection
	Segmentation struct {
		// Threshold is the white pixel brightness threshold (0-255)
		Threshold int `yaml:"threshold"`

		// MinSize is the minimum sub-image extent in pixels
		MinSize int `yaml:"minSize"`

		// MinGap is the minimum separator width in pixels
		MinGap int `yaml:"minGap"`

		// Ratio is the white pixel ratio for separator detection (0-1)
		Ratio float64 `yaml:"ratio"`
	} `yaml:"segmentation"`

	// Trim parameters control white border trimming of each slice
	Trim struct {
		// Enabled turns border trimming on
		Enabled bool `yaml:"enabled"`

		// MaxDepth is the maximum pixels trimmed per edge
		MaxDepth int `yaml:"maxDepth"`

		// Threshold is the brightness threshold for trimming (0-255)
		Threshold int `yaml:"threshold"`

		// Ratio is the white pixel ratio for trimming (0-1)
		Ratio float64 `yaml:"ratio"`

		// Sides selects edges to trim: any combination of t, b, l, r
		Sides string `yaml:"sides"`
	} `yaml:"trim"`

	// Naming parameters select output file naming
	Naming struct {
		// Template is the filename template with {name}, {row},
		// {col}, {n}, {N} placeholders
		Template string `yaml:"template"`

		// Suffixes is a comma- or space-separated suffix list,
		// mutually exclusive with Template
		Suffixes string `yaml:"suffixes"`
	} `yaml:"naming"`

	// Output parameters control encoding
	Output struct {
		// Format is the output image format: jpg, png, or webp
		Format string `yaml:"format"`

		// Quality is the encode quality for jpg/webp (1-100)
		Quality int `yaml:"quality"`
	} `yaml:"output"`

	// Batch parameters control directory processing
	Batch struct {
		// Recursive walks subdirectories, preserving structure
		Recursive bool `yaml:"recursive"`

		// Workers is the number of images processed concurrently
		Workers int `yaml:"workers"`
	} `yaml:"batch"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Segmentation.Threshold = 245
	cfg.Segmentation.MinSize = 50
	cfg.Segmentation.MinGap = 3
	cfg.Segmentation.Ratio = 0.99

	cfg.Trim.Enabled = false
	cfg.Trim.MaxDepth = 10
	cfg.Trim.Threshold = 248
	cfg.Trim.Ratio = 0.80
	cfg.Trim.Sides = "tblr"

	cfg.Naming.Template = naming.DefaultTemplate
	cfg.Naming.Suffixes = ""

	cfg.Output.Format = "webp"
	cfg.Output.Quality = 95

	cfg.Batch.Recursive = false
	cfg.Batch.Workers = runtime.NumCPU()

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks the configuration before any image is processed.
// A failure here is fatal for the whole run; no partial work happens.
func (cfg *Config) Validate() error {
	if cfg.Segmentation.Threshold < 0 || cfg.Segmentation.Threshold > 255 {
		return fmt.Errorf("segmentation threshold must be in 0-255, got %d", cfg.Segmentation.Threshold)
	}
	if cfg.Segmentation.MinSize <= 0 {
		return fmt.Errorf("min-size must be positive, got %d", cfg.Segmentation.MinSize)
	}
	if cfg.Segmentation.MinGap <= 0 {
		return fmt.Errorf("min-gap must be positive, got %d", cfg.Segmentation.MinGap)
	}
	if cfg.Segmentation.Ratio < 0 || cfg.Segmentation.Ratio > 1 {
		return fmt.Errorf("segmentation ratio must be in 0-1, got %g", cfg.Segmentation.Ratio)
	}
	if cfg.Trim.MaxDepth < 0 {
		return fmt.Errorf("trim max depth must be non-negative, got %d", cfg.Trim.MaxDepth)
	}
	if cfg.Trim.Threshold < 0 || cfg.Trim.Threshold > 255 {
		return fmt.Errorf("trim threshold must be in 0-255, got %d", cfg.Trim.Threshold)
	}
	if cfg.Trim.Ratio < 0 || cfg.Trim.Ratio > 1 {
		return fmt.Errorf("trim ratio must be in 0-1, got %g", cfg.Trim.Ratio)
	}
	if _, ok := segmentation.ParseSides(cfg.Trim.Sides); !ok {
		return fmt.Errorf("trim sides must only contain t, b, l, r (got: %s)", cfg.Trim.Sides)
	}
	resolver := naming.NewResolver(cfg.Naming.Suffixes, cfg.Naming.Template)
	if err := resolver.Validate(cfg.Naming.Template != naming.DefaultTemplate); err != nil {
		return err
	}
	switch cfg.Output.Format {
	case "jpg", "jpeg", "png", "webp":
	default:
		return fmt.Errorf("output format must be jpg, png, or webp, got %q", cfg.Output.Format)
	}
	if cfg.Output.Quality < 1 || cfg.Output.Quality > 100 {
		return fmt.Errorf("output quality must be in 1-100, got %d", cfg.Output.Quality)
	}
	if cfg.Batch.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", cfg.Batch.Workers)
	}
	return nil
}
