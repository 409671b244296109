// Package config provides Config loading for icongen.
// Config is read from icongen.yaml in the working directory. A missing file
// returns defaults without error. Non-empty ICONGEN_* environment variables
// override file values.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "icongen.yaml"

// Default values for Config fields.
const (
	DefaultOutputDir = "icons"
	DefaultExtension = ".png"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls where icons are written. The icon set itself is fixed.
type Config struct {
	// OutputDir is relative to the working directory unless absolute.
	OutputDir string `yaml:"output_dir"`
	// Extension is appended to each icon name. The files always hold SVG
	// markup; ".png" is the default for consumers that expect that name.
	Extension string `yaml:"extension"`
}

func defaults() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Extension: DefaultExtension,
	}
}

// partialConfig distinguishes an absent key (nil) from an explicit value.
type partialConfig struct {
	OutputDir *string `yaml:"output_dir"`
	Extension *string `yaml:"extension"`
}

type envConfig struct {
	OutputDir string `env:"ICONGEN_OUTPUT_DIR"`
	Extension string `env:"ICONGEN_EXTENSION"`
}

// LoadConfig reads the YAML file at path, applies environment overrides and
// validates the result. Fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var partial partialConfig
		if err := yaml.Unmarshal(data, &partial); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if partial.OutputDir != nil {
			cfg.OutputDir = *partial.OutputDir
		}
		if partial.Extension != nil {
			cfg.Extension = *partial.Extension
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	var overrides envConfig
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if overrides.OutputDir != "" {
		cfg.OutputDir = overrides.OutputDir
	}
	if overrides.Extension != "" {
		cfg.Extension = overrides.Extension
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports an empty output directory or an extension other than
// .png or .svg.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	switch c.Extension {
	case ".png", ".svg":
	default:
		return fmt.Errorf("%w: extension %q (want .png or .svg)", ErrInvalidConfig, c.Extension)
	}
	return nil
}
