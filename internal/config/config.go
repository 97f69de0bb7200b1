// Package config loads the optional .docjson.yml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is picked up from the working directory when no
// configuration file is named explicitly.
const DefaultFileName = ".docjson.yml"

// Config holds the settings of the docjson tool.
type Config struct {
	// Dir is the directory containing the "<class>.json" documentation files.
	Dir       string `yaml:"dir"`
	LogLevel  string `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `yaml:"logFormat" validate:"omitempty,oneof=text json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates the configuration file at path. An empty path
// loads DefaultFileName if it exists and returns a zero Config otherwise.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (Config, error) {
	var file struct {
		DocJSON Config `yaml:"docjson"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := file.DocJSON
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge returns c with every non-empty field of override applied on top.
func (c Config) Merge(override Config) Config {
	if override.Dir != "" {
		c.Dir = override.Dir
	}
	if override.LogLevel != "" {
		c.LogLevel = override.LogLevel
	}
	if override.LogFormat != "" {
		c.LogFormat = override.LogFormat
	}
	return c
}

// Validate checks the combined settings.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
