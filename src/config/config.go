// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no path is given.
const EnvConfigFile = "CSTR_EXCHANGE_CONFIG"

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds the payloads the native module serves and the ambient settings.
type Config struct {
	// Static: text returned by ReturnStatic
	Static string `json:"static" yaml:"static"`
	// Dynamic: payload copied into each ReturnAlloc buffer
	Dynamic string `json:"dynamic" yaml:"dynamic"`
	// Malformed: bytes written by the unterminated fixture
	Malformed string `json:"malformed" yaml:"malformed"`
	// Allocator: "mmap", "go" or "failing"; empty selects the platform default
	Allocator string `json:"allocator,omitempty" yaml:"allocator,omitempty"`

	Log struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
		// Silent: suppress diagnostics (json format only)
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{
		Static:    "Static string from C",
		Dynamic:   "Dynamic string from C",
		Malformed: "abcd",
	}
	c.Log.Format = LogFormatText
	return c
}

// detectConfigFormat determines the configuration file format based on file extension.
// Extension matching is case-insensitive; anything other than .yaml or .yml is
// treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load reads configuration from configPath, or from the file named by
// [EnvConfigFile] when configPath is empty. With neither set it returns
// [Default].
//
// Configuration Priority:
//  1. Default values are set
//  2. Config file values override defaults
//  3. The result is validated against the schema
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}
	}

	if config.Log.Format == "" {
		config.Log.Format = LogFormatText
	}

	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}
