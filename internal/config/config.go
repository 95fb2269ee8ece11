// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

// Package config handles configuration loading for the oicpconv tool.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax), so that database credentials
// can be injected at runtime.
//
// # Configuration Sections
//
//   - codec: input and output wire format, metadata attributes, indentation
//   - log: slog level and handler format
//   - storage: MongoDB record store
//   - registry: CDR duplicate detection window
//
// # Example Configuration
//
//	codec:
//	  inputFormat: auto
//	  outputFormat: json
//	  includeMetadata: true
//	  pretty: true
//
//	log:
//	  level: debug
//	  format: json
//
//	storage:
//	  mongodb:
//	    enabled: true
//	    uri: ${MONGODB_URI}
//	    database: oicp
//
//	registry:
//	  duplicateWindow: 48h
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Wire formats.
const (
	FormatAuto = "auto"
	FormatXML  = "xml"
	FormatJSON = "json"
)

// Config is the root configuration structure
type Config struct {
	Codec    CodecConfig    `yaml:"codec"`
	Log      LogConfig      `yaml:"log"`
	Storage  StorageConfig  `yaml:"storage"`
	Registry RegistryConfig `yaml:"registry"`
}

// CodecConfig selects wire formats
type CodecConfig struct {
	// InputFormat is auto, xml or json. Auto sniffs the first byte.
	InputFormat  string `yaml:"inputFormat"`
	OutputFormat string `yaml:"outputFormat"`
	// IncludeMetadata writes lastUpdate and deltaType on EVSE data records.
	IncludeMetadata bool `yaml:"includeMetadata"`
	Pretty          bool `yaml:"pretty"`
	// SOAP wraps XML output in a SOAP 1.1 envelope.
	SOAP bool `yaml:"soap"`
	// Gzip compresses the output document.
	Gzip bool `yaml:"gzip"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// StorageConfig holds database settings
type StorageConfig struct {
	MongoDB MongoDBConfig `yaml:"mongodb"`
}

// MongoDBConfig holds MongoDB connection settings
type MongoDBConfig struct {
	Enabled  bool          `yaml:"enabled"`
	URI      string        `yaml:"uri"`
	Database string        `yaml:"database"`
	Timeout  time.Duration `yaml:"timeout"`
}

// RegistryConfig holds registry settings
type RegistryConfig struct {
	DuplicateWindow time.Duration `yaml:"duplicateWindow"`
	PruneInterval   time.Duration `yaml:"pruneInterval"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expanding environment variables.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Codec.InputFormat == "" {
		c.Codec.InputFormat = FormatAuto
	}
	if c.Codec.OutputFormat == "" {
		c.Codec.OutputFormat = FormatJSON
	}
	c.Codec.InputFormat = strings.ToLower(c.Codec.InputFormat)
	c.Codec.OutputFormat = strings.ToLower(c.Codec.OutputFormat)
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Storage.MongoDB.Database == "" {
		c.Storage.MongoDB.Database = "oicp"
	}
	if c.Storage.MongoDB.Timeout == 0 {
		c.Storage.MongoDB.Timeout = 10 * time.Second
	}
	if c.Registry.DuplicateWindow == 0 {
		c.Registry.DuplicateWindow = 24 * time.Hour
	}
	if c.Registry.PruneInterval == 0 {
		c.Registry.PruneInterval = time.Hour
	}
}

func (c *Config) validate() error {
	switch c.Codec.InputFormat {
	case FormatAuto, FormatXML, FormatJSON:
	default:
		return fmt.Errorf("codec.inputFormat must be 'auto', 'xml' or 'json', got '%s'", c.Codec.InputFormat)
	}
	switch c.Codec.OutputFormat {
	case FormatXML, FormatJSON:
	default:
		return fmt.Errorf("codec.outputFormat must be 'xml' or 'json', got '%s'", c.Codec.OutputFormat)
	}
	if c.Codec.SOAP && c.Codec.OutputFormat != FormatXML {
		return fmt.Errorf("codec.soap requires outputFormat 'xml'")
	}

	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be 'text' or 'json', got '%s'", c.Log.Format)
	}

	if c.Storage.MongoDB.Enabled && c.Storage.MongoDB.URI == "" {
		return fmt.Errorf("storage.mongodb.uri is required when storage is enabled")
	}

	if c.Registry.DuplicateWindow < 0 {
		return fmt.Errorf("registry.duplicateWindow must not be negative")
	}
	if c.Registry.PruneInterval < 0 {
		return fmt.Errorf("registry.pruneInterval must not be negative")
	}

	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// NewLogger builds a slog.Logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := l.level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
