// Package config loads VerseCards settings from a YAML file, an optional
// .env file, and VERSECARDS_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/VerseCards/core/catalog"
	"github.com/FocuswithJustin/VerseCards/internal/logging"
)

// Environment variables that override file settings.
const (
	EnvDatabase      = "VERSECARDS_DB"
	EnvVersification = "VERSECARDS_VERSIFICATION"
	EnvOSISCatalog   = "VERSECARDS_OSIS"
	EnvLogLevel      = "VERSECARDS_LOG_LEVEL"
	EnvLogFormat     = "VERSECARDS_LOG_FORMAT"
)

// DefaultEnvFile is read from the working directory when Load is given no env files.
const DefaultEnvFile = ".env"

// Config holds all VerseCards configuration.
type Config struct {
	// Database is the SQLite file flashcard sets are stored in.
	Database string `yaml:"database"`

	// Versification names a built-in system (KJV, NRSV). Ignored when
	// OSISCatalog is set.
	Versification string `yaml:"versification"`

	// OSISCatalog is an OSIS XML file whose verse milestones define the catalog.
	OSISCatalog string `yaml:"osis_catalog,omitempty"`

	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Database:      "versecards.db",
		Versification: string(catalog.VersKJV),
		LogLevel:      "warn",
		LogFormat:     "text",
	}
}

// Load reads configuration from path, which may be empty or missing, then
// applies env files and the process environment. With no envFiles, a .env in
// the working directory is used if present.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	explicit := len(envFiles) > 0
	if !explicit {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if err != nil {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read env file %s: %w", f, err)
		}
		cfg.apply(func(key string) string { return vars[key] })
	}

	cfg.apply(os.Getenv)
	return cfg, nil
}

// apply overrides fields from any non-empty variable lookup returns.
func (c *Config) apply(lookup func(string) string) {
	if v := lookup(EnvDatabase); v != "" {
		c.Database = v
	}
	if v := lookup(EnvVersification); v != "" {
		c.Versification = v
	}
	if v := lookup(EnvOSISCatalog); v != "" {
		c.OSISCatalog = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := lookup(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Database == "" {
		return fmt.Errorf("database path not configured (set %s)", EnvDatabase)
	}
	if c.OSISCatalog == "" {
		if _, err := catalog.New(catalog.VersificationID(c.Versification)); err != nil {
			return err
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	return nil
}

// Catalog builds the configured catalog: the OSIS file when one is set,
// otherwise the named built-in versification.
func (c *Config) Catalog() (*catalog.Versification, error) {
	if c.OSISCatalog == "" {
		return catalog.New(catalog.VersificationID(c.Versification))
	}
	data, err := os.ReadFile(c.OSISCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to read OSIS catalog: %w", err)
	}
	return catalog.FromOSIS(data)
}

// InitLogging applies the configured level and format to the global logger.
func (c *Config) InitLogging() error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(level, format)
	return nil
}
