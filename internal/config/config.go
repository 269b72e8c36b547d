package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up in the working directory
// when --config is not given.
const DefaultConfigFile = ".srcdump.yaml"

// Environment variables that override the config file.
const (
	EnvRoot            = "SRCDUMP_ROOT"
	EnvLogLevel        = "SRCDUMP_LOG_LEVEL"
	EnvContinueOnError = "SRCDUMP_CONTINUE_ON_ERROR"
	EnvLockReads       = "SRCDUMP_LOCK_READS"
)

// Config represents srcdump configuration options
type Config struct {
	// Root is the directory to dump; relative paths in the output are relative to it
	Root string `yaml:"root"`

	// LogLevel sets the stderr logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ContinueOnError keeps dumping past unreadable files instead of stopping at the first
	ContinueOnError bool `yaml:"continue_on_error"`

	// LockReads takes a shared advisory lock on each file while it is read
	LockReads bool `yaml:"lock_reads"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Root:            ".",
		LogLevel:        "info",
		ContinueOnError: false,
		LockReads:       false,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields distinguish "absent" from an explicit zero value
	type yamlConfig struct {
		Root            *string `yaml:"root"`
		LogLevel        *string `yaml:"log_level"`
		ContinueOnError *bool   `yaml:"continue_on_error"`
		LockReads       *bool   `yaml:"lock_reads"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.Root != nil && *yamlCfg.Root != "" {
		cfg.Root = *yamlCfg.Root
	}
	if yamlCfg.LogLevel != nil && *yamlCfg.LogLevel != "" {
		cfg.LogLevel = *yamlCfg.LogLevel
	}
	if yamlCfg.ContinueOnError != nil {
		cfg.ContinueOnError = *yamlCfg.ContinueOnError
	}
	if yamlCfg.LockReads != nil {
		cfg.LockReads = *yamlCfg.LockReads
	}

	return cfg, nil
}

// LoadDotEnv loads KEY=value pairs from the given .env files into the process
// environment without overriding variables that are already set.
// With no arguments it loads ".env" from the working directory. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides configuration values from SRCDUMP_* environment variables.
// Unset or empty variables leave the current value untouched.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvRoot)); v != "" {
		c.Root = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvContinueOnError)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvContinueOnError, v, err)
		}
		c.ContinueOnError = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvLockReads)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvLockReads, v, err)
		}
		c.LockReads = b
	}
	return nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file and environment settings
func (c *Config) MergeWithFlags(root *string, logLevel *string, continueOnError *bool, lockReads *bool) {
	if root != nil {
		c.Root = *root
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if continueOnError != nil {
		c.ContinueOnError = *continueOnError
	}
	if lockReads != nil {
		c.LockReads = *lockReads
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("root cannot be empty")
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}
