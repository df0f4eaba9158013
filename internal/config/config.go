// Package config loads and stores mockauth settings in the XDG config dir.
// Only non-secret UI and logging settings live here; auth state is never
// written to disk.
//
// Values are resolved in order: defaults, config.json, .env, environment.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	apperrors "mockauth/cli/internal/errors"
	"mockauth/cli/internal/xdg"
)

// Environment variables that override file settings.
const (
	EnvLogLevel    = "MOCKAUTH_LOG_LEVEL"
	EnvLogEncoding = "MOCKAUTH_LOG_ENCODING"
	EnvPrompt      = "MOCKAUTH_PROMPT"
	EnvVerbose     = "MOCKAUTH_VERBOSE"
)

// Defaults
const (
	DefaultLogLevel    = "warn"
	DefaultLogEncoding = "console"
	DefaultPrompt      = "mockauth> "
)

// Config holds non-sensitive CLI settings.
type Config struct {
	Log     LogConfig `json:"log"`
	Prompt  string    `json:"prompt"`
	Verbose bool      `json:"verbose"`
}

// LogConfig selects the logger level and encoder ("console" or "json").
type LogConfig struct {
	Level    string `json:"level"`
	Encoding string `json:"encoding"`
}

// Keys accepted by Set.
const (
	KeyPrompt      = "prompt"
	KeyLogLevel    = "log.level"
	KeyLogEncoding = "log.encoding"
	KeyVerbose     = "verbose"
)

// Keys lists the settable keys in display order.
var Keys = []string{KeyPrompt, KeyLogLevel, KeyLogEncoding, KeyVerbose}

// Path returns the path to the config file.
func Path() (string, error) {
	return xdg.ConfigPath("config.json")
}

// Load returns the effective configuration: LoadFile plus .env and environment overrides.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}

	_ = godotenv.Load(".env")
	c.applyEnv()
	c.fillDefaults()
	return c, nil
}

// LoadFile reads only the config file; a missing file yields defaults.
// Use it when the result is written back with Save so environment overrides
// do not end up on disk.
func LoadFile() (Config, error) {
	c := Defaults()

	p, err := Path()
	if err != nil {
		return c, apperrors.Wrap(apperrors.ConfigLoad, "resolve config dir", err)
	}
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, apperrors.Wrap(apperrors.ConfigLoad, "read "+p, err)
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, apperrors.Wrap(apperrors.ConfigLoad, "decode "+p, err)
		}
	}
	c.fillDefaults()
	return c, nil
}

// Set assigns value to the setting named by key.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyPrompt:
		c.Prompt = value
	case KeyLogLevel:
		c.Log.Level = value
	case KeyLogEncoding:
		c.Log.Encoding = value
	case KeyVerbose:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return apperrors.Wrap(apperrors.InvalidArguments, "verbose must be true or false", err)
		}
		c.Verbose = b
	default:
		return apperrors.New(apperrors.InvalidArguments, "unknown config key "+key)
	}
	return nil
}

// Get returns the setting named by key as text.
func (c Config) Get(key string) (string, error) {
	switch key {
	case KeyPrompt:
		return c.Prompt, nil
	case KeyLogLevel:
		return c.Log.Level, nil
	case KeyLogEncoding:
		return c.Log.Encoding, nil
	case KeyVerbose:
		return strconv.FormatBool(c.Verbose), nil
	}
	return "", apperrors.New(apperrors.InvalidArguments, "unknown config key "+key)
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Level:    DefaultLogLevel,
			Encoding: DefaultLogEncoding,
		},
		Prompt: DefaultPrompt,
	}
}

func (c *Config) applyEnv() {
	c.Log.Level = getString(EnvLogLevel, c.Log.Level)
	c.Log.Encoding = getString(EnvLogEncoding, c.Log.Encoding)
	c.Prompt = getString(EnvPrompt, c.Prompt)
	c.Verbose = getBool(EnvVerbose, c.Verbose)
}

// fillDefaults covers fields left empty by a partial config file.
func (c *Config) fillDefaults() {
	d := Defaults()
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Encoding == "" {
		c.Log.Encoding = d.Log.Encoding
	}
	if c.Prompt == "" {
		c.Prompt = d.Prompt
	}
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}
