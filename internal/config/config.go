package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/esvolkov/ukase/internal/fileutil"
	"github.com/esvolkov/ukase/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxAffixLength  = 255  // Template prefix or suffix
	MaxAddrLength   = 261  // host (253) + ":" + port
	MaxUploadsLimit = 1_000_000
)

// Default server settings.
const (
	DefaultAddr         = "127.0.0.1:8080"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// Config holds all configuration for the resolver, the server and logging.
type Config struct {
	Resources ResourcesConfig `yaml:"resources"`
	Uploads   UploadsConfig   `yaml:"uploads"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// ResourcesConfig selects the template backends and their naming.
type ResourcesConfig struct {
	Templates string  `yaml:"templates"` // Override directory (empty = none)
	Archive   string  `yaml:"archive"`   // zip, jar, tar or tar.gz (empty = none)
	Prefix    *string `yaml:"prefix"`    // nil = "/templates"
	Suffix    *string `yaml:"suffix"`    // nil = ".hbs"
}

// UploadsConfig bounds the upload store. Zero values mean unbounded.
type UploadsConfig struct {
	MaxEntries int           `yaml:"maxEntries"`
	TTL        time.Duration `yaml:"ttl"`
}

// ServerConfig defines the HTTP listener for "ukase serve".
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// LogConfig defines the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error (default: info)
	Format string `yaml:"format"` // text, json (default: text)
}

// Validate checks field lengths and enumerations.
// Called automatically by LoadConfig, but available for callers that build
// a Config from flags and environment.
func (c *Config) Validate() error {
	if err := validateFieldLength("resources.templates", c.Resources.Templates, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("resources.archive", c.Resources.Archive, MaxPathLength); err != nil {
		return err
	}
	if c.Resources.Prefix != nil {
		if err := validateFieldLength("resources.prefix", *c.Resources.Prefix, MaxAffixLength); err != nil {
			return err
		}
	}
	if c.Resources.Suffix != nil {
		if err := validateFieldLength("resources.suffix", *c.Resources.Suffix, MaxAffixLength); err != nil {
			return err
		}
		if strings.ContainsAny(*c.Resources.Suffix, "/\\\x00") {
			return fmt.Errorf("%w: resources.suffix %q contains a path separator", ErrInvalidValue, *c.Resources.Suffix)
		}
	}

	if c.Uploads.MaxEntries < 0 || c.Uploads.MaxEntries > MaxUploadsLimit {
		return fmt.Errorf("%w: uploads.maxEntries must be between 0 and %d, got %d", ErrInvalidValue, MaxUploadsLimit, c.Uploads.MaxEntries)
	}
	if c.Uploads.TTL < 0 {
		return fmt.Errorf("%w: uploads.ttl must not be negative, got %s", ErrInvalidValue, c.Uploads.TTL)
	}

	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("%w: server timeouts must not be negative", ErrInvalidValue)
	}

	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "debug", "info", "warn", "error":
			// valid
		default:
			return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
		}
	}
	if c.Log.Format != "" {
		switch strings.ToLower(c.Log.Format) {
		case "text", "json":
			// valid
		default:
			return fmt.Errorf("%w: log.format %q (must be text or json)", ErrInvalidValue, c.Log.Format)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with no backends, an unbounded
// upload store and a loopback listener.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         DefaultAddr,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "ukase", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory, then ~/.config/ukase/, each with .yaml and .yml.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
