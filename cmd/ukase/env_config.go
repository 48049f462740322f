package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/esvolkov/ukase/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides container-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string  // UKASE_CONFIG: config file name or path
	Templates  string  // UKASE_TEMPLATES: override directory
	Archive    string  // UKASE_ARCHIVE: packaged archive
	Prefix     *string // UKASE_PREFIX: template prefix (set but empty = no prefix)
	Suffix     *string // UKASE_SUFFIX: template suffix (set but empty = no suffix)
	Addr       string  // UKASE_ADDR: serve listen address
	LogLevel   string  // UKASE_LOG_LEVEL: debug, info, warn, error
	LogFormat  string  // UKASE_LOG_FORMAT: text, json
}

// knownEnvVars lists valid UKASE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"UKASE_CONFIG":     true,
	"UKASE_TEMPLATES":  true,
	"UKASE_ARCHIVE":    true,
	"UKASE_PREFIX":     true,
	"UKASE_SUFFIX":     true,
	"UKASE_ADDR":       true,
	"UKASE_LOG_LEVEL":  true,
	"UKASE_LOG_FORMAT": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("UKASE_CONFIG"),
		Templates:  os.Getenv("UKASE_TEMPLATES"),
		Archive:    os.Getenv("UKASE_ARCHIVE"),
		Addr:       os.Getenv("UKASE_ADDR"),
		LogLevel:   os.Getenv("UKASE_LOG_LEVEL"),
		LogFormat:  os.Getenv("UKASE_LOG_FORMAT"),
	}
	if v, ok := os.LookupEnv("UKASE_PREFIX"); ok {
		cfg.Prefix = &v
	}
	if v, ok := os.LookupEnv("UKASE_SUFFIX"); ok {
		cfg.Suffix = &v
	}
	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized UKASE_* variables.
// Helps catch typos like UKASE_ARCHVE instead of UKASE_ARCHIVE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "UKASE_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays environment values on cfg.
// Set variables win over the config file; flags are applied afterwards,
// giving: flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Templates != "" {
		cfg.Resources.Templates = env.Templates
	}
	if env.Archive != "" {
		cfg.Resources.Archive = env.Archive
	}
	if env.Prefix != nil {
		cfg.Resources.Prefix = env.Prefix
	}
	if env.Suffix != nil {
		cfg.Resources.Suffix = env.Suffix
	}
	if env.Addr != "" {
		cfg.Server.Addr = env.Addr
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
}
