package main

import (
	"errors"
	"fmt"
	"log/slog"

	flag "github.com/spf13/pflag"

	"github.com/esvolkov/ukase"
	"github.com/esvolkov/ukase/internal/config"
	"github.com/esvolkov/ukase/internal/hints"
	"github.com/esvolkov/ukase/internal/logging"
)

// loadSettings builds the effective configuration.
// Precedence: flags > env vars > config file > defaults.
func loadSettings(f *commonFlags, fs *flag.FlagSet, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	if !f.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	cfg := config.DefaultConfig()
	configName := f.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, withHint(err, hints.ForConfigNotFound(config.SearchPaths(configName)))
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(f, fs, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies explicitly set flags to cfg.
func mergeFlags(f *commonFlags, fs *flag.FlagSet, cfg *config.Config) {
	if f.templates != "" {
		cfg.Resources.Templates = f.templates
	}
	if f.archive != "" {
		cfg.Resources.Archive = f.archive
	}
	if fs.Changed("prefix") {
		prefix := f.prefix
		cfg.Resources.Prefix = &prefix
	}
	if fs.Changed("suffix") {
		suffix := f.suffix
		cfg.Resources.Suffix = &suffix
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
}

// newLogger builds the command logger. Logs go to stderr so stdout stays
// clean for resource content.
func newLogger(cfg *config.Config, env *Environment, quiet bool) (*slog.Logger, error) {
	level := cfg.Log.Level
	if quiet {
		level = "error"
	}
	return logging.New(env.Stderr, logging.Settings{Level: level, Format: cfg.Log.Format})
}

// loaderOptions translates cfg into ResourceLoader options.
func loaderOptions(cfg *config.Config, log *slog.Logger) []ukase.Option {
	opts := []ukase.Option{
		ukase.WithTemplateDir(cfg.Resources.Templates),
		ukase.WithArchive(cfg.Resources.Archive),
		ukase.WithUploadLimit(cfg.Uploads.MaxEntries),
		ukase.WithUploadTTL(cfg.Uploads.TTL),
		ukase.WithLogger(log),
	}
	if cfg.Resources.Prefix != nil || cfg.Resources.Suffix != nil {
		opts = append(opts, ukase.WithNaming(naming(cfg)))
	}
	return opts
}

// naming returns the effective template prefix and suffix.
func naming(cfg *config.Config) (prefix, suffix string) {
	prefix, suffix = ukase.DefaultPrefix, ukase.TemplateSuffix
	if cfg.Resources.Prefix != nil {
		prefix = *cfg.Resources.Prefix
	}
	if cfg.Resources.Suffix != nil {
		suffix = *cfg.Resources.Suffix
	}
	return prefix, suffix
}

// openLoader loads settings and opens the ResourceLoader they describe.
func openLoader(f *commonFlags, fs *flag.FlagSet, env *Environment) (ukase.ResourceLoader, *config.Config, error) {
	cfg, err := loadSettings(f, fs, env)
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger(cfg, env, f.quiet)
	if err != nil {
		return nil, nil, err
	}
	loader, err := newLoaderFromConfig(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return loader, cfg, nil
}

// newLoaderFromConfig opens the ResourceLoader described by cfg, attaching a
// hint to construction failures.
func newLoaderFromConfig(cfg *config.Config, log *slog.Logger) (ukase.ResourceLoader, error) {
	loader, err := ukase.NewResourceLoader(loaderOptions(cfg, log)...)
	if err != nil {
		if errors.Is(err, ukase.ErrInvalidPath) {
			return nil, withHint(err, hints.ForTemplateDir())
		}
		return nil, withHint(err, hints.ForArchive(cfg.Resources.Archive))
	}
	return loader, nil
}

// withHint appends an actionable hint to err, keeping it matchable with errors.Is.
func withHint(err error, hint string) error {
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// lookupHint returns the hint for a failed lookup of name.
func lookupHint(err error, name string, cfg *config.Config) string {
	switch {
	case errors.Is(err, ukase.ErrNotFound):
		prefix, suffix := naming(cfg)
		return hints.ForNotFound(name, prefix, suffix)
	case errors.Is(err, ukase.ErrConfiguration) && cfg.Resources.Templates == "" && cfg.Resources.Archive == "":
		return hints.ForNoBackend()
	default:
		return ""
	}
}
