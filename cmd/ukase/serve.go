package main

import (
	"context"
	"fmt"
	"time"

	"github.com/esvolkov/ukase/internal/hints"
	"github.com/esvolkov/ukase/internal/server"
)

// shutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// runServe starts the HTTP resource service until ctx is canceled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	f, fs, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%w: serve takes no arguments, got %d", ErrUsage, fs.NArg())
	}

	cfg, err := loadSettings(&f.common, fs, env)
	if err != nil {
		return err
	}
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}
	if fs.Changed("max-uploads") {
		cfg.Uploads.MaxEntries = f.maxUploads
	}
	if f.uploadTTL != "" {
		ttl, err := time.ParseDuration(f.uploadTTL)
		if err != nil {
			return fmt.Errorf("%w: --upload-ttl: %v", ErrUsage, err)
		}
		cfg.Uploads.TTL = ttl
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg, env, f.common.quiet)
	if err != nil {
		return err
	}
	loader, err := newLoaderFromConfig(cfg, log)
	if err != nil {
		return err
	}
	defer loader.Close()

	srv := server.New(loader, server.Options{
		Logger:         log,
		MaxUploadBytes: f.maxUploadBytes,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
	})
	if err := srv.ListenAndServe(ctx, cfg.Server.Addr, shutdownTimeout); err != nil {
		return withHint(err, hints.ForListen(cfg.Server.Addr))
	}
	return nil
}
