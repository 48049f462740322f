package ukase

import (
	"log/slog"
	"time"
)

// Option configures a ResourceLoader.
type Option func(*loaderConfig)

type loaderConfig struct {
	templateDir string
	archivePath string
	prefix      string
	suffix      string
	naming      bool
	maxUploads  int
	uploadTTL   time.Duration
	logger      *slog.Logger
}

// WithTemplateDir sets the override directory consulted before the archive.
func WithTemplateDir(dir string) Option {
	return func(c *loaderConfig) {
		c.templateDir = dir
	}
}

// WithArchive sets the packaged archive (zip, jar, tar or tar.gz).
func WithArchive(path string) Option {
	return func(c *loaderConfig) {
		c.archivePath = path
	}
}

// WithNaming sets the template prefix and suffix. Equivalent to calling
// Configure right after construction.
func WithNaming(prefix, suffix string) Option {
	return func(c *loaderConfig) {
		c.prefix = prefix
		c.suffix = suffix
		c.naming = true
	}
}

// WithUploadLimit bounds the upload store to n entries, evicting the least
// recently used. Panics if n < 0 (programmer error).
func WithUploadLimit(n int) Option {
	if n < 0 {
		panic("ukase: WithUploadLimit must not be negative")
	}
	return func(c *loaderConfig) {
		c.maxUploads = n
	}
}

// WithUploadTTL expires uploads d after they were written.
// Panics if d < 0 (programmer error).
func WithUploadTTL(d time.Duration) Option {
	if d < 0 {
		panic("ukase: WithUploadTTL must not be negative")
	}
	return func(c *loaderConfig) {
		c.uploadTTL = d
	}
}

// WithLogger sets the logger used for startup and fallback messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *loaderConfig) {
		c.logger = l
	}
}
