package resources

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Options configures a Resolver.
type Options struct {
	TemplateDir string       // override directory, empty = none
	ArchivePath string       // packaged archive, empty = none
	Naming      Naming       // zero value = DefaultNaming()
	Uploads     UploadLimits // zero value = unbounded
	Logger      *slog.Logger // nil = discard
}

// Resolver combines the builtin template, the upload store, the override
// directory and the archive behind one lookup contract.
//
// Generic names are tried against the override directory first and then the
// archive. Only a not-found result moves on to the next backend; I/O and
// configuration errors stop resolution.
type Resolver struct {
	files   *FileResolver // nil if no override directory configured
	archive *Archive      // nil if no archive configured
	uploads *UploadStore
	naming  atomic.Pointer[Naming]
	log     *slog.Logger
}

// NewResolver builds a Resolver, indexing the archive if one is configured.
// Returns ErrInvalidBasePath for a bad override directory and
// ErrConfiguration for an archive that cannot be opened.
func NewResolver(opts Options) (*Resolver, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	r := &Resolver{
		uploads: NewUploadStore(opts.Uploads),
		log:     log,
	}
	naming := opts.Naming
	if naming == (Naming{}) {
		naming = DefaultNaming()
	}
	r.naming.Store(&naming)

	if opts.TemplateDir != "" {
		files, err := NewFileResolver(opts.TemplateDir)
		if err != nil {
			return nil, err
		}
		r.files = files
	}

	if opts.ArchivePath != "" {
		archive, err := OpenArchive(opts.ArchivePath)
		if err != nil {
			return nil, err
		}
		r.archive = archive
	}

	log.Info("resource resolver ready",
		slog.String("templates", r.templateDir()),
		slog.String("archive", opts.ArchivePath),
		slog.Int("archive_entries", r.archiveLen()),
		slog.String("prefix", naming.Prefix),
		slog.String("suffix", naming.Suffix),
	)
	return r, nil
}

// outcome tags the result of one attempt in the fallback chain.
type outcome uint8

const (
	found outcome = iota
	notFound
	failed
)

type attempt struct {
	outcome outcome
	source  *Source
	err     error
}

func attemptOf(src *Source, err error) attempt {
	switch {
	case err == nil:
		return attempt{outcome: found, source: src}
	case errors.Is(err, ErrNotFound):
		return attempt{outcome: notFound, err: err}
	default:
		return attempt{outcome: failed, err: err}
	}
}

// Resolve returns the template source for name.
//
// The builtin name always resolves. Upload names are answered by the upload
// store alone. Other names are normalized and tried against the override
// directory, then the archive. With neither configured, Resolve returns
// ErrConfiguration.
func (r *Resolver) Resolve(name string) (*Source, error) {
	if name == BuiltinName {
		return Builtin(), nil
	}
	if IsUploadName(name) {
		u, ok := r.uploads.Get(name + TemplateSuffix)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return u.Source(), nil
	}

	normalized := r.Naming().Normalize(name)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidName)
	}

	// The first miss is reported: an override-directory miss wins over the
	// archive miss that follows it.
	var miss error
	for _, try := range r.templateChain() {
		res := try(normalized)
		switch res.outcome {
		case found:
			return res.source, nil
		case failed:
			return nil, res.err
		}
		if miss == nil {
			miss = res.err
		}
		r.log.Debug("template not found, falling back",
			slog.String("name", name),
			slog.String("normalized", normalized),
			slog.Any("reason", res.err),
		)
	}

	if miss != nil {
		return nil, miss
	}
	return nil, fmt.Errorf("%w: no template directory or archive configured for %q", ErrConfiguration, name)
}

// templateChain lists the configured template backends in precedence order.
func (r *Resolver) templateChain() []func(string) attempt {
	chain := make([]func(string) attempt, 0, 2)
	if r.files != nil {
		chain = append(chain, func(name string) attempt {
			return attemptOf(r.files.Lookup(name))
		})
	}
	if r.archive != nil {
		chain = append(chain, func(name string) attempt {
			entry, ok := r.archive.Lookup(name)
			if !ok {
				return attempt{outcome: notFound, err: fmt.Errorf("%w: %q in archive", ErrNotFound, name)}
			}
			return attempt{outcome: found, source: r.archive.Source(entry)}
		})
	}
	return chain
}

// HasResource reports whether name is the builtin template, registered in the
// upload store (for upload names) or in the archive (for everything else).
// It is true exactly when ResourceBytes can serve name without the override
// directory.
//
// The override directory is not consulted, so a file that Resolve would
// serve from disk is still reported as absent here.
func (r *Resolver) HasResource(name string) bool {
	if name == BuiltinName {
		return true
	}
	if IsUploadName(name) {
		_, ok := r.uploadKey(name)
		return ok
	}
	if r.archive == nil {
		return false
	}
	_, ok := r.archive.Lookup(RawName(name))
	return ok
}

// ResourceBytes returns the raw bytes stored under name. Names are used as
// given apart from separator cleanup; no template prefix or suffix applies.
//
// Returns ErrNotFound when no backend has the resource or the upload is a
// tombstone, ErrIO when the override directory fails, and ErrConfiguration
// when an archive entry cannot be read.
func (r *Resolver) ResourceBytes(name string) ([]byte, error) {
	if name == BuiltinName {
		content, _ := Builtin().Content()
		return []byte(content), nil
	}
	if IsUploadName(name) {
		key, ok := r.uploadKey(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		u, ok := r.uploads.Get(key)
		if !ok || u.Content == nil {
			return nil, fmt.Errorf("%w: %q has no content", ErrNotFound, name)
		}
		return []byte(*u.Content), nil
	}

	raw := RawName(name)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidName)
	}

	if r.files != nil {
		data, err := r.files.ReadRaw(raw)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	if r.archive != nil {
		if entry, ok := r.archive.Lookup(raw); ok {
			data, err := r.archive.Read(entry)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// uploadKey finds the store key for an upload name. Raw access accepts the
// key with or without the template suffix.
func (r *Resolver) uploadKey(name string) (string, bool) {
	if r.uploads.Contains(name) {
		return name, true
	}
	if withSuffix := name + TemplateSuffix; r.uploads.Contains(withSuffix) {
		return withSuffix, true
	}
	return "", false
}

// ListResources returns the archive names accepted by keep. Uploaded and
// override-directory resources are never listed.
func (r *Resolver) ListResources(keep func(string) bool) []string {
	if r.archive == nil {
		return []string{}
	}
	return r.archive.ListNames(keep)
}

// Upload registers content under UploadPrefix + name + TemplateSuffix.
func (r *Resolver) Upload(name, content string) {
	r.uploads.Put(name, &content)
	r.log.Debug("resource uploaded", slog.String("key", UploadKey(name)), slog.Int("bytes", len(content)))
}

// ClearUpload keeps name registered but removes its content.
func (r *Resolver) ClearUpload(name string) {
	r.uploads.Put(name, nil)
	r.log.Debug("resource cleared", slog.String("key", UploadKey(name)))
}

// Configure replaces the template prefix and suffix for every backend.
func (r *Resolver) Configure(prefix, suffix string) {
	r.naming.Store(&Naming{Prefix: prefix, Suffix: suffix})
	r.log.Info("resource naming changed", slog.String("prefix", prefix), slog.String("suffix", suffix))
}

// Naming returns the current prefix and suffix.
func (r *Resolver) Naming() Naming {
	return *r.naming.Load()
}

// Archive returns the archive index, or nil if none is configured.
func (r *Resolver) Archive() *Archive { return r.archive }

// Files returns the override directory resolver, or nil if none is configured.
func (r *Resolver) Files() *FileResolver { return r.files }

// Close releases the archive.
func (r *Resolver) Close() error {
	if r.archive == nil {
		return nil
	}
	return r.archive.Close()
}

func (r *Resolver) templateDir() string {
	if r.files == nil {
		return ""
	}
	return r.files.BasePath()
}

func (r *Resolver) archiveLen() int {
	if r.archive == nil {
		return 0
	}
	return r.archive.Len()
}
