package ukase

import (
	"errors"
	"time"

	"github.com/esvolkov/ukase/internal/resources"
)

// Reserved names.
const (
	// BuiltinTemplate always resolves to the embedded image-as-page template.
	BuiltinTemplate = resources.BuiltinName

	// UploadPrefix marks names served from runtime uploads.
	UploadPrefix = resources.UploadPrefix

	// TemplateSuffix is appended to uploaded template keys and is the
	// default template suffix.
	TemplateSuffix = resources.TemplateSuffix

	// DefaultPrefix is the default template directory inside a backend.
	DefaultPrefix = resources.DefaultPrefix
)

// Kind identifies the backend a template was resolved from.
type Kind string

// Template source kinds.
const (
	KindArchive  Kind = "archive"
	KindBuiltin  Kind = "builtin"
	KindUploaded Kind = "uploaded"
	KindFile     Kind = "file"
)

// TemplateSource is a resolved template as consumed by a templating engine.
type TemplateSource interface {
	// Content returns the template text. For archive templates the entry is
	// read on each call and may fail with ErrIO.
	Content() (string, error)
	// Filename returns the name the template was registered under.
	Filename() string
	// LastModified returns the modification or upload time.
	LastModified() time.Time
	// Kind returns the backend that served the template.
	Kind() Kind
	// Cleared reports whether an uploaded template was cleared.
	Cleared() bool
}

// ResourceLoader resolves templates and static resources by logical name.
//
// Resolution order for generic names is: override directory, then archive.
// The builtin template and uploaded resources are matched by name first.
// Implementations are safe for concurrent use.
type ResourceLoader interface {
	// Resolve returns the template for name.
	// Returns ErrNotFound if no backend has it, ErrIO if the override
	// directory fails, and ErrConfiguration if no backend is configured.
	Resolve(name string) (TemplateSource, error)

	// HasResource reports whether name is the builtin template, an uploaded
	// key or an archive entry. The override directory is not consulted.
	HasResource(name string) bool

	// ResourceBytes returns the raw bytes of a resource, without template
	// prefix or suffix. Returns ErrNotFound for absent or cleared resources.
	ResourceBytes(name string) ([]byte, error)

	// ListResources returns archive entry names accepted by keep.
	ListResources(keep func(name string) bool) []string

	// Upload registers content under UploadPrefix + name + TemplateSuffix.
	Upload(name, content string)

	// ClearUpload keeps the upload key registered with no content.
	ClearUpload(name string)

	// Configure sets the template prefix and suffix for every backend.
	Configure(prefix, suffix string)

	// Close releases the archive.
	Close() error
}

// NewResourceLoader creates a ResourceLoader from options.
// With no options only the builtin template and uploads are available.
//
// Returns ErrInvalidPath if the template directory is not a readable
// directory, and ErrConfiguration if the archive cannot be opened.
func NewResourceLoader(opts ...Option) (ResourceLoader, error) {
	var cfg loaderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	resolver, err := resources.NewResolver(resources.Options{
		TemplateDir: cfg.templateDir,
		ArchivePath: cfg.archivePath,
		Uploads: resources.UploadLimits{
			MaxEntries: cfg.maxUploads,
			TTL:        cfg.uploadTTL,
		},
		Logger: cfg.logger,
	})
	if err != nil {
		return nil, convertResourceError(err)
	}
	if cfg.naming {
		resolver.Configure(cfg.prefix, cfg.suffix)
	}
	return &resourceLoaderAdapter{resolver: resolver}, nil
}

// resourceLoaderAdapter wraps the internal Resolver to return public types.
type resourceLoaderAdapter struct {
	resolver *resources.Resolver
}

func (a *resourceLoaderAdapter) Resolve(name string) (TemplateSource, error) {
	src, err := a.resolver.Resolve(name)
	if err != nil {
		return nil, convertResourceError(err)
	}
	return &templateSourceAdapter{src: src}, nil
}

func (a *resourceLoaderAdapter) HasResource(name string) bool {
	return a.resolver.HasResource(name)
}

func (a *resourceLoaderAdapter) ResourceBytes(name string) ([]byte, error) {
	data, err := a.resolver.ResourceBytes(name)
	if err != nil {
		return nil, convertResourceError(err)
	}
	return data, nil
}

func (a *resourceLoaderAdapter) ListResources(keep func(name string) bool) []string {
	return a.resolver.ListResources(keep)
}

func (a *resourceLoaderAdapter) Upload(name, content string) {
	a.resolver.Upload(name, content)
}

func (a *resourceLoaderAdapter) ClearUpload(name string) {
	a.resolver.ClearUpload(name)
}

func (a *resourceLoaderAdapter) Configure(prefix, suffix string) {
	a.resolver.Configure(prefix, suffix)
}

func (a *resourceLoaderAdapter) Close() error {
	return a.resolver.Close()
}

type templateSourceAdapter struct {
	src *resources.Source
}

func (t *templateSourceAdapter) Content() (string, error) {
	content, err := t.src.Content()
	if err != nil {
		return "", convertResourceError(err)
	}
	return content, nil
}

func (t *templateSourceAdapter) Filename() string        { return t.src.Filename() }
func (t *templateSourceAdapter) LastModified() time.Time { return t.src.LastModified() }
func (t *templateSourceAdapter) Cleared() bool           { return t.src.Cleared() }
func (t *templateSourceAdapter) Kind() Kind              { return Kind(t.src.Kind().String()) }

// convertResourceError maps internal resource errors to public errors.
// Order matters: configuration wraps I/O for archive read failures.
func convertResourceError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, resources.ErrConfiguration):
		return wrapError(ErrConfiguration, err)
	case errors.Is(err, resources.ErrNotFound):
		return wrapError(ErrNotFound, err)
	case errors.Is(err, resources.ErrIO):
		return wrapError(ErrIO, err)
	case errors.Is(err, resources.ErrInvalidBasePath),
		errors.Is(err, resources.ErrPathTraversal),
		errors.Is(err, resources.ErrInvalidName):
		return wrapError(ErrInvalidPath, err)
	default:
		return err
	}
}

// wrapError creates an error that keeps the original message and matches the
// public sentinel with errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedResourceError{sentinel: sentinel, original: original}
}

type wrappedResourceError struct {
	sentinel error
	original error
}

func (e *wrappedResourceError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is matching.
// Internal errors are not exposed since they live in internal/ packages.
func (e *wrappedResourceError) Unwrap() error {
	return e.sentinel
}
