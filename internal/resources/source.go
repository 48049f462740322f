package resources

import (
	"fmt"
	"io"
	"time"
)

// Kind identifies which backend produced a Source.
type Kind uint8

// Source kinds. The zero value is invalid.
const (
	KindArchive Kind = iota + 1
	KindBuiltin
	KindUploaded
	KindFile
)

// String returns the lower-case kind name used in logs and headers.
func (k Kind) String() string {
	switch k {
	case KindArchive:
		return "archive"
	case KindBuiltin:
		return "builtin"
	case KindUploaded:
		return "uploaded"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// TemplateSource is what a templating engine needs from a resolved template.
type TemplateSource interface {
	Content() (string, error)
	Filename() string
	LastModified() time.Time
}

// Source is the single TemplateSource implementation. Its behavior is chosen
// by the Kind tag set at construction.
//
// Builtin, uploaded and file sources hold their content in memory. Archive
// sources read their entry on every Content call. An uploaded source with nil
// content is a tombstone: Content returns "" and Cleared reports true.
type Source struct {
	kind     Kind
	filename string
	modified time.Time
	content  *string
	open     func() (io.ReadCloser, error)
}

func newTextSource(kind Kind, filename string, content *string, modified time.Time) *Source {
	return &Source{kind: kind, filename: filename, content: content, modified: modified}
}

func newArchiveSource(filename string, modified time.Time, open func() (io.ReadCloser, error)) *Source {
	return &Source{kind: KindArchive, filename: filename, modified: modified, open: open}
}

// Kind returns the backend that produced the source.
func (s *Source) Kind() Kind { return s.kind }

// Filename returns the name the source was registered under.
func (s *Source) Filename() string { return s.filename }

// LastModified returns the entry modification time, or the upload time for
// uploaded sources.
func (s *Source) LastModified() time.Time { return s.modified }

// Cleared reports whether the source is an upload tombstone.
func (s *Source) Cleared() bool {
	return s.kind == KindUploaded && s.content == nil
}

// Content returns the template text. Archive reads that fail return ErrIO.
func (s *Source) Content() (string, error) {
	if s.kind != KindArchive {
		if s.content == nil {
			return "", nil
		}
		return *s.content, nil
	}

	rc, err := s.open()
	if err != nil {
		return "", fmt.Errorf("%w: opening %q: %v", ErrIO, s.filename, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: reading %q: %v", ErrIO, s.filename, err)
	}
	return string(data), nil
}

// Compile-time interface check.
var _ TemplateSource = (*Source)(nil)
