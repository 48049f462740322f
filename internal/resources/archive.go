package resources

import (
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/nlepage/go-tarfs"
)

var (
	zipMagic  = []byte("PK\x03\x04")
	gzipMagic = []byte{0x1f, 0x8b}
)

// Entry describes one regular file inside an archive.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Archive is a read-only index over a packaged bundle of resources.
// It is built once by OpenArchive and is safe for concurrent reads.
type Archive struct {
	path    string
	fsys    fs.FS
	entries map[string]Entry
	closers []io.Closer
}

// OpenArchive indexes every regular file in the archive at path.
// Zip (including jar) and tar archives are supported; tar may be gzip
// compressed. The format is detected from the content, not the extension.
// Returns ErrConfiguration if the archive cannot be opened or parsed.
func OpenArchive(path string) (*Archive, error) {
	f, err := os.Open(path) // #nosec G304 -- archive path comes from deployment config
	if err != nil {
		return nil, fmt.Errorf("%w: opening archive: %v", ErrConfiguration, err)
	}

	a := &Archive{path: path, closers: []io.Closer{f}}
	if err := a.mount(f); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("%w: archive %s: %v", ErrConfiguration, path, err)
	}
	if err := a.index(); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("%w: indexing archive %s: %v", ErrConfiguration, path, err)
	}
	return a, nil
}

// mount picks the fs.FS implementation matching the archive content.
func (a *Archive) mount(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return errors.New("empty file")
	}

	header := make([]byte, len(zipMagic))
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	header = header[:n]
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	switch {
	case bytes.HasPrefix(header, zipMagic):
		zr, err := zip.NewReader(f, info.Size())
		if err != nil {
			return err
		}
		a.fsys = zr
	case bytes.HasPrefix(header, gzipMagic):
		gz, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			return err
		}
		a.closers = append(a.closers, gz)
		if a.fsys, err = tarfs.New(gz); err != nil {
			return err
		}
	default:
		if a.fsys, err = tarfs.New(f); err != nil {
			return err
		}
	}
	return nil
}

func (a *Archive) index() error {
	a.entries = make(map[string]Entry)
	return fs.WalkDir(a.fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		a.entries[name] = Entry{Name: name, Size: info.Size(), ModTime: info.ModTime()}
		return nil
	})
}

// Path returns the archive location on disk.
func (a *Archive) Path() string { return a.path }

// Len returns the number of indexed entries.
func (a *Archive) Len() int { return len(a.entries) }

// Lookup returns the entry registered under name.
func (a *Archive) Lookup(name string) (Entry, bool) {
	e, ok := a.entries[name]
	return e, ok
}

// Open returns a reader over the entry content.
func (a *Archive) Open(e Entry) (io.ReadCloser, error) {
	f, err := a.fsys.Open(e.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: opening entry %q: %v", ErrIO, e.Name, err)
	}
	return f, nil
}

// Read returns the full entry content. Returns ErrIO on read failure.
func (a *Archive) Read(e Entry) ([]byte, error) {
	rc, err := a.Open(e)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: reading entry %q: %v", ErrIO, e.Name, err)
	}
	return data, nil
}

// Source wraps an entry as a lazily read template source.
func (a *Archive) Source(e Entry) *Source {
	return newArchiveSource(e.Name, e.ModTime, func() (io.ReadCloser, error) {
		return a.Open(e)
	})
}

// ListNames returns the names accepted by keep, sorted. A nil keep accepts all.
func (a *Archive) ListNames(keep func(string) bool) []string {
	names := make([]string, 0, len(a.entries))
	for name := range a.entries {
		if keep == nil || keep(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Close releases the underlying file handles.
func (a *Archive) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
