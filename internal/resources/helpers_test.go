package resources

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

var testModTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// sortedKeys returns map keys in a stable order so archives are reproducible.
func sortedKeys(files map[string]string) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeZip creates a zip archive under dir and returns its path.
// Names ending in "/" become directory entries.
func writeZip(t *testing.T, dir, name string, files map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating zip: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, entry := range sortedKeys(files) {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: entry, Method: zip.Deflate, Modified: testModTime})
		if err != nil {
			t.Fatalf("adding %s: %v", entry, err)
		}
		if _, err := io.WriteString(w, files[entry]); err != nil {
			t.Fatalf("writing %s: %v", entry, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return path
}

// writeTar creates a tar archive under dir, gzip compressed if compress is set.
func writeTar(t *testing.T, dir, name string, files map[string]string, compress bool) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating tar: %v", err)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(f)
		w = gz
	}

	tw := tar.NewWriter(w)
	for _, entry := range sortedKeys(files) {
		hdr := &tar.Header{
			Name:     entry,
			Mode:     0o644,
			Size:     int64(len(files[entry])),
			ModTime:  testModTime,
			Typeflag: tar.TypeReg,
		}
		if entry[len(entry)-1] == '/' {
			hdr.Typeflag = tar.TypeDir
			hdr.Mode = 0o755
			hdr.Size = 0
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("adding %s: %v", entry, err)
		}
		if hdr.Typeflag == tar.TypeReg {
			if _, err := io.WriteString(tw, files[entry]); err != nil {
				t.Fatalf("writing %s: %v", entry, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("closing tar: %v", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			t.Fatalf("closing gzip: %v", err)
		}
	}
	return path
}

// writeFile creates a file (and parent directories) under dir.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating parent of %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// mustContent returns the source content or fails the test.
func mustContent(t *testing.T, src *Source) string {
	t.Helper()

	got, err := src.Content()
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	return got
}
