package resources

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileResolver(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewFileResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileResolver() error = %v", err)
		}
		if resolver == nil {
			t.Fatal("NewFileResolver() returned nil")
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFileResolver("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFileResolver(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFileResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFileResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "file.txt", "test")

		_, err := NewFileResolver(filepath.Join(tmpDir, "file.txt"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFileResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFileResolver_Lookup(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "templates/invoice.hbs", "<h1>disk invoice</h1>")
	writeFile(t, tmpDir, "blocker", "a file where a directory is expected")
	if err := os.MkdirAll(filepath.Join(tmpDir, "templates", "folder.hbs"), 0o755); err != nil {
		t.Fatal(err)
	}

	resolver, err := NewFileResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewFileResolver() error = %v", err)
	}

	t.Run("reads existing file", func(t *testing.T) {
		t.Parallel()

		src, err := resolver.Lookup("templates/invoice.hbs")
		if err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
		if src.Kind() != KindFile {
			t.Errorf("Kind() = %v, want file", src.Kind())
		}
		if got := mustContent(t, src); got != "<h1>disk invoice</h1>" {
			t.Errorf("Content() = %q", got)
		}
		if src.LastModified().IsZero() {
			t.Error("LastModified() should come from the file")
		}
	})

	t.Run("missing file is ErrNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.Lookup("templates/missing.hbs")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Lookup() error = %v, want ErrNotFound", err)
		}
		if errors.Is(err, ErrIO) {
			t.Error("a missing file must not be reported as ErrIO")
		}
	})

	t.Run("directory is ErrIO", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.Lookup("templates/folder.hbs")
		if !errors.Is(err, ErrIO) {
			t.Errorf("Lookup() error = %v, want ErrIO", err)
		}
	})

	t.Run("file used as directory is ErrNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.Lookup("blocker/nested.hbs")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Lookup() error = %v, want ErrNotFound", err)
		}
		if _, err := resolver.ReadRaw("blocker/nested.hbs"); !errors.Is(err, ErrNotFound) {
			t.Errorf("ReadRaw() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("traversal is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.Lookup("../outside.hbs")
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("Lookup() error = %v, want ErrPathTraversal", err)
		}
	})

	t.Run("null byte is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.Lookup("templates/a\x00.hbs")
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("Lookup() error = %v, want ErrInvalidName", err)
		}
	})
}

func TestFileResolver_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	writeFile(t, outside, "secret.hbs", "secret")

	base := t.TempDir()
	if err := os.Symlink(filepath.Join(outside, "secret.hbs"), filepath.Join(base, "link.hbs")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	resolver, err := NewFileResolver(base)
	if err != nil {
		t.Fatalf("NewFileResolver() error = %v", err)
	}

	_, err = resolver.Lookup("link.hbs")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("Lookup() error = %v, want ErrPathTraversal", err)
	}
}

func TestFileResolver_ReadRaw(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "images/logo.png", "\x89PNG")

	resolver, err := NewFileResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewFileResolver() error = %v", err)
	}

	data, err := resolver.ReadRaw("images/logo.png")
	if err != nil {
		t.Fatalf("ReadRaw() error = %v", err)
	}
	if string(data) != "\x89PNG" {
		t.Errorf("ReadRaw() = %q", data)
	}

	if _, err := resolver.ReadRaw("images/missing.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadRaw(missing) error = %v, want ErrNotFound", err)
	}
}

func TestFileResolver_RereadsOnEveryLookup(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.hbs", "first")

	resolver, err := NewFileResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewFileResolver() error = %v", err)
	}

	src, err := resolver.Lookup("a.hbs")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got := mustContent(t, src); got != "first" {
		t.Fatalf("Content() = %q, want first", got)
	}

	writeFile(t, tmpDir, "a.hbs", "second")
	src, err = resolver.Lookup("a.hbs")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got := mustContent(t, src); got != "second" {
		t.Errorf("Content() = %q, want second", got)
	}
}
