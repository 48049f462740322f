package resources

import (
	"errors"
	"io"
	"testing"
	"time"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindArchive, "archive"},
		{KindBuiltin, "builtin"},
		{KindUploaded, "uploaded"},
		{KindFile, "file"},
		{Kind(0), "kind(0)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestSource_Cleared(t *testing.T) {
	t.Parallel()

	content := "x"
	now := time.Now()

	if !newTextSource(KindUploaded, "a", nil, now).Cleared() {
		t.Error("uploaded source with nil content should be cleared")
	}
	if newTextSource(KindUploaded, "a", &content, now).Cleared() {
		t.Error("uploaded source with content should not be cleared")
	}

	empty := ""
	src := newTextSource(KindUploaded, "a", &empty, now)
	if src.Cleared() {
		t.Error("empty content is not a tombstone")
	}
}

func TestSource_ArchiveContentError(t *testing.T) {
	t.Parallel()

	broken := errors.New("handle closed")
	src := newArchiveSource("templates/a.hbs", testModTime, func() (io.ReadCloser, error) {
		return nil, broken
	})

	_, err := src.Content()
	if !errors.Is(err, ErrIO) {
		t.Errorf("Content() error = %v, want ErrIO", err)
	}
	if src.Kind() != KindArchive {
		t.Errorf("Kind() = %v, want archive", src.Kind())
	}
	if !src.LastModified().Equal(testModTime) {
		t.Errorf("LastModified() = %v, want %v", src.LastModified(), testModTime)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("corrupt entry") }
func (failingReader) Close() error             { return nil }

func TestSource_ArchiveReadError(t *testing.T) {
	t.Parallel()

	src := newArchiveSource("templates/a.hbs", testModTime, func() (io.ReadCloser, error) {
		return failingReader{}, nil
	})

	if _, err := src.Content(); !errors.Is(err, ErrIO) {
		t.Errorf("Content() error = %v, want ErrIO", err)
	}
}
