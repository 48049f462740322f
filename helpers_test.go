package ukase

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// writeJar creates a zip archive with the given entries and returns its path.
func writeJar(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bundle.jar")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating jar: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("adding %s: %v", name, err)
		}
		if _, err := io.WriteString(w, content); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing jar: %v", err)
	}
	return path
}
