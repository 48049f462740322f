package main

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// testEnv returns an Environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{Stdout: stdout, Stderr: stderr}, stdout, stderr
}

// writeJar creates a zip archive with the given entries.
func writeJar(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bundle.jar")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(w, content); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// testBundle is the archive most command tests run against.
var testBundle = map[string]string{
	"templates/invoice.hbs":       "Invoice {{number}}",
	"templates/letter.hbs":        "Dear {{name}}",
	"fonts/DejaVuSans.ttf":        "regular",
	"fonts/DejaVuSans-Bold.ttf":   "bold",
	"fonts/DejaVuSans-Italic.ttf": "italic",
	"images/logo.png":             "\x89PNG",
}

// run invokes runMain with "ukase" prepended.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	env, stdout, stderr := testEnv()
	code := runMain(context.Background(), append([]string{"ukase"}, args...), env)
	return code, stdout.String(), stderr.String()
}
