// Package fileutil provides file and path predicates shared by the CLI,
// the config loader and the doctor checks.
package fileutil

import (
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "ukase" -> false (config name)
//   - "./ukase.yaml" -> true (relative path)
//   - "/etc/ukase/prod.yaml" -> true (absolute)
//   - "C:\ukase\prod.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsArchive reports whether name has an extension OpenArchive can mount.
func IsArchive(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range []string{".zip", ".jar", ".tar", ".tar.gz", ".tgz"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
