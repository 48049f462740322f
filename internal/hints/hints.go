// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/esvolkov/ukase/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/ukase/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/ukase") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoBackend returns hints when neither an override directory nor an
// archive is configured.
func ForNoBackend() string {
	return format("set --templates or --archive (or UKASE_TEMPLATES / UKASE_ARCHIVE)")
}

// ForTemplateDir returns hints for an unusable override directory.
func ForTemplateDir() string {
	return format("--templates must be an existing directory; templates live under its prefix subdirectory")
}

// ForArchive returns hints for an archive that cannot be opened.
func ForArchive(path string) string {
	if path != "" && !fileutil.FileExists(path) {
		return format("archive " + path + " does not exist")
	}
	if !fileutil.IsArchive(path) {
		return formatHints([]string{
			"supported formats: zip, jar, tar, tar.gz",
			"the format is detected from content, check the file is not truncated",
		})
	}
	return format("supported formats: zip, jar, tar, tar.gz")
}

// ForNotFound returns hints for a template that no backend holds.
// The hint shows where the name was looked up.
func ForNotFound(name, prefix, suffix string) string {
	if strings.HasPrefix(name, "upload://") {
		return format("upload:// names are served only after an upload (PUT /uploads/<name>)")
	}
	where := strings.Trim(prefix, "/")
	if where == "" {
		where = "<root>"
	}
	return format("generic names are looked up as " + where + "/<name>" + suffix + "; see --prefix and --suffix")
}

// ForListen returns hints for a server that cannot bind its address.
func ForListen(addr string) string {
	hints := []string{"check that " + addr + " is free or set --addr"}
	if IsInContainer() && strings.HasPrefix(addr, "127.0.0.1") {
		hints = append(hints, "inside a container bind to 0.0.0.0 to publish the port")
	}
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
