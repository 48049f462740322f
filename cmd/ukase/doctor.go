package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/esvolkov/ukase"
	"github.com/esvolkov/ukase/internal/config"
	"github.com/esvolkov/ukase/internal/fileutil"
	"github.com/esvolkov/ukase/internal/logging"
	"github.com/esvolkov/ukase/internal/yamlutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Config    configInfo    `json:"config"`
	Resources resourcesInfo `json:"resources"`
	Env       envInfo       `json:"environment"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// configInfo holds the effective configuration.
type configInfo struct {
	Source    string `json:"source"` // file path or "defaults"
	Effective string `json:"effective"`
}

// resourcesInfo holds backend checks.
type resourcesInfo struct {
	Builtin        bool   `json:"builtin"`
	Templates      string `json:"templates,omitempty"`
	TemplatesOK    bool   `json:"templates_ok"`
	Archive        string `json:"archive,omitempty"`
	ArchiveOK      bool   `json:"archive_ok"`
	ArchiveEntries int    `json:"archive_entries"`
	Fonts          int    `json:"fonts"`
	DefaultFont    string `json:"default_font,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	GoMaxProcs    int    `json:"gomaxprocs"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	var f commonFlags
	var jsonOutput bool
	fs := newFlagSet("doctor", env.Stderr, printDoctorUsage)
	addCommonFlags(fs, &f)
	fs.BoolVar(&jsonOutput, "json", false, "print as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	result := runDoctor(&f, fs, env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(f *commonFlags, fs *flag.FlagSet, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			GoMaxProcs: runtime.GOMAXPROCS(0),
		},
	}
	result.Env.Container, result.Env.ContainerHint = isContainer()

	cfg, err := loadSettings(f, fs, env)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Config: %v", err))
	} else {
		checkConfig(result, f, cfg)
		checkResources(result, cfg)
	}

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkConfig records where settings came from and the merged result.
func checkConfig(result *doctorResult, f *commonFlags, cfg *config.Config) {
	result.Config.Source = "defaults"
	if f.config != "" {
		result.Config.Source = f.config
	} else if p := os.Getenv("UKASE_CONFIG"); p != "" {
		result.Config.Source = p
	}
	if data, err := yamlutil.Marshal(cfg); err == nil {
		result.Config.Effective = string(data)
	}
}

// checkResources opens each configured backend.
func checkResources(result *doctorResult, cfg *config.Config) {
	r := &result.Resources
	r.Templates = cfg.Resources.Templates
	r.Archive = cfg.Resources.Archive

	if r.Templates != "" {
		r.TemplatesOK = fileutil.DirExists(r.Templates)
		if !r.TemplatesOK {
			result.Errors = append(result.Errors, fmt.Sprintf("Template directory not found: %s", r.Templates))
		}
	}
	if r.Templates == "" && r.Archive == "" {
		result.Warnings = append(result.Warnings,
			"No template directory or archive configured; only the builtin template and uploads resolve")
	}

	opts := []ukase.Option{ukase.WithArchive(r.Archive), ukase.WithLogger(logging.Discard())}
	loader, err := ukase.NewResourceLoader(opts...)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Archive: %v", err))
		return
	}
	defer loader.Close()

	if src, err := loader.Resolve(ukase.BuiltinTemplate); err == nil {
		content, _ := src.Content()
		r.Builtin = content != ""
	}
	if !r.Builtin {
		result.Errors = append(result.Errors, "Builtin template is missing")
	}

	if r.Archive == "" {
		return
	}
	r.ArchiveOK = true
	r.ArchiveEntries = len(loader.ListResources(nil))
	r.Fonts = len(ukase.FontNames(loader))
	r.DefaultFont = ukase.DefaultFont(loader)
	if r.ArchiveEntries == 0 {
		result.Warnings = append(result.Warnings, "Archive has no entries")
	}
	if r.Fonts > 0 && r.DefaultFont == "" {
		result.Warnings = append(result.Warnings, "Archive fonts are all bold or italic; no default font")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "ukase doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Resources")
	if r.Resources.Builtin {
		fmt.Fprintln(w, "  [OK] Builtin template: embedded")
	}
	if r.Resources.Templates != "" {
		if r.Resources.TemplatesOK {
			fmt.Fprintf(w, "  [OK] Template directory: %s\n", r.Resources.Templates)
		} else {
			fmt.Fprintf(w, "  [ERROR] Template directory: %s\n", r.Resources.Templates)
		}
	}
	if r.Resources.ArchiveOK {
		fmt.Fprintf(w, "  [OK] Archive: %s (%d entries, %d fonts)\n",
			r.Resources.Archive, r.Resources.ArchiveEntries, r.Resources.Fonts)
		if r.Resources.DefaultFont != "" {
			fmt.Fprintf(w, "  [OK] Default font: %s\n", r.Resources.DefaultFont)
		}
	} else if r.Resources.Archive != "" {
		fmt.Fprintf(w, "  [ERROR] Archive: %s\n", r.Resources.Archive)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s (GOMAXPROCS=%d)\n", r.Env.OS, r.Env.Arch, r.Env.GoMaxProcs)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Config.Source != "" {
		fmt.Fprintf(w, "  [OK] Config: %s\n", r.Config.Source)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to serve")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
