package main

// Notes:
// - doctor never fails on warnings; only errors produce ExitGeneral.
// - Container detection depends on the host, so it is not asserted.

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunDoctor - Diagnostics
// ---------------------------------------------------------------------------

func TestRunDoctor(t *testing.T) {
	t.Parallel()

	t.Run("no backend warns", func(t *testing.T) {
		t.Parallel()

		code, stdout, _ := run(t, "doctor")
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		for _, want := range []string{"[OK] Builtin template: embedded", "[WARN] No template directory", "Status: Ready with warnings"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("stdout missing %q:\n%s", want, stdout)
			}
		}
	})

	t.Run("archive ready", func(t *testing.T) {
		t.Parallel()

		jar := writeJar(t, testBundle)
		code, stdout, _ := run(t, "doctor", "-a", jar, "--json")
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		var res doctorResult
		if err := json.Unmarshal([]byte(stdout), &res); err != nil {
			t.Fatalf("stdout is not JSON: %v", err)
		}
		if res.Status != "ready" {
			t.Errorf("Status = %q, want ready (warnings %v, errors %v)", res.Status, res.Warnings, res.Errors)
		}
		if res.Resources.ArchiveEntries != len(testBundle) || res.Resources.Fonts != 3 {
			t.Errorf("entries/fonts = %d/%d", res.Resources.ArchiveEntries, res.Resources.Fonts)
		}
		if res.Resources.DefaultFont != "fonts/DejaVuSans.ttf" {
			t.Errorf("DefaultFont = %q", res.Resources.DefaultFont)
		}
		if !strings.Contains(res.Config.Effective, "archive: "+jar) {
			t.Errorf("Effective config = %q, want archive path", res.Config.Effective)
		}
	})

	t.Run("missing archive errors", func(t *testing.T) {
		t.Parallel()

		code, stdout, _ := run(t, "doctor", "-a", filepath.Join(t.TempDir(), "gone.jar"))
		if code != ExitGeneral {
			t.Fatalf("exit code = %d, want %d", code, ExitGeneral)
		}
		if !strings.Contains(stdout, "Status: Not ready") {
			t.Errorf("stdout = %q, want not ready", stdout)
		}
	})

	t.Run("missing template dir errors", func(t *testing.T) {
		t.Parallel()

		code, stdout, _ := run(t, "doctor", "-t", filepath.Join(t.TempDir(), "nope"))
		if code != ExitGeneral {
			t.Errorf("exit code = %d, want %d", code, ExitGeneral)
		}
		if !strings.Contains(stdout, "[ERROR] Template directory") {
			t.Errorf("stdout = %q, want template dir error", stdout)
		}
	})

	t.Run("bad flag", func(t *testing.T) {
		t.Parallel()

		code, _, _ := run(t, "doctor", "--bogus")
		if code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})
}
