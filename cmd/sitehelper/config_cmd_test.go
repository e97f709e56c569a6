package main

// Notes:
// - runConfig: we test that defaults and file values are printed as YAML
//   and that parse errors map to usage errors.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/literallytheone/site-helper/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunConfig - Effective configuration
// ---------------------------------------------------------------------------

func TestRunConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if err := runConfig(nil, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"content:", "dir: site/content", "slides:", "qrcode:", "drawer: horizontal-bars"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("output should contain %q, got %q", want, stdout.String())
			}
		}
	})

	t.Run("file overrides", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		writeFile(t, path, "qrcode:\n  boxSize: 12\n")

		env, stdout, _ := testEnv()
		if err := runConfig([]string{"--config", path}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "boxSize: 12") {
			t.Errorf("output should contain the file value, got %q", stdout.String())
		}
		if !strings.Contains(stdout.String(), "dir: site/content") {
			t.Errorf("omitted values should keep defaults, got %q", stdout.String())
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		writeFile(t, path, "qrcode:\n  colour: red\n")

		env, _, _ := testEnv()
		err := runConfig([]string{"-c", path}, env)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Fatalf("error = %v, want ErrConfigParse", err)
		}
		if exitCodeFor(err) != ExitUsage {
			t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
		}
	})
}
