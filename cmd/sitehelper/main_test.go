package main

// Notes:
// - run: we test command routing and the errors for missing or unknown
//   commands. Command behavior is covered in each command's test file.
// - loadConfig: we test the default fallback and hints for missing names.
// - rootArg: we test the optional directory argument.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/literallytheone/site-helper/internal/config"
)

// ---------------------------------------------------------------------------
// TestRun - Command dispatch
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantErr    error
		wantStdout string
		wantStderr string
	}{
		{"no command", nil, ErrNoCommand, "", "Usage: sitehelper"},
		{"unknown command", []string{"convert"}, ErrUnknownCommand, "", "Usage: sitehelper"},
		{"version", []string{"version"}, nil, "sitehelper dev", ""},
		{"version flag", []string{"--version"}, nil, "sitehelper dev", ""},
		{"help", []string{"help"}, nil, "Commands:", ""},
		{"help flag", []string{"--help"}, nil, "Commands:", ""},
		{"help command", []string{"help", "slides"}, nil, "sitehelper slides", ""},
		{"command help flag", []string{"frontmatter", "--help"}, nil, "sitehelper frontmatter", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			err := run(context.Background(), tt.args, env)

			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Config selection
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Content.Dir != config.DefaultContentDir {
			t.Errorf("Content.Dir = %q, want %q", cfg.Content.Dir, config.DefaultContentDir)
		}
	})

	t.Run("path loads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		writeFile(t, path, "content:\n  dir: docs\n")

		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Content.Dir != "docs" {
			t.Errorf("Content.Dir = %q, want %q", cfg.Content.Dir, "docs")
		}
	})

	t.Run("missing name adds hint", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfig("no-such-config-name-for-tests")
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error should contain a hint, got %q", err.Error())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRootArg - Optional directory argument
// ---------------------------------------------------------------------------

func TestRootArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{"no argument uses default", nil, "site/content", nil},
		{"one argument", []string{"docs"}, "docs", nil},
		{"two arguments", []string{"a", "b"}, "", ErrTooManyArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := rootArg(tt.args, "site/content")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("rootArg() = %q, want %q", got, tt.want)
			}
		})
	}
}
