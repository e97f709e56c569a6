// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForMissingDir returns a hint when a content or slides root does not exist.
// The default roots are relative to the site repository, so the usual cause
// is running from another directory.
func ForMissingDir(dir string) string {
	if filepath.IsAbs(dir) {
		return format("check the directory exists or pass another one as argument")
	}
	return format("run from the repository root or pass the directory as argument")
}

// ForConfigNotFound suggests the --config flag and the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/site-helper/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForLogoNotFound returns hints for a missing QR code logo.
func ForLogoNotFound() string {
	return format("use --logo to point at a PNG or JPEG, or --no-logo")
}

// ForImageFormat lists the supported QR output formats.
func ForImageFormat() string {
	return format("supported output extensions: .png, .jpg, .jpeg")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
