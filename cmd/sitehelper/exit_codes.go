package main

import (
	"errors"
	"os"

	sitehelper "github.com/literallytheone/site-helper"
	"github.com/literallytheone/site-helper/internal/config"
	"github.com/literallytheone/site-helper/internal/fileutil"
)

// Exit codes for the sitehelper CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All files processed
	ExitGeneral = 1 // Unexpected error or some files failed
	ExitUsage   = 2 // Invalid flags, config, or QR options
	ExitIO      = 3 // Missing directory or file, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Per-file failures were already reported one by one (exit 1)
	if errors.Is(err, ErrFilesFailed) {
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, sitehelper.ErrEmptyContent) ||
		errors.Is(err, sitehelper.ErrInvalidBoxSize) ||
		errors.Is(err, sitehelper.ErrInvalidBorder) ||
		errors.Is(err, sitehelper.ErrInvalidDrawer) ||
		errors.Is(err, sitehelper.ErrInvalidColorMask) ||
		errors.Is(err, sitehelper.ErrUnsupportedImageFormat) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, sitehelper.ErrReadFile) ||
		errors.Is(err, sitehelper.ErrWriteFile) ||
		errors.Is(err, sitehelper.ErrLogoNotFound) ||
		errors.Is(err, sitehelper.ErrLogoDecode) ||
		errors.Is(err, fileutil.ErrNotDirectory) {
		return ExitIO
	}

	return ExitGeneral
}
