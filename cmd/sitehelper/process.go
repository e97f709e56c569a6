package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	sitehelper "github.com/literallytheone/site-helper"
	"github.com/literallytheone/site-helper/internal/fileutil"
	"github.com/literallytheone/site-helper/internal/hints"
	"github.com/literallytheone/site-helper/internal/report"
)

// fileFunc processes one discovered file into a report entry.
type fileFunc func(path string) report.Entry

// discoverFiles lists files under root with ext, adding a hint when root
// is missing.
func discoverFiles(root, ext string) ([]string, error) {
	paths, err := fileutil.Discover(root, ext)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, fileutil.ErrNotDirectory) {
			return nil, fmt.Errorf("%w%s", err, hints.ForMissingDir(root))
		}
		return nil, err
	}
	return paths, nil
}

// processFiles runs fn on each path in order. Cancellation is only
// observed between files, so a file is never left half written.
func processFiles(ctx context.Context, rep *report.Report, paths []string, fn fileFunc) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rep.Add(fn(path))
	}
	return nil
}

// entryFor converts a rewrite result into a report entry.
func entryFor(res sitehelper.Result, err error, dryRun bool) report.Entry {
	entry := report.Entry{Path: res.Path, Count: res.Count, Status: report.StatusUnchanged}

	switch {
	case err != nil:
		entry.Status = report.StatusFailed
		entry.Error = err.Error()
	case res.Changed && dryRun:
		entry.Status = report.StatusWouldChange
	case res.Changed:
		entry.Status = report.StatusChanged
	}
	return entry
}

// writeReport prints the report in the requested format and returns
// ErrFilesFailed if any entry failed.
func writeReport(env *Environment, rep *report.Report, f commonFlags) error {
	failed := 0
	if f.format == formatJSON {
		if err := report.WriteJSON(env.Stdout, rep); err != nil {
			return err
		}
		failed = rep.Summary().Failed
	} else {
		failed = report.WriteText(env.Stdout, env.Stderr, rep, report.TextOptions{
			Quiet:   f.quiet,
			Verbose: f.verbose,
		})
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(rep.Entries))
	}
	return nil
}

// finishRun writes the report, then reports an interruption if the run
// stopped early.
func finishRun(env *Environment, rep *report.Report, f commonFlags, runErr error) error {
	reportErr := writeReport(env, rep, f)
	if runErr != nil {
		return fmt.Errorf("interrupted after %d files: %w", len(rep.Entries), runErr)
	}
	return reportErr
}

// isHelp reports whether err is the flag parser's help request.
func isHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
