package sitehelper

import (
	"fmt"
	"os"
)

// Result is the outcome of rewriting one file.
type Result struct {
	Path    string
	Changed bool   // content differs from what was read
	Written bool   // file was overwritten
	Count   int    // substitutions made
	Detail  string // optional extra information for reports
	Err     error
}

// Transform rewrites a whole document and reports how many substitutions it made.
type Transform func(content string) (string, int)

// FrontmatterTransform returns a Transform running the given rewriter.
// If stats is non-nil it receives the statistics of the last rewrite.
func FrontmatterTransform(r FrontmatterRewriter, stats *FrontmatterStats) Transform {
	return func(content string) (string, int) {
		out, s := r.RewriteText(content)
		if stats != nil {
			*stats = s
		}
		return out, s.Markers + s.Assignments
	}
}

// SlideTransform returns a Transform replacing token with the absolute prefix.
func SlideTransform(token, prefix string) Transform {
	return func(content string) (string, int) {
		return RewriteSlideToken(content, token, prefix)
	}
}

// RewriteFile reads path, applies transform and overwrites the file with the
// complete result, keeping its permission bits. Unchanged content is not
// written back. With dryRun the file is only read.
func RewriteFile(path string, transform Transform, dryRun bool) (Result, error) {
	result := Result{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from a directory walk
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	original := string(data)
	updated, count := transform(original)
	result.Count = count
	result.Changed = updated != original

	if !result.Changed || dryRun {
		return result, nil
	}

	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return result, fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	result.Written = true

	return result, nil
}
