package main

import (
	"context"
	"errors"
	"fmt"

	sitehelper "github.com/literallytheone/site-helper"
	"github.com/literallytheone/site-helper/internal/report"
)

// runFrontmatter converts the frontmatter of every Markdown file under the
// content root.
func runFrontmatter(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseFrontmatterFlags(args, env.Stdout)
	if err != nil {
		if isHelp(err) {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return err
	}

	root, err := rootArg(positional, cfg.Content.Dir)
	if err != nil {
		return err
	}

	paths, err := discoverFiles(root, ".md")
	if err != nil {
		return err
	}

	rep := report.New("frontmatter", root, f.dryRun)
	runErr := processFiles(ctx, rep, paths, func(path string) report.Entry {
		return convertFrontmatterFile(env, path, f.dryRun, f.verify)
	})
	return finishRun(env, rep, f.common, runErr)
}

// convertFrontmatterFile rewrites one Markdown file and, with verify, checks
// that the converted document still parses.
func convertFrontmatterFile(env *Environment, path string, dryRun, verify bool) report.Entry {
	start := env.Now()

	var stats sitehelper.FrontmatterStats
	var converted string
	convert := sitehelper.FrontmatterTransform(sitehelper.FrontmatterRewriter{}, &stats)

	res, err := sitehelper.RewriteFile(path, func(content string) (string, int) {
		out, n := convert(content)
		converted = out
		return out, n
	}, dryRun)

	entry := entryFor(res, err, dryRun)
	entry.Duration = env.Now().Sub(start)
	if err != nil {
		return entry
	}

	entry.Detail = fmt.Sprintf("scan %s, %d markers, %d assignments", stats.State, stats.Markers, stats.Assignments)
	if stats.State == sitehelper.StateInside {
		entry.Detail += ", closing marker missing"
	}

	if verify {
		fields, err := sitehelper.VerifyFrontmatter(converted)
		switch {
		case errors.Is(err, sitehelper.ErrNoFrontmatter):
			entry.Detail += ", no frontmatter"
		case err != nil:
			entry.Status = report.StatusFailed
			entry.Error = err.Error()
		default:
			entry.Detail += fmt.Sprintf(", %d fields verified", len(fields))
		}
	}

	return entry
}
