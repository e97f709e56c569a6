package main

import (
	"context"
	"fmt"
	"strings"

	sitehelper "github.com/literallytheone/site-helper"
	"github.com/literallytheone/site-helper/internal/htmlref"
	"github.com/literallytheone/site-helper/internal/report"
)

// maxListedRefs caps the references named in a verbose detail line.
const maxListedRefs = 3

// runSlides rewrites the relative prefix of every slide deck under the
// slides root to the deck's absolute course path.
func runSlides(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseSlidesFlags(args, env.Stdout)
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

	root, err := rootArg(positional, cfg.Slides.Dir)
	if err != nil {
		return err
	}
	token := cfg.Slides.Token
	if f.token != "" {
		token = f.token
	}

	paths, err := discoverFiles(root, ".html")
	if err != nil {
		return err
	}

	rep := report.New("slides", root, f.dryRun)
	runErr := processFiles(ctx, rep, paths, func(path string) report.Entry {
		return rewriteSlideFile(env, root, path, token, f.dryRun)
	})
	return finishRun(env, rep, f.common, runErr)
}

// rewriteSlideFile rewrites one deck found under root.
func rewriteSlideFile(env *Environment, root, path, token string, dryRun bool) report.Entry {
	start := env.Now()

	prefix, err := sitehelper.SlidePrefixUnder(root, path)
	if err != nil {
		entry := entryFor(sitehelper.Result{Path: path}, err, dryRun)
		entry.Duration = env.Now().Sub(start)
		return entry
	}

	var refs []htmlref.Reference
	var refErr error
	rewrite := sitehelper.SlideTransform(token, prefix)

	res, err := sitehelper.RewriteFile(path, func(content string) (string, int) {
		refs, refErr = htmlref.Collect(content, token)
		return rewrite(content)
	}, dryRun)

	entry := entryFor(res, err, dryRun)
	entry.Duration = env.Now().Sub(start)
	if err != nil {
		return entry
	}

	entry.Detail = "prefix /" + prefix
	if refErr == nil && len(refs) > 0 {
		entry.Detail += ", " + describeRefs(refs)
	}
	return entry
}

// describeRefs summarizes the attributes a rewrite touches.
func describeRefs(refs []htmlref.Reference) string {
	names := make([]string, 0, maxListedRefs)
	for i, ref := range refs {
		if i == maxListedRefs {
			names = append(names, "...")
			break
		}
		names = append(names, fmt.Sprintf("%s[%s]=%s", ref.Tag, ref.Attr, ref.Value))
	}

	noun := "references"
	if len(refs) == 1 {
		noun = "reference"
	}
	return fmt.Sprintf("%d %s: %s", len(refs), noun, strings.Join(names, " "))
}
