package sitehelper

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultSlideToken is the relative prefix Marp emits for shared assets.
const DefaultSlideToken = "../.."

const (
	slidesSegment = "/slides/"
	docsSegment   = "/docs"
)

// SlidePrefix returns the course path of a slide deck: the part of path after
// "/slides/" and before "/docs". Without "/docs" the whole remainder is used.
func SlidePrefix(path string) (string, error) {
	slashed := filepath.ToSlash(path)

	_, rest, found := strings.Cut(slashed, slidesSegment)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrNotSlidePath, path)
	}

	prefix, _, _ := strings.Cut(rest, docsSegment)
	return prefix, nil
}

// SlidePrefixUnder returns the course path of a deck found while walking
// root: the path relative to root, cut before "/docs". For root
// "site/static/slides" it gives the same result as SlidePrefix.
func SlidePrefixUnder(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s is not under %s", ErrNotSlidePath, path, root)
	}

	prefix, _, _ := strings.Cut(filepath.ToSlash(rel), docsSegment)
	return prefix, nil
}

// RewriteSlideText replaces every "../.." in content with "/" + prefix.
func RewriteSlideText(content, prefix string) string {
	out, _ := RewriteSlideToken(content, DefaultSlideToken, prefix)
	return out
}

// RewriteSlideToken replaces every token in content with "/" + prefix and
// returns the number of replacements.
func RewriteSlideToken(content, token, prefix string) (string, int) {
	if token == "" {
		return content, 0
	}
	n := strings.Count(content, token)
	if n == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, token, "/"+prefix), n
}
