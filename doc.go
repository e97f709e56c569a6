// Package sitehelper holds the maintenance transforms for the tutorials site.
//
// # Frontmatter
//
// Convert TOML frontmatter to YAML frontmatter in a Markdown document:
//
//	out := sitehelper.ConvertFrontmatterText("+++\ntitle = \"Hello\"\n+++\n# Body")
//	// "---\ntitle: \"Hello\"\n---\n# Body"
//
// Only the first block is converted. The scan stops at the closing marker,
// so anything after it is left as written.
//
// # Slides
//
// Generated slide decks reference shared assets through "../..". The course
// prefix is derived from the deck location and substituted in place:
//
//	prefix, err := sitehelper.SlidePrefix("site/static/slides/tutorials/pytorch/docs/0-intro/index.html")
//	// "tutorials/pytorch"
//	html = sitehelper.RewriteSlideText(html, prefix)
//
// # QR codes
//
// GenerateQRCode encodes a URL at error correction level H and renders it with
// horizontal bar modules, a radial gradient and an optional centred logo:
//
//	err := sitehelper.WriteQRCode("qr-code-1.png", sitehelper.DefaultQROptions())
//
// # Files
//
// RewriteFile applies any of the text transforms to a file and overwrites it
// with the complete result. Lines are split and joined on "\n" only.
package sitehelper
