package sitehelper

import "strings"

// Default tokens for the TOML to YAML frontmatter conversion.
const (
	TOMLMarker = "+++"
	YAMLMarker = "---"
	TOMLAssign = " = "
	YAMLAssign = ": "
)

// ScanState tracks where a scan is relative to the frontmatter block.
// It only moves forward: StateBefore, StateInside, StateAfter.
type ScanState int

const (
	StateBefore ScanState = iota // no marker seen yet
	StateInside                  // between the opening and closing marker
	StateAfter                   // closing marker seen, scan is over
)

// String returns the state name.
func (s ScanState) String() string {
	switch s {
	case StateBefore:
		return "before"
	case StateInside:
		return "inside"
	case StateAfter:
		return "after"
	default:
		return "unknown"
	}
}

// FrontmatterRewriter converts the leading frontmatter block of a document
// from one delimiter and assignment syntax to another.
// The zero value converts TOML (+++, key = value) to YAML (---, key: value).
type FrontmatterRewriter struct {
	From     string // delimiter marker to find
	To       string // delimiter marker replacement
	Assign   string // assignment token inside the block
	AssignTo string // assignment replacement
}

// FrontmatterStats reports what a rewrite touched.
type FrontmatterStats struct {
	State        ScanState // state when the scan ended
	Markers      int       // marker lines rewritten (0, 1 or 2)
	Assignments  int       // assignment tokens replaced
	StoppedAtRow int       // index of the closing marker line, -1 if not reached
}

func (r FrontmatterRewriter) tokens() (from, to, assign, assignTo string) {
	from, to, assign, assignTo = r.From, r.To, r.Assign, r.AssignTo
	if from == "" {
		from = TOMLMarker
	}
	if to == "" {
		to = YAMLMarker
	}
	if assign == "" {
		assign = TOMLAssign
	}
	if assignTo == "" {
		assignTo = YAMLAssign
	}
	return from, to, assign, assignTo
}

// Rewrite converts lines in place and returns them with the scan statistics.
//
// Each line is handled in order: inside the block every assignment token is
// replaced; then a line containing the marker has every marker on it replaced
// and advances the state. The opening marker line is therefore never subject
// to the assignment rule. The scan stops right after the closing marker.
// Documents without a complete block keep whatever was already replaced.
func (r FrontmatterRewriter) Rewrite(lines []string) ([]string, FrontmatterStats) {
	from, to, assign, assignTo := r.tokens()
	stats := FrontmatterStats{StoppedAtRow: -1}

	state := StateBefore
	for i := range lines {
		if state == StateInside {
			stats.Assignments += strings.Count(lines[i], assign)
			lines[i] = strings.ReplaceAll(lines[i], assign, assignTo)
		}

		if strings.Contains(lines[i], from) {
			lines[i] = strings.ReplaceAll(lines[i], from, to)
			stats.Markers++
			state++
		}

		if state == StateAfter {
			stats.StoppedAtRow = i
			break
		}
	}

	stats.State = state
	return lines, stats
}

// RewriteText splits content on "\n", rewrites it and joins it back.
func (r FrontmatterRewriter) RewriteText(content string) (string, FrontmatterStats) {
	lines, stats := r.Rewrite(strings.Split(content, "\n"))
	return strings.Join(lines, "\n"), stats
}

// ConvertFrontmatter converts TOML frontmatter lines to YAML in place.
func ConvertFrontmatter(lines []string) []string {
	out, _ := FrontmatterRewriter{}.Rewrite(lines)
	return out
}

// ConvertFrontmatterText converts the TOML frontmatter of a document to YAML.
func ConvertFrontmatterText(content string) string {
	out, _ := FrontmatterRewriter{}.RewriteText(content)
	return out
}
