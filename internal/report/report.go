// Package report collects per-file outcomes of a command run and prints
// them as styled text or JSON.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
)

// Status is the outcome of one file.
type Status string

const (
	StatusChanged     Status = "changed"
	StatusUnchanged   Status = "unchanged"
	StatusWouldChange Status = "would-change"
	StatusCreated     Status = "created"
	StatusFailed      Status = "failed"
)

// Entry is one processed file.
type Entry struct {
	Path     string        `json:"path"`
	Status   Status        `json:"status"`
	Count    int           `json:"count"`
	Detail   string        `json:"detail,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"-"`
}

// Report is the outcome of a whole command run.
type Report struct {
	Command string  `json:"command"`
	Root    string  `json:"root,omitempty"`
	DryRun  bool    `json:"dryRun"`
	Entries []Entry `json:"entries"`
}

// Summary counts entries by outcome.
type Summary struct {
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
	Failed    int `json:"failed"`
}

// New starts an empty report.
func New(command, root string, dryRun bool) *Report {
	return &Report{Command: command, Root: root, DryRun: dryRun, Entries: []Entry{}}
}

// Add appends an entry.
func (r *Report) Add(e Entry) {
	r.Entries = append(r.Entries, e)
}

// Summary tallies the entries.
func (r *Report) Summary() Summary {
	var s Summary
	for _, e := range r.Entries {
		switch e.Status {
		case StatusFailed:
			s.Failed++
		case StatusUnchanged:
			s.Unchanged++
		default:
			s.Changed++
		}
	}
	return s
}

// TextOptions controls text output.
type TextOptions struct {
	Quiet   bool // only failures
	Verbose bool // counts, details and timings
}

type styles struct {
	header  lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	faint   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		success: r.NewStyle().Foreground(lipgloss.Color("78")),
		err:     r.NewStyle().Foreground(lipgloss.Color("197")),
		faint:   r.NewStyle().Faint(true),
	}
}

// WriteText prints entries to out and failures to errOut.
// It returns the number of failed entries.
func WriteText(out, errOut io.Writer, r *Report, opts TextOptions) int {
	so := newStyles(out)
	se := newStyles(errOut)

	for _, e := range r.Entries {
		if e.Status == StatusFailed {
			fmt.Fprintf(errOut, "%s %s: %s\n", se.err.Render("FAILED"), e.Path, e.Error)
			continue
		}
		if opts.Quiet {
			continue
		}
		if e.Status == StatusUnchanged && !opts.Verbose {
			continue
		}

		line := fmt.Sprintf("%s %s", so.success.Render(label(e.Status)), e.Path)
		if opts.Verbose {
			line += so.faint.Render(fmt.Sprintf(" (%d replaced, %v)", e.Count, e.Duration.Round(time.Millisecond)))
			if e.Detail != "" {
				line += "\n  " + so.faint.Render(e.Detail)
			}
		}
		fmt.Fprintln(out, line)
	}

	s := r.Summary()
	if !opts.Quiet && len(r.Entries) > 1 {
		verb := "changed"
		if r.DryRun {
			verb = "would change"
		}
		fmt.Fprintf(out, "\n%s\n", so.header.Render(fmt.Sprintf("%d %s, %d unchanged, %d failed", s.Changed, verb, s.Unchanged, s.Failed)))
	}

	return s.Failed
}

func label(s Status) string {
	switch s {
	case StatusChanged:
		return "Updated"
	case StatusWouldChange:
		return "Would update"
	case StatusCreated:
		return "Created"
	case StatusUnchanged:
		return "Unchanged"
	default:
		return string(s)
	}
}

type jsonReport struct {
	*Report
	Summary Summary `json:"summary"`
}

// WriteJSON encodes the report with its summary as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport{Report: r, Summary: r.Summary()}); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
