package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Output formats for command reports.
const (
	formatText = "text"
	formatJSON = "json"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	format  string
}

// frontmatterFlags holds flags for the frontmatter command.
type frontmatterFlags struct {
	common commonFlags
	dryRun bool
	verify bool
}

// slidesFlags holds flags for the slides command.
type slidesFlags struct {
	common commonFlags
	dryRun bool
	token  string
}

// qrcodeFlags holds flags for the qrcode command.
type qrcodeFlags struct {
	common    commonFlags
	url       string
	logo      string
	noLogo    bool
	output    string
	boxSize   int
	border    int
	drawer    string
	colorMask string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show counts, details and timing")
	fs.StringVar(&f.format, "format", formatText, "report format: text, json")
}

// validate checks combinations the flag parser cannot.
func (f *commonFlags) validate() error {
	if f.format != formatText && f.format != formatJSON {
		return fmt.Errorf("%w: %q (must be text or json)", ErrInvalidFormat, f.format)
	}
	if f.quiet && f.verbose {
		return fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrInvalidFlags)
	}
	return nil
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args and wraps parser errors as usage errors.
// flag.ErrHelp is returned unwrapped; the parser has already printed usage.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return nil
}

// parseFrontmatterFlags parses frontmatter command flags and returns positional args.
func parseFrontmatterFlags(args []string, w io.Writer) (*frontmatterFlags, []string, error) {
	f := &frontmatterFlags{}
	fs := newFlagSet("frontmatter", printFrontmatterUsage, w)

	addCommonFlags(fs, &f.common)
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "report changes without writing files")
	fs.BoolVar(&f.verify, "verify", false, "check converted frontmatter parses as YAML")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	if err := f.common.validate(); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseSlidesFlags parses slides command flags and returns positional args.
func parseSlidesFlags(args []string, w io.Writer) (*slidesFlags, []string, error) {
	f := &slidesFlags{}
	fs := newFlagSet("slides", printSlidesUsage, w)

	addCommonFlags(fs, &f.common)
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "report changes without writing files")
	fs.StringVar(&f.token, "token", "", "relative prefix to replace (default \"../..\")")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	if err := f.common.validate(); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseQRCodeFlags parses qrcode command flags. The returned set reports
// which flags were given explicitly.
func parseQRCodeFlags(args []string, w io.Writer) (*qrcodeFlags, *flag.FlagSet, error) {
	f := &qrcodeFlags{}
	fs := newFlagSet("qrcode", printQRCodeUsage, w)

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.url, "url", "u", "", "content to encode")
	fs.StringVar(&f.logo, "logo", "", "logo image embedded at the centre")
	fs.BoolVar(&f.noLogo, "no-logo", false, "do not embed a logo")
	fs.StringVarP(&f.output, "output", "o", "", "output image (.png, .jpg)")
	fs.IntVar(&f.boxSize, "box-size", 0, "pixels per module")
	fs.IntVar(&f.border, "border", 0, "quiet zone width in modules")
	fs.StringVar(&f.drawer, "drawer", "", "module drawer: square, horizontal-bars")
	fs.StringVar(&f.colorMask, "color-mask", "", "color mask: solid, radial")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	if err := f.common.validate(); err != nil {
		return nil, nil, err
	}
	if len(fs.Args()) > 0 {
		return nil, nil, fmt.Errorf("%w: qrcode takes no arguments, got %q", ErrTooManyArgs, fs.Args())
	}
	if f.noLogo && f.logo != "" {
		return nil, nil, fmt.Errorf("%w: --logo and --no-logo are mutually exclusive", ErrInvalidFlags)
	}
	return f, fs, nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, w io.Writer) (*commonFlags, error) {
	f := &commonFlags{}
	fs := newFlagSet("config", printConfigUsage, w)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	if len(fs.Args()) > 0 {
		return nil, fmt.Errorf("%w: config takes no arguments, got %q", ErrTooManyArgs, fs.Args())
	}
	return f, nil
}
