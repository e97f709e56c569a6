package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitehelper <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  frontmatter    Convert TOML frontmatter (+++) to YAML (---)")
	fmt.Fprintln(w, "  slides         Rewrite relative ../.. links in slide decks")
	fmt.Fprintln(w, "  qrcode         Generate the styled course QR code")
	fmt.Fprintln(w, "  config         Print the effective configuration")
	fmt.Fprintln(w, "  version        Show version information")
	fmt.Fprintln(w, "  help           Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitehelper help <command>' for details on a specific command.")
}

// printOutputUsage prints the flags shared by every processing command.
func printOutputUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show counts, details and timing")
	fmt.Fprintln(w, "      --format <s>          Report format: text, json")
}

// printFrontmatterUsage prints usage for the frontmatter command.
func printFrontmatterUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitehelper frontmatter [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert the frontmatter of every Markdown file from TOML to YAML.")
	fmt.Fprintln(w, "The first two +++ lines become ---, and \" = \" between them becomes \": \".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Content directory (default: content.dir, site/content)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -n, --dry-run             Report changes without writing files")
	fmt.Fprintln(w, "      --verify              Check the result parses as YAML frontmatter")
	fmt.Fprintln(w)
	printOutputUsage(w)
}

// printSlidesUsage prints usage for the slides command.
func printSlidesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitehelper slides [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replace the relative ../.. prefix in every HTML slide deck with the")
	fmt.Fprintln(w, "absolute course path, taken from the deck location below the slides root.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Slides directory (default: slides.dir, site/static/slides)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -n, --dry-run             Report changes without writing files")
	fmt.Fprintln(w, "      --token <s>           Relative prefix to replace (default \"../..\")")
	fmt.Fprintln(w)
	printOutputUsage(w)
}

// printQRCodeUsage prints usage for the qrcode command.
func printQRCodeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitehelper qrcode [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a QR code at error correction level H with styled modules")
	fmt.Fprintln(w, "and the site logo at its centre.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -u, --url <s>             Content to encode")
	fmt.Fprintln(w, "      --logo <path>         Logo image (PNG or JPEG)")
	fmt.Fprintln(w, "      --no-logo             Do not embed a logo")
	fmt.Fprintln(w, "  -o, --output <path>       Output image (.png, .jpg, .jpeg)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "      --box-size <n>        Pixels per module (1-100)")
	fmt.Fprintln(w, "      --border <n>          Quiet zone in modules (0-40)")
	fmt.Fprintln(w, "      --drawer <s>          Module drawer: square, horizontal-bars")
	fmt.Fprintln(w, "      --color-mask <s>      Color mask: solid, radial")
	fmt.Fprintln(w)
	printOutputUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitehelper config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "frontmatter":
		printFrontmatterUsage(env.Stdout)
	case "slides":
		printSlidesUsage(env.Stdout)
	case "qrcode":
		printQRCodeUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: sitehelper version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: sitehelper help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
