package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/literallytheone/site-helper/internal/config"
	"github.com/literallytheone/site-helper/internal/fileutil"
	"github.com/literallytheone/site-helper/internal/hints"
)

// Sentinel errors for the CLI.
var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrInvalidFormat  = errors.New("invalid output format")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrFilesFailed    = errors.New("some files failed")
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	err := run(ctx, os.Args[1:], DefaultEnv())
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// run dispatches to the command named by args[0].
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ErrNoCommand
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "frontmatter":
		return runFrontmatter(ctx, rest, env)
	case "slides":
		return runSlides(ctx, rest, env)
	case "qrcode":
		return runQRCode(ctx, rest, env)
	case "config":
		return runConfig(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "sitehelper %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

// loadConfig returns the configuration named by nameOrPath, or the defaults
// when no config was requested.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, err
	}
	return cfg, nil
}

// rootArg returns the single optional directory argument, or def.
func rootArg(args []string, def string) (string, error) {
	switch len(args) {
	case 0:
		return def, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected at most one directory, got %d", ErrTooManyArgs, len(args))
	}
}
