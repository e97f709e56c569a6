package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	sitehelper "github.com/literallytheone/site-helper"
	"github.com/literallytheone/site-helper/internal/config"
	"github.com/literallytheone/site-helper/internal/hints"
	"github.com/literallytheone/site-helper/internal/report"
)

// runQRCode generates the course QR code image.
func runQRCode(ctx context.Context, args []string, env *Environment) error {
	f, fs, err := parseQRCodeFlags(args, env.Stdout)
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

	if err := ctx.Err(); err != nil {
		return err
	}

	output, opts := qrOptions(cfg, f, fs)

	start := env.Now()
	if err := sitehelper.WriteQRCode(output, opts); err != nil {
		return withQRHint(err)
	}

	rep := report.New("qrcode", "", false)
	rep.Add(report.Entry{
		Path:     output,
		Status:   report.StatusCreated,
		Count:    1,
		Detail:   fmt.Sprintf("%s, %s drawer, %s mask", opts.Content, opts.Drawer, opts.ColorMask),
		Duration: env.Now().Sub(start),
	})
	return writeReport(env, rep, f.common)
}

// qrOptions merges config values with flags given on the command line.
// Config values override defaults, flags override config.
func qrOptions(cfg *config.Config, f *qrcodeFlags, fs *flag.FlagSet) (string, sitehelper.QROptions) {
	opts := sitehelper.QROptions{
		Content:   cfg.QRCode.URL,
		LogoPath:  cfg.QRCode.Logo,
		BoxSize:   cfg.QRCode.BoxSize,
		Border:    cfg.QRCode.Border,
		Drawer:    cfg.QRCode.Drawer,
		ColorMask: cfg.QRCode.ColorMask,
	}
	output := cfg.QRCode.Output

	if fs.Changed("url") {
		opts.Content = f.url
	}
	if fs.Changed("logo") {
		opts.LogoPath = f.logo
	}
	if f.noLogo {
		opts.LogoPath = ""
	}
	if fs.Changed("output") {
		output = f.output
	}
	if fs.Changed("box-size") {
		opts.BoxSize = f.boxSize
	}
	if fs.Changed("border") {
		opts.Border = f.border
	}
	if fs.Changed("drawer") {
		opts.Drawer = f.drawer
	}
	if fs.Changed("color-mask") {
		opts.ColorMask = f.colorMask
	}

	return output, opts
}

// withQRHint appends an actionable hint to common QR failures.
func withQRHint(err error) error {
	switch {
	case errors.Is(err, sitehelper.ErrLogoNotFound):
		return fmt.Errorf("%w%s", err, hints.ForLogoNotFound())
	case errors.Is(err, sitehelper.ErrUnsupportedImageFormat):
		return fmt.Errorf("%w%s", err, hints.ForImageFormat())
	default:
		return err
	}
}
