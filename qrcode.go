package sitehelper

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/literallytheone/site-helper/internal/qrstyle"
)

// QR code defaults.
const (
	DefaultQRContent  = "https://literallytheone.github.io/tutorials/pytorch/docs/0-intro/"
	DefaultQRLogoPath = "site/static/android-chrome-512x512.png"
	DefaultQROutput   = "qr-code-1.png"
	DefaultBoxSize    = 10
	DefaultBorder     = 4
	MaxBoxSize        = 100
	MaxBorder         = 40
	jpegQuality       = 95
	filePermissions   = 0o644 // rw-r--r--
)

// Image formats accepted by GenerateQRCode.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// QROptions configures QR code generation.
type QROptions struct {
	Content   string // data to encode, usually a URL
	LogoPath  string // image embedded at the centre; empty for none
	BoxSize   int    // pixels per module
	Border    int    // quiet zone in modules
	Drawer    string // "square" or "horizontal-bars"
	ColorMask string // "solid" or "radial"
	Format    string // "png" or "jpeg"
}

// DefaultQROptions returns the options used for the site's course QR code.
func DefaultQROptions() QROptions {
	return QROptions{
		Content:   DefaultQRContent,
		LogoPath:  DefaultQRLogoPath,
		BoxSize:   DefaultBoxSize,
		Border:    DefaultBorder,
		Drawer:    qrstyle.DrawerHorizontalBars,
		ColorMask: qrstyle.MaskRadial,
		Format:    FormatPNG,
	}
}

// Validate checks that the options can be rendered.
func (o QROptions) Validate() error {
	if strings.TrimSpace(o.Content) == "" {
		return ErrEmptyContent
	}
	if o.BoxSize < 1 || o.BoxSize > MaxBoxSize {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidBoxSize, o.BoxSize, MaxBoxSize)
	}
	if o.Border < 0 || o.Border > MaxBorder {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidBorder, o.Border, MaxBorder)
	}
	if !qrstyle.IsValidDrawer(o.Drawer) {
		return fmt.Errorf("%w: %q", ErrInvalidDrawer, o.Drawer)
	}
	if !qrstyle.IsValidMask(o.ColorMask) {
		return fmt.Errorf("%w: %q", ErrInvalidColorMask, o.ColorMask)
	}
	if _, err := normalizeFormat(o.Format); err != nil {
		return err
	}
	return nil
}

// FormatForPath returns the image format matching the file extension.
func FormatForPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return normalizeFormat(ext)
}

func normalizeFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q (use png or jpeg)", ErrUnsupportedImageFormat, format)
	}
}

// RenderQRCode encodes the content at error correction level H and renders
// the styled image.
func RenderQRCode(opts QROptions) (image.Image, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	code, err := qrcode.New(opts.Content, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQREncode, err)
	}
	code.DisableBorder = true

	var logo image.Image
	if opts.LogoPath != "" {
		logo, err = loadLogo(opts.LogoPath)
		if err != nil {
			return nil, err
		}
	}

	return qrstyle.Render(code.Bitmap(), qrstyle.Style{
		BoxSize: opts.BoxSize,
		Border:  opts.Border,
		Drawer:  opts.Drawer,
		Mask:    opts.ColorMask,
		Logo:    logo,
	}), nil
}

// GenerateQRCode renders the QR code and encodes it to w.
func GenerateQRCode(w io.Writer, opts QROptions) error {
	format, err := normalizeFormat(opts.Format)
	if err != nil {
		return err
	}

	img, err := RenderQRCode(opts)
	if err != nil {
		return err
	}

	switch format {
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}

// WriteQRCode renders the QR code to path, picking the format from its
// extension. Nothing is written if rendering fails.
func WriteQRCode(path string, opts QROptions) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	opts.Format = format

	var buf bytes.Buffer
	if err := GenerateQRCode(&buf, opts); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	return nil
}

// loadLogo decodes a PNG or JPEG logo.
func loadLogo(path string) (image.Image, error) {
	f, err := os.Open(path) // #nosec G304 -- logo path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLogoNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLogoDecode, path, err)
	}
	return img, nil
}
