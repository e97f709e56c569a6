// Package config loads the site-helper configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/literallytheone/site-helper/internal/fileutil"
	"github.com/literallytheone/site-helper/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// appDirName is the directory searched under the user config directory.
const appDirName = "site-helper"

// Defaults match the layout of the site repository.
const (
	DefaultContentDir = "site/content"
	DefaultSlidesDir  = "site/static/slides"
	DefaultSlideToken = "../.."
	DefaultQRURL      = "https://literallytheone.github.io/tutorials/pytorch/docs/0-intro/"
	DefaultQRLogo     = "site/static/android-chrome-512x512.png"
	DefaultQROutput   = "qr-code-1.png"
	DefaultBoxSize    = 10
	DefaultBorder     = 4
	DefaultDrawer     = "horizontal-bars"
	DefaultColorMask  = "radial"
)

// Config holds all configuration for the maintenance commands.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Slides  SlidesConfig  `yaml:"slides"`
	QRCode  QRCodeConfig  `yaml:"qrcode"`
}

// ContentConfig locates the Markdown content tree.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// SlidesConfig locates generated slide decks.
type SlidesConfig struct {
	Dir   string `yaml:"dir"`
	Token string `yaml:"token"` // relative prefix replaced in every deck
}

// QRCodeConfig defines the generated QR code.
type QRCodeConfig struct {
	URL       string `yaml:"url"`
	Logo      string `yaml:"logo"` // empty = no logo
	Output    string `yaml:"output"`
	BoxSize   int    `yaml:"boxSize"`
	Border    int    `yaml:"border"`
	Drawer    string `yaml:"drawer"`    // "square", "horizontal-bars"
	ColorMask string `yaml:"colorMask"` // "solid", "radial"
}

// DefaultConfig returns the fixed paths and QR settings of the site.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Dir: DefaultContentDir},
		Slides:  SlidesConfig{Dir: DefaultSlidesDir, Token: DefaultSlideToken},
		QRCode: QRCodeConfig{
			URL:       DefaultQRURL,
			Logo:      DefaultQRLogo,
			Output:    DefaultQROutput,
			BoxSize:   DefaultBoxSize,
			Border:    DefaultBorder,
			Drawer:    DefaultDrawer,
			ColorMask: DefaultColorMask,
		},
	}
}

// Validate checks values a file may have set to something unusable.
// Empty strings are allowed: they fall back to defaults when merged.
func (c *Config) Validate() error {
	if c.QRCode.BoxSize < 0 {
		return fmt.Errorf("%w: qrcode.boxSize must be positive, got %d", ErrInvalidValue, c.QRCode.BoxSize)
	}
	if c.QRCode.Border < 0 {
		return fmt.Errorf("%w: qrcode.border must not be negative, got %d", ErrInvalidValue, c.QRCode.Border)
	}
	switch c.QRCode.Drawer {
	case "", "square", "horizontal-bars":
	default:
		return fmt.Errorf("%w: qrcode.drawer %q (must be square or horizontal-bars)", ErrInvalidValue, c.QRCode.Drawer)
	}
	switch c.QRCode.ColorMask {
	case "", "solid", "radial":
	default:
		return fmt.Errorf("%w: qrcode.colorMask %q (must be solid or radial)", ErrInvalidValue, c.QRCode.ColorMask)
	}
	if strings.ContainsRune(c.Slides.Token, '\n') {
		return fmt.Errorf("%w: slides.token must be a single line", ErrInvalidValue)
	}
	return nil
}

// fillDefaults replaces zero values with defaults.
func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Content.Dir == "" {
		c.Content.Dir = d.Content.Dir
	}
	if c.Slides.Dir == "" {
		c.Slides.Dir = d.Slides.Dir
	}
	if c.Slides.Token == "" {
		c.Slides.Token = d.Slides.Token
	}
	if c.QRCode.URL == "" {
		c.QRCode.URL = d.QRCode.URL
	}
	if c.QRCode.Output == "" {
		c.QRCode.Output = d.QRCode.Output
	}
	if c.QRCode.BoxSize == 0 {
		c.QRCode.BoxSize = d.QRCode.BoxSize
	}
	if c.QRCode.Drawer == "" {
		c.QRCode.Drawer = d.QRCode.Drawer
	}
	if c.QRCode.ColorMask == "" {
		c.QRCode.ColorMask = d.QRCode.ColorMask
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched as <name>.yaml / <name>.yml in the current
// directory, then in the user config directory.
// The file is decoded over DefaultConfig, so omitted fields keep their
// defaults and an explicit empty qrcode.logo disables the logo.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, appDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
