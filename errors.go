package sitehelper

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadFile  = errors.New("failed to read file")
	ErrWriteFile = errors.New("failed to write file")

	// Slide errors.
	ErrNotSlidePath = errors.New("path is not under a slides directory")

	// QR code errors.
	ErrEmptyContent           = errors.New("QR code content cannot be empty")
	ErrQREncode               = errors.New("QR code encoding failed")
	ErrLogoNotFound           = errors.New("logo file not found")
	ErrLogoDecode             = errors.New("logo image could not be decoded")
	ErrUnsupportedImageFormat = errors.New("unsupported image format")
	ErrInvalidBoxSize         = errors.New("invalid box size")
	ErrInvalidBorder          = errors.New("invalid border")
	ErrInvalidDrawer          = errors.New("invalid module drawer")
	ErrInvalidColorMask       = errors.New("invalid color mask")

	// Frontmatter verification errors.
	ErrNoFrontmatter      = errors.New("no YAML frontmatter found")
	ErrInvalidFrontmatter = errors.New("invalid YAML frontmatter")
)
