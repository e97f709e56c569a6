// Package qrstyle renders a QR module matrix as a styled raster image.
//
// A Style combines a module drawer (the shape of each dark module), a color
// mask (the fill of dark modules) and an optional centred logo.
package qrstyle

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Module drawers.
const (
	DrawerSquare         = "square"
	DrawerHorizontalBars = "horizontal-bars"
)

// Color masks.
const (
	MaskSolid  = "solid"
	MaskRadial = "radial"
)

const (
	// barShrink is the bar height as a fraction of the box size.
	barShrink = 0.8
	// logoRatio is the logo width as a fraction of the image width.
	logoRatio = 0.25
)

// Gradient endpoints for MaskRadial.
var (
	RadialCenter = color.RGBA{0, 0, 0, 255}
	RadialEdge   = color.RGBA{0, 0, 255, 255}
	Background   = color.RGBA{255, 255, 255, 255}
)

// Style configures Render.
type Style struct {
	BoxSize int         // pixels per module, must be > 0
	Border  int         // quiet zone width in modules
	Drawer  string      // DrawerSquare or DrawerHorizontalBars
	Mask    string      // MaskSolid or MaskRadial
	Logo    image.Image // optional, drawn at the centre
}

// IsValidDrawer reports whether name is a known module drawer.
func IsValidDrawer(name string) bool {
	return name == DrawerSquare || name == DrawerHorizontalBars
}

// IsValidMask reports whether name is a known color mask.
func IsValidMask(name string) bool {
	return name == MaskSolid || name == MaskRadial
}

// Render draws modules (true = dark) into a square RGBA image.
func Render(modules [][]bool, s Style) *image.RGBA {
	box := s.BoxSize
	if box < 1 {
		box = 1
	}
	border := s.Border
	if border < 0 {
		border = 0
	}

	n := len(modules)
	size := (n + 2*border) * box
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	fill := maskFunc(s.Mask, size)
	shape := drawerFunc(s.Drawer)

	for row := range modules {
		for col := range modules[row] {
			if !modules[row][col] {
				continue
			}
			nb := neighbors{
				left:  col > 0 && modules[row][col-1],
				right: col+1 < len(modules[row]) && modules[row][col+1],
			}
			x0 := (col + border) * box
			y0 := (row + border) * box
			for dy := 0; dy < box; dy++ {
				for dx := 0; dx < box; dx++ {
					if shape(float64(dx)+0.5, float64(dy)+0.5, float64(box), nb) {
						img.SetRGBA(x0+dx, y0+dy, fill(x0+dx, y0+dy))
					}
				}
			}
		}
	}

	if s.Logo != nil {
		embedLogo(img, s.Logo)
	}

	return img
}

// neighbors records whether the modules beside a dark module are dark.
type neighbors struct {
	left, right bool
}

// shapeFunc reports whether the point (x, y) inside a box of the given size
// belongs to the module shape.
type shapeFunc func(x, y, box float64, nb neighbors) bool

func drawerFunc(name string) shapeFunc {
	if name == DrawerHorizontalBars {
		return horizontalBar
	}
	return square
}

func square(_, _, _ float64, _ neighbors) bool {
	return true
}

// horizontalBar draws a shrunken bar joined to dark neighbours in the same
// row, with rounded caps where the row run ends.
func horizontalBar(x, y, box float64, nb neighbors) bool {
	h := box * barShrink
	top := (box - h) / 2
	if y < top || y > top+h {
		return false
	}

	r := h / 2
	cy := top + r
	if !nb.left && x < r {
		return math.Hypot(x-r, y-cy) <= r
	}
	if !nb.right && x > box-r {
		return math.Hypot(x-(box-r), y-cy) <= r
	}
	return true
}

// fillFunc returns the color of a dark pixel at (x, y).
type fillFunc func(x, y int) color.RGBA

func maskFunc(name string, size int) fillFunc {
	if name != MaskRadial {
		return func(int, int) color.RGBA { return RadialCenter }
	}

	half := float64(size) / 2
	maxDist := math.Sqrt2 * half
	return func(x, y int) color.RGBA {
		if maxDist == 0 {
			return RadialCenter
		}
		d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / maxDist
		return lerp(RadialCenter, RadialEdge, math.Min(d, 1))
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(p, q uint8) uint8 {
		return uint8(math.Round(float64(p) + (float64(q)-float64(p))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

// embedLogo scales logo to a quarter of the image width, clears the area
// behind it and composites it at the centre.
func embedLogo(img *image.RGBA, logo image.Image) {
	size := img.Bounds().Dx()
	w := int(float64(size) * logoRatio)
	if w < 1 {
		return
	}

	lb := logo.Bounds()
	h := w
	if lb.Dx() > 0 {
		h = w * lb.Dy() / lb.Dx()
	}
	if h < 1 {
		return
	}

	offX := (size - w) / 2
	offY := (size - h) / 2
	dst := image.Rect(offX, offY, offX+w, offY+h)

	draw.Draw(img, dst, image.NewUniform(Background), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(img, dst, logo, lb, draw.Over, nil)
}
