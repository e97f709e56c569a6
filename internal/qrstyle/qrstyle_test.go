package qrstyle

// Notes:
// - Tests inspect pixels of small hand-built matrices rather than real QR
//   codes so expected positions are easy to compute.
// - Exact gradient values are not asserted: only the endpoints and ordering.

import (
	"image"
	"image/color"
	"testing"
)

// checker returns an n x n matrix with dark modules on even (row+col).
func checker(n int) [][]bool {
	m := make([][]bool, n)
	for r := range m {
		m[r] = make([]bool, n)
		for c := range m[r] {
			m[r][c] = (r+c)%2 == 0
		}
	}
	return m
}

func solid(n int) [][]bool {
	m := make([][]bool, n)
	for r := range m {
		m[r] = make([]bool, n)
		for c := range m[r] {
			m[r][c] = true
		}
	}
	return m
}

func isBackground(c color.RGBA) bool {
	return c == Background
}

// ---------------------------------------------------------------------------
// TestRender - Image geometry and module shapes
// ---------------------------------------------------------------------------

func TestRender_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		n      int
		box    int
		border int
		want   int
	}{
		{"no border", 5, 4, 0, 20},
		{"with border", 5, 4, 2, 36},
		{"default box", 21, 10, 4, 290},
		{"box clamped to one", 3, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			img := Render(checker(tt.n), Style{BoxSize: tt.box, Border: tt.border})
			if got := img.Bounds().Dx(); got != tt.want {
				t.Errorf("width = %d, want %d", got, tt.want)
			}
			if got := img.Bounds().Dy(); got != tt.want {
				t.Errorf("height = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRender_BorderIsBackground(t *testing.T) {
	t.Parallel()

	img := Render(solid(3), Style{BoxSize: 4, Border: 2, Drawer: DrawerSquare, Mask: MaskSolid})

	for _, p := range []image.Point{{0, 0}, {7, 7}, {27, 0}, {0, 27}, {27, 27}} {
		if c := img.RGBAAt(p.X, p.Y); !isBackground(c) {
			t.Errorf("pixel %v = %v, want background", p, c)
		}
	}
	if c := img.RGBAAt(8, 8); c != RadialCenter {
		t.Errorf("first module pixel = %v, want %v", c, RadialCenter)
	}
}

func TestRender_SquareFillsWholeBox(t *testing.T) {
	t.Parallel()

	img := Render([][]bool{{true}}, Style{BoxSize: 10, Drawer: DrawerSquare, Mask: MaskSolid})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := img.RGBAAt(x, y); isBackground(c) {
				t.Fatalf("pixel (%d,%d) is background, want filled", x, y)
			}
		}
	}
}

func TestRender_HorizontalBars(t *testing.T) {
	t.Parallel()

	img := Render([][]bool{{true, true, false}}, Style{BoxSize: 10, Drawer: DrawerHorizontalBars, Mask: MaskSolid})

	t.Run("top and bottom rows are shrunk away", func(t *testing.T) {
		for _, x := range []int{5, 15} {
			if c := img.RGBAAt(x, 0); !isBackground(c) {
				t.Errorf("pixel (%d,0) = %v, want background", x, c)
			}
			if c := img.RGBAAt(x, 9); !isBackground(c) {
				t.Errorf("pixel (%d,9) = %v, want background", x, c)
			}
		}
	})

	t.Run("bar is continuous between dark neighbours", func(t *testing.T) {
		for x := 4; x < 16; x++ {
			if c := img.RGBAAt(x, 5); isBackground(c) {
				t.Errorf("pixel (%d,5) is background, want bar", x)
			}
		}
	})

	t.Run("run ends are rounded", func(t *testing.T) {
		if c := img.RGBAAt(0, 1); !isBackground(c) {
			t.Errorf("left cap corner = %v, want background", c)
		}
		if c := img.RGBAAt(19, 1); !isBackground(c) {
			t.Errorf("right cap corner = %v, want background", c)
		}
	})

	t.Run("light module stays empty", func(t *testing.T) {
		if c := img.RGBAAt(25, 5); !isBackground(c) {
			t.Errorf("light module pixel = %v, want background", c)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRender_RadialMask - Gradient from centre to edge
// ---------------------------------------------------------------------------

func TestRender_RadialMask(t *testing.T) {
	t.Parallel()

	img := Render(solid(21), Style{BoxSize: 10, Drawer: DrawerSquare, Mask: MaskRadial})
	size := img.Bounds().Dx()

	centre := img.RGBAAt(size/2, size/2)
	corner := img.RGBAAt(0, 0)
	mid := img.RGBAAt(size/4, size/4)

	if centre.B > 5 {
		t.Errorf("centre blue = %d, want near 0", centre.B)
	}
	if corner.B < 240 {
		t.Errorf("corner blue = %d, want near 255", corner.B)
	}
	if !(centre.B < mid.B && mid.B < corner.B) {
		t.Errorf("blue not increasing outward: centre=%d mid=%d corner=%d", centre.B, mid.B, corner.B)
	}
	if corner.R != 0 || corner.G != 0 {
		t.Errorf("corner = %v, want pure blue channel", corner)
	}
}

// ---------------------------------------------------------------------------
// TestRender_Logo - Centred logo overlay
// ---------------------------------------------------------------------------

func TestRender_Logo(t *testing.T) {
	t.Parallel()

	logo := image.NewRGBA(image.Rect(0, 0, 8, 8))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			logo.SetRGBA(x, y, red)
		}
	}

	img := Render(solid(20), Style{BoxSize: 10, Drawer: DrawerSquare, Mask: MaskSolid, Logo: logo})
	size := img.Bounds().Dx()

	c := img.RGBAAt(size/2, size/2)
	if c.R < 200 || c.G > 50 || c.B > 50 {
		t.Errorf("centre pixel = %v, want logo red", c)
	}

	// Outside the logo area the modules are untouched.
	if c := img.RGBAAt(5, 5); c != RadialCenter {
		t.Errorf("corner module = %v, want %v", c, RadialCenter)
	}
}

// ---------------------------------------------------------------------------
// TestValidNames - Drawer and mask name checks
// ---------------------------------------------------------------------------

func TestValidNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{DrawerSquare, DrawerHorizontalBars} {
		if !IsValidDrawer(name) {
			t.Errorf("IsValidDrawer(%q) = false, want true", name)
		}
	}
	for _, name := range []string{MaskSolid, MaskRadial} {
		if !IsValidMask(name) {
			t.Errorf("IsValidMask(%q) = false, want true", name)
		}
	}
	if IsValidDrawer("circle") {
		t.Error("IsValidDrawer(\"circle\") = true, want false")
	}
	if IsValidMask("") {
		t.Error("IsValidMask(\"\") = true, want false")
	}
}
