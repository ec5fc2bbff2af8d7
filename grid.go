package img2css

import (
	"fmt"
	"image"
)

// Grid is a rectangular pixel grid: an ordered sequence of rows, each
// an ordered sequence of colors. The origin is top-left and indices
// are zero-based. Grids are treated as immutable once built.
type Grid [][]RGB

// NewGrid allocates a width by height grid of black pixels.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]RGB, width)
	}
	return g
}

// Width returns the number of columns, taken from the first row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Validate checks that the grid has at least one row, no empty rows,
// and a constant row width. Violations return ErrInvalidInput.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("grid has no rows: %w", ErrInvalidInput)
	}
	width := len(g[0])
	for y, row := range g {
		if len(row) == 0 {
			return fmt.Errorf("grid row %d is empty: %w", y, ErrInvalidInput)
		}
		if len(row) != width {
			return fmt.Errorf("grid row %d has width %d, want %d: %w",
				y, len(row), width, ErrInvalidInput)
		}
	}
	return nil
}

// FlatColors returns every pixel in row-major order. This is the raw
// counting input for frequency analysis.
func (g Grid) FlatColors() []RGB {
	flat := make([]RGB, 0, g.Width()*g.Height())
	for _, row := range g {
		flat = append(flat, row...)
	}
	return flat
}

// GridFromImage samples an image into a Grid, dropping alpha. Sampled
// colors are alpha-premultiplied as usual for color.Color, so images
// with transparency should be flattened over a matte first.
func GridFromImage(img image.Image) Grid {
	bounds := img.Bounds()
	g := make(Grid, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]RGB, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			row[x-bounds.Min.X] = RGBFromColor(img.At(x, y))
		}
		g[y-bounds.Min.Y] = row
	}
	return g
}

// Image converts the grid back to an opaque RGBA image.
func (g Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y, row := range g {
		for x, c := range row {
			img.SetRGBA(x, y, c.ToColor())
		}
	}
	return img
}
