package img2css

// Run represents length consecutive identical-color cells in one row.
// Length is always at least 1.
type Run struct {
	Length int
	Color  RGB
}

// CompressedRow is the run-length encoding of one grid row. Adjacent
// runs always differ in color (maximal merge) and the run lengths sum
// to the source row width.
type CompressedRow []Run

// CompressedGrid holds one compressed row per source row.
type CompressedGrid []CompressedRow

// Compress run-length encodes every row of the grid: a single
// left-to-right pass per row accumulates the current run and closes it
// on each color change and after the last cell. The grid must be
// rectangular with at least one row and no empty rows; violations
// return ErrInvalidInput. Cost is linear in grid area.
func Compress(g Grid) (CompressedGrid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	compressed := make(CompressedGrid, len(g))
	for y, row := range g {
		runs := make(CompressedRow, 0)
		current := Run{Length: 1, Color: row[0]}
		for _, c := range row[1:] {
			if c == current.Color {
				current.Length++
				continue
			}
			runs = append(runs, current)
			current = Run{Length: 1, Color: c}
		}
		compressed[y] = append(runs, current)
	}
	return compressed, nil
}

// Width returns the number of pixels the row covers.
func (cr CompressedRow) Width() int {
	total := 0
	for _, run := range cr {
		total += run.Length
	}
	return total
}

// Expand re-materializes the pixel grid the compressed grid encodes.
// Expanding the result of Compress yields the original grid exactly.
func (cg CompressedGrid) Expand() Grid {
	g := make(Grid, len(cg))
	for y, row := range cg {
		line := make([]RGB, 0, row.Width())
		for _, run := range row {
			for i := 0; i < run.Length; i++ {
				line = append(line, run.Color)
			}
		}
		g[y] = line
	}
	return g
}

// Colors returns the color channel of the grid in row-major run order.
// This is the run counting input for frequency analysis, where each
// run contributes its color once regardless of length.
func (cg CompressedGrid) Colors() []RGB {
	colors := make([]RGB, 0)
	for _, row := range cg {
		for _, run := range row {
			colors = append(colors, run.Color)
		}
	}
	return colors
}
