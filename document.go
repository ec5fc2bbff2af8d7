package img2css

import (
	"fmt"
	"io"
	"strings"
)

// Document is the result of one conversion: the compressed pixel data
// and the class assignments needed to render it as markup. The Write
// methods are deterministic; identical documents produce identical
// bytes.
type Document struct {
	// Container is the class name scoping every generated rule, so
	// multiple converted images can share one page.
	Container string

	// Grid is the run-length encoded pixel data in row-major order.
	Grid CompressedGrid

	// Classes maps repeated colors to their shared class labels.
	Classes *ClassMap
}

// validate checks the compressed grid before any output is produced:
// at least one row, no empty rows, positive run lengths, and every
// row's total width equal to the first row's.
func (d *Document) validate() error {
	if len(d.Grid) == 0 {
		return fmt.Errorf("document has no rows: %w", ErrInvalidInput)
	}
	width := d.Grid[0].Width()
	for y, row := range d.Grid {
		if len(row) == 0 {
			return fmt.Errorf("document row %d is empty: %w", y, ErrInvalidInput)
		}
		for i, run := range row {
			if run.Length < 1 {
				return fmt.Errorf("document row %d run %d has length %d: %w",
					y, i, run.Length, ErrInvalidInput)
			}
		}
		if w := row.Width(); w != width {
			return fmt.Errorf("document row %d has width %d, want %d: %w",
				y, w, width, ErrInvalidInput)
		}
	}
	return nil
}

// WriteStyles writes the style fragment: a rule fixing the container's
// total pixel width, a base rule giving every cell a 1x1 left-floated
// footprint so cells tile without explicit positioning, and one
// background rule per class-map entry in assignment order.
func (d *Document) WriteStyles(w io.Writer) error {
	if err := d.validate(); err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "p.%s{width:%dpx;}", d.Container, d.Grid[0].Width())
	fmt.Fprintf(&sb,
		"p.%s a{float:left;width:1px;height:1px;padding:0;margin:0}",
		d.Container)
	d.Classes.Iterate(func(c RGB, label string) {
		fmt.Fprintf(&sb, "p.%s .%s{background:%s}", d.Container, label, c.Hex())
	})

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteBody writes the body fragment: the container element holding
// one cell element per run in row-major order.
func (d *Document) WriteBody(w io.Writer) error {
	if err := d.validate(); err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<p class=\"%s\">", d.Container)
	for _, row := range d.Grid {
		for _, run := range row {
			sb.WriteString(d.cell(run))
		}
	}
	sb.WriteString("</p>")

	_, err := io.WriteString(w, sb.String())
	return err
}

// cell renders one run as a self-closing element. Colors in the class
// map get a class reference, others an inline background; runs wider
// than one pixel always carry an inline width, even when the color has
// a class. The class attribute precedes the style attribute.
func (d *Document) cell(run Run) string {
	label, classed := d.Classes.Get(run.Color)
	switch {
	case classed && run.Length > 1:
		return fmt.Sprintf("<a class=\"%s\" style=\"width:%dpx\"/>", label, run.Length)
	case classed:
		return fmt.Sprintf("<a class=\"%s\"/>", label)
	case run.Length > 1:
		return fmt.Sprintf("<a style=\"background:%s;width:%dpx\"/>",
			run.Color.Hex(), run.Length)
	default:
		return fmt.Sprintf("<a style=\"background:%s\"/>", run.Color.Hex())
	}
}

// WriteHTML writes the complete document: styles in the head, cells in
// the body, with no whitespace between fragments.
func (d *Document) WriteHTML(w io.Writer) error {
	if err := d.validate(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<html><head><style>"); err != nil {
		return err
	}
	if err := d.WriteStyles(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</style></head><body>"); err != nil {
		return err
	}
	if err := d.WriteBody(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body></html>")
	return err
}

// Summary reports size and composition counters for a conversion.
type Summary struct {
	Width          int // container width in pixels
	Height         int // number of rows
	Runs           int // total runs across all rows
	DistinctColors int // distinct colors among runs
	ClassRules     int // generated class rules
	ClassedRuns    int // runs rendered with a class reference
	InlineRuns     int // runs rendered with an inline background
}

// Summary computes diagnostic counters over the document. It does not
// validate; counters for a malformed document are best-effort.
func (d *Document) Summary() Summary {
	s := Summary{
		Height:     len(d.Grid),
		ClassRules: d.Classes.Len(),
	}
	if len(d.Grid) > 0 {
		s.Width = d.Grid[0].Width()
	}

	seen := make(map[RGB]bool)
	for _, row := range d.Grid {
		for _, run := range row {
			s.Runs++
			seen[run.Color] = true
			if _, classed := d.Classes.Get(run.Color); classed {
				s.ClassedRuns++
			} else {
				s.InlineRuns++
			}
		}
	}
	s.DistinctColors = len(seen)
	return s
}
