package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/wbrown/img2css"
)

// printStats writes a conversion summary and one swatch line per class
// rule to w.
func printStats(w io.Writer, doc *img2css.Document) error {
	var styles, body strings.Builder
	if err := doc.WriteStyles(&styles); err != nil {
		return err
	}
	if err := doc.WriteBody(&body); err != nil {
		return err
	}

	s := doc.Summary()
	fmt.Fprintf(w, "dimensions: %dx%d\n", s.Width, s.Height)
	fmt.Fprintf(w, "runs: %d (classed %d, inline %d)\n", s.Runs, s.ClassedRuns, s.InlineRuns)
	fmt.Fprintf(w, "distinct colors: %d, class rules: %d\n", s.DistinctColors, s.ClassRules)
	fmt.Fprintf(w, "style bytes: %d, body bytes: %d\n", styles.Len(), body.Len())

	doc.Classes.Iterate(func(c img2css.RGB, label string) {
		fmt.Fprintf(w, "  .%-4s %s\n", label, swatch(c).Sprintf(" %s ", c.Hex()))
	})
	return nil
}

// swatch builds a true-color background with a readable foreground:
// black text on light colors, white text on dark ones.
func swatch(c img2css.RGB) *color.Color {
	sw := color.BgRGB(int(c.R), int(c.G), int(c.B))
	cf, _ := colorful.MakeColor(c.ToColor())
	if l, _, _ := cf.Lab(); l > 0.5 {
		return sw.AddRGB(0, 0, 0)
	}
	return sw.AddRGB(255, 255, 255)
}
