package img2css

import (
	"fmt"
	"io"
)

// DefaultContainer is the container class name used when none is
// configured.
const DefaultContainer = "image"

// Converter holds the configuration for image-to-markup conversions.
// A Converter may be reused across conversions and goroutines: every
// Convert call works on fully materialized inputs, builds its own
// label sequence, and keeps no state between calls.
type Converter struct {
	// Container scopes generated class names and style rules.
	Container string
	// Threshold is the minimum occurrence count for a shared class.
	Threshold int
	// CountRuns selects run counting for frequency analysis instead
	// of counting raw pixels.
	CountRuns bool
	// Alphabet is the symbol set for generated class labels.
	Alphabet string
}

// Option is a functional option for configuring a Converter.
type Option func(*Converter)

// NewConverter creates a Converter with the given options.
// Defaults: Container="image", Threshold=2, raw pixel counting, and
// the lowercase Latin alphabet for labels.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		Container: DefaultContainer,
		Threshold: DefaultThreshold,
		Alphabet:  DefaultAlphabet,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithContainer sets the container class name scoping all generated
// rules.
func WithContainer(name string) Option {
	return func(c *Converter) {
		c.Container = name
	}
}

// WithThreshold sets the minimum occurrence count for a color to get
// a shared class. A threshold of 1 or less gives every distinct color
// a class.
func WithThreshold(n int) Option {
	return func(c *Converter) {
		c.Threshold = n
	}
}

// WithRunCounting makes frequency analysis count each run once
// instead of counting raw pixels, so wide runs stop dominating the
// ranking.
func WithRunCounting() Option {
	return func(c *Converter) {
		c.CountRuns = true
	}
}

// WithAlphabet sets the symbol set used to generate class labels.
func WithAlphabet(alphabet string) Option {
	return func(c *Converter) {
		c.Alphabet = alphabet
	}
}

// Convert compresses the grid, ranks its colors, assigns class
// labels, and returns the renderable document. The configuration is
// checked first; no error leaves partial output behind.
func (c *Converter) Convert(g Grid) (*Document, error) {
	if err := validateContainer(c.Container); err != nil {
		return nil, err
	}
	labels, err := NewLabelSequence(c.Alphabet)
	if err != nil {
		return nil, err
	}

	compressed, err := Compress(g)
	if err != nil {
		return nil, err
	}

	pixels := g.FlatColors()
	if c.CountRuns {
		pixels = compressed.Colors()
	}
	ranked := RankColors(pixels, c.Threshold)

	return &Document{
		Container: c.Container,
		Grid:      compressed,
		Classes:   AssignClasses(ranked, labels),
	}, nil
}

// WriteHTML converts the grid and writes the complete document to w.
func (c *Converter) WriteHTML(w io.Writer, g Grid) error {
	doc, err := c.Convert(g)
	if err != nil {
		return err
	}
	return doc.WriteHTML(w)
}

// validateContainer checks that name is usable as a class selector:
// a letter or underscore first, then letters, digits, hyphens, or
// underscores.
func validateContainer(name string) error {
	if name == "" {
		return fmt.Errorf("empty container name: %w", ErrInvalidInput)
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return fmt.Errorf("container name %q is not usable as a class name: %w",
				name, ErrInvalidInput)
		}
	}
	return nil
}
