package img2css

import (
	"errors"
	"strings"
	"testing"
)

func TestConverterDefaults(t *testing.T) {
	t.Parallel()

	c := NewConverter()
	if c.Container != "image" {
		t.Errorf("Expected container %q, got %q", "image", c.Container)
	}
	if c.Threshold != 2 {
		t.Errorf("Expected threshold 2, got %d", c.Threshold)
	}
	if c.CountRuns {
		t.Error("Expected raw pixel counting by default")
	}
	if c.Alphabet != DefaultAlphabet {
		t.Errorf("Expected default alphabet, got %q", c.Alphabet)
	}
}

func TestConverterOptions(t *testing.T) {
	t.Parallel()

	c := NewConverter(
		WithContainer("logo"),
		WithThreshold(5),
		WithRunCounting(),
		WithAlphabet("xyz"),
	)
	if c.Container != "logo" || c.Threshold != 5 || !c.CountRuns || c.Alphabet != "xyz" {
		t.Errorf("Options not applied: %+v", c)
	}
}

func TestConvertExampleGrid(t *testing.T) {
	t.Parallel()

	g := Grid{
		{gray(1), gray(2), gray(3)},
		{gray(4), gray(4), gray(4)},
		{gray(5), gray(5), gray(6)},
	}

	doc, err := NewConverter().Convert(g)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	// gray(4) appears three times and gray(5) twice; both qualify at
	// the default threshold, ranked by count.
	if doc.Classes.Len() != 2 {
		t.Fatalf("Expected 2 class entries, got %d", doc.Classes.Len())
	}
	if label, ok := doc.Classes.Get(gray(4)); !ok || label != "a" {
		t.Errorf("Expected gray(4) mapped to %q, got %q (ok=%v)", "a", label, ok)
	}
	if label, ok := doc.Classes.Get(gray(5)); !ok || label != "b" {
		t.Errorf("Expected gray(5) mapped to %q, got %q (ok=%v)", "b", label, ok)
	}
	for _, v := range []uint8{1, 2, 3, 6} {
		if _, ok := doc.Classes.Get(gray(v)); ok {
			t.Errorf("Color gray(%d) should not be mapped", v)
		}
	}
}

func TestConvertNoRepeatsAllInline(t *testing.T) {
	t.Parallel()

	g := Grid{
		{gray(1), gray(2)},
		{gray(3), gray(4)},
	}
	doc, err := NewConverter().Convert(g)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if doc.Classes.Len() != 0 {
		t.Errorf("Expected empty class map, got %d entries", doc.Classes.Len())
	}

	var sb strings.Builder
	if err := doc.WriteBody(&sb); err != nil {
		t.Fatalf("WriteBody failed: %v", err)
	}
	if strings.Contains(sb.String(), "class=\"a\"") {
		t.Errorf("Expected only inline styling, got %q", sb.String())
	}
}

func TestConvertUniformGridBody(t *testing.T) {
	t.Parallel()

	g := NewGrid(4, 3)
	doc, err := NewConverter().Convert(g)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	var sb strings.Builder
	if err := doc.WriteBody(&sb); err != nil {
		t.Fatalf("WriteBody failed: %v", err)
	}

	// One element per row, each with an inline width.
	cell := `<a class="a" style="width:4px"/>`
	if got := strings.Count(sb.String(), cell); got != 3 {
		t.Errorf("Expected 3 occurrences of %q, got %d in %q", cell, got, sb.String())
	}
}

func TestConvertPixelVersusRunCounting(t *testing.T) {
	t.Parallel()

	red := RGB{R: 255}
	g := Grid{{red, red}}

	// Raw counting sees two pixels, enough for a class.
	doc, err := NewConverter().Convert(g)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if _, ok := doc.Classes.Get(red); !ok {
		t.Error("Expected a class under raw pixel counting")
	}

	// Run counting sees a single run, below the threshold.
	doc, err = NewConverter(WithRunCounting()).Convert(g)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if doc.Classes.Len() != 0 {
		t.Errorf("Expected no classes under run counting, got %d", doc.Classes.Len())
	}

	var sb strings.Builder
	if err := doc.WriteBody(&sb); err != nil {
		t.Fatalf("WriteBody failed: %v", err)
	}
	want := `<p class="image"><a style="background:#ff0000;width:2px"/></p>`
	if got := sb.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestConvertThresholdOption(t *testing.T) {
	t.Parallel()

	g := Grid{{gray(1), gray(1), gray(2)}}

	doc, err := NewConverter(WithThreshold(1)).Convert(g)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if doc.Classes.Len() != 2 {
		t.Errorf("Expected every distinct color classed at threshold 1, got %d",
			doc.Classes.Len())
	}

	doc, err = NewConverter(WithThreshold(3)).Convert(g)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if doc.Classes.Len() != 0 {
		t.Errorf("Expected no classes at threshold 3, got %d", doc.Classes.Len())
	}
}

func TestConvertContainerValidation(t *testing.T) {
	t.Parallel()

	g := Grid{{gray(1)}}
	for _, name := range []string{"", "1abc", "a b", "a.b", "-x", "p{}"} {
		_, err := NewConverter(WithContainer(name)).Convert(g)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput for container %q, got %v", name, err)
		}
	}
	for _, name := range []string{"image", "img-2", "_private", "Logo", "a"} {
		if _, err := NewConverter(WithContainer(name)).Convert(g); err != nil {
			t.Errorf("Expected container %q to be accepted, got %v", name, err)
		}
	}
}

func TestConvertBadAlphabet(t *testing.T) {
	t.Parallel()

	g := Grid{{gray(1)}}
	_, err := NewConverter(WithAlphabet("aa")).Convert(g)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for duplicate alphabet, got %v", err)
	}
}

func TestConvertInvalidGrid(t *testing.T) {
	t.Parallel()

	_, err := NewConverter().Convert(Grid{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty grid, got %v", err)
	}
}

func TestConverterWriteHTMLGolden(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	if err := NewConverter().WriteHTML(&sb, Grid{{RGB{R: 255}}}); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}

	want := "<html><head><style>" +
		"p.image{width:1px;}" +
		"p.image a{float:left;width:1px;height:1px;padding:0;margin:0}" +
		"</style></head><body>" +
		`<p class="image"><a style="background:#ff0000"/></p>` +
		"</body></html>"
	if got := sb.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestConverterReuse(t *testing.T) {
	t.Parallel()

	c := NewConverter()
	g := Grid{{gray(1), gray(1), gray(2)}}

	first, err := c.Convert(g)
	if err != nil {
		t.Fatalf("First convert failed: %v", err)
	}
	second, err := c.Convert(g)
	if err != nil {
		t.Fatalf("Second convert failed: %v", err)
	}

	// Label assignment restarts per conversion.
	a, _ := first.Classes.Get(gray(1))
	b, _ := second.Classes.Get(gray(1))
	if a != "a" || b != "a" {
		t.Errorf("Expected label %q from both conversions, got %q and %q", "a", a, b)
	}
}
