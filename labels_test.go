package img2css

import (
	"errors"
	"reflect"
	"testing"
)

func TestLabelSequenceKnownPositions(t *testing.T) {
	t.Parallel()

	seq, err := NewLabelSequence(DefaultAlphabet)
	if err != nil {
		t.Fatalf("Failed to create sequence: %v", err)
	}

	want := map[int]string{
		1:   "a",
		2:   "b",
		26:  "z",
		27:  "aa",
		28:  "ab",
		702: "zz",
		703: "aaa",
	}
	for pos := 1; pos <= 703; pos++ {
		label := seq.Next()
		if expected, ok := want[pos]; ok && label != expected {
			t.Errorf("Expected %q at position %d, got %q", expected, pos, label)
		}
	}
}

func TestLabelSequenceTwoSymbolOrder(t *testing.T) {
	t.Parallel()

	seq, err := NewLabelSequence("ab")
	if err != nil {
		t.Fatalf("Failed to create sequence: %v", err)
	}

	want := []string{"a", "b", "aa", "ab", "ba", "bb", "aaa"}
	got := make([]string, len(want))
	for i := range got {
		got[i] = seq.Next()
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLabelSequenceSingleSymbol(t *testing.T) {
	t.Parallel()

	seq, err := NewLabelSequence("a")
	if err != nil {
		t.Fatalf("Failed to create sequence: %v", err)
	}

	want := []string{"a", "aa", "aaa", "aaaa"}
	for _, expected := range want {
		if got := seq.Next(); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	}
}

func TestLabelSequenceDistinctNonDecreasing(t *testing.T) {
	t.Parallel()

	for _, alphabet := range []string{"a", "ab", "xyz", DefaultAlphabet} {
		seq, err := NewLabelSequence(alphabet)
		if err != nil {
			t.Fatalf("Failed to create sequence over %q: %v", alphabet, err)
		}

		seen := make(map[string]bool)
		prevLen := 0
		for i := 0; i < 200; i++ {
			label := seq.Next()
			if seen[label] {
				t.Fatalf("Alphabet %q produced duplicate label %q", alphabet, label)
			}
			seen[label] = true
			if len(label) < prevLen {
				t.Fatalf("Alphabet %q label length decreased at %q", alphabet, label)
			}
			prevLen = len(label)
		}
	}
}

func TestNewLabelSequenceRejectsBadAlphabets(t *testing.T) {
	t.Parallel()

	for _, alphabet := range []string{"", "aba", "xx"} {
		_, err := NewLabelSequence(alphabet)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput for alphabet %q, got %v", alphabet, err)
		}
	}
}
