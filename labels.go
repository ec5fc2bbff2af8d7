package img2css

import (
	"fmt"
	"strings"
)

// DefaultAlphabet is the symbol set used for generated class labels.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// LabelSequence produces an unbounded, deterministic series of short
// strings usable as style-class names. Labels are enumerated in
// bijective base-N order over the sequence's alphabet, the same scheme
// spreadsheet columns use: for a 26-letter alphabet the series runs
// "a".."z", "aa".."az", "ba".."zz", "aaa", and so on. Output lengths
// never decrease and no label is ever produced twice.
//
// A LabelSequence is a single-consumer cursor; every Next call
// permanently advances it. It is not safe for concurrent use.
type LabelSequence struct {
	symbols []rune
	digits  []int // digit indices, least-significant first
}

// NewLabelSequence creates a sequence over the given alphabet. The
// alphabet must be non-empty and free of duplicate symbols, otherwise
// generated labels would collide; violations return ErrInvalidInput.
func NewLabelSequence(alphabet string) (*LabelSequence, error) {
	symbols := []rune(alphabet)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("empty label alphabet: %w", ErrInvalidInput)
	}
	seen := make(map[rune]bool, len(symbols))
	for _, r := range symbols {
		if seen[r] {
			return nil, fmt.Errorf(
				"duplicate symbol %q in label alphabet: %w", r, ErrInvalidInput)
		}
		seen[r] = true
	}
	return &LabelSequence{
		symbols: symbols,
		digits:  []int{0},
	}, nil
}

// Next returns the next label in the sequence. The sequence is
// infinite; it never fails and never repeats.
func (s *LabelSequence) Next() string {
	var sb strings.Builder
	for i := len(s.digits) - 1; i >= 0; i-- {
		sb.WriteRune(s.symbols[s.digits[i]])
	}
	s.increment()
	return sb.String()
}

// increment advances the digit buffer by one with carry. When every
// digit is at its maximum the buffer grows by one digit, which is how
// "z" rolls over to "aa".
func (s *LabelSequence) increment() {
	max := len(s.symbols) - 1
	for i := range s.digits {
		if s.digits[i] < max {
			s.digits[i]++
			return
		}
		s.digits[i] = 0
	}
	s.digits = append(s.digits, 0)
}
