package layout

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// charMeasurer makes widths proportional to rune count so tests can
// predict wrapping exactly.
type charMeasurer struct{}

func (charMeasurer) TextWidth(text string, font Font, size float64) float64 {
	return size * 0.5 * float64(utf8.RuneCountInString(text))
}

func TestWrapTextRespectsMaxWidth(t *testing.T) {
	m := charMeasurer{}
	text := "the quick brown fox jumps over the lazy dog and keeps on running"
	const size, maxWidth = 10.0, 100.0

	lines := WrapText(m, text, FontBody, size, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %d", len(lines))
	}
	for i, line := range lines {
		w := m.TextWidth(line, FontBody, size)
		if w > maxWidth && strings.Contains(line, " ") {
			t.Fatalf("line %d %q measures %g, wider than %g", i, line, w, maxWidth)
		}
	}
}

func TestWrapTextReconstructsText(t *testing.T) {
	m := charMeasurer{}
	text := "alpha beta gamma delta epsilon zeta eta theta"

	lines := WrapText(m, text, FontBody, 10, 80)
	joined := strings.Join(lines, " ")
	if joined != text {
		t.Fatalf("wrapped lines do not reconstruct input:\n got %q\nwant %q", joined, text)
	}
}

func TestWrapTextBlankParagraph(t *testing.T) {
	lines := WrapText(charMeasurer{}, "first\n\nsecond", FontBody, 10, 1e6)
	want := []string{"first", "", "second"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d (%q)", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapTextOversizedWordStandsAlone(t *testing.T) {
	m := charMeasurer{}
	lines := WrapText(m, "a incomprehensibilities b", FontBody, 10, 40)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d (%q)", len(lines), lines)
	}
	if lines[1] != "incomprehensibilities" {
		t.Fatalf("oversized word should stand alone, got %q", lines[1])
	}
	for _, line := range lines {
		if line == "" {
			t.Fatalf("no empty line expected around an oversized word: %q", lines)
		}
	}
}

func TestWrapTextDeterministic(t *testing.T) {
	m := charMeasurer{}
	text := "some words that wrap the same way every single time they are measured"
	a := WrapText(m, text, FontBody, 12, 120)
	b := WrapText(m, text, FontBody, 12, 120)
	if len(a) != len(b) {
		t.Fatalf("line counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("line %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}
