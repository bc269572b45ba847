package pdf

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapTextEmpty(t *testing.T) {
	for _, s := range []string{"", "   ", "\t"} {
		lines := wrapText(s, 50, 9)
		if len(lines) != 1 || lines[0] != "" {
			t.Errorf("wrapText(%q) = %v, want one empty line", s, lines)
		}
	}
}

func TestWrapTextShortLineUntouched(t *testing.T) {
	lines := wrapText("Tudo conforme.", 100, 9)
	if len(lines) != 1 || lines[0] != "Tudo conforme." {
		t.Errorf("short text wrapped: %v", lines)
	}
}

func TestWrapTextHonorsWidth(t *testing.T) {
	text := strings.Repeat("palavra ", 30)
	w := 60.0
	limit := maxChars(w, 9)

	lines := wrapText(text, w, 9)
	if len(lines) < 2 {
		t.Fatalf("long text did not wrap: %d lines", len(lines))
	}
	for i, ln := range lines {
		if utf8.RuneCountInString(ln) > limit {
			t.Errorf("line %d exceeds limit %d: %q", i, limit, ln)
		}
	}
}

func TestWrapTextHardSplitsLongWords(t *testing.T) {
	word := strings.Repeat("x", 100)
	lines := wrapText(word, 30, 9)
	if len(lines) < 2 {
		t.Fatalf("oversized word not split: %v", lines)
	}
	joined := strings.Join(lines, "")
	if joined != word {
		t.Error("hard split lost characters")
	}
}

func TestWrapTextPreservesNewlines(t *testing.T) {
	lines := wrapText("linha um\nlinha dois", 100, 9)
	if len(lines) != 2 || lines[0] != "linha um" || lines[1] != "linha dois" {
		t.Errorf("newline handling: %v", lines)
	}
}

func TestLinesNeededMatchesWrap(t *testing.T) {
	text := strings.Repeat("observação ", 12)
	if got, want := linesNeeded(text, 60, 9), len(wrapText(text, 60, 9)); got != want {
		t.Errorf("linesNeeded = %d, wrapText lines = %d", got, want)
	}
}

func TestMaxCharsNeverZero(t *testing.T) {
	if maxChars(0.1, 20) < 1 {
		t.Error("maxChars must stay positive for tiny widths")
	}
}
