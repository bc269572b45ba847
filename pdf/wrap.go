package pdf

import (
	"strings"
	"unicode/utf8"
)

const mmPerPt = 25.4 / 72.0

// avgCharEm approximates the mean Helvetica advance width in em. The layout
// only needs a stable line-count estimate (ceil of text width over box
// width), not glyph-exact metrics; the writer draws the same pre-wrapped
// lines, so estimate and output always agree.
const avgCharEm = 0.5

// textWidth estimates the rendered width of s in mm at the given font size.
func textWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * avgCharEm * mmPerPt
}

// maxChars is how many characters fit into w mm at the given size.
func maxChars(w, size float64) int {
	n := int(w / (size * avgCharEm * mmPerPt))
	if n < 1 {
		n = 1
	}
	return n
}

// wrapText greedily word-wraps s into lines no wider than w mm. Words longer
// than a full line are hard-split. Empty input yields a single empty line so
// every block occupies at least one line height.
func wrapText(s string, w, size float64) []string {
	if strings.TrimSpace(s) == "" {
		return []string{""}
	}
	limit := maxChars(w, size)
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range words {
			for utf8.RuneCountInString(word) > limit {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				runes := []rune(word)
				lines = append(lines, string(runes[:limit]))
				word = string(runes[limit:])
			}
			switch {
			case line == "":
				line = word
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= limit:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// linesNeeded is the wrapped line count for a text block of width w.
func linesNeeded(s string, w, size float64) int {
	return len(wrapText(s, w, size))
}
