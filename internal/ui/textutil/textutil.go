// Package textutil provides unicode-aware text fitting for card and overlay layout.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut short to fit.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Cut shortens s to at most maxWidth columns without marking the cut. It never
// splits a character.
func Cut(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// Wrap breaks s into lines of at most width columns at word boundaries.
// Words wider than width are truncated rather than split.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curWidth := 0
	for _, word := range strings.Fields(s) {
		w := Width(word)
		if w > width {
			word = Truncate(word, width)
			w = Width(word)
		}
		switch {
		case curWidth == 0:
			cur.WriteString(word)
			curWidth = w
		case curWidth+1+w <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + w
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curWidth = w
		}
	}
	if curWidth > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Clamp wraps s to width and keeps at most maxLines lines, putting an ellipsis on
// the last kept line when text was dropped.
func Clamp(s string, width, maxLines int) []string {
	lines := Wrap(s, width)
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if Width(last)+Width(Ellipsis) > width {
		last = Cut(last, width-Width(Ellipsis))
	}
	lines[maxLines-1] = last + Ellipsis
	return lines
}

// PadRight pads s with spaces to width columns, truncating if it is wider.
func PadRight(s string, width int) string {
	if Width(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}
