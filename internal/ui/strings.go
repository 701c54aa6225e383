package ui

import (
	"path"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given cell width, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "...")
}

// padRight pads a string with spaces to the given cell width.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// shift moves a rendered line right (n > 0) or left (n < 0) within width
// cells. Styled text keeps its escape sequences.
func shift(line string, n, width int) string {
	if n >= 0 {
		return ansi.Cut(strings.Repeat(" ", n)+line, 0, width)
	}
	return ansi.Cut(line, -n, width-n)
}

// fitLines pads or cuts lines to exactly n entries.
func fitLines(lines []string, n int) []string {
	if len(lines) >= n {
		return lines[:n]
	}
	out := make([]string, n)
	copy(out, lines)
	return out
}

// slideLabel names a slide by caption, falling back to its image file name.
func slideLabel(caption, src string) string {
	if c := strings.TrimSpace(caption); c != "" {
		return c
	}
	if src = strings.TrimSpace(src); src != "" {
		return path.Base(src)
	}
	return "untitled"
}
