package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Blank returns a width x height block of spaces.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Overlay draws fg over bg with fg's top-left cell at (x, y). Both may
// contain ANSI styling. Parts of fg outside bg are clipped.
func Overlay(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		base := bgLines[row]
		width := ansi.StringWidth(base)
		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}
		if col >= width {
			continue
		}
		line = ansi.Truncate(line, width-col, "")
		w := ansi.StringWidth(line)
		left := ansi.Truncate(base, col, "")
		right := ansi.TruncateLeft(base, col+w, "")
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
