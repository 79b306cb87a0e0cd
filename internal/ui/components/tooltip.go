package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/floatbar/internal/toolbar/tooltip"
	"github.com/sadopc/floatbar/internal/ui/layout"
)

// Tooltip renders a tooltip spec, with its shortcut when set.
func (r BarRenderer) Tooltip(s tooltip.Spec) string {
	text := s.Text
	if s.Shortcut != "" {
		text += " " + r.styles.Key.Render("("+s.Shortcut+")")
	}
	return r.styles.Tooltip.Render(text)
}

// PlaceTooltip positions a w x h tooltip on the given side of target and
// keeps it inside the canvas. Auto opens below when there is room and
// above otherwise.
func PlaceTooltip(pos tooltip.Position, target layout.CellRect, w, h, canvasW, canvasH int) (x, y int) {
	if pos == tooltip.Auto {
		pos = tooltip.Bottom
		if target.Y+target.H+h > canvasH {
			pos = tooltip.Top
		}
	}
	x, y = target.X, target.Y
	switch pos {
	case tooltip.Top:
		y = target.Y - h
	case tooltip.Bottom:
		y = target.Y + target.H
	case tooltip.Left:
		x = target.X - w
	case tooltip.Right:
		x = target.X + target.W
	}
	x = min(max(x, 0), max(canvasW-w, 0))
	y = min(max(y, 0), max(canvasH-h, 0))
	return x, y
}

// TooltipSize returns the cell size of a rendered tooltip.
func TooltipSize(view string) (w, h int) {
	return lipgloss.Width(view), lipgloss.Height(view)
}
