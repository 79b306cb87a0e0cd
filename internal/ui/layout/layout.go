// Package layout splits the terminal into the toolbar canvas and the status
// bar, and composites the floating toolbar onto the canvas.
package layout

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/floatbar/internal/toolbar/drag"
)

// ScreenLayout holds calculated dimensions for the terminal.
type ScreenLayout struct {
	Width  int
	Height int

	CanvasHeight int // height minus status bar
	StatusHeight int

	// Compact is set on narrow terminals; the status bar drops its hints.
	Compact bool
}

const (
	statusBarHeight = 1
	compactWidth    = 60
)

// Calculate computes the layout from terminal dimensions.
func Calculate(width, height int, statusVisible bool) ScreenLayout {
	l := ScreenLayout{
		Width:        max(width, 0),
		Height:       max(height, 0),
		CanvasHeight: height,
		Compact:      width < compactWidth,
	}
	if statusVisible {
		l.StatusHeight = statusBarHeight
		l.CanvasHeight -= statusBarHeight
	}
	if l.CanvasHeight < 1 {
		l.CanvasHeight = 1
	}
	return l
}

// HandleResize processes a WindowSizeMsg and returns the updated layout.
func HandleResize(msg tea.WindowSizeMsg, statusVisible bool) ScreenLayout {
	return Calculate(msg.Width, msg.Height, statusVisible)
}

// Canvas is the toolbar's container: the terminal area above the status
// bar, in cells. The host updates it on resize; the toolbar reads it live.
type Canvas struct {
	W, H int
}

// ClientSize implements toolbar.Container.
func (c *Canvas) ClientSize() drag.Size {
	return drag.Size{W: float64(c.W), H: float64(c.H)}
}

// Apply copies the canvas dimensions from l.
func (c *Canvas) Apply(l ScreenLayout) {
	c.W, c.H = l.Width, l.CanvasHeight
}

// CellRect is a rectangle on the terminal grid.
type CellRect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Cells rounds a toolbar rectangle onto the grid.
func Cells(r drag.Rect) CellRect {
	return CellRect{
		X: int(math.Round(r.X)),
		Y: int(math.Round(r.Y)),
		W: int(math.Round(r.W)),
		H: int(math.Round(r.H)),
	}
}
