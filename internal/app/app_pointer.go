package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/drag"
	"github.com/sadopc/floatbar/internal/ui/components"
	"github.com/sadopc/floatbar/internal/ui/layout"
)

// barHit returns the toolbar element under the terminal cell (x, y).
func (a App) barHit(x, y int) (string, bool) {
	f := a.tb.Frame()
	if f.Hidden {
		return "", false
	}
	origin := layout.Cells(f.Bar)
	if !origin.Contains(x, y) {
		return "", false
	}
	return a.renderer.Render(f).HitAt(x-origin.X, y-origin.Y)
}

func cellPoint(msg tea.MouseMsg) drag.Point {
	return drag.Point{X: float64(msg.X), Y: float64(msg.Y)}
}

// handleMouse turns terminal mouse events into pointer calls. A press on
// the drag handle starts a drag; any other element is clicked when the
// release lands on the element that was pressed.
func (a *App) handleMouse(msg tea.MouseMsg) {
	if a.tb.Dragging() {
		switch msg.Action {
		case tea.MouseActionMotion:
			a.tb.PointerMove(cellPoint(msg))
		case tea.MouseActionRelease:
			a.tb.PointerUp()
		}
		return
	}

	id, hit := a.barHit(msg.X, msg.Y)
	switch {
	case msg.Button == tea.MouseButtonWheelUp && hit:
		a.tb.PreviousPage()
	case msg.Button == tea.MouseButtonWheelDown && hit:
		a.tb.NextPage()

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.tips.Hide()
		a.pressed = ""
		if !hit {
			return
		}
		if id == toolbar.DragHandleID {
			a.tb.PointerDown(cellPoint(msg))
			return
		}
		a.pressed = id

	case msg.Action == tea.MouseActionRelease:
		pressed := a.pressed
		a.pressed = ""
		if hit && id == pressed {
			a.activate(id)
		}

	case msg.Action == tea.MouseActionMotion:
		if !hit || !a.tips.Show(id) {
			a.tips.Hide()
		}
	}
}

// activate clicks a toolbar element. Group labels toggle their group.
func (a *App) activate(id string) {
	group, ok := strings.CutPrefix(id, components.GroupHitPrefix)
	if !ok {
		a.tb.Click(id)
		return
	}
	for _, s := range a.tb.Frame().Sections {
		if s.GroupID == group {
			a.tb.SetGroupCollapsed(group, !s.Collapsed)
			return
		}
	}
}
