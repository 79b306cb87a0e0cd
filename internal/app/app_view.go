package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/floatbar/internal/ui/components"
	"github.com/sadopc/floatbar/internal/ui/layout"
)

// statusInfo snapshots the toolbar for the status bar.
func (a App) statusInfo() components.StatusInfo {
	info := components.StatusInfo{
		ActiveTool: a.tb.ActiveTool(),
		Set:        a.tb.CurrentToolSet(),
		Sets:       a.tb.ToolSetCount(),
		Frame:      a.tb.Frame(),
	}
	if set, ok := a.tb.ToolSet(info.Set); ok {
		info.SetName = setName(set, info.Set)
	}
	return info
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	w, h := a.canvas.W, a.canvas.H
	canvas := layout.Blank(w, h)
	if a.name != "" {
		canvas = layout.Overlay(canvas, a.styles.Title.Render(a.name), 1, 0)
	}

	f := a.tb.Frame()
	bar := a.renderer.Render(f)
	if bar.View != "" {
		origin := layout.Cells(f.Bar)
		canvas = layout.Overlay(canvas, bar.View, origin.X, origin.Y)

		if id, spec, ok := a.tips.Shown(); ok && spec.Text != "" {
			if r, ok := bar.HitRect(id); ok {
				r.X += origin.X
				r.Y += origin.Y
				tip := a.renderer.Tooltip(spec)
				tw, th := components.TooltipSize(tip)
				x, y := components.PlaceTooltip(spec.Position, r, tw, th, w, h)
				canvas = layout.Overlay(canvas, tip, x, y)
			}
		}
	}

	if a.finder.Visible {
		canvas = overlayCenter(canvas, a.finder.View(), w, h)
	}
	if a.help.Visible {
		canvas = overlayCenter(canvas, a.help.View(), w, h)
	}
	if a.toast.Visible {
		canvas = overlayTopRight(canvas, a.toast.View(), w)
	}

	sb := a.statusBar
	sb.SetInfo(a.statusInfo())
	return lipgloss.JoinVertical(lipgloss.Left, canvas, sb.View())
}

func overlayCenter(bg, overlay string, width, height int) string {
	ow, oh := lipgloss.Width(overlay), lipgloss.Height(overlay)
	return layout.Overlay(bg, overlay, max((width-ow)/2, 0), max((height-oh)/2, 0))
}

func overlayTopRight(bg, overlay string, width int) string {
	gap := max(width-lipgloss.Width(overlay)-2, 0)
	return layout.Overlay(bg, overlay, gap, 0)
}
