package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/events"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/ui/components"
	"github.com/sadopc/floatbar/internal/ui/msgs"
)

const statusDuration = 3 * time.Second

func (a *App) status(text string) tea.Cmd {
	return func() tea.Msg { return msgs.StatusMsg{Text: text, Duration: statusDuration} }
}

func (a *App) notify(text, icon string) tea.Cmd {
	return a.toast.Show(components.Notice{Text: text, Icon: icon})
}

func themeIcon(t option.Theme) string {
	switch t {
	case option.Dark:
		return "utils.moon"
	case option.Light:
		return "utils.sun"
	}
	return "utils.monitor"
}

// handleToolbarEvent reports a toolbar event to the user. Setting changes
// get a toast; tool and page activity goes to the status bar.
func (a *App) handleToolbarEvent(ev events.Event) tea.Cmd {
	a.log.Debug("toolbar event", "event", ev.Name)

	switch p := ev.Payload.(type) {
	case toolbar.ToolClickEvent:
		name := p.Tool.Label
		if name == "" {
			name = p.ToolID
		}
		return a.status("clicked " + name)

	case toolbar.ToolActivateEvent:
		if p.ToolID == "" {
			return a.status("no active tool")
		}
		return a.status("active: " + p.ToolID)

	case toolbar.ThemeChangeEvent:
		a.applyPalette()
		text := "Theme: " + string(p.Theme)
		if p.Theme != p.EffectiveTheme {
			text += " (" + string(p.EffectiveTheme) + ")"
		}
		return a.notify(text, themeIcon(p.EffectiveTheme))

	case toolbar.ThemeSystemChangeEvent:
		a.applyPalette()
		return a.notify("System theme: "+string(p.Theme), themeIcon(p.Theme))

	case toolbar.SizeChangeEvent:
		return a.notify("Size: "+string(p.Size), "edit.plus")

	case toolbar.DisplayModeChangeEvent:
		return a.notify("Display: "+string(p.DisplayMode), "edit.text")

	case toolbar.OrientationChangeEvent:
		return a.notify("Orientation: "+string(p.Orientation), "utils.menu")

	case toolbar.PositionChangeEvent:
		text := "Position: " + string(p.Position)
		if p.Snapped {
			text = "Snapped to " + string(p.Position)
		}
		return a.notify(text, "shape.arrow")

	case toolbar.ToolSetChangeEvent:
		return a.notify(fmt.Sprintf("Tool set: %s (%d/%d)", p.SetName, p.CurrentSet+1, a.tb.ToolSetCount()), "navigation.angle_right")

	case toolbar.CollapseEvent:
		if p.Collapsed {
			return a.status("toolbar collapsed")
		}
		return a.status("toolbar expanded")

	case toolbar.PageChangeEvent:
		return a.status(fmt.Sprintf("page %d/%d", p.Page+1, p.Pages))
	}

	switch ev.Name {
	case events.ToolbarShow:
		return a.status("toolbar shown")
	case events.ToolbarHide:
		return a.status("toolbar hidden (h to show)")
	}
	return nil
}
