package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/ui/msgs"
)

// handleKey runs a key in normal mode. Toolbar state changes surface later
// as toolbar events.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.tb.Destroy()
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		return func() tea.Msg { return msgs.ShowHelpMsg{} }
	case key.Matches(msg, a.keys.Finder):
		return func() tea.Msg { return msgs.OpenFinderMsg{} }

	case key.Matches(msg, a.keys.Navigate), key.Matches(msg, a.keys.Activate):
		a.tb.Key(msg.String())

	case key.Matches(msg, a.keys.Theme):
		a.tb.SetTheme(option.NextTheme(a.tb.Theme(), a.themes))
	case key.Matches(msg, a.keys.Size):
		a.tb.NextSize()
	case key.Matches(msg, a.keys.DisplayMode):
		a.tb.NextDisplayMode()
	case key.Matches(msg, a.keys.Orientation):
		a.tb.ToggleOrientation()
	case key.Matches(msg, a.keys.Position):
		a.tb.SetPosition(nextAnchor(a.tb.Position()))
	case key.Matches(msg, a.keys.Collapse):
		a.tb.ToggleCollapse()
	case key.Matches(msg, a.keys.Visibility):
		if a.tb.Hidden() {
			a.tb.Show()
		} else {
			a.tips.Hide()
			a.tb.Hide()
		}

	case key.Matches(msg, a.keys.PrevPage):
		a.tb.PreviousPage()
	case key.Matches(msg, a.keys.NextPage):
		a.tb.NextPage()
	case key.Matches(msg, a.keys.PrevSet):
		a.tb.PreviousToolSet()
	case key.Matches(msg, a.keys.NextSet):
		a.tb.NextToolSet()
	}
	return nil
}
