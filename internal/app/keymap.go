package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/sadopc/floatbar/internal/ui/components"
)

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit   key.Binding
	Help   key.Binding
	Finder key.Binding

	// Toolbar options
	Theme       key.Binding
	Size        key.Binding
	DisplayMode key.Binding
	Orientation key.Binding
	Position    key.Binding
	Collapse    key.Binding
	Visibility  key.Binding

	// Pages and tool sets
	PrevPage key.Binding
	NextPage key.Binding
	PrevSet  key.Binding
	NextSet  key.Binding

	// Tool navigation
	Navigate key.Binding
	Activate key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Finder: key.NewBinding(
			key.WithKeys("ctrl+f", "/"),
			key.WithHelp("ctrl+f", "find tool"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Size: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next size"),
		),
		DisplayMode: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "next display mode"),
		),
		Orientation: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle orientation"),
		),
		Position: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move to next anchor"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse / expand"),
		),
		Visibility: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide / show"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		PrevSet: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous tool set"),
		),
		NextSet: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next tool set"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("left", "right", "up", "down", "home", "end"),
			key.WithHelp("←↑↓→", "move focus"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate focused tool"),
		),
	}
}

// HelpSections groups the bindings for the help overlay.
func (k KeyMap) HelpSections() []components.HelpSection {
	return []components.HelpSection{
		{Title: "General", Bindings: []key.Binding{k.Help, k.Finder, k.Quit}},
		{Title: "Tools", Bindings: []key.Binding{k.Navigate, k.Activate, k.PrevPage, k.NextPage, k.PrevSet, k.NextSet}},
		{Title: "Toolbar", Bindings: []key.Binding{k.Theme, k.Size, k.DisplayMode, k.Orientation, k.Position, k.Collapse, k.Visibility}},
	}
}
