package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for one palette.
type Styles struct {
	// Toolbar
	Bar          lipgloss.Style
	BarDragging  lipgloss.Style
	Item         lipgloss.Style
	ItemActive   lipgloss.Style
	ItemFocused  lipgloss.Style
	ItemDisabled lipgloss.Style
	Separator    lipgloss.Style
	GroupLabel   lipgloss.Style
	Control      lipgloss.Style
	ControlOff   lipgloss.Style
	Badge        lipgloss.Style
	Dot          lipgloss.Style
	DotActive    lipgloss.Style
	Tooltip      lipgloss.Style
	SnapHint     lipgloss.Style
	SnapActive   lipgloss.Style

	// Text styles
	Title      lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Hint       lipgloss.Style
	Key        lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	StatusBar  lipgloss.Style
	StatusText lipgloss.Style
	Selected   lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Bar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderUnfocused).
			Padding(0, 1),
		BarDragging: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused).
			Padding(0, 1),
		Item: lipgloss.NewStyle().Foreground(t.Text),
		ItemActive: lipgloss.NewStyle().
			Foreground(t.Base).
			Background(t.Mauve).
			Bold(true),
		ItemFocused: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Overlay),
		ItemDisabled: lipgloss.NewStyle().
			Foreground(t.Muted).
			Strikethrough(true),
		Separator:  lipgloss.NewStyle().Foreground(t.Muted),
		GroupLabel: lipgloss.NewStyle().Foreground(t.Subtext).Italic(true),
		Control:    lipgloss.NewStyle().Foreground(t.Lavender),
		ControlOff: lipgloss.NewStyle().Foreground(t.Muted),
		Badge:      lipgloss.NewStyle().Foreground(t.Peach).Bold(true),
		Dot:        lipgloss.NewStyle().Foreground(t.Muted),
		DotActive:  lipgloss.NewStyle().Foreground(t.Mauve),
		Tooltip: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),
		SnapHint:   lipgloss.NewStyle().Foreground(t.Muted),
		SnapActive: lipgloss.NewStyle().Foreground(t.Green).Bold(true),

		Title:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Normal:  lipgloss.NewStyle().Foreground(t.Text),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Hint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Key:     lipgloss.NewStyle().Foreground(t.Mauve),
		Error:   lipgloss.NewStyle().Foreground(t.Red),
		Success: lipgloss.NewStyle().Foreground(t.Green),
		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text),
		StatusText: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(t.Overlay).
			Foreground(t.Text),
	}
}
