// Package theme holds the terminal palettes the toolbar host draws with.
// The toolbar's effective theme picks between a light and a dark palette.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/floatbar/internal/toolbar/option"
)

// Theme holds all colors for one palette.
type Theme struct {
	Name string
	Dark bool

	// Base colors
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Mauve    lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Blue     lipgloss.Color
	Lavender lipgloss.Color

	// Semantic
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
}

// StyleColor maps a tool's custom style name to a foreground color.
func (t Theme) StyleColor(name string) lipgloss.Color {
	switch name {
	case "primary":
		return t.Blue
	case "accent":
		return t.Mauve
	case "success":
		return t.Green
	case "warning":
		return t.Yellow
	case "danger":
		return t.Red
	case "info":
		return t.Teal
	default:
		return t.Text
	}
}

// Pair is the palette used for each effective toolbar theme.
type Pair struct {
	Light Theme
	Dark  Theme
}

// DefaultPair returns Catppuccin Latte and Mocha.
func DefaultPair() Pair {
	return Pair{Light: CatppuccinLatte, Dark: CatppuccinMocha}
}

// For returns the palette for an effective theme. System never reaches
// here; it is treated as dark.
func (p Pair) For(effective option.Theme) Theme {
	if effective == option.Light {
		return p.Light
	}
	return p.Dark
}

// ResolvePair resolves two palette names. An unknown name, or a palette
// of the wrong brightness for its side, keeps the default for that side.
func ResolvePair(light, dark string) Pair {
	p := DefaultPair()
	if t, ok := Lookup(light); ok && !t.Dark {
		p.Light = t
	}
	if t, ok := Lookup(dark); ok && t.Dark {
		p.Dark = t
	}
	return p
}
