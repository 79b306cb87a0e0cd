package theme

import "github.com/charmbracelet/lipgloss"

// CatppuccinMocha is the default dark palette.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Dark:    true,
	Base:    lipgloss.Color("#1e1e2e"),
	Mantle:  lipgloss.Color("#181825"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Mauve:    lipgloss.Color("#cba6f7"),
	Red:      lipgloss.Color("#f38ba8"),
	Peach:    lipgloss.Color("#fab387"),
	Yellow:   lipgloss.Color("#f9e2af"),
	Green:    lipgloss.Color("#a6e3a1"),
	Teal:     lipgloss.Color("#94e2d5"),
	Blue:     lipgloss.Color("#89b4fa"),
	Lavender: lipgloss.Color("#b4befe"),

	BorderFocused:   lipgloss.Color("#cba6f7"),
	BorderUnfocused: lipgloss.Color("#585b70"),
}

// CatppuccinLatte is the default light palette.
var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Base:    lipgloss.Color("#eff1f5"),
	Mantle:  lipgloss.Color("#e6e9ef"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#9ca0b0"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#5c5f77"),
	Muted:   lipgloss.Color("#8c8fa1"),

	Mauve:    lipgloss.Color("#8839ef"),
	Red:      lipgloss.Color("#d20f39"),
	Peach:    lipgloss.Color("#fe640b"),
	Yellow:   lipgloss.Color("#df8e1d"),
	Green:    lipgloss.Color("#40a02b"),
	Teal:     lipgloss.Color("#179299"),
	Blue:     lipgloss.Color("#1e66f5"),
	Lavender: lipgloss.Color("#7287fd"),

	BorderFocused:   lipgloss.Color("#8839ef"),
	BorderUnfocused: lipgloss.Color("#9ca0b0"),
}

var Nord = Theme{
	Name:    "Nord",
	Dark:    true,
	Base:    lipgloss.Color("#2e3440"),
	Mantle:  lipgloss.Color("#272c36"),
	Surface: lipgloss.Color("#3b4252"),
	Overlay: lipgloss.Color("#434c5e"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#4c566a"),

	Mauve:    lipgloss.Color("#b48ead"),
	Red:      lipgloss.Color("#bf616a"),
	Peach:    lipgloss.Color("#d08770"),
	Yellow:   lipgloss.Color("#ebcb8b"),
	Green:    lipgloss.Color("#a3be8c"),
	Teal:     lipgloss.Color("#8fbcbb"),
	Blue:     lipgloss.Color("#81a1c1"),
	Lavender: lipgloss.Color("#b48ead"),

	BorderFocused:   lipgloss.Color("#88c0d0"),
	BorderUnfocused: lipgloss.Color("#4c566a"),
}

var Dracula = Theme{
	Name:    "Dracula",
	Dark:    true,
	Base:    lipgloss.Color("#282a36"),
	Mantle:  lipgloss.Color("#21222c"),
	Surface: lipgloss.Color("#44475a"),
	Overlay: lipgloss.Color("#6272a4"),

	Text:    lipgloss.Color("#f8f8f2"),
	Subtext: lipgloss.Color("#d0d0d0"),
	Muted:   lipgloss.Color("#6272a4"),

	Mauve:    lipgloss.Color("#bd93f9"),
	Red:      lipgloss.Color("#ff5555"),
	Peach:    lipgloss.Color("#ffb86c"),
	Yellow:   lipgloss.Color("#f1fa8c"),
	Green:    lipgloss.Color("#50fa7b"),
	Teal:     lipgloss.Color("#8be9fd"),
	Blue:     lipgloss.Color("#6272a4"),
	Lavender: lipgloss.Color("#bd93f9"),

	BorderFocused:   lipgloss.Color("#bd93f9"),
	BorderUnfocused: lipgloss.Color("#6272a4"),
}

// SolarizedLight is a second light palette.
var SolarizedLight = Theme{
	Name:    "Solarized Light",
	Base:    lipgloss.Color("#fdf6e3"),
	Mantle:  lipgloss.Color("#eee8d5"),
	Surface: lipgloss.Color("#eee8d5"),
	Overlay: lipgloss.Color("#93a1a1"),

	Text:    lipgloss.Color("#586e75"),
	Subtext: lipgloss.Color("#657b83"),
	Muted:   lipgloss.Color("#93a1a1"),

	Mauve:    lipgloss.Color("#6c71c4"),
	Red:      lipgloss.Color("#dc322f"),
	Peach:    lipgloss.Color("#cb4b16"),
	Yellow:   lipgloss.Color("#b58900"),
	Green:    lipgloss.Color("#859900"),
	Teal:     lipgloss.Color("#2aa198"),
	Blue:     lipgloss.Color("#268bd2"),
	Lavender: lipgloss.Color("#6c71c4"),

	BorderFocused:   lipgloss.Color("#268bd2"),
	BorderUnfocused: lipgloss.Color("#93a1a1"),
}
