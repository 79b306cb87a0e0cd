package theme

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// builtins are the palettes shipped with the binary, keyed by normalized
// name.
var builtins = index(CatppuccinMocha, CatppuccinLatte, Nord, Dracula, SolarizedLight)

func index(ts ...Theme) map[string]Theme {
	m := make(map[string]Theme, len(ts))
	for _, t := range ts {
		m[normalizeKey(t.Name)] = t
	}
	return m
}

// Get returns a built-in palette by name.
func Get(name string) (Theme, bool) {
	t, ok := builtins[normalizeKey(name)]
	return t, ok
}

// Lookup checks the built-in palettes, then custom ones in
// ~/.config/floatbar/themes.
func Lookup(name string) (Theme, bool) {
	if strings.TrimSpace(name) == "" {
		return Theme{}, false
	}
	if t, ok := Get(name); ok {
		return t, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Theme{}, false
	}
	t, ok := LoadCustomThemes(filepath.Join(home, ".config", "floatbar", "themes"))[normalizeKey(name)]
	return t, ok
}

// Names returns the built-in palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for _, k := range slices.Sorted(maps.Keys(builtins)) {
		names = append(names, builtins[k].Name)
	}
	return names
}

// normalizeKey folds case and turns spaces into dashes, so "Catppuccin
// Mocha" and "catppuccin-mocha" name the same palette.
func normalizeKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
