package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sadopc/floatbar/internal/toolbar/option"
)

func TestNormalizeKey(t *testing.T) {
	got := normalizeKey("  Catppuccin   Mocha  ")
	if got != "catppuccin-mocha" {
		t.Fatalf("normalizeKey() = %q, want catppuccin-mocha", got)
	}
}

func TestGetBuiltInTheme(t *testing.T) {
	got, ok := Get("  catppuccin mocha ")
	if !ok {
		t.Fatal("expected built-in theme to be found")
	}
	if got.Name != "Catppuccin Mocha" || !got.Dark {
		t.Fatalf("theme = %q dark=%v", got.Name, got.Dark)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(builtins) {
		t.Fatalf("Names() = %d entries, want %d", len(names), len(builtins))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestPairFor(t *testing.T) {
	p := DefaultPair()
	if got := p.For(option.Light); got.Name != "Catppuccin Latte" {
		t.Errorf("For(light) = %q", got.Name)
	}
	if got := p.For(option.Dark); got.Name != "Catppuccin Mocha" {
		t.Errorf("For(dark) = %q", got.Name)
	}
}

func TestResolvePair(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := ResolvePair("solarized light", "nord")
	if p.Light.Name != "Solarized Light" || p.Dark.Name != "Nord" {
		t.Fatalf("pair = %q / %q", p.Light.Name, p.Dark.Name)
	}
	p = ResolvePair("nope", "")
	if p != DefaultPair() {
		t.Fatalf("unknown names should keep defaults, got %q / %q", p.Light.Name, p.Dark.Name)
	}
	p = ResolvePair("dracula", "solarized light")
	if p != DefaultPair() {
		t.Fatalf("mismatched brightness should keep defaults, got %q / %q", p.Light.Name, p.Dark.Name)
	}
}

func TestLookupCustomThemeFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	themesDir := filepath.Join(home, ".config", "floatbar", "themes")
	if err := os.MkdirAll(themesDir, 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}

	yaml := "name: Ocean Breeze\ndark: true\nbase: \"#001122\"\ntext: \"#ffffff\"\n"
	if err := os.WriteFile(filepath.Join(themesDir, "ocean.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got, ok := Lookup("ocean breeze")
	if !ok {
		t.Fatal("custom theme not found")
	}
	if got.Base != "#001122" || got.Text != "#ffffff" {
		t.Fatalf("colors = %q / %q", got.Base, got.Text)
	}
	if got.Mauve != CatppuccinMocha.Mauve {
		t.Fatalf("missing color should fall back to the dark default, got %q", got.Mauve)
	}
}

func TestLoadCustomThemeUsesFilenameWhenNameMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.yml")
	if err := os.WriteFile(path, []byte("base: \"#ffffff\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("LoadCustomTheme() error = %v", err)
	}
	if got.Name != "paper" || got.Dark {
		t.Fatalf("theme = %q dark=%v", got.Name, got.Dark)
	}
}

func TestLoadCustomThemeInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("name: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCustomTheme(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadCustomThemesSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"good.yaml": "name: Good\n",
		"bad.yaml":  "name: [oops",
		"notes.txt": "name: Ignored\n",
		"other.yml": "name: Other\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	got := LoadCustomThemes(dir)
	if len(got) != 2 {
		t.Fatalf("loaded %d themes, want 2", len(got))
	}
	if _, ok := got["good"]; !ok {
		t.Fatal("good theme missing")
	}
}

func TestStyleColor(t *testing.T) {
	th := CatppuccinMocha
	tests := map[string]string{
		"primary": string(th.Blue),
		"danger":  string(th.Red),
		"success": string(th.Green),
		"":        string(th.Text),
		"unknown": string(th.Text),
	}
	for name, want := range tests {
		if got := string(th.StyleColor(name)); got != want {
			t.Errorf("StyleColor(%q) = %s, want %s", name, got, want)
		}
	}
}
