package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/floatbar/internal/config"
	"github.com/sadopc/floatbar/internal/core/definition"
	"github.com/sadopc/floatbar/internal/core/settings"
	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/option"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"My Toolbar":       "my-toolbar",
		"  Draw   Tools  ": "draw-tools",
		"":                 "",
	}
	for in, want := range tests {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStorageKey(t *testing.T) {
	if got := storageKey(&definition.Definition{Name: "Drawing Tools"}); got != "drawing-tools" {
		t.Fatalf("storageKey = %q", got)
	}
	if got := storageKey(&definition.Definition{}); got != "settings" {
		t.Fatalf("storageKey(empty) = %q, want settings", got)
	}
}

func TestValidateFile(t *testing.T) {
	good := filepath.Join(t.TempDir(), "good"+definition.Ext)
	if err := definition.Save(definition.Sample("Good"), good); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := validateFile(good); err != nil {
		t.Fatalf("validateFile(sample) = %v", err)
	}

	tests := []struct {
		name, body, want string
	}{
		{"empty", "  \n", "file is empty"},
		{"bad yaml", "name: [\n", "parsing definition"},
		{"no tools", "name: Bare\n", "no tools"},
		{"no name", "tools:\n  - id: a\n    label: A\n", "missing toolbar name"},
		{"bad script", "name: S\ntools:\n  - id: s\n    label: S\n    script: \"toolbar.(\"\n", `tool "s" script`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFile(writeFile(t, "x"+definition.Ext, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("validateFile() = %v, want error containing %q", err, tt.want)
			}
		})
	}

	if err := validateFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("validateFile(missing) should fail")
	}
}

func TestLoadDefinition(t *testing.T) {
	t.Chdir(t.TempDir())

	def, path, err := loadDefinition("", config.Config{})
	if err != nil || path != "" || def.Name != "My Toolbar" {
		t.Fatalf("loadDefinition() = %q, %q, %v; want the starter toolbar", def.Name, path, err)
	}

	explicit := writeFile(t, "a"+definition.Ext, "name: Explicit\n")
	def, path, err = loadDefinition(explicit, config.Config{})
	if err != nil || path != explicit || def.Name != "Explicit" {
		t.Fatalf("loadDefinition(explicit) = %q, %q, %v", def.Name, path, err)
	}

	configured := writeFile(t, "c"+definition.Ext, "name: Configured\n")
	def, _, err = loadDefinition("", config.Config{Definition: configured})
	if err != nil || def.Name != "Configured" {
		t.Fatalf("loadDefinition(config) = %v, %v", def, err)
	}

	if err := os.WriteFile("local"+definition.Ext, []byte("name: Local\n"), 0644); err != nil {
		t.Fatal(err)
	}
	def, _, err = loadDefinition("", config.Config{Definition: configured})
	if err != nil || def.Name != "Local" {
		t.Fatalf("working directory definition should win, got %v, %v", def, err)
	}

	if _, _, err := loadDefinition("nope"+definition.Ext, config.Config{}); err == nil {
		t.Fatal("loadDefinition(missing) should fail")
	}
}

func decodeFrame(t *testing.T, data []byte) toolbar.Frame {
	t.Helper()
	var f toolbar.Frame
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("Unmarshal() failed: %v\n%s", err, data)
	}
	return f
}

func TestDumpFrame(t *testing.T) {
	cfg := config.DefaultConfig()
	def := definition.Sample("Dump")

	out, err := dumpFrame(def, cfg, dumpOptions{Width: 200, Height: 40, Set: -1, Dark: true}, discardLogger())
	if err != nil {
		t.Fatalf("dumpFrame() failed: %v", err)
	}
	f := decodeFrame(t, out)
	if f.Position != option.BottomCenter {
		t.Errorf("Position = %q, want bottom-center", f.Position)
	}
	if f.EffectiveTheme != option.Dark {
		t.Errorf("EffectiveTheme = %q, want dark", f.EffectiveTheme)
	}
	if _, ok := f.Item("pen"); !ok {
		t.Error("default set should show the pen")
	}
	if f.Bar.W <= 0 || f.Bar.Y+f.Bar.H > 40 {
		t.Errorf("Bar = %+v, want a bar inside the canvas", f.Bar)
	}

	out, err = dumpFrame(def, cfg, dumpOptions{Width: 200, Height: 40, Set: 1}, discardLogger())
	if err != nil {
		t.Fatalf("dumpFrame(set 1) failed: %v", err)
	}
	f = decodeFrame(t, out)
	if _, ok := f.Item("zoom-in"); !ok {
		t.Error("set 1 should show zoom-in")
	}
	if _, ok := f.Item("pen"); ok {
		t.Error("set 1 should not show the pen")
	}
	if f.EffectiveTheme != option.Light {
		t.Errorf("EffectiveTheme = %q, want light", f.EffectiveTheme)
	}
}

func TestDumpFrameErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	def := definition.Sample("")

	if _, err := dumpFrame(def, cfg, dumpOptions{Width: 0, Height: 10, Set: -1}, discardLogger()); err == nil {
		t.Error("zero width should fail")
	}
	if _, err := dumpFrame(def, cfg, dumpOptions{Width: 80, Height: 24, Set: 7}, discardLogger()); err == nil {
		t.Error("out of range set should fail")
	}
}

func TestHighlight(t *testing.T) {
	src := `{"a": 1}`
	got := highlight(src, "json")
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("highlight() = %q, want ANSI escapes", got)
	}
	if !strings.Contains(got, "a") {
		t.Fatalf("highlight() lost content: %q", got)
	}
}

func TestPrintSettings(t *testing.T) {
	log := discardLogger()

	var buf bytes.Buffer
	printSettings(&buf, settings.New("floatbar", "off", nil, log), time.Now())
	if !strings.Contains(buf.String(), "persistence disabled") {
		t.Fatalf("nil backend output = %q", buf.String())
	}

	store := settings.New("floatbar", "draw", settings.NewMemoryBackend(), log)
	buf.Reset()
	printSettings(&buf, store, time.Now())
	if !strings.Contains(buf.String(), "floatbar:draw: nothing saved") {
		t.Fatalf("empty store output = %q", buf.String())
	}

	store.Save(settings.Record{"theme": "dark", "size": "large"})
	buf.Reset()
	printSettings(&buf, store, time.Now().Add(3*time.Minute))
	out := buf.String()
	if !strings.Contains(out, "saved 3 minutes ago") {
		t.Errorf("output should carry the save time, got %q", out)
	}
	size, theme := strings.Index(out, "size"), strings.Index(out, "theme")
	if size < 0 || theme < 0 || size > theme {
		t.Errorf("fields should be listed sorted, got %q", out)
	}
	if !strings.Contains(out, "dark") || !strings.Contains(out, "large") {
		t.Errorf("output should list values, got %q", out)
	}
}
