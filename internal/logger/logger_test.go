package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"", "info", "DEBUG", "warn", "warning", "error"} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestInitializeWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := Initialize(Options{Level: "warn", Writer: &buf}); err != nil {
		t.Fatal(err)
	}
	Info("hidden")
	Warn("shown", "id", "x")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "id=x") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestInitializeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "floatbar.log")
	if err := Initialize(Options{Path: path, JSON: true}); err != nil {
		t.Fatal(err)
	}
	With("component", "test").Info("hello")
	if err := Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) || !strings.Contains(string(data), `"component":"test"`) {
		t.Errorf("log file = %s", data)
	}
	Initialize(Options{Writer: &bytes.Buffer{}})
}
