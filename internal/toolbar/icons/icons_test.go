package icons

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	tbl := Default(slog.New(slog.NewTextHandler(&buf, nil)))

	tests := []struct {
		ref  string
		want string
	}{
		{"utils.sun", "☼"},
		{"navigation.chevron_down", "▾"},
		{"<svg viewBox='0 0 1 1'/>", "<svg viewBox='0 0 1 1'/>"},
		{"★", "★"},
		{"plain", "plain"},
		{"", ""},
		{"utils.nope", ""},
	}
	for _, tt := range tests {
		if got := tbl.Resolve(tt.ref); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
	if !strings.Contains(buf.String(), "utils.nope") {
		t.Error("missing icon should log a warning naming the path")
	}
}

func TestIsPath(t *testing.T) {
	for ref, want := range map[string]bool{
		"utils.sun":       true,
		"a.b.c":           true,
		"edit.chevron-up": true,
		"nodots":          false,
		"has space.x":     false,
		"<svg>.x</svg>":   false,
		".leading":        false,
	} {
		if got := IsPath(ref); got != want {
			t.Errorf("IsPath(%q) = %v", ref, got)
		}
	}
}

func TestMerge(t *testing.T) {
	tbl := NewTable(nil, nil)
	tbl.Merge(map[string]string{"custom.logo": "L"})
	if tbl.Resolve("custom.logo") != "L" || !tbl.Has("custom.logo") {
		t.Fatal("merged glyph not resolvable")
	}
	if p := tbl.Paths(); len(p) != 1 || p[0] != "custom.logo" {
		t.Errorf("Paths() = %v", p)
	}
}
