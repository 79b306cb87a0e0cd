// Package icons resolves symbolic icon paths such as "utils.sun" to the
// glyph a host draws.
package icons

import (
	"log/slog"
	"maps"
	"regexp"
	"slices"
)

// Resolver turns an icon reference into renderable text.
type Resolver interface {
	Resolve(ref string) string
}

var pathRe = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)+$`)

// IsPath reports whether ref looks like a dotted symbolic path rather than
// literal markup.
func IsPath(ref string) bool { return pathRe.MatchString(ref) }

// Table resolves dotted paths from a flat map. Anything that is not a
// dotted path is returned unchanged.
type Table struct {
	glyphs map[string]string
	log    *slog.Logger
}

// NewTable creates a table over glyphs. A nil logger uses slog.Default.
func NewTable(glyphs map[string]string, log *slog.Logger) *Table {
	if log == nil {
		log = slog.Default()
	}
	return &Table{glyphs: maps.Clone(glyphs), log: log}
}

// Default returns a table loaded with the stock terminal glyphs.
func Default(log *slog.Logger) *Table {
	return NewTable(Glyphs, log)
}

// Resolve returns the glyph for a dotted path, or ref itself when it is
// literal. An unknown path logs a warning and resolves to "".
func (t *Table) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if !IsPath(ref) {
		return ref
	}
	g, ok := t.glyphs[ref]
	if !ok {
		t.log.Warn("icon not found", "path", ref)
		return ""
	}
	return g
}

// Has reports whether path is in the table.
func (t *Table) Has(path string) bool {
	_, ok := t.glyphs[path]
	return ok
}

// Merge adds or replaces glyphs.
func (t *Table) Merge(glyphs map[string]string) {
	if t.glyphs == nil {
		t.glyphs = make(map[string]string)
	}
	maps.Copy(t.glyphs, glyphs)
}

// Paths returns every known path, sorted.
func (t *Table) Paths() []string {
	return slices.Sorted(maps.Keys(t.glyphs))
}

// Glyphs is the stock table. Glyphs are single-cell so layout math holds
// in every terminal.
var Glyphs = map[string]string{
	"utils.sun":      "☼",
	"utils.moon":     "☾",
	"utils.monitor":  "◐",
	"utils.menu":     "☰",
	"utils.settings": "⚙",
	"utils.search":   "⌕",
	"utils.info":     "ℹ",
	"utils.star":     "★",

	"edit.minus":  "−",
	"edit.equals": "=",
	"edit.plus":   "+",
	"edit.pen":    "✎",
	"edit.brush":  "∿",
	"edit.eraser": "⌫",
	"edit.undo":   "↶",
	"edit.redo":   "↷",
	"edit.cut":    "✂",
	"edit.copy":   "⧉",
	"edit.text":   "T",

	"file.new":    "□",
	"file.open":   "▭",
	"file.save":   "▣",
	"file.export": "⇪",
	"file.print":  "⎙",

	"shape.square":   "■",
	"shape.circle":   "●",
	"shape.triangle": "▲",
	"shape.line":     "╱",
	"shape.arrow":    "→",

	"navigation.angle_right":   "›",
	"navigation.angle_left":    "‹",
	"navigation.chevron_down":  "▾",
	"navigation.chevron_up":    "▴",
	"navigation.chevron_right": "▸",
	"navigation.chevron_left":  "◂",

	"drag.vertical":   "⋮",
	"drag.horizontal": "⋯",
}
