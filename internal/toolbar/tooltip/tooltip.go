// Package tooltip tracks the hover hints attached to toolbar elements.
package tooltip

import (
	"maps"
	"slices"

	"github.com/sadopc/floatbar/internal/toolbar/option"
)

// Position is the side of the element the tooltip opens on.
type Position string

const (
	Top    Position = "top"
	Bottom Position = "bottom"
	Left   Position = "left"
	Right  Position = "right"
	Auto   Position = "auto"
)

// PositionFor opens tooltips away from the edge the toolbar is anchored to.
func PositionFor(a option.Anchor) Position {
	switch {
	case a.IsBottom():
		return Top
	case a.IsTop():
		return Bottom
	case a.IsLeft():
		return Right
	case a.IsRight():
		return Left
	}
	return Auto
}

// Spec is what a tooltip shows.
type Spec struct {
	Text     string
	Shortcut string
	Position Position
}

// Manager attaches tooltips to element handles. Every method is safe to
// call redundantly.
type Manager interface {
	Init(handle string, s Spec)
	Remove(handle string)
	UpdateText(handle, text string)
	UpdateShortcut(handle, shortcut string)
}

// Registry is an in-memory Manager that also tracks which tooltip is open.
type Registry struct {
	specs map[string]Spec
	shown string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Init attaches s to handle. An empty text attaches nothing.
func (r *Registry) Init(handle string, s Spec) {
	if s.Text == "" {
		r.Remove(handle)
		return
	}
	if s.Position == "" {
		s.Position = Auto
	}
	r.specs[handle] = s
}

func (r *Registry) Remove(handle string) {
	delete(r.specs, handle)
	if r.shown == handle {
		r.shown = ""
	}
}

// UpdateText changes the text of an attached tooltip.
func (r *Registry) UpdateText(handle, text string) {
	if s, ok := r.specs[handle]; ok {
		s.Text = text
		r.specs[handle] = s
	}
}

// UpdateShortcut changes the shortcut of an attached tooltip.
func (r *Registry) UpdateShortcut(handle, shortcut string) {
	if s, ok := r.specs[handle]; ok {
		s.Shortcut = shortcut
		r.specs[handle] = s
	}
}

// Get returns the tooltip attached to handle.
func (r *Registry) Get(handle string) (Spec, bool) {
	s, ok := r.specs[handle]
	return s, ok
}

// Handles returns every handle with a tooltip, sorted.
func (r *Registry) Handles() []string {
	return slices.Sorted(maps.Keys(r.specs))
}

// Show opens the tooltip for handle. It reports false when none is attached.
func (r *Registry) Show(handle string) bool {
	if _, ok := r.specs[handle]; !ok {
		return false
	}
	r.shown = handle
	return true
}

// Hide closes the open tooltip.
func (r *Registry) Hide() { r.shown = "" }

// Shown returns the open tooltip.
func (r *Registry) Shown() (string, Spec, bool) {
	if r.shown == "" {
		return "", Spec{}, false
	}
	return r.shown, r.specs[r.shown], true
}

// Clear removes every tooltip.
func (r *Registry) Clear() {
	clear(r.specs)
	r.shown = ""
}
