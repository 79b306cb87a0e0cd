package toolbar

import (
	"slices"

	"github.com/sadopc/floatbar/internal/toolbar/drag"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
)

func (t *Toolbar) dragBounds(bar drag.Size) drag.Bounds {
	return drag.BoundsFor(t.containerSize(), bar)
}

// PointerDown starts a drag from the drag handle at p. It reports false
// when dragging is disabled or the toolbar is hidden.
func (t *Toolbar) PointerDown(p drag.Point) bool {
	if t.destroyed || t.hidden || !t.cfg.Draggable {
		return false
	}
	f := t.Frame()
	if !t.dragger.Begin(p, f.Bar, t.containerSize()) {
		return false
	}
	t.free = true
	t.offset = t.dragger.Position()
	t.render()
	return true
}

// PointerMove records a pointer position. Moves are applied once per frame.
func (t *Toolbar) PointerMove(p drag.Point) {
	t.dragger.Move(p)
}

func (t *Toolbar) onDragMove(p drag.Point, _ option.Anchor) {
	t.offset = p
	t.render()
}

// PointerUp ends a drag. With snapping the toolbar settles on the nearest
// allowed anchor; otherwise it stays where it was dropped.
func (t *Toolbar) PointerUp() {
	anchor, snapped := t.dragger.End()
	if !snapped {
		t.render()
		return
	}
	t.setPosition(anchor, true)
}

// Dragging reports whether a drag is in progress.
func (t *Toolbar) Dragging() bool { return t.dragger.State() == drag.Dragging }

// Free reports whether the toolbar sits at a dragged position instead of
// its anchor, and returns that position.
func (t *Toolbar) Free() (drag.Point, bool) { return t.offset, t.free }

// Focus moves keyboard focus to the tool with id.
func (t *Toolbar) Focus(id string) bool {
	if t.destroyed {
		return false
	}
	tool, ok := t.reg.GetTool(id)
	if !ok || !tool.Interactive() {
		return false
	}
	t.focus = id
	return true
}

// Focused returns the focused tool id, or "".
func (t *Toolbar) Focused() string { return t.focus }

// focusable returns the ids of enabled tools on the current page.
func (t *Toolbar) focusable() []string {
	var ids []string
	for _, it := range t.Frame().Items() {
		if it.Kind != registry.Separator && !it.Disabled {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Key handles keyboard navigation. Right and down move to the next tool,
// left and up to the previous, both wrapping. Home and end jump to the
// ends. Enter and space activate the focused tool. Key names follow the
// terminal convention ("right", "home", "enter", " ").
func (t *Toolbar) Key(name string) bool {
	if t.destroyed || t.hidden || t.collapsed {
		return false
	}
	ids := t.focusable()
	if len(ids) == 0 {
		return false
	}
	cur := slices.Index(ids, t.focus)
	switch name {
	case "right", "down":
		t.focus = ids[(cur+1)%len(ids)]
	case "left", "up":
		if cur < 0 {
			cur = 0
		}
		t.focus = ids[(cur-1+len(ids))%len(ids)]
	case "home":
		t.focus = ids[0]
	case "end":
		t.focus = ids[len(ids)-1]
	case "enter", " ", "space":
		if cur < 0 {
			return false
		}
		return t.Click(t.focus)
	default:
		return false
	}
	return true
}
