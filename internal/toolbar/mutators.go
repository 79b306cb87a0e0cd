package toolbar

import (
	"github.com/sadopc/floatbar/internal/toolbar/events"
	"github.com/sadopc/floatbar/internal/toolbar/option"
)

// Every mutator validates, mutates, re-renders, emits, calls the
// configured callback and persists, in that order.

// SetTheme changes the theme. While the theme is system the toolbar
// follows the platform color-scheme preference.
func (t *Toolbar) SetTheme(th option.Theme) {
	if t.destroyed {
		return
	}
	if !th.Valid() {
		t.log.Warn("invalid theme", "value", th, "valid", option.Themes)
		return
	}
	prev := t.theme
	t.theme = th
	t.watchScheme()
	t.render()
	t.bus.Emit(events.ThemeChange, ThemeChangeEvent{
		Theme:          th,
		PreviousTheme:  prev,
		EffectiveTheme: t.EffectiveTheme(),
	})
	if t.cfg.OnThemeChange != nil {
		t.cfg.OnThemeChange(th, false)
	}
	t.persist(settingTheme, string(th))
}

// Theme returns the configured theme, which may be system.
func (t *Toolbar) Theme() option.Theme { return t.theme }

// EffectiveTheme resolves system to light or dark. Without a color-scheme
// query system resolves to light.
func (t *Toolbar) EffectiveTheme() option.Theme {
	if t.theme != option.System {
		return t.theme
	}
	if t.scheme != nil && t.scheme.PrefersDark() {
		return option.Dark
	}
	return option.Light
}

// watchScheme holds a preference subscription exactly while the theme is
// system.
func (t *Toolbar) watchScheme() {
	switch {
	case t.theme == option.System && t.stopScheme == nil && t.scheme != nil:
		t.stopScheme = t.scheme.Watch(t.onSystemScheme)
	case t.theme != option.System && t.stopScheme != nil:
		t.stopScheme()
		t.stopScheme = nil
	}
}

func (t *Toolbar) onSystemScheme(dark bool) {
	if t.theme != option.System || t.destroyed {
		return
	}
	detected := option.Light
	if dark {
		detected = option.Dark
	}
	t.render()
	t.bus.Emit(events.ThemeSystemChange, ThemeSystemChangeEvent{Theme: detected, SystemPreference: true})
	if t.cfg.OnThemeChange != nil {
		t.cfg.OnThemeChange(detected, true)
	}
}

// SetSize changes the tool size and re-runs the overflow check.
func (t *Toolbar) SetSize(s option.Size) {
	if t.destroyed {
		return
	}
	if !s.Valid() {
		t.log.Warn("invalid size", "value", s, "valid", option.Sizes)
		return
	}
	prev := t.size
	t.size = s
	t.relayout()
	t.bus.Emit(events.SizeChange, SizeChangeEvent{Size: s, PreviousSize: prev})
	if t.cfg.OnSizeChange != nil {
		t.cfg.OnSizeChange(s)
	}
	t.persist(settingSize, string(s))
}

func (t *Toolbar) Size() option.Size { return t.size }

// NextSize cycles small, medium, large.
func (t *Toolbar) NextSize() { t.SetSize(option.NextSize(t.size)) }

// PreviousSize cycles large, medium, small.
func (t *Toolbar) PreviousSize() { t.SetSize(option.PreviousSize(t.size)) }

// SetOrientation lays the toolbar out along o.
func (t *Toolbar) SetOrientation(o option.Orientation) {
	if t.destroyed {
		return
	}
	if !o.Valid() {
		t.log.Warn("invalid orientation", "value", o, "valid", option.Orientations)
		return
	}
	prev := t.orientation
	t.orientation = o
	t.relayout()
	t.bus.Emit(events.OrientationChange, OrientationChangeEvent{Orientation: o, PreviousOrientation: prev})
	if t.cfg.OnOrientationChange != nil {
		t.cfg.OnOrientationChange(o)
	}
	t.persist(settingOrientation, string(o))
}

func (t *Toolbar) Orientation() option.Orientation { return t.orientation }

func (t *Toolbar) ToggleOrientation() { t.SetOrientation(t.orientation.Toggle()) }

// SetDisplayMode chooses icons, labels or both for every tool that does
// not force its own mode.
func (t *Toolbar) SetDisplayMode(m option.DisplayMode) {
	if t.destroyed {
		return
	}
	if !m.Valid() {
		t.log.Warn("invalid display mode", "value", m, "valid", option.DisplayModes)
		return
	}
	prev := t.mode
	t.mode = m
	t.relayout()
	t.bus.Emit(events.DisplayModeChange, DisplayModeChangeEvent{DisplayMode: m, PreviousDisplayMode: prev})
	if t.cfg.OnDisplayModeChange != nil {
		t.cfg.OnDisplayModeChange(m)
	}
	t.persist(settingDisplayMode, string(m))
}

func (t *Toolbar) DisplayMode() option.DisplayMode { return t.mode }

// NextDisplayMode cycles icon, both, label.
func (t *Toolbar) NextDisplayMode() { t.SetDisplayMode(option.NextDisplayMode(t.mode)) }

// SetPosition mounts the toolbar at anchor a, leaving any free drag
// position.
func (t *Toolbar) SetPosition(a option.Anchor) {
	t.setPosition(a, false)
}

func (t *Toolbar) setPosition(a option.Anchor, snapped bool) {
	if t.destroyed {
		return
	}
	if !a.Valid() {
		t.log.Warn("invalid position", "value", a, "valid", option.Anchors)
		return
	}
	prev := t.position
	t.position = a
	t.free = false
	t.render()
	t.bus.Emit(events.PositionChange, PositionChangeEvent{Position: a, PreviousPosition: prev, Snapped: snapped})
	if t.cfg.OnPositionChange != nil {
		t.cfg.OnPositionChange(a)
	}
	t.persist(settingPosition, string(a))
}

func (t *Toolbar) Position() option.Anchor { return t.position }

// Show makes the toolbar visible.
func (t *Toolbar) Show() {
	if t.destroyed {
		return
	}
	t.hidden = false
	t.render()
	t.bus.Emit(events.ToolbarShow, nil)
}

// Hide hides the toolbar without releasing anything.
func (t *Toolbar) Hide() {
	if t.destroyed {
		return
	}
	t.hidden = true
	t.dragger.Cancel()
	t.render()
	t.bus.Emit(events.ToolbarHide, nil)
}

// Hidden reports whether Hide was called more recently than Show.
func (t *Toolbar) Hidden() bool { return t.hidden }

// ToggleCollapse folds the toolbar down to its handle and collapse button,
// or unfolds it.
func (t *Toolbar) ToggleCollapse() {
	if t.destroyed {
		return
	}
	t.collapsed = !t.collapsed
	if t.collapsed {
		t.render()
	} else {
		t.relayout()
	}
	t.bus.Emit(events.ToolbarCollapse, CollapseEvent{Collapsed: t.collapsed})
}

func (t *Toolbar) Collapsed() bool { return t.collapsed }
