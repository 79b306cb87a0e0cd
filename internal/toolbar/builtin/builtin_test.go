package builtin

import (
	"testing"

	"github.com/sadopc/floatbar/internal/toolbar/events"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
)

// fakeHost is a minimal controller: settings plus a registry and a bus.
type fakeHost struct {
	theme option.Theme
	size  option.Size
	mode  option.DisplayMode
	reg   *registry.Registry
	bus   *events.Bus
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		theme: option.Light,
		size:  option.Medium,
		mode:  option.Both,
		reg:   registry.New(nil),
		bus:   events.NewBus(),
	}
}

func (h *fakeHost) Theme() option.Theme { return h.theme }
func (h *fakeHost) SetTheme(t option.Theme) {
	h.theme = t
	h.bus.Emit(events.ThemeChange, t)
}
func (h *fakeHost) Size() option.Size { return h.size }
func (h *fakeHost) NextSize() {
	h.size = option.NextSize(h.size)
	h.bus.Emit(events.SizeChange, h.size)
}
func (h *fakeHost) DisplayMode() option.DisplayMode { return h.mode }
func (h *fakeHost) NextDisplayMode() {
	h.mode = option.NextDisplayMode(h.mode)
	h.bus.Emit(events.DisplayModeChange, h.mode)
}
func (h *fakeHost) PutTool(t registry.Tool) string                     { return h.reg.Put(t) }
func (h *fakeHost) UpdateTool(id string, p registry.Patch) bool        { return h.reg.UpdateTool(id, p) }
func (h *fakeHost) RemoveTool(id string)                               { h.reg.RemoveTool(id) }
func (h *fakeHost) HasTool(id string) bool                             { return h.reg.HasTool(id) }
func (h *fakeHost) On(n string, fn events.Handler) events.Subscription { return h.bus.On(n, fn) }
func (h *fakeHost) Off(s events.Subscription)                          { h.bus.Off(s) }

func activate(t *testing.T, h *fakeHost, id string) {
	t.Helper()
	tool, ok := h.reg.GetTool(id)
	if !ok {
		t.Fatalf("tool %q not registered", id)
	}
	tool.OnActivate(tool)
}

func TestThemeSwitcherCycle(t *testing.T) {
	h := newFakeHost()
	sw := NewThemeSwitcher(h, Options{Themes: []option.Theme{option.Light, option.Dark, option.System}})
	id := sw.Register()
	if id != "__builtin-theme-switcher" {
		t.Fatalf("id = %q", id)
	}

	want := []option.Theme{option.Dark, option.System, option.Light}
	for _, w := range want {
		activate(t, h, id)
		if h.theme != w {
			t.Fatalf("theme = %q, want %q", h.theme, w)
		}
		tool, _ := h.reg.GetTool(id)
		if tool.Label != sw.Label(string(w)) || tool.Icon != sw.Icon(string(w)) {
			t.Errorf("visuals not refreshed for %s: %+v", w, tool)
		}
	}
}

func TestExternalChangeRefreshesVisuals(t *testing.T) {
	h := newFakeHost()
	sw := NewSizeChanger(h, Options{})
	id := sw.Register()

	h.NextSize() // medium -> large, not through the tool
	tool, _ := h.reg.GetTool(id)
	if tool.Label != "Large" || tool.Icon != "edit.plus" || tool.Tooltip != "Size: Large" {
		t.Errorf("tool not refreshed: %+v", tool)
	}
}

func TestRegisterTwiceSubscribesOnce(t *testing.T) {
	h := newFakeHost()
	sw := NewDisplayModeSwitcher(h, Options{})
	sw.Register()
	sw.Register()
	if n := h.bus.Count(events.DisplayModeChange); n != 1 {
		t.Fatalf("expected 1 subscription, got %d", n)
	}
	if h.reg.Count() != 1 {
		t.Fatalf("expected 1 tool, got %d", h.reg.Count())
	}
}

func TestUnregisterSafe(t *testing.T) {
	h := newFakeHost()
	sw := NewThemeSwitcher(h, Options{})
	sw.Unregister() // never registered

	sw.Register()
	sw.Unregister()
	sw.Unregister()
	if h.reg.Count() != 0 || h.bus.Count(events.ThemeChange) != 0 {
		t.Fatal("unregister left state behind")
	}
	if sw.ID() != "" {
		t.Error("ID should be cleared")
	}
}

func TestOptionsOverride(t *testing.T) {
	h := newFakeHost()
	sw := NewThemeSwitcher(h, Options{
		ID:      "mode",
		Tooltip: "Change theme",
		Icons:   map[string]string{"light": "<svg/>"},
		Labels:  map[string]string{"light": "Day"},
	})
	id := sw.Register()
	tool, _ := h.reg.GetTool(id)
	if id != "mode" || tool.Icon != "<svg/>" || tool.Label != "Day" || tool.Tooltip != "Change theme" {
		t.Errorf("overrides not applied: %+v", tool)
	}
	if !tool.Persistent || tool.BuiltIn != KeyTheme {
		t.Errorf("built-in flags missing: %+v", tool)
	}
	// unknown state falls back to the neutral icon and noun
	if sw.Icon("sepia") != "utils.monitor" || sw.Label("sepia") != "Theme" {
		t.Error("fallbacks wrong")
	}
}

func TestDisplayModeLabels(t *testing.T) {
	h := newFakeHost()
	sw := NewDisplayModeSwitcher(h, Options{})
	id := sw.Register()
	activate(t, h, id) // both -> label
	tool, _ := h.reg.GetTool(id)
	if h.mode != option.LabelOnly || tool.Tooltip != "Display: Labels Only" {
		t.Errorf("mode=%s tooltip=%q", h.mode, tool.Tooltip)
	}
}

func TestManagerLifecycle(t *testing.T) {
	h := newFakeHost()
	m := NewManager(h, nil)

	if id := m.Enable("sparkle", Options{}); id != "" {
		t.Errorf("unknown key should return empty id, got %q", id)
	}

	m.Enable(KeySize, Options{})
	m.Enable(KeyTheme, Options{})
	if got := m.Active(); len(got) != 2 || got[0] != KeyTheme || got[1] != KeySize {
		t.Fatalf("Active() = %v", got)
	}

	h.reg.Clear()
	m.Restore()
	if h.reg.Count() != 2 {
		t.Fatalf("Restore should re-add both tools, got %d", h.reg.Count())
	}
	if h.bus.Count(events.ThemeChange) != 1 {
		t.Error("Restore must not duplicate subscriptions")
	}

	m.Disable(KeySize)
	if m.Has(KeySize) || h.reg.HasTool("__builtin-size-changer") {
		t.Error("Disable should remove the tool")
	}

	m.DestroyAll()
	if h.reg.Count() != 0 || len(m.Active()) != 0 {
		t.Error("DestroyAll left tools behind")
	}
}

func TestManagerReEnableReplaces(t *testing.T) {
	h := newFakeHost()
	m := NewManager(h, nil)
	m.Enable(KeyTheme, Options{})
	m.Enable(KeyTheme, Options{ID: "theme-2"})
	if h.reg.HasTool("__builtin-theme-switcher") {
		t.Error("old instance should be unregistered")
	}
	if h.bus.Count(events.ThemeChange) != 1 {
		t.Errorf("subscriptions = %d", h.bus.Count(events.ThemeChange))
	}
}

func TestRegisterFactory(t *testing.T) {
	h := newFakeHost()
	m := NewManager(h, nil)
	m.RegisterFactory("orientation", func(h Host, opts Options) Tool {
		sw := NewSizeChanger(h, opts).(*Switcher)
		sw.key = "orientation"
		sw.defaultID = "__builtin-orientation"
		return sw
	})
	if !m.Known("orientation") {
		t.Fatal("factory not registered")
	}
	m.Enable("orientation", Options{})
	m.Enable(KeyTheme, Options{})
	got := m.Active()
	if len(got) != 2 || got[0] != KeyTheme || got[1] != "orientation" {
		t.Errorf("Active() = %v", got)
	}
}
