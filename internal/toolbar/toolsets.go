package toolbar

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/sadopc/floatbar/internal/toolbar/events"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
)

// Navigation button defaults.
const (
	navLabel   = "More"
	navIcon    = "navigation.angle_right"
	navTooltip = "Next tools"
)

// NavButtonID returns the default id of set i's navigation button.
func NavButtonID(i int) string { return "__nav-button-" + strconv.Itoa(i) }

// NavSeparatorID returns the id of the separator before set i's
// navigation button.
func NavSeparatorID(i int) string { return "__nav-separator-" + strconv.Itoa(i) }

// SwitchToolSet replaces the transient tools with those of set i.
// Persistent and built-in tools survive the switch. Out-of-range indexes
// warn and change nothing.
func (t *Toolbar) SwitchToolSet(i int) bool {
	if t.destroyed {
		return false
	}
	n := len(t.cfg.ToolSets)
	if n == 0 {
		t.log.Warn("no tool sets defined")
		return false
	}
	if i < 0 || i >= n {
		t.log.Warn("tool set index out of range", "index", i, "count", n)
		return false
	}
	prev := t.set
	prevActive := t.reg.Active()

	// hold layout until the registry is whole again
	t.ready = false
	t.reg.Clear()
	t.focus = ""
	t.builtins.Restore()
	for _, d := range t.persistent {
		t.reg.AddTool(d)
	}
	t.set = i
	t.loadSet(i)
	t.pager.Reset()
	t.ready = true
	t.relayout()

	t.log.Debug("tool set switched", "from", prev, "to", i)
	t.bus.Emit(events.ToolSetChange, ToolSetChangeEvent{
		CurrentSet:  i,
		PreviousSet: prev,
		SetName:     setName(t.cfg.ToolSets[i], i),
	})
	if t.cfg.OnToolSetChange != nil {
		t.cfg.OnToolSetChange(i, t.cfg.ToolSets[i])
	}
	if active := t.reg.Active(); active != prevActive {
		t.bus.Emit(events.ToolActivate, ToolActivateEvent{ToolID: active, PreviousToolID: prevActive})
		if t.cfg.OnStateChange != nil {
			t.cfg.OnStateChange(active)
		}
	}
	return true
}

// NextToolSet switches to the following set, wrapping around.
func (t *Toolbar) NextToolSet() bool {
	n := len(t.cfg.ToolSets)
	if n <= 1 {
		t.log.Warn("tool set navigation needs at least two sets", "count", n)
		return false
	}
	return t.SwitchToolSet((t.set + 1) % n)
}

// PreviousToolSet switches to the preceding set, wrapping around.
func (t *Toolbar) PreviousToolSet() bool {
	n := len(t.cfg.ToolSets)
	if n <= 1 {
		t.log.Warn("tool set navigation needs at least two sets", "count", n)
		return false
	}
	return t.SwitchToolSet((t.set - 1 + n) % n)
}

// CurrentToolSet returns the index of the current set.
func (t *Toolbar) CurrentToolSet() int { return t.set }

// ToolSetCount returns the number of configured sets.
func (t *Toolbar) ToolSetCount() int { return len(t.cfg.ToolSets) }

// ToolSet returns the configuration of set i.
func (t *Toolbar) ToolSet(i int) (ToolSet, bool) {
	if i < 0 || i >= len(t.cfg.ToolSets) {
		return ToolSet{}, false
	}
	return t.cfg.ToolSets[i], true
}

func (t *Toolbar) loadSet(i int) {
	s := t.cfg.ToolSets[i]
	for _, d := range s.Tools {
		t.reg.AddTool(d)
	}
	for _, g := range s.Groups {
		t.reg.AddGroup(g)
	}
	if len(t.cfg.ToolSets) > 1 {
		t.addNavButton(i, s.Nav)
	}
}

func (t *Toolbar) addNavButton(i int, nav *NavButton) {
	var nb NavButton
	if nav != nil {
		nb = *nav
	}
	if nb.ShowSeparator == nil || *nb.ShowSeparator {
		t.reg.AddTool(registry.Descriptor{ID: NavSeparatorID(i), Kind: registry.Separator})
	}
	target := t.navTarget(i, nb.Target)
	t.reg.AddTool(registry.Descriptor{
		ID:          cmp.Or(nb.ID, NavButtonID(i)),
		Kind:        registry.Button,
		Label:       cmp.Or(nb.Label, navLabel),
		Icon:        cmp.Or(nb.Icon, navIcon),
		Tooltip:     cmp.Or(nb.Tooltip, navTooltip),
		CustomStyle: nb.CustomStyle,
		OnActivate:  func(registry.Tool) { t.SwitchToolSet(target) },
	})
}

// navTarget resolves "next", "previous" or an index, modulo the set count.
func (t *Toolbar) navTarget(current int, target string) int {
	n := len(t.cfg.ToolSets)
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "", "next":
		return (current + 1) % n
	case "previous", "prev":
		return (current - 1 + n) % n
	}
	k, err := strconv.Atoi(strings.TrimSpace(target))
	if err != nil {
		t.log.Warn("invalid navigation target", "value", target, "default", "next")
		return (current + 1) % n
	}
	return ((k % n) + n) % n
}
