package toolbar

import (
	"github.com/sadopc/floatbar/internal/toolbar/builtin"
	"github.com/sadopc/floatbar/internal/toolbar/events"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
)

// AddTool stores a tool and returns its id. Re-adding an existing id
// updates it in place. Descriptors naming a built-in tool enable it.
func (t *Toolbar) AddTool(d registry.Descriptor) string {
	if t.destroyed {
		return ""
	}
	id := t.reg.AddTool(d)
	if id == "" {
		return ""
	}
	if d.Persistent && d.BuiltIn == "" {
		d.ID = id
		t.rememberPersistent(d)
	}
	t.changed()
	return id
}

func (t *Toolbar) rememberPersistent(d registry.Descriptor) {
	for i, p := range t.persistent {
		if p.ID == d.ID {
			t.persistent[i] = d
			return
		}
	}
	t.persistent = append(t.persistent, d)
}

func (t *Toolbar) forgetPersistent(id string) {
	for i, p := range t.persistent {
		if p.ID == id {
			t.persistent = append(t.persistent[:i], t.persistent[i+1:]...)
			return
		}
	}
}

// PutTool stores a complete record. Built-in tools register through it.
func (t *Toolbar) PutTool(tool registry.Tool) string {
	if t.destroyed {
		return ""
	}
	id := t.reg.Put(tool)
	t.changed()
	return id
}

// RemoveTool deletes a tool. Unknown ids are ignored.
func (t *Toolbar) RemoveTool(id string) {
	if t.destroyed {
		return
	}
	if !t.reg.HasTool(id) {
		return
	}
	t.reg.RemoveTool(id)
	t.forgetPersistent(id)
	if t.focus == id {
		t.focus = ""
	}
	t.changed()
}

// UpdateTool merges p into the tool. Unknown ids warn and report false.
func (t *Toolbar) UpdateTool(id string, p registry.Patch) bool {
	if t.destroyed {
		return false
	}
	if !t.reg.UpdateTool(id, p) {
		return false
	}
	if _, ok := t.tipped[id]; ok {
		if p.Tooltip != nil {
			t.tips.UpdateText(id, *p.Tooltip)
		}
		if p.Shortcut != nil {
			t.tips.UpdateShortcut(id, *p.Shortcut)
		}
	}
	for i, d := range t.persistent {
		if d.ID == id {
			t.persistent[i] = applyPatch(d, p)
		}
	}
	t.changed()
	return true
}

// applyPatch keeps a remembered descriptor in step with its live record.
func applyPatch(d registry.Descriptor, p registry.Patch) registry.Descriptor {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	if p.Kind != nil && p.Kind.Valid() {
		d.Kind = *p.Kind
	}
	set(&d.Label, p.Label)
	set(&d.Icon, p.Icon)
	set(&d.Tooltip, p.Tooltip)
	set(&d.Shortcut, p.Shortcut)
	set(&d.Group, p.Group)
	set(&d.CustomStyle, p.CustomStyle)
	set(&d.Badge, p.Badge)
	if p.Disabled != nil {
		d.Disabled = *p.Disabled
	}
	if p.Visible != nil {
		d.Visible = registry.Bool(*p.Visible)
	}
	if p.ForceDisplayMode != nil {
		d.ForceDisplayMode = *p.ForceDisplayMode
	}
	if p.OnActivate != nil {
		d.OnActivate = p.OnActivate
	}
	return d
}

// GetTool returns a copy of the tool.
func (t *Toolbar) GetTool(id string) (registry.Tool, bool) { return t.reg.GetTool(id) }

// HasTool reports whether id is registered.
func (t *Toolbar) HasTool(id string) bool { return t.reg.HasTool(id) }

// Tools returns every registered tool in insertion order.
func (t *Toolbar) Tools() []registry.Tool { return t.reg.Tools() }

// ToolCount returns the number of registered tools.
func (t *Toolbar) ToolCount() int { return t.reg.Count() }

// AddGroup stores a group and its tools and returns the group id.
func (t *Toolbar) AddGroup(gd registry.GroupDescriptor) string {
	if t.destroyed {
		return ""
	}
	id := t.reg.AddGroup(gd)
	t.changed()
	return id
}

// SetGroupCollapsed folds or unfolds a collapsible group.
func (t *Toolbar) SetGroupCollapsed(id string, collapsed bool) bool {
	if t.destroyed {
		return false
	}
	if !t.reg.SetGroupCollapsed(id, collapsed) {
		t.log.Warn("group is not collapsible", "id", id)
		return false
	}
	t.changed()
	return true
}

// AddBuiltInTool enables the built-in tool for key and returns its id.
// The theme switcher cycles through the configured themes unless opts
// names its own.
func (t *Toolbar) AddBuiltInTool(key string, opts builtin.Options) string {
	if t.destroyed {
		return ""
	}
	if key == builtin.KeyTheme && len(opts.Themes) == 0 {
		opts.Themes = t.cfg.Themes
	}
	return t.builtins.Enable(key, opts)
}

// RemoveBuiltInTool disables the built-in tool for key.
func (t *Toolbar) RemoveBuiltInTool(key string) { t.builtins.Disable(key) }

// BuiltInTools returns the keys of the enabled built-in tools.
func (t *Toolbar) BuiltInTools() []string { return t.builtins.Active() }

// SetActiveTool marks id as the only active tool. An empty id clears it.
// Setting the already active tool does nothing.
func (t *Toolbar) SetActiveTool(id string) bool {
	if t.destroyed {
		return false
	}
	if id != "" && !t.reg.HasTool(id) {
		t.log.Warn("cannot activate unknown tool", "id", id)
		return false
	}
	prev := t.reg.Active()
	if prev == id {
		return true
	}
	t.reg.SetActive(id)
	t.render()
	t.bus.Emit(events.ToolActivate, ToolActivateEvent{ToolID: id, PreviousToolID: prev})
	if t.cfg.OnStateChange != nil {
		t.cfg.OnStateChange(id)
	}
	return true
}

// ActiveTool returns the active tool id, or "".
func (t *Toolbar) ActiveTool() string { return t.reg.Active() }

// Click activates the tool or toolbar control with id. It reports whether
// anything happened.
func (t *Toolbar) Click(id string) bool {
	if t.destroyed {
		return false
	}
	switch id {
	case CollapseID:
		t.ToggleCollapse()
		return true
	case PagePrevID:
		return t.PreviousPage()
	case PageNextID:
		return t.NextPage()
	case DragHandleID:
		return false
	}
	if i, ok := parseSetDot(id); ok {
		return t.SwitchToolSet(i)
	}

	tool, ok := t.reg.GetTool(id)
	if !ok {
		t.log.Warn("click on unknown tool", "id", id)
		return false
	}
	if !tool.Interactive() {
		return false
	}
	t.focus = id
	switch tool.Kind {
	case registry.Radio:
		t.SetActiveTool(id)
	case registry.Toggle:
		if tool.Active {
			t.SetActiveTool("")
		} else {
			t.SetActiveTool(id)
		}
	}
	if cur, ok := t.reg.GetTool(id); ok {
		tool = cur
	}
	if tool.OnActivate != nil {
		tool.OnActivate(tool)
	}
	if tool.Script != "" && t.scripts != nil {
		if err := t.scripts.Run(t, tool); err != nil {
			t.log.Warn("tool script failed", "id", id, "error", err)
		}
	}
	t.bus.Emit(events.ToolClick, ToolClickEvent{ToolID: id, Tool: tool})
	if t.cfg.OnToolClick != nil {
		t.cfg.OnToolClick(tool)
	}
	return true
}
