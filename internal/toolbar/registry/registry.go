// Package registry stores the toolbar's tools and groups. It is the single
// source of truth for which tools exist, how they are grouped and which one
// is active.
package registry

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/sadopc/floatbar/internal/toolbar/option"
)

// Kind is the interaction type of a tool.
type Kind string

const (
	Button    Kind = "button"
	Toggle    Kind = "toggle"
	Radio     Kind = "radio"
	Dropdown  Kind = "dropdown"
	Separator Kind = "separator"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case Button, Toggle, Radio, Dropdown, Separator:
		return true
	}
	return false
}

// Selectable reports whether tools of this kind drive the active tool.
func (k Kind) Selectable() bool { return k == Toggle || k == Radio }

// Descriptor is the partial input to AddTool. Zero values take defaults.
type Descriptor struct {
	ID       string
	Kind     Kind
	Label    string
	Icon     string
	Tooltip  string
	Shortcut string
	Group    string
	Disabled bool
	// Visible defaults to true when nil.
	Visible          *bool
	CustomStyle      string
	Badge            string
	ForceDisplayMode option.DisplayMode
	Persistent       bool
	// BuiltIn names a built-in tool ("theme", "displayMode", "size"). A
	// descriptor carrying it is a placeholder handed to the built-in handler.
	BuiltIn        string
	BuiltInOptions any
	// Script is JavaScript run when the tool is activated.
	Script     string
	OnActivate func(Tool)
}

// Tool is a complete tool record.
type Tool struct {
	ID               string
	Kind             Kind
	Label            string
	Icon             string
	Tooltip          string
	Shortcut         string
	Group            string
	Disabled         bool
	Visible          bool
	Active           bool
	CustomStyle      string
	Badge            string
	ForceDisplayMode option.DisplayMode
	Persistent       bool
	BuiltIn          string
	Script           string
	OnActivate       func(Tool)
}

// Interactive reports whether the tool can be clicked or focused.
func (t Tool) Interactive() bool { return t.Kind != Separator && !t.Disabled }

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Kind             *Kind
	Label            *string
	Icon             *string
	Tooltip          *string
	Shortcut         *string
	Group            *string
	Disabled         *bool
	Visible          *bool
	CustomStyle      *string
	Badge            *string
	ForceDisplayMode *option.DisplayMode
	OnActivate       func(Tool)
}

// String returns a pointer to s, for Patch fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for Patch and Descriptor fields.
func Bool(b bool) *bool { return &b }

// GroupDescriptor is the input to AddGroup.
type GroupDescriptor struct {
	ID          string
	Label       string
	Collapsible bool
	Collapsed   bool
	Tools       []Descriptor
}

// Group is a labelled cluster of tools. ToolIDs holds the membership the
// group was constructed with; tools themselves live in the registry.
type Group struct {
	ID          string
	Label       string
	Collapsible bool
	Collapsed   bool
	ToolIDs     []string
}

// BuiltInHandler receives descriptors that name a built-in tool and returns
// the id of the tool it registered.
type BuiltInHandler func(key string, d Descriptor) string

// Registry is not safe for concurrent use.
type Registry struct {
	tools      map[string]*Tool
	order      []string
	groups     map[string]*Group
	groupOrder []string
	builtIn    BuiltInHandler
	log        *slog.Logger
}

// New creates an empty registry. A nil logger uses slog.Default.
func New(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		tools:  make(map[string]*Tool),
		groups: make(map[string]*Group),
		log:    log,
	}
}

// SetBuiltInHandler installs the handler for built-in placeholders.
func (r *Registry) SetBuiltInHandler(h BuiltInHandler) {
	r.builtIn = h
}

// Normalize fills defaults into d without storing anything.
func Normalize(d Descriptor) Tool {
	kind := d.Kind
	if kind == "" {
		kind = Button
	}
	id := d.ID
	if id == "" {
		prefix := "tool-"
		if kind == Separator {
			prefix = "separator-"
		}
		id = prefix + uuid.NewString()
	}
	tooltip := d.Tooltip
	if tooltip == "" {
		tooltip = d.Label
	}
	visible := true
	if d.Visible != nil {
		visible = *d.Visible
	}
	return Tool{
		ID:               id,
		Kind:             kind,
		Label:            d.Label,
		Icon:             d.Icon,
		Tooltip:          tooltip,
		Shortcut:         d.Shortcut,
		Group:            d.Group,
		Disabled:         d.Disabled,
		Visible:          visible,
		CustomStyle:      d.CustomStyle,
		Badge:            d.Badge,
		ForceDisplayMode: d.ForceDisplayMode,
		Persistent:       d.Persistent,
		Script:           d.Script,
		OnActivate:       d.OnActivate,
	}
}

// AddTool stores a tool built from d and returns its id. Adding an id that
// already exists replaces the record in place, keeping its position.
func (r *Registry) AddTool(d Descriptor) string {
	if d.BuiltIn != "" {
		if r.builtIn == nil {
			r.log.Warn("built-in tool placeholder without handler", "builtin", d.BuiltIn)
			return ""
		}
		return r.builtIn(d.BuiltIn, d)
	}
	if d.Kind != "" && !d.Kind.Valid() {
		r.log.Warn("invalid tool kind", "value", d.Kind, "default", Button, "id", d.ID)
		d.Kind = Button
	}
	if d.ForceDisplayMode != "" && !d.ForceDisplayMode.Valid() {
		r.log.Warn("invalid forced display mode", "value", d.ForceDisplayMode, "id", d.ID)
		d.ForceDisplayMode = ""
	}

	t := Normalize(d)
	return r.put(t)
}

// Put stores a complete record. Built-in tools use it to keep their key.
func (r *Registry) Put(t Tool) string {
	if t.ID == "" {
		t.ID = "tool-" + uuid.NewString()
	}
	return r.put(t)
}

func (r *Registry) put(t Tool) string {
	if old, ok := r.tools[t.ID]; ok {
		t.Active = old.Active
		*old = t
		return t.ID
	}
	r.tools[t.ID] = &t
	r.order = append(r.order, t.ID)
	return t.ID
}

// AddGroup stores the group and adds each of its tools stamped with the
// group id.
func (r *Registry) AddGroup(gd GroupDescriptor) string {
	id := gd.ID
	if id == "" {
		id = "group-" + uuid.NewString()
	}
	g := &Group{
		ID:          id,
		Label:       gd.Label,
		Collapsible: gd.Collapsible,
		Collapsed:   gd.Collapsed,
	}
	if _, ok := r.groups[id]; !ok {
		r.groupOrder = append(r.groupOrder, id)
	}
	r.groups[id] = g

	for _, td := range gd.Tools {
		td.Group = id
		if tid := r.AddTool(td); tid != "" {
			g.ToolIDs = append(g.ToolIDs, tid)
		}
	}
	return id
}

// RemoveTool deletes a tool. Unknown ids are ignored.
func (r *Registry) RemoveTool(id string) {
	if _, ok := r.tools[id]; !ok {
		return
	}
	delete(r.tools, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// UpdateTool merges p into the tool. It reports false and warns when the id
// is unknown. The id itself never changes.
func (r *Registry) UpdateTool(id string, p Patch) bool {
	t, ok := r.tools[id]
	if !ok {
		r.log.Warn("update of unknown tool", "id", id)
		return false
	}
	if p.Kind != nil {
		if p.Kind.Valid() {
			t.Kind = *p.Kind
		} else {
			r.log.Warn("invalid tool kind", "value", *p.Kind, "id", id)
		}
	}
	setString(&t.Label, p.Label)
	setString(&t.Icon, p.Icon)
	setString(&t.Tooltip, p.Tooltip)
	setString(&t.Shortcut, p.Shortcut)
	setString(&t.Group, p.Group)
	setString(&t.CustomStyle, p.CustomStyle)
	setString(&t.Badge, p.Badge)
	if p.Disabled != nil {
		t.Disabled = *p.Disabled
	}
	if p.Visible != nil {
		t.Visible = *p.Visible
	}
	if p.ForceDisplayMode != nil {
		if *p.ForceDisplayMode == "" || p.ForceDisplayMode.Valid() {
			t.ForceDisplayMode = *p.ForceDisplayMode
		} else {
			r.log.Warn("invalid forced display mode", "value", *p.ForceDisplayMode, "id", id)
		}
	}
	if p.OnActivate != nil {
		t.OnActivate = p.OnActivate
	}
	return true
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// GetTool returns a copy of the tool.
func (r *Registry) GetTool(id string) (Tool, bool) {
	t, ok := r.tools[id]
	if !ok {
		return Tool{}, false
	}
	return *t, true
}

// HasTool reports whether id is stored.
func (r *Registry) HasTool(id string) bool {
	_, ok := r.tools[id]
	return ok
}

// Count returns the number of stored tools.
func (r *Registry) Count() int { return len(r.order) }

// Clear removes every tool and group.
func (r *Registry) Clear() {
	r.tools = make(map[string]*Tool)
	r.order = nil
	r.groups = make(map[string]*Group)
	r.groupOrder = nil
}

// Tools returns every tool in insertion order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.tools[id])
	}
	return out
}

// Group returns a copy of a group.
func (r *Registry) Group(id string) (Group, bool) {
	g, ok := r.groups[id]
	if !ok {
		return Group{}, false
	}
	cp := *g
	cp.ToolIDs = append([]string(nil), g.ToolIDs...)
	return cp, true
}

// Groups returns every group in insertion order.
func (r *Registry) Groups() []Group {
	out := make([]Group, 0, len(r.groupOrder))
	for _, id := range r.groupOrder {
		g, _ := r.Group(id)
		out = append(out, g)
	}
	return out
}

// SetGroupCollapsed flips the collapsed flag of a collapsible group.
func (r *Registry) SetGroupCollapsed(id string, collapsed bool) bool {
	g, ok := r.groups[id]
	if !ok || !g.Collapsible {
		return false
	}
	g.Collapsed = collapsed
	return true
}

// ToolsByGroup returns the tools whose group is id, in insertion order.
func (r *Registry) ToolsByGroup(id string) []Tool {
	var out []Tool
	for _, tid := range r.order {
		if t := r.tools[tid]; t.Group == id {
			out = append(out, *t)
		}
	}
	return out
}

// SetActive marks id as the only active tool. An empty id clears it. It
// reports false when id is not stored.
func (r *Registry) SetActive(id string) bool {
	if id != "" {
		if _, ok := r.tools[id]; !ok {
			return false
		}
	}
	for _, t := range r.tools {
		t.Active = t.ID == id
	}
	return true
}

// Active returns the id of the active tool, or "".
func (r *Registry) Active() string {
	for _, id := range r.order {
		if r.tools[id].Active {
			return id
		}
	}
	return ""
}

// Layout is the render-ready partition of visible tools.
type Layout struct {
	// Groups lists non-empty groups in insertion order.
	Groups    []Group
	ByGroup   map[string][]Tool
	Ungrouped []Tool
}

// Partition splits visible tools into group buckets and the ungrouped
// bucket, keeping insertion order in each. Tools naming a group that does
// not exist land in the ungrouped bucket.
func (r *Registry) Partition() Layout {
	l := Layout{ByGroup: make(map[string][]Tool)}
	for _, id := range r.order {
		t := r.tools[id]
		if !t.Visible {
			continue
		}
		if _, ok := r.groups[t.Group]; t.Group != "" && ok {
			l.ByGroup[t.Group] = append(l.ByGroup[t.Group], *t)
			continue
		}
		l.Ungrouped = append(l.Ungrouped, *t)
	}
	for _, gid := range r.groupOrder {
		if len(l.ByGroup[gid]) == 0 {
			continue
		}
		g, _ := r.Group(gid)
		l.Groups = append(l.Groups, g)
	}
	return l
}

// Flatten returns the visible tools in render order: groups first, then
// ungrouped tools.
func (l Layout) Flatten() []Tool {
	var out []Tool
	for _, g := range l.Groups {
		out = append(out, l.ByGroup[g.ID]...)
	}
	return append(out, l.Ungrouped...)
}
