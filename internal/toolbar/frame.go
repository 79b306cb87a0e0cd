package toolbar

import (
	"strconv"
	"strings"

	"github.com/sadopc/floatbar/internal/toolbar/drag"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
	"github.com/sadopc/floatbar/internal/toolbar/tooltip"
)

// Ids of the controls the toolbar draws around its tools. Passing them to
// Click operates the control.
const (
	CollapseID   = "__collapse"
	DragHandleID = "__drag-handle"
	PagePrevID   = "__page-prev"
	PageNextID   = "__page-next"
	setDotPrefix = "__set-"
)

// SetDotID returns the id of the indicator dot for tool set i.
func SetDotID(i int) string { return setDotPrefix + strconv.Itoa(i) }

func parseSetDot(id string) (int, bool) {
	s, ok := strings.CutPrefix(id, setDotPrefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	return i, err == nil
}

// Item is one rendered tool.
type Item struct {
	ID          string        `json:"id"`
	Kind        registry.Kind `json:"kind"`
	Label       string        `json:"label,omitempty"`
	Icon        string        `json:"icon,omitempty"`
	Tooltip     string        `json:"tooltip,omitempty"`
	Shortcut    string        `json:"shortcut,omitempty"`
	Badge       string        `json:"badge,omitempty"`
	CustomStyle string        `json:"custom_style,omitempty"`
	Trailing    string        `json:"trailing,omitempty"`
	Disabled    bool          `json:"disabled,omitempty"`
	Active      bool          `json:"active,omitempty"`
	Focused     bool          `json:"focused,omitempty"`
}

// Section is a group of items, or the ungrouped items when GroupID is "".
type Section struct {
	GroupID     string `json:"group_id,omitempty"`
	Label       string `json:"label,omitempty"`
	Collapsible bool   `json:"collapsible,omitempty"`
	Collapsed   bool   `json:"collapsed,omitempty"`
	Items       []Item `json:"items"`
}

// Control is a toolbar-owned button.
type Control struct {
	ID      string `json:"id"`
	Icon    string `json:"icon"`
	Tooltip string `json:"tooltip,omitempty"`
	Enabled bool   `json:"enabled"`
}

// Pager holds the page navigation buttons shown while paginated.
type Pager struct {
	Page  int     `json:"page"`
	Pages int     `json:"pages"`
	Prev  Control `json:"prev"`
	Next  Control `json:"next"`
}

// SetDot is one tool-set indicator dot.
type SetDot struct {
	ID     string `json:"id"`
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Active bool   `json:"active,omitempty"`
}

// SnapHint marks an anchor the toolbar may snap to.
type SnapHint struct {
	Anchor option.Anchor `json:"anchor"`
	Active bool          `json:"active,omitempty"`
}

// Frame is everything a host needs to draw the toolbar. It is derived
// from controller state and never read back.
type Frame struct {
	Hidden          bool               `json:"hidden,omitempty"`
	Collapsed       bool               `json:"collapsed,omitempty"`
	Theme           option.Theme       `json:"theme"`
	EffectiveTheme  option.Theme       `json:"effective_theme"`
	Orientation     option.Orientation `json:"orientation"`
	Size            option.Size        `json:"size"`
	DisplayMode     option.DisplayMode `json:"display_mode"`
	Position        option.Anchor      `json:"position"`
	Free            bool               `json:"free,omitempty"`
	Bar             drag.Rect          `json:"bar"`
	Dragging        bool               `json:"dragging,omitempty"`
	Snapping        bool               `json:"snapping,omitempty"`
	TooltipPosition tooltip.Position   `json:"tooltip_position"`
	DragHandle      *Control           `json:"drag_handle,omitempty"`
	Collapse        *Control           `json:"collapse,omitempty"`
	Sections        []Section          `json:"sections"`
	Pager           *Pager             `json:"pager,omitempty"`
	Sets            []SetDot           `json:"sets,omitempty"`
	SnapHints       []SnapHint         `json:"snap_hints,omitempty"`
}

// Items returns every rendered item in order.
func (f Frame) Items() []Item {
	var out []Item
	for _, s := range f.Sections {
		out = append(out, s.Items...)
	}
	return out
}

// Item returns the rendered item with id.
func (f Frame) Item(id string) (Item, bool) {
	for _, s := range f.Sections {
		for _, it := range s.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

func (t *Toolbar) resolveIcon(ref string) string {
	if ref == "" || t.icons == nil {
		return ""
	}
	if g, ok := t.iconCache[ref]; ok {
		return g
	}
	g := t.icons.Resolve(ref)
	t.iconCache[ref] = g
	return g
}

func (t *Toolbar) item(tool registry.Tool) Item {
	it := Item{
		ID:          tool.ID,
		Kind:        tool.Kind,
		Tooltip:     tool.Tooltip,
		Shortcut:    tool.Shortcut,
		Badge:       tool.Badge,
		CustomStyle: tool.CustomStyle,
		Disabled:    tool.Disabled,
		Active:      tool.Active,
		Focused:     tool.ID == t.focus,
	}
	if tool.Kind == registry.Separator {
		return it
	}
	mode := t.mode
	if tool.ForceDisplayMode != "" {
		mode = tool.ForceDisplayMode
	}
	if mode.ShowsIcon() {
		it.Icon = t.resolveIcon(tool.Icon)
	}
	if mode.ShowsLabel() {
		it.Label = tool.Label
	}
	if it.Icon == "" && it.Label == "" {
		// never draw an empty button
		it.Label = tool.Label
		if it.Label == "" {
			it.Icon = t.resolveIcon(tool.Icon)
		}
	}
	if tool.Kind == registry.Dropdown {
		it.Trailing = t.resolveIcon("navigation.chevron_down")
	}
	return it
}

// expanded flattens the visible tools, leaving out members of collapsed
// groups. Those neither render nor take a page slot.
func expanded(l registry.Layout) []registry.Tool {
	var out []registry.Tool
	for _, g := range l.Groups {
		if !g.Collapsed {
			out = append(out, l.ByGroup[g.ID]...)
		}
	}
	return append(out, l.Ungrouped...)
}

// naturalItems returns every rendered tool as an item, unpaginated.
func (t *Toolbar) naturalItems() []Item {
	tools := expanded(t.reg.Partition())
	out := make([]Item, 0, len(tools))
	for _, tool := range tools {
		out = append(out, t.item(tool))
	}
	return out
}

// pageableCount counts rendered non-separator tools.
func (t *Toolbar) pageableCount() int {
	n := 0
	for _, tool := range expanded(t.reg.Partition()) {
		if tool.Kind != registry.Separator {
			n++
		}
	}
	return n
}

func (t *Toolbar) sections() []Section {
	layout := t.reg.Partition()
	paged := t.pager.State().Enabled
	last := max(t.pageableCount()-1, 0)
	index := 0
	build := func(tools []registry.Tool) []Item {
		var items []Item
		for _, tool := range tools {
			if tool.Kind == registry.Separator {
				if !paged {
					items = append(items, t.item(tool))
				}
				continue
			}
			if t.pager.Visible(index) {
				items = append(items, t.item(tool))
			}
			index++
		}
		return items
	}

	var out []Section
	for _, g := range layout.Groups {
		var items []Item
		if g.Collapsed {
			// the header stays on the page holding the group's position
			if !t.pager.Visible(min(index, last)) {
				continue
			}
		} else if items = build(layout.ByGroup[g.ID]); len(items) == 0 {
			continue
		}
		out = append(out, Section{
			GroupID:     g.ID,
			Label:       g.Label,
			Collapsible: g.Collapsible,
			Collapsed:   g.Collapsed,
			Items:       items,
		})
	}
	if items := build(layout.Ungrouped); len(items) > 0 {
		out = append(out, Section{Items: items})
	}
	return out
}

func (t *Toolbar) collapseIcon() string {
	var ref string
	switch {
	case t.orientation == option.Horizontal && t.collapsed:
		ref = "navigation.chevron_down"
	case t.orientation == option.Horizontal:
		ref = "navigation.chevron_up"
	case t.collapsed:
		ref = "navigation.chevron_right"
	default:
		ref = "navigation.chevron_left"
	}
	return t.resolveIcon(ref)
}

func (t *Toolbar) collapseTooltip() string {
	if t.collapsed {
		return "Expand"
	}
	return "Collapse"
}

// buildFrame projects the current state without mutating it. Frame calls
// it on every read.
func (t *Toolbar) buildFrame() Frame {
	f := Frame{
		Hidden:          t.hidden,
		Collapsed:       t.collapsed,
		Theme:           t.theme,
		EffectiveTheme:  t.EffectiveTheme(),
		Orientation:     t.orientation,
		Size:            t.size,
		DisplayMode:     t.mode,
		Position:        t.position,
		Free:            t.free,
		Dragging:        t.dragger.State() == drag.Dragging,
		Snapping:        t.dragger.State() == drag.Settling,
		TooltipPosition: tooltip.PositionFor(t.position),
	}
	if t.cfg.Draggable {
		f.DragHandle = &Control{ID: DragHandleID, Icon: t.resolveIcon("drag.vertical"), Enabled: true}
	}
	if t.cfg.Collapsible {
		f.Collapse = &Control{ID: CollapseID, Icon: t.collapseIcon(), Tooltip: t.collapseTooltip(), Enabled: true}
	}
	if !t.collapsed {
		f.Sections = t.sections()
		if st := t.pager.State(); st.Enabled {
			f.Pager = &Pager{
				Page:  st.Page,
				Pages: st.Pages,
				Prev:  Control{ID: PagePrevID, Icon: t.resolveIcon("navigation.angle_left"), Tooltip: "Previous page", Enabled: t.pager.CanPrevious()},
				Next:  Control{ID: PageNextID, Icon: t.resolveIcon("navigation.angle_right"), Tooltip: "Next page", Enabled: t.pager.CanNext()},
			}
		}
		if n := len(t.cfg.ToolSets); n > 1 && *t.cfg.ShowSetIndicator {
			for i, s := range t.cfg.ToolSets {
				f.Sets = append(f.Sets, SetDot{ID: SetDotID(i), Index: i, Name: setName(s, i), Active: i == t.set})
			}
		}
	}
	for _, a := range t.dragger.Hints() {
		f.SnapHints = append(f.SnapHints, SnapHint{Anchor: a, Active: a == t.dragger.Nearest()})
	}
	f.Bar = t.barRect(f)
	return f
}

func setName(s ToolSet, i int) string {
	if s.Name != "" {
		return s.Name
	}
	return "Set " + strconv.Itoa(i+1)
}

// barSize is the rendered size of f, measured when possible.
func (t *Toolbar) barSize(f Frame) drag.Size {
	if t.measurer != nil {
		return t.measurer.Size(f)
	}
	m := t.pager.Metrics()
	n := 0
	for _, s := range f.Sections {
		for _, it := range s.Items {
			if it.Kind != registry.Separator {
				n++
			}
		}
	}
	extent := m.Estimate(n, t.size, t.mode)
	if f.Pager != nil {
		extent += 2 * m.NavButton
	}
	cross := m.BaseWidth[t.size] + m.Padding
	if t.orientation == option.Vertical {
		return drag.Size{W: cross, H: extent}
	}
	return drag.Size{W: extent, H: cross}
}

func (t *Toolbar) barRect(f Frame) drag.Rect {
	size := t.barSize(f)
	if t.free {
		return drag.Rect{Point: t.dragBounds(size).Clamp(t.offset), Size: size}
	}
	return drag.Rect{
		Point: drag.Place(t.position, t.containerSize(), size, t.cfg.AnchorInset),
		Size:  size,
	}
}
