package definition

import (
	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/builtin"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
)

// Apply copies the definition's options and tools into cfg. Host-owned
// fields (container, scheduler, measurer, callbacks) are left alone.
// Values are passed through unchecked; the controller validates them.
func (d *Definition) Apply(cfg *toolbar.Config) {
	cfg.Position = option.Anchor(d.Position)
	cfg.Orientation = option.Orientation(d.Orientation)
	cfg.Theme = option.Theme(d.Theme)
	cfg.Size = option.Size(d.Size)
	cfg.DisplayMode = option.DisplayMode(d.DisplayMode)
	cfg.Themes = nil
	for _, th := range d.Themes {
		cfg.Themes = append(cfg.Themes, option.Theme(th))
	}

	cfg.Draggable = d.Draggable
	cfg.SnapToPosition = d.SnapToPosition
	cfg.AllowedSnapPositions = nil
	for _, a := range d.AllowedSnapPositions {
		cfg.AllowedSnapPositions = append(cfg.AllowedSnapPositions, option.Anchor(a))
	}
	cfg.Collapsible = d.Collapsible
	cfg.Collapsed = d.Collapsed
	cfg.ShowSetIndicator = d.ShowSetIndicator

	cfg.BuiltInTools = d.BuiltInTools
	cfg.BuiltInOptions = d.BuiltInOptions

	cfg.Tools = descriptors(d.Tools)
	cfg.Groups = groups(d.Groups)
	cfg.ToolSets = nil
	for _, s := range d.ToolSets {
		cfg.ToolSets = append(cfg.ToolSets, toolbar.ToolSet{
			Name:   s.Name,
			Tools:  descriptors(s.Tools),
			Groups: groups(s.Groups),
			Nav:    s.Nav,
		})
	}
	cfg.DefaultToolSet = d.DefaultToolSet
}

// Descriptor converts a YAML tool entry.
func (tl Tool) Descriptor() registry.Descriptor {
	desc := registry.Descriptor{
		ID:               tl.ID,
		Kind:             registry.Kind(tl.Kind),
		Label:            tl.Label,
		Icon:             tl.Icon,
		Tooltip:          tl.Tooltip,
		Shortcut:         tl.Shortcut,
		Group:            tl.Group,
		Disabled:         tl.Disabled,
		Visible:          tl.Visible,
		CustomStyle:      tl.CustomStyle,
		Badge:            tl.Badge,
		ForceDisplayMode: option.DisplayMode(tl.ForceDisplayMode),
		Persistent:       tl.Persistent,
		BuiltIn:          tl.BuiltIn,
		Script:           tl.Script,
	}
	if tl.BuiltIn != "" {
		desc.BuiltInOptions = builtin.Options{ID: tl.ID, Tooltip: tl.Tooltip, CustomStyle: tl.CustomStyle}
	}
	return desc
}

func descriptors(tools []Tool) []registry.Descriptor {
	if len(tools) == 0 {
		return nil
	}
	out := make([]registry.Descriptor, 0, len(tools))
	for _, tl := range tools {
		out = append(out, tl.Descriptor())
	}
	return out
}

func groups(gs []Group) []registry.GroupDescriptor {
	if len(gs) == 0 {
		return nil
	}
	out := make([]registry.GroupDescriptor, 0, len(gs))
	for _, g := range gs {
		out = append(out, registry.GroupDescriptor{
			ID:          g.ID,
			Label:       g.Label,
			Collapsible: g.Collapsible,
			Collapsed:   g.Collapsed,
			Tools:       descriptors(g.Tools),
		})
	}
	return out
}
