// Package definition reads and writes toolbar definition files
// (*.floatbar.yaml) and turns them into controller configuration.
package definition

import (
	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/builtin"
)

// Definition is one toolbar described in YAML.
type Definition struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Position    string   `yaml:"position,omitempty"`
	Orientation string   `yaml:"orientation,omitempty"`
	Theme       string   `yaml:"theme,omitempty"`
	Themes      []string `yaml:"themes,omitempty"`
	Size        string   `yaml:"size,omitempty"`
	DisplayMode string   `yaml:"display_mode,omitempty"`

	Draggable            bool     `yaml:"draggable,omitempty"`
	SnapToPosition       bool     `yaml:"snap_to_position,omitempty"`
	AllowedSnapPositions []string `yaml:"allowed_snap_positions,omitempty"`
	Collapsible          bool     `yaml:"collapsible,omitempty"`
	Collapsed            bool     `yaml:"collapsed,omitempty"`
	ShowSetIndicator     *bool    `yaml:"show_set_indicator,omitempty"`

	BuiltInTools   map[string]bool            `yaml:"builtin_tools,omitempty"`
	BuiltInOptions map[string]builtin.Options `yaml:"builtin_options,omitempty"`

	Tools          []Tool    `yaml:"tools,omitempty"`
	Groups         []Group   `yaml:"groups,omitempty"`
	ToolSets       []ToolSet `yaml:"tool_sets,omitempty"`
	DefaultToolSet int       `yaml:"default_tool_set,omitempty"`
}

// Tool is a tool entry. Script is JavaScript run on activation.
type Tool struct {
	ID               string `yaml:"id,omitempty"`
	Kind             string `yaml:"kind,omitempty"` // button, toggle, radio, dropdown, separator
	Label            string `yaml:"label,omitempty"`
	Icon             string `yaml:"icon,omitempty"`
	Tooltip          string `yaml:"tooltip,omitempty"`
	Shortcut         string `yaml:"shortcut,omitempty"`
	Group            string `yaml:"group,omitempty"`
	Disabled         bool   `yaml:"disabled,omitempty"`
	Visible          *bool  `yaml:"visible,omitempty"`
	CustomStyle      string `yaml:"custom_style,omitempty"`
	Badge            string `yaml:"badge,omitempty"`
	ForceDisplayMode string `yaml:"force_display_mode,omitempty"`
	Persistent       bool   `yaml:"persistent,omitempty"`
	BuiltIn          string `yaml:"builtin,omitempty"`
	Script           string `yaml:"script,omitempty"`
}

// Group clusters tools under a label.
type Group struct {
	ID          string `yaml:"id,omitempty"`
	Label       string `yaml:"label,omitempty"`
	Collapsible bool   `yaml:"collapsible,omitempty"`
	Collapsed   bool   `yaml:"collapsed,omitempty"`
	Tools       []Tool `yaml:"tools,omitempty"`
}

// ToolSet is one switchable page of tools.
type ToolSet struct {
	Name   string             `yaml:"name,omitempty"`
	Tools  []Tool             `yaml:"tools,omitempty"`
	Groups []Group            `yaml:"groups,omitempty"`
	Nav    *toolbar.NavButton `yaml:"nav,omitempty"`
}

// AllTools returns every tool of the definition: top-level, grouped and
// in every tool set.
func (d *Definition) AllTools() []Tool {
	var out []Tool
	collect := func(tools []Tool, groups []Group) {
		out = append(out, tools...)
		for _, g := range groups {
			out = append(out, g.Tools...)
		}
	}
	collect(d.Tools, d.Groups)
	for _, s := range d.ToolSets {
		collect(s.Tools, s.Groups)
	}
	return out
}
