package definition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sadopc/floatbar/internal/toolbar/builtin"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
)

// Validate checks a definition without building a toolbar. The controller
// tolerates every problem reported here by falling back to defaults, so
// Validate exists to surface them before that happens. The returned error
// joins one error per problem.
func (d *Definition) Validate() error {
	v := &validator{ids: make(map[string]string)}

	v.enum("position", d.Position, func(s string) bool { _, ok := option.ParseAnchor(s); return ok })
	v.enum("orientation", d.Orientation, func(s string) bool { _, ok := option.ParseOrientation(s); return ok })
	v.enum("theme", d.Theme, func(s string) bool { _, ok := option.ParseTheme(s); return ok })
	v.enum("size", d.Size, func(s string) bool { _, ok := option.ParseSize(s); return ok })
	v.enum("display_mode", d.DisplayMode, func(s string) bool { _, ok := option.ParseDisplayMode(s); return ok })
	for i, th := range d.Themes {
		v.enum(fmt.Sprintf("themes[%d]", i), th, func(s string) bool { _, ok := option.ParseTheme(s); return ok })
	}
	for i, a := range d.AllowedSnapPositions {
		v.enum(fmt.Sprintf("allowed_snap_positions[%d]", i), a, func(s string) bool { _, ok := option.ParseAnchor(s); return ok })
	}
	for key := range d.BuiltInTools {
		v.builtin("builtin_tools", key)
	}
	for key := range d.BuiltInOptions {
		v.builtin("builtin_options", key)
	}

	v.scope("", d.Tools, d.Groups)
	for i, s := range d.ToolSets {
		// ids only need to be unique within one set
		v.ids = make(map[string]string)
		where := fmt.Sprintf("tool_sets[%d]", i)
		v.scope(where, s.Tools, s.Groups)
		if s.Nav != nil && s.Nav.Target != "" && !validTarget(s.Nav.Target) {
			v.add("%s.nav.target: invalid navigation target %q", where, s.Nav.Target)
		}
	}
	if n := len(d.ToolSets); n > 0 && (d.DefaultToolSet < 0 || d.DefaultToolSet >= n) {
		v.add("default_tool_set: %d out of range [0, %d)", d.DefaultToolSet, n)
	}
	if len(d.ToolSets) > 0 && (len(d.Tools) > 0 || len(d.Groups) > 0) {
		v.add("tools: ignored when tool_sets are defined")
	}
	return errors.Join(v.errs...)
}

type validator struct {
	errs []error
	ids  map[string]string
}

func (v *validator) add(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) enum(field, value string, ok func(string) bool) {
	if value != "" && !ok(value) {
		v.add("%s: invalid value %q", field, value)
	}
}

func (v *validator) builtin(field, key string) {
	switch key {
	case builtin.KeyTheme, builtin.KeyDisplayMode, builtin.KeySize:
	default:
		v.add("%s: unknown built-in tool %q", field, key)
	}
}

func (v *validator) scope(where string, tools []Tool, groups []Group) {
	prefix := where
	if prefix != "" {
		prefix += "."
	}
	groupIDs := make(map[string]bool)
	for _, g := range groups {
		if g.ID != "" {
			groupIDs[g.ID] = true
		}
	}
	for i, tl := range tools {
		v.tool(fmt.Sprintf("%stools[%d]", prefix, i), tl)
		if tl.Group != "" && !groupIDs[tl.Group] {
			v.add("%stools[%d].group: unknown group %q", prefix, i, tl.Group)
		}
	}
	for i, g := range groups {
		for j, tl := range g.Tools {
			v.tool(fmt.Sprintf("%sgroups[%d].tools[%d]", prefix, i, j), tl)
		}
	}
}

func (v *validator) tool(field string, tl Tool) {
	if tl.Kind != "" && !registry.Kind(tl.Kind).Valid() {
		v.add("%s.kind: invalid value %q", field, tl.Kind)
	}
	if tl.ForceDisplayMode != "" {
		if _, ok := option.ParseDisplayMode(tl.ForceDisplayMode); !ok {
			v.add("%s.force_display_mode: invalid value %q", field, tl.ForceDisplayMode)
		}
	}
	if tl.BuiltIn != "" {
		v.builtin(field+".builtin", tl.BuiltIn)
	}
	if tl.ID == "" {
		return
	}
	if prev, dup := v.ids[tl.ID]; dup {
		v.add("%s.id: duplicate id %q (first used at %s)", field, tl.ID, prev)
		return
	}
	v.ids[tl.ID] = field
}

func validTarget(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next", "previous", "prev":
		return true
	}
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}
