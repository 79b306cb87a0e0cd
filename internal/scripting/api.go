package scripting

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"
	"github.com/google/uuid"

	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
)

// scriptAPI is the `toolbar` global object exposed to scripts. Setters
// take the same string values as definition files and report whether the
// value was accepted.
type scriptAPI struct {
	tb   *toolbar.Toolbar
	tool registry.Tool
	logs []string
}

// scriptTool is the read-only view of a tool handed to scripts.
type scriptTool struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Tooltip  string `json:"tooltip"`
	Shortcut string `json:"shortcut"`
	Group    string `json:"group"`
	Badge    string `json:"badge"`
	Active   bool   `json:"active"`
	Disabled bool   `json:"disabled"`
}

func newScriptAPI(tb *toolbar.Toolbar, tool registry.Tool) *scriptAPI {
	return &scriptAPI{tb: tb, tool: tool}
}

func viewOf(tool registry.Tool) scriptTool {
	return scriptTool{
		ID:       tool.ID,
		Kind:     string(tool.Kind),
		Label:    tool.Label,
		Tooltip:  tool.Tooltip,
		Shortcut: tool.Shortcut,
		Group:    tool.Group,
		Badge:    tool.Badge,
		Active:   tool.Active,
		Disabled: tool.Disabled,
	}
}

func (a *scriptAPI) registerOnRuntime(vm *goja.Runtime) {
	obj := vm.NewObject()
	tb := a.tb

	obj.Set("log", func(call goja.FunctionCall) goja.Value {
		args := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = fmt.Sprint(arg.Export())
		}
		a.logs = append(a.logs, strings.Join(args, " "))
		return goja.Undefined()
	})
	obj.Set("uuid", func() string { return uuid.New().String() })
	obj.Set("tool", viewOf(a.tool))

	// appearance
	obj.Set("theme", func() string { return string(tb.Theme()) })
	obj.Set("effectiveTheme", func() string { return string(tb.EffectiveTheme()) })
	obj.Set("setTheme", func(s string) bool {
		v, ok := option.ParseTheme(s)
		if ok {
			tb.SetTheme(v)
		}
		return ok
	})
	obj.Set("size", func() string { return string(tb.Size()) })
	obj.Set("setSize", func(s string) bool {
		v, ok := option.ParseSize(s)
		if ok {
			tb.SetSize(v)
		}
		return ok
	})
	obj.Set("nextSize", tb.NextSize)
	obj.Set("previousSize", tb.PreviousSize)
	obj.Set("displayMode", func() string { return string(tb.DisplayMode()) })
	obj.Set("setDisplayMode", func(s string) bool {
		v, ok := option.ParseDisplayMode(s)
		if ok {
			tb.SetDisplayMode(v)
		}
		return ok
	})
	obj.Set("nextDisplayMode", tb.NextDisplayMode)
	obj.Set("orientation", func() string { return string(tb.Orientation()) })
	obj.Set("setOrientation", func(s string) bool {
		v, ok := option.ParseOrientation(s)
		if ok {
			tb.SetOrientation(v)
		}
		return ok
	})
	obj.Set("toggleOrientation", tb.ToggleOrientation)
	obj.Set("position", func() string { return string(tb.Position()) })
	obj.Set("setPosition", func(s string) bool {
		v, ok := option.ParseAnchor(s)
		if ok {
			tb.SetPosition(v)
		}
		return ok
	})

	// visibility
	obj.Set("show", tb.Show)
	obj.Set("hide", tb.Hide)
	obj.Set("toggleCollapse", tb.ToggleCollapse)

	// tool sets and pages
	obj.Set("switchToolSet", tb.SwitchToolSet)
	obj.Set("nextToolSet", tb.NextToolSet)
	obj.Set("previousToolSet", tb.PreviousToolSet)
	obj.Set("currentToolSet", tb.CurrentToolSet)
	obj.Set("toolSetCount", tb.ToolSetCount)
	obj.Set("nextPage", tb.NextPage)
	obj.Set("previousPage", tb.PreviousPage)

	// tools
	obj.Set("activeTool", tb.ActiveTool)
	obj.Set("setActiveTool", tb.SetActiveTool)
	obj.Set("hasTool", tb.HasTool)
	obj.Set("getTool", func(id string) goja.Value {
		tool, ok := tb.GetTool(id)
		if !ok {
			return goja.Null()
		}
		return vm.ToValue(viewOf(tool))
	})
	obj.Set("updateTool", func(id string, fields map[string]any) bool {
		return tb.UpdateTool(id, patchFrom(fields))
	})

	vm.Set("toolbar", obj)
}

// patchFrom maps a script object onto a registry patch. Unknown keys and
// mistyped values are ignored.
func patchFrom(fields map[string]any) registry.Patch {
	var p registry.Patch
	str := func(key string) *string {
		if s, ok := fields[key].(string); ok {
			return &s
		}
		return nil
	}
	p.Label = str("label")
	p.Icon = str("icon")
	p.Tooltip = str("tooltip")
	p.Shortcut = str("shortcut")
	p.Badge = str("badge")
	p.CustomStyle = str("customStyle")
	if b, ok := fields["disabled"].(bool); ok {
		p.Disabled = &b
	}
	if b, ok := fields["visible"].(bool); ok {
		p.Visible = &b
	}
	return p
}
