package definition

import "github.com/sadopc/floatbar/internal/toolbar/builtin"

// Sample returns the starter definition written by "floatbar init".
func Sample(name string) *Definition {
	if name == "" {
		name = "My Toolbar"
	}
	return &Definition{
		Name:           name,
		Version:        "1",
		Position:       "bottom-center",
		Orientation:    "horizontal",
		Theme:          "system",
		Size:           "medium",
		DisplayMode:    "both",
		Draggable:      true,
		SnapToPosition: true,
		Collapsible:    true,
		BuiltInTools: map[string]bool{
			builtin.KeyTheme:       true,
			builtin.KeyDisplayMode: true,
			builtin.KeySize:        true,
		},
		ToolSets: []ToolSet{
			{
				Name: "Edit",
				Tools: []Tool{
					{ID: "select", Kind: "radio", Label: "Select", Icon: "shape.arrow", Tooltip: "Select", Shortcut: "V"},
					{ID: "pen", Kind: "radio", Label: "Pen", Icon: "edit.pen", Tooltip: "Draw", Shortcut: "P"},
					{ID: "eraser", Kind: "radio", Label: "Eraser", Icon: "edit.eraser", Tooltip: "Erase", Shortcut: "E"},
					{Kind: "separator"},
					{ID: "grid", Kind: "toggle", Label: "Grid", Icon: "shape.square", Tooltip: "Show grid", Shortcut: "G"},
				},
			},
			{
				Name: "View",
				Tools: []Tool{
					{ID: "zoom-in", Label: "Zoom in", Icon: "edit.plus", Shortcut: "+"},
					{ID: "zoom-out", Label: "Zoom out", Icon: "edit.minus", Shortcut: "-"},
					{
						ID:      "flip",
						Label:   "Flip",
						Icon:    "utils.settings",
						Tooltip: "Toggle orientation",
						Script:  "toolbar.toggleOrientation()",
					},
				},
			},
		},
	}
}
