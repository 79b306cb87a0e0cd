package toolbar

import (
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
)

// Event payloads. Each is delivered as events.Event.Payload for the event
// of the matching name.

type ToolClickEvent struct {
	ToolID string
	Tool   registry.Tool
}

type ToolActivateEvent struct {
	ToolID         string
	PreviousToolID string
}

type ThemeChangeEvent struct {
	Theme          option.Theme
	PreviousTheme  option.Theme
	EffectiveTheme option.Theme
}

// ThemeSystemChangeEvent reports a platform preference flip while the
// theme is system. Theme is the newly detected light or dark.
type ThemeSystemChangeEvent struct {
	Theme            option.Theme
	SystemPreference bool
}

type SizeChangeEvent struct {
	Size         option.Size
	PreviousSize option.Size
}

type DisplayModeChangeEvent struct {
	DisplayMode         option.DisplayMode
	PreviousDisplayMode option.DisplayMode
}

type OrientationChangeEvent struct {
	Orientation         option.Orientation
	PreviousOrientation option.Orientation
}

// PositionChangeEvent is emitted by SetPosition and by a snap on release.
type PositionChangeEvent struct {
	Position         option.Anchor
	PreviousPosition option.Anchor
	Snapped          bool
}

type ToolSetChangeEvent struct {
	CurrentSet  int
	PreviousSet int
	SetName     string
}

type CollapseEvent struct {
	Collapsed bool
}

type PageChangeEvent struct {
	Page  int
	Pages int
}
