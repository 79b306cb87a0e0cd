// Package msgs holds the Bubble Tea messages shared by the host's
// components and its root model.
package msgs

import (
	"time"

	"github.com/sadopc/floatbar/internal/toolbar/events"
)

// AppMode is the input mode. Keys go to the finder or the help overlay
// while they are open and to the toolbar otherwise.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeFinder
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeFinder:
		return "FIND"
	case ModeHelp:
		return "HELP"
	}
	return "UNKNOWN"
}

// Hint is the key reminder the status bar shows in mode m.
func (m AppMode) Hint() string {
	switch m {
	case ModeFinder:
		return "enter:choose  esc:close"
	case ModeHelp:
		return "?/esc:close"
	}
	return "?:help  ctrl+f:find"
}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// OpenFinderMsg opens the tool finder.
type OpenFinderMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}

// ToolChosenMsg is emitted when the finder picks a tool. Set is the tool
// set holding it, or -1 when the toolbar has no sets.
type ToolChosenMsg struct {
	Set    int
	ToolID string
}

// ScheduledMsg carries a toolbar callback that came due. It must run on
// the Update goroutine.
type ScheduledMsg struct {
	Fn func()
}

// ToolbarEventMsg relays a toolbar event into the update loop.
type ToolbarEventMsg struct {
	Event events.Event
}
