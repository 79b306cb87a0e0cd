// Package builtin implements the self-updating tools that control
// toolbar-wide settings: theme, display mode and size.
package builtin

import (
	"maps"

	"github.com/sadopc/floatbar/internal/toolbar/events"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
)

// Keys of the stock built-in tools.
const (
	KeyTheme       = "theme"
	KeyDisplayMode = "displayMode"
	KeySize        = "size"
)

// Host is the controller as seen by a built-in tool. Built-in tools never
// hold state the host also tracks; they read it back on every refresh.
type Host interface {
	Theme() option.Theme
	SetTheme(option.Theme)
	Size() option.Size
	NextSize()
	DisplayMode() option.DisplayMode
	NextDisplayMode()

	PutTool(registry.Tool) string
	UpdateTool(id string, p registry.Patch) bool
	RemoveTool(id string)
	HasTool(id string) bool

	On(name string, fn events.Handler) events.Subscription
	Off(events.Subscription)
}

// Tool is the capability shared by every built-in tool variant.
type Tool interface {
	Key() string
	DefaultID() string
	Icon(state string) string
	Label(state string) string
	Tooltip(state string) string
	CurrentState() string
	// HandleAction advances the setting to its next value.
	HandleAction()
	// Register inserts the tool and subscribes to its change event. Calling
	// it again re-inserts the tool without subscribing twice.
	Register() string
	// Unregister removes the tool. It is safe on a tool never registered.
	Unregister()
	// ID is the registered id, or "" when not registered.
	ID() string
}

// Factory builds a built-in tool bound to a host.
type Factory func(h Host, opts Options) Tool

// Options override a built-in tool's defaults. Icons and Labels are keyed
// by state value ("light", "small", "icon", ...). Themes is the cycle order
// for the theme switcher.
type Options struct {
	ID               string             `yaml:"id,omitempty"`
	Tooltip          string             `yaml:"tooltip,omitempty"`
	CustomStyle      string             `yaml:"custom_style,omitempty"`
	ForceDisplayMode option.DisplayMode `yaml:"force_display_mode,omitempty"`
	Icons            map[string]string  `yaml:"icons,omitempty"`
	Labels           map[string]string  `yaml:"labels,omitempty"`
	Themes           []option.Theme     `yaml:"themes,omitempty"`
}

// Switcher is a built-in tool that cycles one setting. Every stock variant
// is a Switcher with its own tables and accessors.
type Switcher struct {
	key       string
	defaultID string
	event     string
	noun      string
	fallback  string
	icons     map[string]string
	labels    map[string]string
	current   func() string
	advance   func()

	host Host
	opts Options
	id   string
	sub  events.Subscription
}

func (s *Switcher) Key() string       { return s.key }
func (s *Switcher) DefaultID() string { return s.defaultID }
func (s *Switcher) ID() string        { return s.id }

func (s *Switcher) CurrentState() string { return s.current() }

func (s *Switcher) Icon(state string) string {
	if v, ok := s.icons[state]; ok {
		return v
	}
	return s.icons[s.fallback]
}

func (s *Switcher) Label(state string) string {
	if v, ok := s.labels[state]; ok {
		return v
	}
	return s.noun
}

func (s *Switcher) Tooltip(state string) string {
	if s.opts.Tooltip != "" {
		return s.opts.Tooltip
	}
	return s.noun + ": " + s.Label(state)
}

func (s *Switcher) HandleAction() {
	s.advance()
	s.refresh()
}

func (s *Switcher) Register() string {
	state := s.CurrentState()
	id := s.opts.ID
	if id == "" {
		id = s.defaultID
	}
	style := s.opts.CustomStyle
	if style == "" {
		style = "active"
	}
	s.id = s.host.PutTool(registry.Tool{
		ID:               id,
		Kind:             registry.Button,
		Label:            s.Label(state),
		Icon:             s.Icon(state),
		Tooltip:          s.Tooltip(state),
		Visible:          true,
		CustomStyle:      style,
		ForceDisplayMode: s.opts.ForceDisplayMode,
		Persistent:       true,
		BuiltIn:          s.key,
		OnActivate:       func(registry.Tool) { s.HandleAction() },
	})
	if !s.sub.Valid() {
		s.sub = s.host.On(s.event, func(events.Event) { s.refresh() })
	}
	return s.id
}

func (s *Switcher) Unregister() {
	if s.sub.Valid() {
		s.host.Off(s.sub)
		s.sub = events.Subscription{}
	}
	if s.id != "" {
		s.host.RemoveTool(s.id)
		s.id = ""
	}
}

func (s *Switcher) refresh() {
	if s.id == "" || !s.host.HasTool(s.id) {
		return
	}
	state := s.CurrentState()
	s.host.UpdateTool(s.id, registry.Patch{
		Icon:    registry.String(s.Icon(state)),
		Label:   registry.String(s.Label(state)),
		Tooltip: registry.String(s.Tooltip(state)),
	})
}

func merged(defaults, overrides map[string]string) map[string]string {
	out := maps.Clone(defaults)
	for k, v := range overrides {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// NewThemeSwitcher cycles the theme through opts.Themes, or light, dark,
// system when empty.
func NewThemeSwitcher(h Host, opts Options) Tool {
	order := opts.Themes
	if len(order) == 0 {
		order = option.Themes
	}
	return &Switcher{
		key:       KeyTheme,
		defaultID: "__builtin-theme-switcher",
		event:     events.ThemeChange,
		noun:      "Theme",
		fallback:  string(option.System),
		icons: merged(map[string]string{
			"light":  "utils.sun",
			"dark":   "utils.moon",
			"system": "utils.monitor",
		}, opts.Icons),
		labels: merged(map[string]string{
			"light":  "Light",
			"dark":   "Dark",
			"system": "System",
		}, opts.Labels),
		current: func() string { return string(h.Theme()) },
		advance: func() { h.SetTheme(option.NextTheme(h.Theme(), order)) },
		host:    h,
		opts:    opts,
	}
}

// NewDisplayModeSwitcher cycles icon, both, label.
func NewDisplayModeSwitcher(h Host, opts Options) Tool {
	return &Switcher{
		key:       KeyDisplayMode,
		defaultID: "__builtin-display-mode-switcher",
		event:     events.DisplayModeChange,
		noun:      "Display",
		fallback:  string(option.Both),
		icons: merged(map[string]string{
			"icon":  "utils.menu",
			"label": "utils.menu",
			"both":  "utils.menu",
		}, opts.Icons),
		labels: merged(map[string]string{
			"icon":  "Icons Only",
			"label": "Labels Only",
			"both":  "Icons & Labels",
		}, opts.Labels),
		current: func() string { return string(h.DisplayMode()) },
		advance: h.NextDisplayMode,
		host:    h,
		opts:    opts,
	}
}

// NewSizeChanger cycles small, medium, large.
func NewSizeChanger(h Host, opts Options) Tool {
	return &Switcher{
		key:       KeySize,
		defaultID: "__builtin-size-changer",
		event:     events.SizeChange,
		noun:      "Size",
		fallback:  string(option.Medium),
		icons: merged(map[string]string{
			"small":  "edit.minus",
			"medium": "edit.equals",
			"large":  "edit.plus",
		}, opts.Icons),
		labels: merged(map[string]string{
			"small":  "Small",
			"medium": "Medium",
			"large":  "Large",
		}, opts.Labels),
		current: func() string { return string(h.Size()) },
		advance: h.NextSize,
		host:    h,
		opts:    opts,
	}
}
