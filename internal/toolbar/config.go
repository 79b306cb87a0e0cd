package toolbar

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/sadopc/floatbar/internal/core/settings"
	"github.com/sadopc/floatbar/internal/toolbar/builtin"
	"github.com/sadopc/floatbar/internal/toolbar/colorscheme"
	"github.com/sadopc/floatbar/internal/toolbar/drag"
	"github.com/sadopc/floatbar/internal/toolbar/icons"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/pagination"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
	"github.com/sadopc/floatbar/internal/toolbar/schedule"
	"github.com/sadopc/floatbar/internal/toolbar/tooltip"
)

// ErrNoContainer is returned by New when Config.Container is nil.
var ErrNoContainer = errors.New("toolbar: container not found")

// Container is the element the toolbar is mounted in.
type Container interface {
	ClientSize() drag.Size
}

// Viewport is implemented by containers whose visible area differs from
// their client box. Pagination sizes against the viewport when present.
type Viewport interface {
	ViewportSize() drag.Size
}

// Measurer reports real rendered extents. Without one the controller
// falls back to the pagination width table.
type Measurer interface {
	// Measure returns the natural extents of items laid out along o.
	Measure(items []Item, o option.Orientation) pagination.Measurement
	// Size returns the outer size of the rendered frame.
	Size(f Frame) drag.Size
}

// ScriptRunner runs the script attached to a tool.
type ScriptRunner interface {
	Run(t *Toolbar, tool registry.Tool) error
}

// NavButton configures the button that moves to another tool set. Target
// is "next" (the default), "previous" or a set index. ShowSeparator
// defaults to true.
type NavButton struct {
	ID            string `yaml:"id,omitempty"`
	Label         string `yaml:"label,omitempty"`
	Icon          string `yaml:"icon,omitempty"`
	Tooltip       string `yaml:"tooltip,omitempty"`
	Target        string `yaml:"target,omitempty"`
	ShowSeparator *bool  `yaml:"show_separator,omitempty"`
	CustomStyle   string `yaml:"custom_style,omitempty"`
}

// ToolSet is one switchable page of tools.
type ToolSet struct {
	Name   string
	Tools  []registry.Descriptor
	Groups []registry.GroupDescriptor
	Nav    *NavButton
}

// Config is the construction record. Invalid enumerated values are
// replaced by defaults with a warning.
type Config struct {
	Container Container

	Position    option.Anchor
	Orientation option.Orientation
	Theme       option.Theme
	Size        option.Size
	DisplayMode option.DisplayMode
	// Themes is the cycle order of the theme switcher.
	Themes []option.Theme

	Draggable            bool
	SnapToPosition       bool
	AllowedSnapPositions []option.Anchor
	Collapsible          bool
	Collapsed            bool
	// ShowSetIndicator defaults to true.
	ShowSetIndicator *bool
	AnchorInset      float64

	Tools          []registry.Descriptor
	Groups         []registry.GroupDescriptor
	ToolSets       []ToolSet
	DefaultToolSet int

	// BuiltInTools enables built-in tools by key.
	BuiltInTools     map[string]bool
	BuiltInOptions   map[string]builtin.Options
	BuiltInFactories map[string]builtin.Factory

	Metrics        pagination.Metrics
	ResizeDebounce time.Duration

	// Scheduler defers callbacks. Nil creates a loop drained through
	// Toolbar.Dispatch.
	Scheduler   schedule.Scheduler
	Icons       icons.Resolver
	Tooltips    tooltip.Manager
	ColorScheme colorscheme.Query
	Settings    *settings.Store
	Measurer    Measurer
	Scripts     ScriptRunner
	Logger      *slog.Logger

	OnToolClick         func(registry.Tool)
	OnStateChange       func(activeTool string)
	OnThemeChange       func(theme option.Theme, system bool)
	OnSizeChange        func(option.Size)
	OnDisplayModeChange func(option.DisplayMode)
	OnOrientationChange func(option.Orientation)
	OnPositionChange    func(option.Anchor)
	OnToolSetChange     func(index int, set ToolSet)
}

// normalize validates every enumerated option, logging and replacing
// invalid values.
func normalize(cfg Config, log *slog.Logger) Config {
	if cfg.Position == "" {
		cfg.Position = option.DefaultAnchor
	} else if !cfg.Position.Valid() {
		log.Warn("invalid position", "value", cfg.Position, "default", option.DefaultAnchor, "valid", option.Anchors)
		cfg.Position = option.DefaultAnchor
	}
	if cfg.Orientation == "" {
		cfg.Orientation = option.DefaultOrientation
	} else if !cfg.Orientation.Valid() {
		log.Warn("invalid orientation", "value", cfg.Orientation, "default", option.DefaultOrientation)
		cfg.Orientation = option.DefaultOrientation
	}
	if cfg.Theme == "" {
		cfg.Theme = option.DefaultTheme
	} else if !cfg.Theme.Valid() {
		log.Warn("invalid theme", "value", cfg.Theme, "default", option.DefaultTheme)
		cfg.Theme = option.DefaultTheme
	}
	if cfg.Size == "" {
		cfg.Size = option.DefaultSize
	} else if !cfg.Size.Valid() {
		log.Warn("invalid size", "value", cfg.Size, "default", option.DefaultSize)
		cfg.Size = option.DefaultSize
	}
	if cfg.DisplayMode == "" {
		cfg.DisplayMode = option.DefaultDisplayMode
	} else if !cfg.DisplayMode.Valid() {
		log.Warn("invalid display mode", "value", cfg.DisplayMode, "default", option.DefaultDisplayMode)
		cfg.DisplayMode = option.DefaultDisplayMode
	}

	themes := make([]option.Theme, 0, len(cfg.Themes))
	for _, th := range cfg.Themes {
		if !th.Valid() {
			log.Warn("invalid theme in cycle, ignoring", "value", th)
			continue
		}
		themes = append(themes, th)
	}
	if len(themes) == 0 {
		themes = slices.Clone(option.Themes)
	}
	cfg.Themes = themes

	allowed := make([]option.Anchor, 0, len(cfg.AllowedSnapPositions))
	for _, a := range cfg.AllowedSnapPositions {
		if !a.Valid() {
			log.Warn("invalid snap position, ignoring", "value", a)
			continue
		}
		allowed = append(allowed, a)
	}
	if len(allowed) == 0 {
		allowed = slices.Clone(option.Anchors)
	}
	cfg.AllowedSnapPositions = allowed

	if n := len(cfg.ToolSets); n > 0 && (cfg.DefaultToolSet < 0 || cfg.DefaultToolSet >= n) {
		log.Warn("invalid default tool set", "value", cfg.DefaultToolSet, "default", 0, "count", n)
		cfg.DefaultToolSet = 0
	}
	if cfg.ShowSetIndicator == nil {
		cfg.ShowSetIndicator = registry.Bool(true)
	}
	if cfg.AnchorInset < 0 {
		cfg.AnchorInset = 0
	}
	return cfg
}
