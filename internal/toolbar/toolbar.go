// Package toolbar is the floating toolbar controller. It owns the tool
// registry, the pagination and drag engines and the built-in tools, and
// projects them into a Frame for the host to draw.
package toolbar

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/sadopc/floatbar/internal/core/settings"
	"github.com/sadopc/floatbar/internal/toolbar/builtin"
	"github.com/sadopc/floatbar/internal/toolbar/colorscheme"
	"github.com/sadopc/floatbar/internal/toolbar/drag"
	"github.com/sadopc/floatbar/internal/toolbar/events"
	"github.com/sadopc/floatbar/internal/toolbar/icons"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/pagination"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
	"github.com/sadopc/floatbar/internal/toolbar/schedule"
	"github.com/sadopc/floatbar/internal/toolbar/tooltip"
)

// Settings keys written by the mutators.
const (
	settingTheme       = "theme"
	settingSize        = "size"
	settingDisplayMode = "displayMode"
	settingOrientation = "orientation"
	settingPosition    = "position"
)

// Toolbar is not safe for concurrent use. Every method, and every
// callback the scheduler delivers, must run on the host's UI goroutine.
type Toolbar struct {
	cfg Config
	log *slog.Logger

	bus      *events.Bus
	reg      *registry.Registry
	builtins *builtin.Manager
	pager    *pagination.Engine
	dragger  *drag.Engine

	sched  schedule.Scheduler
	loop   *schedule.Loop
	resize *schedule.Debouncer
	diag   schedule.Timer

	icons      icons.Resolver
	iconCache  map[string]string
	tips       tooltip.Manager
	tipped     map[string]tooltip.Position
	scheme     colorscheme.Query
	stopScheme func()
	store      *settings.Store
	measurer   Measurer
	scripts    ScriptRunner

	theme       option.Theme
	size        option.Size
	mode        option.DisplayMode
	orientation option.Orientation
	position    option.Anchor
	collapsed   bool
	hidden      bool
	set         int
	free        bool
	offset      drag.Point
	focus       string

	// persistent holds descriptors added with Persistent set. They are
	// re-added after every tool-set switch.
	persistent []registry.Descriptor

	ready     bool
	destroyed bool
}

var _ builtin.Host = (*Toolbar)(nil)

// New builds a toolbar from cfg. Invalid options fall back to defaults
// with a warning; only a missing container is an error.
func New(cfg Config) (*Toolbar, error) {
	if cfg.Container == nil {
		return nil, ErrNoContainer
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "toolbar")
	cfg = normalize(cfg, log)

	t := &Toolbar{
		cfg:         cfg,
		log:         log,
		bus:         events.NewBus(),
		reg:         registry.New(log),
		pager:       pagination.New(cfg.Metrics),
		iconCache:   make(map[string]string),
		tipped:      make(map[string]tooltip.Position),
		icons:       cfg.Icons,
		tips:        cfg.Tooltips,
		scheme:      cfg.ColorScheme,
		store:       cfg.Settings,
		measurer:    cfg.Measurer,
		scripts:     cfg.Scripts,
		theme:       cfg.Theme,
		size:        cfg.Size,
		mode:        cfg.DisplayMode,
		orientation: cfg.Orientation,
		position:    cfg.Position,
		collapsed:   cfg.Collapsed,
	}
	if cfg.Scheduler == nil {
		t.loop = schedule.NewLoop(64)
		t.sched = t.loop
	} else {
		t.sched = cfg.Scheduler
	}
	if t.icons == nil {
		t.icons = icons.Default(log)
	}
	if t.tips == nil {
		t.tips = tooltip.NewRegistry()
	}
	t.restoreSettings()

	t.reg.SetBuiltInHandler(t.builtInPlaceholder)
	t.builtins = builtin.NewManager(t, log)
	for _, key := range slices.Sorted(maps.Keys(cfg.BuiltInFactories)) {
		t.builtins.RegisterFactory(key, cfg.BuiltInFactories[key])
	}

	t.dragger = drag.New(t.sched, drag.Config{
		Enabled: cfg.Draggable,
		Snap:    cfg.SnapToPosition,
		Allowed: cfg.AllowedSnapPositions,
	})
	t.dragger.OnMove(t.onDragMove)
	t.dragger.OnSettled(t.render)
	t.resize = schedule.NewDebouncer(t.sched, cfg.ResizeDebounce, t.onResize)
	t.watchScheme()

	t.enableBuiltIns()
	t.populate()

	t.ready = true
	t.relayout()
	log.Debug("toolbar created",
		"position", t.position,
		"orientation", t.orientation,
		"tools", t.reg.Count(),
		"sets", len(cfg.ToolSets),
	)
	return t, nil
}

// restoreSettings lets persisted values override the configured ones.
func (t *Toolbar) restoreSettings() {
	if !t.store.Available() {
		return
	}
	rec := t.store.Load()
	if v, ok := rec[settingTheme]; ok {
		if th, ok := option.ParseTheme(v); ok {
			t.theme = th
		}
	}
	if v, ok := rec[settingSize]; ok {
		if s, ok := option.ParseSize(v); ok {
			t.size = s
		}
	}
	if v, ok := rec[settingDisplayMode]; ok {
		if m, ok := option.ParseDisplayMode(v); ok {
			t.mode = m
		}
	}
	if v, ok := rec[settingOrientation]; ok {
		if o, ok := option.ParseOrientation(v); ok {
			t.orientation = o
		}
	}
	if v, ok := rec[settingPosition]; ok {
		if a, ok := option.ParseAnchor(v); ok {
			t.position = a
		}
	}
}

func (t *Toolbar) persist(key, value string) {
	if t.store == nil {
		return
	}
	t.store.Set(key, value)
}

func (t *Toolbar) enableBuiltIns() {
	keys := slices.Sorted(maps.Keys(t.cfg.BuiltInTools))
	stock := []string{builtin.KeyTheme, builtin.KeyDisplayMode, builtin.KeySize}
	slices.SortStableFunc(keys, func(a, b string) int {
		ia, ib := slices.Index(stock, a), slices.Index(stock, b)
		switch {
		case ia >= 0 && ib >= 0:
			return ia - ib
		case ia >= 0:
			return -1
		case ib >= 0:
			return 1
		}
		return 0
	})
	for _, key := range keys {
		if t.cfg.BuiltInTools[key] {
			t.AddBuiltInTool(key, t.cfg.BuiltInOptions[key])
		}
	}
}

// builtInPlaceholder handles descriptors that name a built-in tool.
func (t *Toolbar) builtInPlaceholder(key string, d registry.Descriptor) string {
	opts, ok := d.BuiltInOptions.(builtin.Options)
	if !ok {
		opts = t.cfg.BuiltInOptions[key]
	}
	if opts.ID == "" {
		opts.ID = d.ID
	}
	return t.AddBuiltInTool(key, opts)
}

func (t *Toolbar) populate() {
	if len(t.cfg.ToolSets) > 0 {
		t.set = t.cfg.DefaultToolSet
		t.loadSet(t.set)
		return
	}
	for _, d := range t.cfg.Tools {
		t.AddTool(d)
	}
	for _, g := range t.cfg.Groups {
		t.reg.AddGroup(g)
	}
}

func (t *Toolbar) containerSize() drag.Size {
	return t.cfg.Container.ClientSize()
}

func (t *Toolbar) viewportSize() drag.Size {
	if v, ok := t.cfg.Container.(Viewport); ok {
		return v.ViewportSize()
	}
	return t.containerSize()
}

// Dispatch returns the channel of due callbacks when the toolbar runs its
// own scheduler loop, or nil when Config.Scheduler was supplied. The host
// must run each received func on its UI goroutine. The channel is never
// closed; Destroy only stops new callbacks from arriving.
func (t *Toolbar) Dispatch() <-chan func() {
	if t.loop == nil {
		return nil
	}
	return t.loop.C()
}

// On subscribes fn to the named event.
func (t *Toolbar) On(name string, fn events.Handler) events.Subscription {
	return t.bus.On(name, fn)
}

// Off removes a subscription.
func (t *Toolbar) Off(sub events.Subscription) { t.bus.Off(sub) }

// Frame returns the render projection of the current state.
func (t *Toolbar) Frame() Frame {
	if t.destroyed {
		return Frame{Hidden: true}
	}
	return t.buildFrame()
}

// render reconciles the attached tooltips with the registry. The Frame
// itself is computed on demand.
func (t *Toolbar) render() {
	if !t.ready || t.destroyed {
		return
	}
	pos := tooltip.PositionFor(t.position)
	seen := make(map[string]bool, t.reg.Count())
	for _, tool := range t.reg.Tools() {
		if tool.Kind == registry.Separator {
			continue
		}
		seen[tool.ID] = true
		if p, ok := t.tipped[tool.ID]; ok && p == pos {
			continue
		}
		t.tips.Init(tool.ID, tooltip.Spec{Text: tool.Tooltip, Shortcut: tool.Shortcut, Position: pos})
		t.tipped[tool.ID] = pos
	}
	for id := range t.tipped {
		if !seen[id] {
			t.tips.Remove(id)
			delete(t.tipped, id)
		}
	}
	if t.focus != "" && !t.reg.HasTool(t.focus) {
		t.focus = ""
	}
}

// changed re-checks overflow after the tool list changed.
func (t *Toolbar) changed() {
	if !t.ready || t.destroyed {
		return
	}
	t.CheckOverflow()
}

// Destroy detaches every listener, cancels pending callbacks and releases
// the tools. The toolbar is unusable afterwards.
func (t *Toolbar) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.resize.Stop()
	if t.diag != nil {
		t.diag.Stop()
		t.diag = nil
	}
	t.dragger.Cancel()
	if t.stopScheme != nil {
		t.stopScheme()
		t.stopScheme = nil
	}
	t.builtins.DestroyAll()
	for id := range t.tipped {
		t.tips.Remove(id)
	}
	clear(t.tipped)
	t.reg.Clear()
	t.bus.Clear()
	if t.loop != nil {
		t.loop.Close()
	}
	t.log.Debug("toolbar destroyed")
}

// Destroyed reports whether Destroy was called.
func (t *Toolbar) Destroyed() bool { return t.destroyed }
