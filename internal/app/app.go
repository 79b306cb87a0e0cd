package app

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/floatbar/internal/config"
	"github.com/sadopc/floatbar/internal/core/definition"
	"github.com/sadopc/floatbar/internal/core/settings"
	"github.com/sadopc/floatbar/internal/scripting"
	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/colorscheme"
	"github.com/sadopc/floatbar/internal/toolbar/events"
	"github.com/sadopc/floatbar/internal/toolbar/icons"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/pagination"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
	"github.com/sadopc/floatbar/internal/toolbar/schedule"
	"github.com/sadopc/floatbar/internal/toolbar/tooltip"
	"github.com/sadopc/floatbar/internal/ui/components"
	"github.com/sadopc/floatbar/internal/ui/layout"
	"github.com/sadopc/floatbar/internal/ui/msgs"
	"github.com/sadopc/floatbar/internal/ui/theme"
)

// Options configures the App. Definition is required; everything else has
// a usable zero value.
type Options struct {
	Config     config.Config
	Definition *definition.Definition
	Settings   *settings.Store
	// ColorScheme defaults to following the terminal background.
	ColorScheme colorscheme.Query
	// Scheduler defaults to the toolbar's own loop, drained through
	// Update.
	Scheduler schedule.Scheduler
	Logger    *slog.Logger
}

// ToolbarConfig builds the controller configuration for a terminal canvas.
func ToolbarConfig(opts Options, container toolbar.Container) toolbar.Config {
	cfg := toolbar.Config{
		Container:      container,
		Metrics:        pagination.CellMetrics,
		ResizeDebounce: opts.Config.ResizeDebounce,
		AnchorInset:    opts.Config.AnchorInset,
		Measurer:       components.NewMeasurer(),
		ColorScheme:    opts.ColorScheme,
		Settings:       opts.Settings,
		Scheduler:      opts.Scheduler,
		Logger:         opts.Logger,
	}
	if opts.Definition != nil {
		opts.Definition.Apply(&cfg)
	}
	return cfg
}

// scriptReporter remembers the last script failure so it can be shown.
type scriptReporter struct {
	inner toolbar.ScriptRunner
	err   error
}

func (r *scriptReporter) Run(t *toolbar.Toolbar, tool registry.Tool) error {
	err := r.inner.Run(t, tool)
	if err != nil {
		r.err = err
	}
	return err
}

// take returns and clears the last failure.
func (r *scriptReporter) take() error {
	err := r.err
	r.err = nil
	return err
}

// eventQueue collects toolbar events raised while handling one message.
type eventQueue struct {
	pending []events.Event
}

func (q *eventQueue) push(ev events.Event) { q.pending = append(q.pending, ev) }

func (q *eventQueue) drain() []events.Event {
	out := q.pending
	q.pending = nil
	return out
}

// App is the root Bubble Tea model.
type App struct {
	tb      *toolbar.Toolbar
	canvas  *layout.Canvas
	tips    *tooltip.Registry
	scheme  colorscheme.Query
	scripts *scriptReporter
	queue   *eventQueue
	themes  []option.Theme
	name    string

	statusBar components.StatusBar
	toast     components.Toast
	finder    components.Finder
	help      components.Help

	pair     theme.Pair
	theme    theme.Theme
	styles   theme.Styles
	renderer components.BarRenderer

	mode    msgs.AppMode
	layout  layout.ScreenLayout
	keys    KeyMap
	log     *slog.Logger
	pressed string

	width  int
	height int
	ready  bool
}

// New creates a new App model around a freshly built toolbar.
func New(opts Options) (App, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.Definition == nil {
		opts.Definition = definition.Sample("")
	}
	if opts.ColorScheme == nil {
		opts.ColorScheme = colorscheme.NewTerminal(nil)
	}

	// a terminal size is not known until the first WindowSizeMsg
	l := layout.Calculate(80, 24, true)
	canvas := &layout.Canvas{}
	canvas.Apply(l)

	tips := tooltip.NewRegistry()
	scripts := &scriptReporter{inner: scripting.NewEngine(opts.Config.ScriptTimeout, log)}
	cfg := ToolbarConfig(opts, canvas)
	cfg.Tooltips = tips
	cfg.Scripts = scripts
	if cfg.Icons == nil {
		cfg.Icons = icons.Default(log.With("component", "icons"))
	}

	tb, err := toolbar.New(cfg)
	if err != nil {
		return App{}, err
	}

	a := App{
		tb:      tb,
		canvas:  canvas,
		tips:    tips,
		scheme:  opts.ColorScheme,
		scripts: scripts,
		queue:   &eventQueue{},
		themes:  themeCycle(opts.Definition),
		name:    opts.Definition.Name,
		pair:    theme.ResolvePair(opts.Config.LightPalette, opts.Config.DarkPalette),
		mode:    msgs.ModeNormal,
		layout:  l,
		keys:    DefaultKeyMap(),
		toast:   components.NewToast(theme.Theme{}, theme.Styles{}, cfg.Icons),
		log:     log.With("component", "app"),
	}
	for _, name := range []string{
		events.ToolClick,
		events.ToolActivate,
		events.ThemeChange,
		events.ThemeSystemChange,
		events.SizeChange,
		events.DisplayModeChange,
		events.OrientationChange,
		events.PositionChange,
		events.ToolSetChange,
		events.ToolbarCollapse,
		events.ToolbarShow,
		events.ToolbarHide,
		events.PageChange,
	} {
		tb.On(name, a.queue.push)
	}
	a.applyPalette()
	return a, nil
}

func themeCycle(def *definition.Definition) []option.Theme {
	var out []option.Theme
	for _, th := range def.Themes {
		if t, ok := option.ParseTheme(th); ok {
			out = append(out, t)
		}
	}
	return out
}

// Toolbar returns the hosted controller.
func (a App) Toolbar() *toolbar.Toolbar { return a.tb }

// applyPalette rebuilds every themed component for the toolbar's
// effective theme.
func (a *App) applyPalette() {
	t := a.pair.For(a.tb.EffectiveTheme())
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s
	a.renderer = components.NewBarRenderer(t, s)

	a.statusBar = components.NewStatusBar(t, s)
	a.statusBar.SetMode(a.mode)
	a.statusBar.SetWidth(a.layout.Width)
	a.statusBar.SetCompact(a.layout.Compact)
	a.toast.SetPalette(t, s)

	finderVisible := a.finder.Visible
	a.finder = components.NewFinder(t, s)
	if finderVisible {
		a.finder.Open(a.finderEntries())
	}
	helpVisible := a.help.Visible
	a.help = components.NewHelp(t, s, a.keys.HelpSections())
	a.help.SetSize(a.width, a.height)
	if helpVisible {
		a.help.Toggle()
	}
}

func (a App) Init() tea.Cmd {
	return a.waitScheduled()
}

// waitScheduled blocks on the toolbar's scheduler loop and hands the next
// due callback to Update.
func (a App) waitScheduled() tea.Cmd {
	ch := a.tb.Dispatch()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return msgs.ScheduledMsg{Fn: <-ch}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = layout.HandleResize(msg, true)
		a.canvas.Apply(a.layout)
		a.statusBar.SetWidth(a.layout.Width)
		a.statusBar.SetCompact(a.layout.Compact)
		a.help.SetSize(a.width, a.height)
		a.tb.Resize()
		a.ready = true
		return a, nil

	case msgs.ScheduledMsg:
		if msg.Fn != nil {
			msg.Fn()
		}
		return a, tea.Batch(a.flushEvents(), a.waitScheduled())

	case tea.FocusMsg:
		if t, ok := a.scheme.(*colorscheme.Terminal); ok {
			t.Refresh()
		}
		cmd := a.flushEvents()
		return a, cmd

	case tea.MouseMsg:
		if a.mode != msgs.ModeNormal {
			return a, nil
		}
		a.handleMouse(msg)
		cmd := a.afterToolbar()
		return a, cmd

	case tea.KeyMsg:
		if a.finder.Visible {
			var cmd tea.Cmd
			a.finder, cmd = a.finder.Update(msg)
			return a, cmd
		}
		if a.help.Visible {
			var cmd tea.Cmd
			a.help, cmd = a.help.Update(msg)
			return a, cmd
		}
		cmd := a.handleKey(msg)
		cmd = tea.Batch(cmd, a.afterToolbar())
		return a, cmd

	case msgs.ShowHelpMsg:
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		a.setMode(msgs.ModeHelp)
		return a, nil

	case msgs.OpenFinderMsg:
		a.finder.Open(a.finderEntries())
		a.setMode(msgs.ModeFinder)
		return a, nil

	case msgs.SetModeMsg:
		a.setMode(msg.Mode)
		return a, nil

	case msgs.ToolChosenMsg:
		a.chooseTool(msg)
		cmd := a.afterToolbar()
		return a, cmd

	case msgs.ToolbarEventMsg:
		cmd := a.handleToolbarEvent(msg.Event)
		return a, cmd

	case msgs.StatusMsg:
		a.statusBar.SetMessage(msg.Text)
		if msg.Duration > 0 {
			cmds = append(cmds, tea.Tick(msg.Duration, func(time.Time) tea.Msg {
				return msgs.StatusMsg{Text: ""}
			}))
		}
		return a, tea.Batch(cmds...)

	case msgs.ToastMsg:
		level := components.ToastInfo
		if msg.IsError {
			level = components.ToastError
		}
		cmd := a.toast.Show(components.Notice{Text: msg.Text, Level: level, Duration: msg.Duration})
		return a, cmd
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if a.finder.Visible {
		a.finder, cmd = a.finder.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) setMode(mode msgs.AppMode) {
	a.mode = mode
	a.statusBar.SetMode(mode)
	if mode != msgs.ModeNormal {
		a.tips.Hide()
	}
}

// afterToolbar turns whatever the last toolbar call produced into
// commands: queued events and a failed script.
func (a *App) afterToolbar() tea.Cmd {
	cmds := []tea.Cmd{a.flushEvents()}
	if err := a.scripts.take(); err != nil {
		cmds = append(cmds, a.toast.Show(components.Notice{
			Text:     err.Error(),
			Icon:     "utils.info",
			Level:    components.ToastError,
			Duration: 4 * time.Second,
		}))
	}
	return tea.Batch(cmds...)
}

// flushEvents forwards queued toolbar events as messages, in order.
func (a *App) flushEvents() tea.Cmd {
	evs := a.queue.drain()
	if len(evs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(evs))
	for i, ev := range evs {
		cmds[i] = func() tea.Msg { return msgs.ToolbarEventMsg{Event: ev} }
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// finderEntries lists every tool of every tool set, then the tools that
// live outside sets.
func (a App) finderEntries() []components.FinderEntry {
	var out []components.FinderEntry
	seen := make(map[string]bool)
	for i := range a.tb.ToolSetCount() {
		set, _ := a.tb.ToolSet(i)
		for _, d := range set.Tools {
			if d.Kind == registry.Separator || d.ID == "" {
				continue
			}
			seen[d.ID] = true
			out = append(out, components.FinderEntry{
				Set:      i,
				SetName:  setName(set, i),
				ToolID:   d.ID,
				Label:    d.Label,
				Shortcut: d.Shortcut,
			})
		}
	}
	for _, tool := range a.tb.Tools() {
		if tool.Kind == registry.Separator || seen[tool.ID] || strings.HasPrefix(tool.ID, "__") {
			continue
		}
		out = append(out, components.FinderEntry{
			Set:      -1,
			ToolID:   tool.ID,
			Label:    tool.Label,
			Shortcut: tool.Shortcut,
		})
	}
	return out
}

func setName(s toolbar.ToolSet, i int) string {
	if s.Name != "" {
		return s.Name
	}
	return "Set " + strconv.Itoa(i+1)
}

// chooseTool switches to the tool's set when needed, then activates it.
func (a *App) chooseTool(msg msgs.ToolChosenMsg) {
	if msg.Set >= 0 && msg.Set != a.tb.CurrentToolSet() {
		a.tb.SwitchToolSet(msg.Set)
	}
	if a.tb.Click(msg.ToolID) {
		a.tb.Focus(msg.ToolID)
	}
}

// nextAnchor cycles the dock anchor in declaration order.
func nextAnchor(cur option.Anchor) option.Anchor {
	i := slices.Index(option.Anchors, cur)
	return option.Anchors[(i+1)%len(option.Anchors)]
}
