package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/tidwall/pretty"

	"github.com/sadopc/floatbar/internal/app"
	"github.com/sadopc/floatbar/internal/config"
	"github.com/sadopc/floatbar/internal/core/definition"
	"github.com/sadopc/floatbar/internal/core/settings"
	"github.com/sadopc/floatbar/internal/logger"
	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/colorscheme"
	"github.com/sadopc/floatbar/internal/toolbar/schedule"
	"github.com/sadopc/floatbar/internal/ui/layout"
)

func dumpCmd() {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	widthFlag := fs.Int("width", 80, "Canvas width in cells")
	heightFlag := fs.Int("height", 24, "Canvas height in cells")
	setFlag := fs.Int("set", -1, "Tool set to show (default: the definition's default set)")
	darkFlag := fs.Bool("dark", false, "Report a dark system color scheme")
	colorFlag := fs.Bool("color", false, "Syntax-highlight the output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: floatbar dump [file.floatbar.yaml] [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Lay the toolbar out on a fixed canvas and print its frame as JSON.\n")
		fmt.Fprintf(os.Stderr, "Persisted settings are ignored.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  floatbar dump draw.floatbar.yaml --width 120 --height 40\n")
		fmt.Fprintf(os.Stderr, "  floatbar dump --set 1 --color\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	cfg := config.Load()
	if err := logger.Initialize(logger.Options{Level: cfg.LogLevel}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	def, _, err := loadDefinition(fs.Arg(0), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading definition: %v\n", err)
		os.Exit(1)
	}

	out, err := dumpFrame(def, cfg, dumpOptions{
		Width:  *widthFlag,
		Height: *heightFlag,
		Set:    *setFlag,
		Dark:   *darkFlag,
	}, logger.Get())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out = pretty.Pretty(out)
	if *colorFlag {
		fmt.Print(highlight(string(out), "json"))
		return
	}
	os.Stdout.Write(out)
}

type dumpOptions struct {
	Width, Height int
	Set           int
	Dark          bool
}

// dumpFrame builds a toolbar on a fixed canvas and returns its frame as
// compact JSON. Timers never fire; the layout is flushed synchronously.
func dumpFrame(def *definition.Definition, cfg config.Config, o dumpOptions, log *slog.Logger) ([]byte, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("canvas must be positive, got %dx%d", o.Width, o.Height)
	}
	sched := schedule.NewManual()
	canvas := &layout.Canvas{W: o.Width, H: o.Height}
	store := settings.New("floatbar", "dump", settings.NewMemoryBackend(), log)

	tcfg := app.ToolbarConfig(app.Options{
		Config:      cfg,
		Definition:  def,
		Settings:    store,
		ColorScheme: colorscheme.NewStatic(o.Dark),
		Scheduler:   sched,
		Logger:      log,
	}, canvas)

	tb, err := toolbar.New(tcfg)
	if err != nil {
		return nil, err
	}
	defer tb.Destroy()

	if o.Set >= 0 && !tb.SwitchToolSet(o.Set) {
		return nil, fmt.Errorf("tool set %d out of range (have %d)", o.Set, tb.ToolSetCount())
	}
	tb.CheckOverflow()
	sched.Flush()

	return json.Marshal(tb.Frame())
}

// highlight colors source with chroma for a 256-color terminal. On any
// failure the source comes back unchanged.
func highlight(source, lexerName string) string {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}
