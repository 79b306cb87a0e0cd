package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/floatbar/internal/app"
	"github.com/sadopc/floatbar/internal/config"
	"github.com/sadopc/floatbar/internal/core/definition"
	"github.com/sadopc/floatbar/internal/core/settings"
	"github.com/sadopc/floatbar/internal/logger"
	"github.com/sadopc/floatbar/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			initCmd()
			return
		case "validate":
			validateCmd()
			return
		case "dump":
			dumpCmd()
			return
		case "settings":
			settingsCmd()
			return
		case "completion":
			completionCmd()
			return
		case "version":
			fmt.Printf("floatbar %s (%s) built %s\n", version.Version, version.Commit, version.Date)
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `floatbar - A floating, draggable toolbar for the terminal

Usage:
  floatbar [flags]                    Launch the toolbar (interactive mode)
  floatbar <command> [args] [flags]   Run a subcommand

Commands:
  init        Create a new .floatbar.yaml definition interactively
  validate    Validate toolbar definition files
  dump        Print the toolbar frame for a definition as JSON
  settings    Show or clear the persisted toolbar settings
  completion  Generate shell completion scripts (bash, zsh, fish)
  version     Print version information
  help        Show this help message

TUI Flags:
  --definition <path>  Path to a .floatbar.yaml definition file
  --log-level <level>  debug, info, warn or error
  --version            Print version and exit

Run 'floatbar <command> --help' for more information about a command.
`)
}

// loadDefinition reads path, or the first definition in the working
// directory, or the configured one. With none found the starter toolbar
// is used.
func loadDefinition(path string, cfg config.Config) (*definition.Definition, string, error) {
	if path == "" {
		cwd, _ := os.Getwd()
		path = definition.Find(cwd)
	}
	if path == "" {
		path = cfg.Definition
	}
	if path == "" {
		return definition.Sample(""), "", nil
	}
	def, err := definition.Load(path)
	if err != nil {
		return nil, "", err
	}
	return def, path, nil
}

// storageKey namespaces persisted settings by toolbar name.
func storageKey(def *definition.Definition) string {
	key := slug(def.Name)
	if key == "" {
		return "settings"
	}
	return key
}

// openStore opens the configured settings backend. The returned closer
// releases it; failures degrade to an unpersisted store.
func openStore(cfg config.Config, def *definition.Definition) (*settings.Store, func()) {
	backend, err := settings.Open(cfg.SettingsBackend, cfg.ResolveSettingsPath())
	if err != nil {
		logger.Warn("settings unavailable, running unpersisted", "backend", cfg.SettingsBackend, "error", err)
		backend = nil
	}
	store := settings.New("floatbar", storageKey(def), backend, logger.With("component", "settings"))
	return store, func() {
		if c, ok := backend.(io.Closer); ok {
			c.Close()
		}
	}
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	definitionFlag := flag.String("definition", "", "Path to a .floatbar.yaml definition file")
	logLevelFlag := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("floatbar %s (%s) built %s\n", version.Version, version.Commit, version.Date)
		os.Exit(0)
	}

	cfg := config.Load()
	if *logLevelFlag != "" {
		cfg.LogLevel = *logLevelFlag
	}

	// the terminal belongs to the toolbar, so logs go to a file
	logPath := ""
	if dir, err := config.StateDir(); err == nil {
		logPath = filepath.Join(dir, "floatbar.log")
	}
	logOpts := logger.Options{Level: cfg.LogLevel, Path: logPath}
	if logPath == "" {
		logOpts.Writer = io.Discard
	}
	if err := logger.Initialize(logOpts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	def, path, err := loadDefinition(*definitionFlag, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading definition: %v\n", err)
		os.Exit(1)
	}
	if err := def.Validate(); err != nil {
		logger.Warn("definition has problems, falling back to defaults where needed", "path", path, "error", err)
	}
	logger.Info("starting", "version", version.Version, "definition", path)

	store, closeStore := openStore(cfg, def)
	defer closeStore()

	model, err := app.New(app.Options{
		Config:     cfg,
		Definition: def,
		Settings:   store,
		Logger:     logger.Get(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
