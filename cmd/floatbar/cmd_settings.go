package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sadopc/floatbar/internal/config"
	"github.com/sadopc/floatbar/internal/core/settings"
	"github.com/sadopc/floatbar/internal/logger"
)

func settingsCmd() {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	clearFlag := fs.Bool("clear", false, "Remove the persisted settings")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: floatbar settings [file.floatbar.yaml] [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Show the theme, size, display mode and other preferences saved for a toolbar.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  floatbar settings\n")
		fmt.Fprintf(os.Stderr, "  floatbar settings draw.floatbar.yaml --clear\n")
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

	store, closeStore := openStore(cfg, def)
	defer closeStore()

	if *clearFlag {
		if !store.Clear() {
			fmt.Fprintf(os.Stderr, "Error: could not clear %s\n", store.FullKey())
			os.Exit(1)
		}
		fmt.Printf("Cleared %s\n", store.FullKey())
		return
	}
	printSettings(os.Stdout, store, time.Now())
}

// printSettings writes the stored record one field per line, sorted, with
// the save time relative to now when the backend records it.
func printSettings(w io.Writer, store *settings.Store, now time.Time) {
	if !store.Available() {
		fmt.Fprintf(w, "%s: persistence disabled\n", store.FullKey())
		return
	}
	if !store.Exists() {
		fmt.Fprintf(w, "%s: nothing saved\n", store.FullKey())
		return
	}

	header := store.FullKey()
	if at, err := store.UpdatedAt(); err == nil {
		header += " (saved " + humanize.RelTime(at, now, "ago", "from now") + ")"
	}
	fmt.Fprintln(w, header)

	rec := store.Load()
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-14s %s\n", k, rec[k])
	}
}
