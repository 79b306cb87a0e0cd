// Package colorscheme reports whether the platform prefers a dark color
// scheme and notifies watchers when that changes.
package colorscheme

import (
	"github.com/charmbracelet/lipgloss"
)

// Query is the platform preference consumed by the toolbar.
type Query interface {
	PrefersDark() bool
	// Watch calls fn on every change until the returned stop func runs.
	Watch(fn func(dark bool)) (stop func())
}

type watchers struct {
	next int
	fns  map[int]func(bool)
}

func (w *watchers) add(fn func(bool)) func() {
	if w.fns == nil {
		w.fns = make(map[int]func(bool))
	}
	w.next++
	id := w.next
	w.fns[id] = fn
	return func() { delete(w.fns, id) }
}

func (w *watchers) notify(dark bool) {
	for i := 1; i <= w.next; i++ {
		if fn, ok := w.fns[i]; ok {
			fn(dark)
		}
	}
}

// Static is a Query whose preference is set by the caller.
type Static struct {
	dark bool
	w    watchers
}

// NewStatic creates a preference fixed at dark until Set.
func NewStatic(dark bool) *Static {
	return &Static{dark: dark}
}

func (s *Static) PrefersDark() bool { return s.dark }

func (s *Static) Watch(fn func(bool)) func() { return s.w.add(fn) }

// Set changes the preference, notifying watchers when it differs.
func (s *Static) Set(dark bool) {
	if s.dark == dark {
		return
	}
	s.dark = dark
	s.w.notify(dark)
}

// Watchers returns the number of live watchers.
func (s *Static) Watchers() int { return len(s.w.fns) }

// Terminal follows the terminal's background color. Terminals only report
// it when asked, so the host calls Refresh when it regains focus.
type Terminal struct {
	Static
	probe func() bool
}

// NewTerminal queries the terminal once. A nil probe uses
// lipgloss.HasDarkBackground.
func NewTerminal(probe func() bool) *Terminal {
	if probe == nil {
		probe = lipgloss.HasDarkBackground
	}
	return &Terminal{Static: Static{dark: probe()}, probe: probe}
}

// Refresh re-queries the terminal and notifies watchers on change.
func (t *Terminal) Refresh() {
	t.Set(t.probe())
}
