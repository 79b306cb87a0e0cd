// Package drag moves the toolbar with the pointer and snaps it to the
// nearest allowed anchor on release.
package drag

import (
	"slices"
	"time"

	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/schedule"
)

// Phase is the drag state.
type Phase int

const (
	Idle Phase = iota
	Dragging
	Settling
)

func (p Phase) String() string {
	switch p {
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return "idle"
	}
}

// SettleDuration matches the snap transition.
const SettleDuration = 300 * time.Millisecond

// Config selects drag behavior.
type Config struct {
	Enabled bool
	Snap    bool
	// Allowed lists snap targets. Empty means every anchor.
	Allowed []option.Anchor
}

// Engine is the Idle → Dragging → Settling → Idle machine. Pointer moves
// are coalesced to one position update per frame.
type Engine struct {
	sched   schedule.Scheduler
	enabled bool
	snap    bool
	allowed []option.Anchor

	phase     Phase
	start     Point
	origin    Point
	pos       Point
	bar       Size
	container Size
	bounds    Bounds
	nearest   option.Anchor

	pending  Point
	frame    schedule.Timer
	settle   schedule.Timer
	onMove   func(Point, option.Anchor)
	onSettle func()
}

// New creates an engine.
func New(s schedule.Scheduler, cfg Config) *Engine {
	e := &Engine{sched: s, enabled: cfg.Enabled, snap: cfg.Snap}
	e.SetAllowed(cfg.Allowed)
	return e
}

// OnMove sets the callback run after each applied move with the clamped
// position and, when snapping, the highlighted anchor.
func (e *Engine) OnMove(fn func(Point, option.Anchor)) { e.onMove = fn }

// OnSettled sets the callback run when the snap transition ends.
func (e *Engine) OnSettled(fn func()) { e.onSettle = fn }

// SetAllowed replaces the snap targets.
func (e *Engine) SetAllowed(allowed []option.Anchor) {
	if len(allowed) == 0 {
		e.allowed = slices.Clone(option.Anchors)
		return
	}
	e.allowed = slices.Clone(allowed)
}

// Allowed returns the snap targets.
func (e *Engine) Allowed() []option.Anchor { return slices.Clone(e.allowed) }

// Enabled reports whether dragging is allowed.
func (e *Engine) Enabled() bool { return e.enabled }

// Snap reports whether release snaps to an anchor.
func (e *Engine) Snap() bool { return e.snap }

// Begin starts a drag with the pointer at pointer and the toolbar at bar
// inside a container of size container. It reports false when dragging is
// disabled or already in progress.
func (e *Engine) Begin(pointer Point, bar Rect, container Size) bool {
	if !e.enabled || e.phase == Dragging {
		return false
	}
	if e.settle != nil {
		e.settle.Stop()
		e.settle = nil
	}
	e.phase = Dragging
	e.start = pointer
	e.origin = bar.Point
	e.bar = bar.Size
	e.container = container
	e.bounds = BoundsFor(container, bar.Size)
	e.pos = e.bounds.Clamp(bar.Point)
	if e.snap {
		e.nearest = Nearest(Rect{e.pos, e.bar}.Center(), container, e.allowed)
	}
	return true
}

// Move records a pointer position and schedules a frame to apply it,
// replacing any frame still pending.
func (e *Engine) Move(pointer Point) {
	if e.phase != Dragging {
		return
	}
	e.pending = pointer
	if e.frame != nil {
		e.frame.Stop()
	}
	e.frame = e.sched.RequestFrame(e.applyPending)
}

func (e *Engine) applyPending() {
	e.frame = nil
	if e.phase != Dragging {
		return
	}
	e.pos = e.bounds.Clamp(e.origin.Add(e.pending.Sub(e.start)))
	if e.snap {
		e.nearest = Nearest(Rect{e.pos, e.bar}.Center(), e.container, e.allowed)
	}
	if e.onMove != nil {
		e.onMove(e.pos, e.nearest)
	}
}

// End finishes the drag. With snapping it returns the nearest allowed
// anchor and true, and enters Settling for SettleDuration. Without
// snapping the toolbar stays at its last free position.
func (e *Engine) End() (option.Anchor, bool) {
	if e.phase != Dragging {
		return "", false
	}
	if e.frame != nil {
		e.frame.Stop()
		e.applyPending()
	}
	if !e.snap {
		e.phase = Idle
		return "", false
	}
	anchor := Nearest(Rect{e.pos, e.bar}.Center(), e.container, e.allowed)
	e.nearest = anchor
	e.phase = Settling
	e.settle = e.sched.AfterFunc(SettleDuration, func() {
		e.settle = nil
		e.phase = Idle
		if e.onSettle != nil {
			e.onSettle()
		}
	})
	return anchor, true
}

// Cancel stops any drag or settle without snapping.
func (e *Engine) Cancel() {
	if e.frame != nil {
		e.frame.Stop()
		e.frame = nil
	}
	if e.settle != nil {
		e.settle.Stop()
		e.settle = nil
	}
	e.phase = Idle
}

// State returns the current phase.
func (e *Engine) State() Phase { return e.phase }

// Position returns the free position from the last applied move.
func (e *Engine) Position() Point { return e.pos }

// Nearest returns the anchor highlighted during the drag.
func (e *Engine) Nearest() option.Anchor { return e.nearest }

// Bounds returns the clamping range of the current drag.
func (e *Engine) Bounds() Bounds { return e.bounds }

// Hints returns the anchors to show as snap targets, or nil when none
// should be visible.
func (e *Engine) Hints() []option.Anchor {
	if e.phase != Dragging || !e.snap {
		return nil
	}
	return e.Allowed()
}
