// Package schedule provides the deferred callbacks the toolbar relies on:
// timers, animation frames and debouncing. Callbacks never run concurrently
// with the code that scheduled them; the host drains them on its own loop.
package schedule

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameInterval is the assumed display refresh period for RequestFrame.
const FrameInterval = 16 * time.Millisecond

// Timer cancels a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the callback before it ran.
	Stop() bool
}

// Scheduler defers callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	RequestFrame(fn func()) Timer
}

// Loop schedules real timers and hands due callbacks to the host through C.
// The host must run each received func on its UI goroutine.
type Loop struct {
	ch   chan func()
	done chan struct{}
	once sync.Once
}

// NewLoop creates a loop whose channel buffers up to buffer callbacks.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		ch:   make(chan func(), buffer),
		done: make(chan struct{}),
	}
}

// C returns the channel of due callbacks.
func (l *Loop) C() <-chan func() { return l.ch }

// Close stops delivering callbacks. Pending timers are dropped when they fire.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

type loopTimer struct {
	t       *time.Timer
	stopped atomic.Bool
	ran     atomic.Bool
}

func (lt *loopTimer) Stop() bool {
	first := !lt.stopped.Swap(true)
	if lt.t != nil {
		lt.t.Stop()
	}
	return first && !lt.ran.Load()
}

// AfterFunc runs fn on the host loop after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		if lt.stopped.Load() {
			return
		}
		wrapped := func() {
			if lt.stopped.Load() {
				return
			}
			lt.ran.Store(true)
			fn()
		}
		select {
		case l.ch <- wrapped:
		case <-l.done:
		}
	})
	return lt
}

// RequestFrame runs fn on the host loop at the next frame boundary.
func (l *Loop) RequestFrame(fn func()) Timer {
	return l.AfterFunc(FrameInterval, fn)
}

// Manual is a fake clock for tests. Callbacks run synchronously inside Advance.
type Manual struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	m   *Manual
	at  time.Duration
	seq int
	fn  func()
}

func (mt *manualTimer) Stop() bool {
	for i, p := range mt.m.pending {
		if p == mt {
			mt.m.pending = append(mt.m.pending[:i], mt.m.pending[i+1:]...)
			return true
		}
	}
	return false
}

// NewManual creates a fake clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	mt := &manualTimer{m: m, at: m.now + d, seq: m.seq, fn: fn}
	m.pending = append(m.pending, mt)
	return mt
}

func (m *Manual) RequestFrame(fn func()) Timer {
	return m.AfterFunc(FrameInterval, fn)
}

// Now returns the elapsed fake time.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of scheduled callbacks.
func (m *Manual) Pending() int { return len(m.pending) }

// Advance moves the clock forward by d, running every callback that falls
// due in timestamp order. Callbacks scheduled while advancing run too if
// they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.earliest()
		if next == nil || next.at > target {
			break
		}
		next.Stop()
		m.now = next.at
		next.fn()
	}
	m.now = target
}

// Flush runs callbacks until none remain, bounded to avoid runaway loops.
func (m *Manual) Flush() {
	for i := 0; i < 1000; i++ {
		next := m.earliest()
		if next == nil {
			return
		}
		m.Advance(next.at - m.now)
	}
}

func (m *Manual) earliest() *manualTimer {
	var best *manualTimer
	for _, p := range m.pending {
		if best == nil || p.at < best.at || (p.at == best.at && p.seq < best.seq) {
			best = p
		}
	}
	return best
}

// Debouncer coalesces bursts of Trigger calls into one callback that runs
// once no trigger has arrived for the configured quiet period.
type Debouncer struct {
	s     Scheduler
	delay time.Duration
	fn    func()
	t     Timer
}

// DefaultDebounce is the quiet period used for resize handling.
const DefaultDebounce = 150 * time.Millisecond

// NewDebouncer creates a debouncer. A zero delay uses DefaultDebounce.
func NewDebouncer(s Scheduler, delay time.Duration, fn func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{s: s, delay: delay, fn: fn}
}

// Trigger restarts the quiet period.
func (d *Debouncer) Trigger() {
	if d.t != nil {
		d.t.Stop()
	}
	d.t = d.s.AfterFunc(d.delay, func() {
		d.t = nil
		d.fn()
	})
}

// Pending reports whether a callback is waiting.
func (d *Debouncer) Pending() bool { return d.t != nil }

// Stop cancels a pending callback.
func (d *Debouncer) Stop() {
	if d.t != nil {
		d.t.Stop()
		d.t = nil
	}
}
