package toolbar

import (
	"github.com/sadopc/floatbar/internal/toolbar/events"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/pagination"
)

func (t *Toolbar) paginationInput() pagination.Input {
	vp := t.viewportSize()
	avail := vp.W
	if t.orientation == option.Vertical {
		avail = vp.H
	}
	return pagination.Input{
		Available:   avail,
		Orientation: t.orientation,
		Count:       t.pageableCount(),
		Size:        t.size,
		Mode:        t.mode,
	}
}

// relayout runs the full estimate, render, measure cycle. Size,
// orientation and display mode changes need it since every extent moves.
func (t *Toolbar) relayout() {
	if !t.ready || t.destroyed {
		return
	}
	st := t.pager.Estimate(t.paginationInput())
	t.log.Debug("pagination estimate", "overflow", st.Enabled, "max_visible", st.MaxVisible)
	t.render()
	t.CheckOverflow()
}

// CheckOverflow measures the natural layout and turns pagination on or
// off. Calling it twice without a state change is a no-op.
func (t *Toolbar) CheckOverflow() {
	if !t.ready || t.destroyed {
		return
	}
	in := t.paginationInput()
	var ms pagination.Measurement
	if t.measurer != nil {
		ms = t.measurer.Measure(t.naturalItems(), t.orientation)
	} else {
		ms = t.pager.Metrics().EstimateMeasurement(in)
	}
	before := t.pager.State()
	after := t.pager.Measure(in, ms)
	if after != before {
		t.log.Debug("pagination updated",
			"overflow", after.Enabled,
			"max_visible", after.MaxVisible,
			"page", after.Page,
			"pages", after.Pages,
		)
	}
	t.clampOffset()
	t.render()
	t.scheduleDiagnostic()
}

// clampOffset pulls a dragged toolbar back inside its container once the
// bar or the container changed size.
func (t *Toolbar) clampOffset() {
	if t.free {
		t.offset = t.buildFrame().Bar.Point
	}
}

// scheduleDiagnostic logs the committed layout once the current burst of
// updates has settled.
func (t *Toolbar) scheduleDiagnostic() {
	if t.diag != nil {
		t.diag.Stop()
	}
	t.diag = t.sched.AfterFunc(0, func() {
		t.diag = nil
		if t.destroyed {
			return
		}
		st := t.pager.State()
		bar := t.Frame().Bar
		t.log.Debug("layout committed",
			"overflow", st.Enabled,
			"page", st.Page,
			"pages", st.Pages,
			"width", bar.W,
			"height", bar.H,
		)
	})
}

// HasOverflow reports whether the tools are paginated.
func (t *Toolbar) HasOverflow() bool { return t.pager.State().Enabled }

// MaxVisibleTools returns the page size, or the tool count when not
// paginated.
func (t *Toolbar) MaxVisibleTools() int {
	if st := t.pager.State(); st.Enabled {
		return st.MaxVisible
	}
	return t.pageableCount()
}

// Page returns the current page index.
func (t *Toolbar) Page() int { return t.pager.State().Page }

// PageCount returns the number of pages, 1 when not paginated.
func (t *Toolbar) PageCount() int { return t.pager.State().Pages }

// NextPage advances one page. It reports false on the last page.
func (t *Toolbar) NextPage() bool {
	if t.destroyed {
		return false
	}
	if !t.pager.NextPage() {
		return false
	}
	t.pageChanged()
	return true
}

// PreviousPage goes back one page. It reports false on the first page.
func (t *Toolbar) PreviousPage() bool {
	if t.destroyed {
		return false
	}
	if !t.pager.PreviousPage() {
		return false
	}
	t.pageChanged()
	return true
}

func (t *Toolbar) pageChanged() {
	t.focus = ""
	t.render()
	st := t.pager.State()
	t.bus.Emit(events.PageChange, PageChangeEvent{Page: st.Page, Pages: st.Pages})
}

// Resize tells the toolbar its container changed size. Bursts are
// coalesced into one re-measure after a quiet period.
func (t *Toolbar) Resize() {
	if t.destroyed {
		return
	}
	t.resize.Trigger()
}

func (t *Toolbar) onResize() {
	if t.destroyed {
		return
	}
	t.CheckOverflow()
}
