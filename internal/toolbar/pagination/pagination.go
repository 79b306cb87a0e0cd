// Package pagination decides whether the toolbar's tools fit the space the
// container allows and, when they do not, splits them into pages.
//
// Sizing runs in two phases. Estimate uses a per-size width table so the
// first frame does not overflow; Measure takes the real extents reported
// by the host and is authoritative. The two may disagree at the boundary.
package pagination

import (
	"math"

	"github.com/sadopc/floatbar/internal/toolbar/option"
)

// Metrics holds the sizing constants. Units are whatever the host
// measures in: pixels for DefaultMetrics, terminal cells for CellMetrics.
type Metrics struct {
	BaseWidth       map[option.Size]float64
	IconLabelFactor float64
	LabelWidth      float64
	Gap             float64
	Padding         float64
	NavButton       float64
	Separator       float64
	// Fractions of the available space the toolbar may take.
	HorizontalFraction float64
	VerticalFraction   float64
	MinVisible         int
}

// DefaultMetrics is calibrated for pixel layouts.
var DefaultMetrics = Metrics{
	BaseWidth: map[option.Size]float64{
		option.Small:  32,
		option.Medium: 40,
		option.Large:  48,
	},
	IconLabelFactor:    2.5,
	LabelWidth:         80,
	Gap:                4,
	Padding:            16,
	NavButton:          40,
	Separator:          9,
	HorizontalFraction: 0.85,
	VerticalFraction:   0.45,
	MinVisible:         3,
}

// CellMetrics is calibrated for terminal cells.
var CellMetrics = Metrics{
	BaseWidth: map[option.Size]float64{
		option.Small:  3,
		option.Medium: 5,
		option.Large:  7,
	},
	IconLabelFactor:    2.5,
	LabelWidth:         10,
	Gap:                1,
	Padding:            2,
	NavButton:          3,
	Separator:          1,
	HorizontalFraction: 0.85,
	VerticalFraction:   0.45,
	MinVisible:         3,
}

// ToolWidth estimates one tool's main-axis extent.
func (m Metrics) ToolWidth(size option.Size, mode option.DisplayMode) float64 {
	base, ok := m.BaseWidth[size]
	if !ok {
		base = m.BaseWidth[option.DefaultSize]
	}
	switch mode {
	case option.IconOnly:
		return base
	case option.LabelOnly:
		return m.LabelWidth
	default:
		return base * m.IconLabelFactor
	}
}

// Estimate returns n × w + (n−1) × gap + padding.
func (m Metrics) Estimate(n int, size option.Size, mode option.DisplayMode) float64 {
	if n <= 0 {
		return m.Padding
	}
	return float64(n)*m.ToolWidth(size, mode) + float64(n-1)*m.Gap + m.Padding
}

// MaxExtent returns the largest extent the toolbar may take along its
// main axis given the container's extent along that axis.
func (m Metrics) MaxExtent(available float64, o option.Orientation) float64 {
	if o == option.Vertical {
		return available * m.VerticalFraction
	}
	return available * m.HorizontalFraction
}

// Input describes what is being laid out.
type Input struct {
	// Available is the container extent along the main axis.
	Available   float64
	Orientation option.Orientation
	// Count is the number of pageable tools: visible and not separators.
	Count int
	Size  option.Size
	Mode  option.DisplayMode
}

// Measurement is the natural, unpaginated layout of the visible tools.
type Measurement struct {
	Extent     float64
	ToolWidths []float64
	Separators []float64
}

// EstimateMeasurement builds a Measurement from the width table alone.
func (m Metrics) EstimateMeasurement(in Input) Measurement {
	w := m.ToolWidth(in.Size, in.Mode)
	widths := make([]float64, in.Count)
	for i := range widths {
		widths[i] = w
	}
	return Measurement{
		Extent:     m.Estimate(in.Count, in.Size, in.Mode),
		ToolWidths: widths,
	}
}

// State is the pagination outcome.
type State struct {
	Enabled    bool
	MaxVisible int
	Page       int
	Pages      int
	Count      int
}

// Engine keeps pagination state between checks.
type Engine struct {
	metrics Metrics
	state   State
}

// New creates an engine. A zero Metrics uses DefaultMetrics.
func New(m Metrics) *Engine {
	if m.BaseWidth == nil {
		m = DefaultMetrics
	}
	return &Engine{metrics: m, state: State{Pages: 1}}
}

// Metrics returns the engine's sizing constants.
func (e *Engine) Metrics() Metrics { return e.metrics }

// Estimate runs the pre-render pass from the width table.
func (e *Engine) Estimate(in Input) State {
	return e.Measure(in, e.metrics.EstimateMeasurement(in))
}

// Measure runs the authoritative pass over real extents. The page index
// survives repeated checks and resets to 0 only when pagination turns on
// or the page size changes.
func (e *Engine) Measure(in Input, ms Measurement) State {
	limit := e.metrics.MaxExtent(in.Available, in.Orientation)
	if in.Count == 0 || ms.Extent <= limit {
		e.state = State{MaxVisible: in.Count, Pages: 1, Count: in.Count}
		return e.state
	}

	maxVisible := e.maxVisible(limit, ms)
	prev := e.state
	next := State{
		Enabled:    true,
		MaxVisible: maxVisible,
		Pages:      int(math.Ceil(float64(in.Count) / float64(maxVisible))),
		Count:      in.Count,
	}
	if prev.Enabled && prev.MaxVisible == maxVisible {
		next.Page = min(prev.Page, next.Pages-1)
	}
	e.state = next
	return e.state
}

func (e *Engine) maxVisible(limit float64, ms Measurement) int {
	widest := 0.0
	for _, w := range ms.ToolWidths {
		widest = max(widest, w)
	}
	reserved := 2*e.metrics.NavButton + e.metrics.Padding
	for _, s := range ms.Separators {
		reserved += s
	}
	n := 0
	if step := widest + e.metrics.Gap; step > 0 {
		n = int(math.Floor((limit - reserved) / step))
	}
	return max(n, e.metrics.MinVisible)
}

// State returns the current pagination state.
func (e *Engine) State() State { return e.state }

// NextPage advances one page. It reports false at the last page.
func (e *Engine) NextPage() bool {
	if !e.CanNext() {
		return false
	}
	e.state.Page++
	return true
}

// PreviousPage goes back one page. It reports false at the first page.
func (e *Engine) PreviousPage() bool {
	if !e.CanPrevious() {
		return false
	}
	e.state.Page--
	return true
}

// CanNext reports whether a later page exists.
func (e *Engine) CanNext() bool {
	return e.state.Enabled && e.state.Page < e.state.Pages-1
}

// CanPrevious reports whether an earlier page exists.
func (e *Engine) CanPrevious() bool {
	return e.state.Enabled && e.state.Page > 0
}

// Visible reports whether the pageable tool at index is on the current page.
func (e *Engine) Visible(index int) bool {
	if !e.state.Enabled {
		return true
	}
	start := e.state.Page * e.state.MaxVisible
	return index >= start && index < start+e.state.MaxVisible
}

// Reset turns pagination off.
func (e *Engine) Reset() {
	e.state = State{Pages: 1}
}
