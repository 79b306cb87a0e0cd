package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/drag"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/pagination"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
	"github.com/sadopc/floatbar/internal/ui/layout"
	"github.com/sadopc/floatbar/internal/ui/theme"
)

// GroupHitPrefix prefixes the hit id of a collapsible group's label.
const GroupHitPrefix = "group:"

// Box overhead of the bar: a rounded border on every side plus one column
// of padding left and right.
const (
	barInsetX = 2
	barInsetY = 1
)

// Hit is a clickable region of the rendered bar, relative to its top-left
// cell.
type Hit struct {
	ID   string
	Rect layout.CellRect
}

// RenderedBar is a drawn toolbar frame.
type RenderedBar struct {
	View   string
	Width  int
	Height int
	Hits   []Hit
}

// HitAt returns the element under the cell (x, y), relative to the bar.
func (r RenderedBar) HitAt(x, y int) (string, bool) {
	for _, h := range r.Hits {
		if h.Rect.Contains(x, y) {
			return h.ID, true
		}
	}
	return "", false
}

// HitRect returns the region of the element with id.
func (r RenderedBar) HitRect(id string) (layout.CellRect, bool) {
	for _, h := range r.Hits {
		if h.ID == id {
			return h.Rect, true
		}
	}
	return layout.CellRect{}, false
}

// BarRenderer draws toolbar frames.
type BarRenderer struct {
	theme  theme.Theme
	styles theme.Styles
}

// NewBarRenderer creates a renderer for one palette.
func NewBarRenderer(t theme.Theme, s theme.Styles) BarRenderer {
	return BarRenderer{theme: t, styles: s}
}

type part struct {
	id   string
	text string
}

// itemText is the unstyled content of an item, one column of padding on
// each side.
func itemText(it toolbar.Item, o option.Orientation) string {
	if it.Kind == registry.Separator {
		if o == option.Vertical {
			return "──"
		}
		return "│"
	}
	var b strings.Builder
	b.WriteByte(' ')
	b.WriteString(it.Icon)
	if it.Icon != "" && it.Label != "" {
		b.WriteByte(' ')
	}
	b.WriteString(it.Label)
	if it.Trailing != "" {
		b.WriteString(it.Trailing)
	}
	b.WriteByte(' ')
	return b.String()
}

func (r BarRenderer) item(it toolbar.Item, o option.Orientation) string {
	if it.Kind == registry.Separator {
		return r.styles.Separator.Render(itemText(it, o))
	}
	style := r.styles.Item
	switch {
	case it.Disabled:
		style = r.styles.ItemDisabled
	case it.Active:
		style = r.styles.ItemActive
	case it.Focused:
		style = r.styles.ItemFocused
	case it.CustomStyle != "":
		style = style.Foreground(r.theme.StyleColor(it.CustomStyle))
	}
	if it.Focused && it.Active {
		style = style.Underline(true)
	}
	out := style.Render(itemText(it, o))
	if it.Badge != "" {
		out += r.styles.Badge.Render(it.Badge)
	}
	return out
}

func (r BarRenderer) control(c toolbar.Control) string {
	if !c.Enabled {
		return r.styles.ControlOff.Render(c.Icon)
	}
	return r.styles.Control.Render(c.Icon)
}

func (r BarRenderer) parts(f toolbar.Frame) []part {
	var ps []part
	if f.DragHandle != nil {
		ps = append(ps, part{id: f.DragHandle.ID, text: r.control(*f.DragHandle)})
	}
	if f.Pager != nil {
		ps = append(ps, part{id: f.Pager.Prev.ID, text: r.control(f.Pager.Prev)})
	}
	for _, s := range f.Sections {
		switch {
		case s.Collapsible:
			marker := "▾ "
			if s.Collapsed {
				marker = "▸ "
			}
			ps = append(ps, part{id: GroupHitPrefix + s.GroupID, text: r.styles.GroupLabel.Render(marker + s.Label)})
		case s.Label != "":
			ps = append(ps, part{text: r.styles.GroupLabel.Render(s.Label + ":")})
		}
		for _, it := range s.Items {
			id := it.ID
			if it.Kind == registry.Separator {
				id = ""
			}
			ps = append(ps, part{id: id, text: r.item(it, f.Orientation)})
		}
	}
	if f.Pager != nil {
		ps = append(ps, part{id: f.Pager.Next.ID, text: r.control(f.Pager.Next)})
		counter := strconv.Itoa(f.Pager.Page+1) + "/" + strconv.Itoa(f.Pager.Pages)
		ps = append(ps, part{text: r.styles.Muted.Render(counter)})
	}
	for _, d := range f.Sets {
		dot := r.styles.Dot.Render("○")
		if d.Active {
			dot = r.styles.DotActive.Render("●")
		}
		ps = append(ps, part{id: d.ID, text: dot})
	}
	if f.Collapse != nil {
		ps = append(ps, part{id: f.Collapse.ID, text: r.control(*f.Collapse)})
	}
	return ps
}

// Render draws f and records where each clickable element landed.
func (r BarRenderer) Render(f toolbar.Frame) RenderedBar {
	if f.Hidden {
		return RenderedBar{}
	}
	ps := r.parts(f)
	var hits []Hit
	var content string
	if f.Orientation == option.Vertical {
		lines := make([]string, len(ps))
		width := 0
		for i, p := range ps {
			lines[i] = p.text
			width = max(width, lipgloss.Width(p.text))
		}
		for i, p := range ps {
			if p.id != "" {
				hits = append(hits, Hit{ID: p.id, Rect: layout.CellRect{X: barInsetX, Y: barInsetY + i, W: width, H: 1}})
			}
		}
		content = strings.Join(lines, "\n")
	} else {
		texts := make([]string, len(ps))
		x := 0
		for i, p := range ps {
			texts[i] = p.text
			w := lipgloss.Width(p.text)
			if p.id != "" {
				hits = append(hits, Hit{ID: p.id, Rect: layout.CellRect{X: barInsetX + x, Y: barInsetY, W: w, H: 1}})
			}
			x += w + 1
		}
		content = strings.Join(texts, " ")
	}

	box := r.styles.Bar
	if f.Dragging {
		box = r.styles.BarDragging
	}
	view := box.Render(content)
	return RenderedBar{
		View:   view,
		Width:  lipgloss.Width(view),
		Height: lipgloss.Height(view),
		Hits:   hits,
	}
}

// Measurer reports cell extents of rendered items to the toolbar. Extents
// do not depend on colors, so one palette serves every theme.
type Measurer struct {
	r BarRenderer
}

var _ toolbar.Measurer = Measurer{}

// NewMeasurer creates a measurer.
func NewMeasurer() Measurer {
	t := theme.DefaultPair().Dark
	return Measurer{r: NewBarRenderer(t, theme.NewStyles(t))}
}

// Measure implements toolbar.Measurer.
func (m Measurer) Measure(items []toolbar.Item, o option.Orientation) pagination.Measurement {
	var ms pagination.Measurement
	n := 0
	for _, it := range items {
		n++
		if it.Kind == registry.Separator {
			ms.Separators = append(ms.Separators, 1)
			continue
		}
		if o == option.Vertical {
			ms.ToolWidths = append(ms.ToolWidths, 1)
		} else {
			ms.ToolWidths = append(ms.ToolWidths, float64(lipgloss.Width(m.r.item(it, o))))
		}
	}
	if o == option.Vertical {
		ms.Extent = float64(n + 2*barInsetY)
		return ms
	}
	for _, w := range ms.ToolWidths {
		ms.Extent += w
	}
	ms.Extent += float64(len(ms.Separators) + max(n-1, 0) + 2*barInsetX)
	return ms
}

// Size implements toolbar.Measurer.
func (m Measurer) Size(f toolbar.Frame) drag.Size {
	rb := m.r.Render(f)
	return drag.Size{W: float64(rb.Width), H: float64(rb.Height)}
}
