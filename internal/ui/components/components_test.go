package components

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/icons"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
	"github.com/sadopc/floatbar/internal/toolbar/tooltip"
	"github.com/sadopc/floatbar/internal/ui/layout"
	"github.com/sadopc/floatbar/internal/ui/msgs"
	"github.com/sadopc/floatbar/internal/ui/theme"
)

// helpers

func testTheme() theme.Theme {
	return theme.DefaultPair().Dark
}

func testStyles() theme.Styles {
	return theme.NewStyles(testTheme())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRenderer() BarRenderer {
	return NewBarRenderer(testTheme(), testStyles())
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func specialKeyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func horizontalFrame() toolbar.Frame {
	return toolbar.Frame{
		Orientation: option.Horizontal,
		DragHandle:  &toolbar.Control{ID: toolbar.DragHandleID, Icon: "⋮", Enabled: true},
		Collapse:    &toolbar.Control{ID: toolbar.CollapseID, Icon: "▴", Enabled: true},
		Sections: []toolbar.Section{{Items: []toolbar.Item{
			{ID: "pen", Kind: registry.Radio, Icon: "✎", Label: "Pen"},
			{ID: "sep", Kind: registry.Separator},
			{ID: "undo", Kind: registry.Button, Label: "Undo"},
		}}},
		Sets: []toolbar.SetDot{
			{ID: toolbar.SetDotID(0), Index: 0, Active: true},
			{ID: toolbar.SetDotID(1), Index: 1},
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// BarRenderer tests
// ─────────────────────────────────────────────────────────────────────────────

func TestBarRenderer_HorizontalHits(t *testing.T) {
	rb := testRenderer().Render(horizontalFrame())

	if rb.Height != 3 {
		t.Fatalf("height = %d, want 3 (border + one row)", rb.Height)
	}
	if rb.Width != lipgloss.Width(rb.View) {
		t.Fatalf("width = %d, view is %d wide", rb.Width, lipgloss.Width(rb.View))
	}

	// handle, pen, undo, two dots, collapse; the separator is not clickable
	want := []string{toolbar.DragHandleID, "pen", "undo", toolbar.SetDotID(0), toolbar.SetDotID(1), toolbar.CollapseID}
	if len(rb.Hits) != len(want) {
		t.Fatalf("hits = %+v", rb.Hits)
	}
	for i, id := range want {
		if rb.Hits[i].ID != id {
			t.Errorf("hit %d = %s, want %s", i, rb.Hits[i].ID, id)
		}
	}

	handle := rb.Hits[0].Rect
	if handle.X != barInsetX || handle.Y != barInsetY || handle.W != 1 {
		t.Errorf("handle rect = %+v", handle)
	}
	pen := rb.Hits[1].Rect
	if pen.X != handle.X+handle.W+1 {
		t.Errorf("pen starts at %d, want one gap after the handle", pen.X)
	}
	if pen.W != lipgloss.Width(" ✎ Pen ") {
		t.Errorf("pen width = %d", pen.W)
	}
	if id, ok := rb.HitAt(pen.X+1, pen.Y); !ok || id != "pen" {
		t.Errorf("HitAt inside pen = %q, %v", id, ok)
	}
	if _, ok := rb.HitAt(0, 0); ok {
		t.Error("border corner should not hit anything")
	}
}

func TestBarRenderer_VerticalStacksRows(t *testing.T) {
	f := horizontalFrame()
	f.Orientation = option.Vertical
	rb := testRenderer().Render(f)

	// six clickable parts plus one separator row, plus the border
	if rb.Height != 7+2 {
		t.Fatalf("height = %d", rb.Height)
	}
	undo, ok := rb.HitRect("undo")
	if !ok {
		t.Fatal("undo has no hit region")
	}
	if undo.Y != barInsetY+3 {
		t.Errorf("undo row = %d, want %d", undo.Y, barInsetY+3)
	}
}

func TestBarRenderer_HiddenRendersNothing(t *testing.T) {
	rb := testRenderer().Render(toolbar.Frame{Hidden: true})
	if rb.View != "" || rb.Width != 0 || len(rb.Hits) != 0 {
		t.Fatalf("hidden frame rendered %+v", rb)
	}
}

func TestBarRenderer_PagerAndGroups(t *testing.T) {
	f := toolbar.Frame{
		Orientation: option.Horizontal,
		Sections: []toolbar.Section{
			{GroupID: "draw", Label: "Draw", Collapsible: true, Collapsed: true},
			{Items: []toolbar.Item{{ID: "a", Label: "A"}}},
		},
		Pager: &toolbar.Pager{
			Page:  1,
			Pages: 3,
			Prev:  toolbar.Control{ID: toolbar.PagePrevID, Icon: "‹", Enabled: true},
			Next:  toolbar.Control{ID: toolbar.PageNextID, Icon: "›", Enabled: true},
		},
	}
	rb := testRenderer().Render(f)
	for _, id := range []string{toolbar.PagePrevID, toolbar.PageNextID, GroupHitPrefix + "draw", "a"} {
		if _, ok := rb.HitRect(id); !ok {
			t.Errorf("missing hit %q", id)
		}
	}
	if !strings.Contains(rb.View, "2/3") {
		t.Error("page counter not drawn")
	}
	if !strings.Contains(rb.View, "▸ Draw") {
		t.Error("collapsed group marker not drawn")
	}
}

func TestItemTextDisplayModes(t *testing.T) {
	tests := []struct {
		item toolbar.Item
		want string
	}{
		{toolbar.Item{Icon: "✎", Label: "Pen"}, " ✎ Pen "},
		{toolbar.Item{Icon: "✎"}, " ✎ "},
		{toolbar.Item{Label: "Pen"}, " Pen "},
		{toolbar.Item{Label: "Shapes", Kind: registry.Dropdown, Trailing: "▾"}, " Shapes▾ "},
	}
	for _, tt := range tests {
		if got := itemText(tt.item, option.Horizontal); got != tt.want {
			t.Errorf("itemText(%+v) = %q, want %q", tt.item, got, tt.want)
		}
	}
	sep := toolbar.Item{Kind: registry.Separator}
	if itemText(sep, option.Horizontal) != "│" || itemText(sep, option.Vertical) != "──" {
		t.Error("separator glyphs wrong")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Measurer tests
// ─────────────────────────────────────────────────────────────────────────────

func TestMeasurer_Horizontal(t *testing.T) {
	items := []toolbar.Item{
		{ID: "a", Label: "Alpha"},
		{ID: "s", Kind: registry.Separator},
		{ID: "b", Label: "Be"},
	}
	ms := NewMeasurer().Measure(items, option.Horizontal)
	if len(ms.ToolWidths) != 2 || ms.ToolWidths[0] != 7 || ms.ToolWidths[1] != 4 {
		t.Fatalf("widths = %v", ms.ToolWidths)
	}
	if len(ms.Separators) != 1 {
		t.Fatalf("separators = %v", ms.Separators)
	}
	// 7 + 4 tools, 1 separator, 2 gaps, 4 box
	if ms.Extent != 18 {
		t.Errorf("extent = %v, want 18", ms.Extent)
	}
}

func TestMeasurer_Vertical(t *testing.T) {
	items := []toolbar.Item{{ID: "a", Label: "Alpha"}, {ID: "b", Label: "Beta"}}
	ms := NewMeasurer().Measure(items, option.Vertical)
	if ms.Extent != 4 {
		t.Errorf("extent = %v, want 4", ms.Extent)
	}
}

func TestMeasurer_SizeMatchesRender(t *testing.T) {
	f := horizontalFrame()
	sz := NewMeasurer().Size(f)
	rb := testRenderer().Render(f)
	if int(sz.W) != rb.Width || int(sz.H) != rb.Height {
		t.Errorf("Size = %+v, render is %dx%d", sz, rb.Width, rb.Height)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Tooltip tests
// ─────────────────────────────────────────────────────────────────────────────

func TestPlaceTooltip(t *testing.T) {
	target := layout.CellRect{X: 10, Y: 10, W: 5, H: 1}
	tests := []struct {
		pos  tooltip.Position
		x, y int
	}{
		{tooltip.Top, 10, 9},
		{tooltip.Bottom, 10, 11},
		{tooltip.Left, 2, 10},
		{tooltip.Right, 15, 10},
		{tooltip.Auto, 10, 11},
	}
	for _, tt := range tests {
		x, y := PlaceTooltip(tt.pos, target, 8, 1, 80, 24)
		if x != tt.x || y != tt.y {
			t.Errorf("%s: (%d,%d), want (%d,%d)", tt.pos, x, y, tt.x, tt.y)
		}
	}
}

func TestPlaceTooltipClampsAndFlips(t *testing.T) {
	bottom := layout.CellRect{X: 75, Y: 23, W: 5, H: 1}
	x, y := PlaceTooltip(tooltip.Auto, bottom, 10, 1, 80, 24)
	if y != 22 {
		t.Errorf("auto near the bottom should open above, y = %d", y)
	}
	if x != 70 {
		t.Errorf("x = %d, want clamped to 70", x)
	}
}

func TestTooltipShowsShortcut(t *testing.T) {
	view := testRenderer().Tooltip(tooltip.Spec{Text: "Draw", Shortcut: "P"})
	if !strings.Contains(view, "Draw") || !strings.Contains(view, "(P)") {
		t.Errorf("tooltip = %q", view)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// StatusBar tests
// ─────────────────────────────────────────────────────────────────────────────

func TestStatusBar_ShowsToolbarState(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetWidth(140)
	sb.SetInfo(StatusInfo{
		ActiveTool: "pen",
		SetName:    "Edit",
		Set:        0,
		Sets:       2,
		Frame: toolbar.Frame{
			Theme:          option.System,
			EffectiveTheme: option.Dark,
			Size:           option.Medium,
			DisplayMode:    option.Both,
			Position:       option.BottomCenter,
			Pager:          &toolbar.Pager{Page: 0, Pages: 2},
		},
	})
	view := sb.View()
	for _, want := range []string{"pen", "Edit 1/2", "page 1/2", "system:dark", "NORMAL", "?:help"} {
		if !strings.Contains(view, want) {
			t.Errorf("status bar missing %q:\n%s", want, view)
		}
	}
}

func TestStatusBar_MessageReplacesState(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetWidth(100)
	sb.SetInfo(StatusInfo{ActiveTool: "pen"})
	sb.SetMessage("saved")
	if view := sb.View(); !strings.Contains(view, "saved") || strings.Contains(view, "pen") {
		t.Errorf("view = %s", view)
	}
	sb, _ = sb.Update(clearStatusMsg{})
	if view := sb.View(); !strings.Contains(view, "pen") {
		t.Errorf("message should clear, view = %s", view)
	}
}

func TestStatusBar_CompactDropsHints(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetWidth(50)
	sb.SetCompact(true)
	if strings.Contains(sb.View(), "?:help") {
		t.Error("compact status bar should drop hints")
	}
}

func TestStatusBar_Minimap(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetInfo(StatusInfo{Frame: toolbar.Frame{Position: option.TopRight}})
	if got := stripANSI(sb.Minimap()); got != "··◆ ··· ···" {
		t.Errorf("minimap = %q", got)
	}

	sb.SetInfo(StatusInfo{Frame: toolbar.Frame{
		Position: option.TopRight,
		Dragging: true,
		SnapHints: []toolbar.SnapHint{
			{Anchor: option.TopLeft},
			{Anchor: option.BottomRight, Active: true},
		},
	}})
	if got := stripANSI(sb.Minimap()); got != "○·· ··· ··●" {
		t.Errorf("dragging minimap = %q", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			in = true
		case in && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			in = false
		case !in:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Toast tests
// ─────────────────────────────────────────────────────────────────────────────

func TestToast_ShowAndDismiss(t *testing.T) {
	toast := NewToast(testTheme(), testStyles(), nil)
	cmd := toast.Show(Notice{Text: "Theme: dark", Duration: 50 * time.Millisecond})
	if cmd == nil || !toast.Visible {
		t.Fatal("toast should be visible with a dismiss cmd")
	}
	if !strings.Contains(toast.View(), "Theme: dark") {
		t.Errorf("view = %q", toast.View())
	}
	toast, _ = toast.Update(toastDismissMsg{seq: toast.seq})
	if toast.Visible || toast.View() != "" {
		t.Error("toast should be dismissed")
	}
}

func TestToast_StaleDismissIgnored(t *testing.T) {
	toast := NewToast(testTheme(), testStyles(), nil)
	toast.Show(Notice{Text: "first"})
	stale := toast.seq
	toast.Show(Notice{Text: "second", Level: ToastError})
	toast, _ = toast.Update(toastDismissMsg{seq: stale})
	if !toast.Visible || toast.Text() != "second" {
		t.Error("older dismissal closed a newer toast")
	}
}

func TestToast_IconResolved(t *testing.T) {
	table := icons.NewTable(map[string]string{"utils.moon": "☾"}, discardLogger())
	toast := NewToast(testTheme(), testStyles(), table)
	toast.Show(Notice{Text: "Theme: dark", Icon: "utils.moon"})
	if got := stripANSI(toast.View()); !strings.Contains(got, "☾ Theme: dark") {
		t.Errorf("view = %q, want the glyph before the text", got)
	}

	toast.Show(Notice{Text: "plain", Icon: "utils.missing"})
	if got := stripANSI(toast.View()); strings.Contains(got, "utils.missing") {
		t.Errorf("unknown icon path should not be drawn, got %q", got)
	}
}

func TestToast_SetPaletteKeepsNotice(t *testing.T) {
	toast := NewToast(testTheme(), testStyles(), nil)
	toast.Show(Notice{Text: "kept"})
	seq := toast.seq
	light := theme.DefaultPair().Light
	toast.SetPalette(light, theme.NewStyles(light))
	if !toast.Visible || toast.Text() != "kept" || toast.seq != seq {
		t.Error("restyling should keep the notice and its dismissal")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Finder tests
// ─────────────────────────────────────────────────────────────────────────────

func finderEntries() []FinderEntry {
	return []FinderEntry{
		{Set: 0, SetName: "Edit", ToolID: "pen", Label: "Pen", Shortcut: "P"},
		{Set: 0, SetName: "Edit", ToolID: "eraser", Label: "Eraser"},
		{Set: 1, SetName: "View", ToolID: "zoom-in", Label: "Zoom in"},
	}
}

func typeInto(f Finder, s string) Finder {
	for _, r := range s {
		f, _ = f.Update(keyMsg(string(r)))
	}
	return f
}

func TestFinder_FiltersFuzzy(t *testing.T) {
	f := NewFinder(testTheme(), testStyles())
	f.Open(finderEntries())
	if len(f.Filtered()) != 3 {
		t.Fatalf("empty query should list everything, got %d", len(f.Filtered()))
	}
	f = typeInto(f, "zm")
	got := f.Filtered()
	if len(got) != 1 || got[0].ToolID != "zoom-in" {
		t.Fatalf("filtered = %+v", got)
	}
}

func TestFinder_EnterEmitsChoice(t *testing.T) {
	f := NewFinder(testTheme(), testStyles())
	f.Open(finderEntries())
	f, _ = f.Update(specialKeyMsg(tea.KeyDown))
	f, cmd := f.Update(specialKeyMsg(tea.KeyEnter))
	if f.Visible {
		t.Error("finder should close on enter")
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want tea.BatchMsg", cmd())
	}
	var chosen *msgs.ToolChosenMsg
	for _, c := range batch {
		if m, ok := c().(msgs.ToolChosenMsg); ok {
			chosen = &m
		}
	}
	if chosen == nil || chosen.ToolID != "eraser" || chosen.Set != 0 {
		t.Fatalf("chosen = %+v", chosen)
	}
}

func TestFinder_EscCloses(t *testing.T) {
	f := NewFinder(testTheme(), testStyles())
	f.Open(finderEntries())
	f, cmd := f.Update(specialKeyMsg(tea.KeyEsc))
	if f.Visible {
		t.Error("finder should close on esc")
	}
	if m, ok := cmd().(msgs.SetModeMsg); !ok || m.Mode != msgs.ModeNormal {
		t.Errorf("cmd() = %#v", cmd())
	}
}

func TestFinder_NoMatches(t *testing.T) {
	f := NewFinder(testTheme(), testStyles())
	f.Open(finderEntries())
	f = typeInto(f, "qqq")
	if len(f.Filtered()) != 0 {
		t.Fatalf("filtered = %+v", f.Filtered())
	}
	if !strings.Contains(f.View(), "no matching tools") {
		t.Error("empty state not shown")
	}
	if _, cmd := f.Update(specialKeyMsg(tea.KeyEnter)); cmd != nil {
		t.Error("enter with no matches should do nothing")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Help tests
// ─────────────────────────────────────────────────────────────────────────────

func TestHelp_ListsBindings(t *testing.T) {
	sections := []HelpSection{{
		Title: "Toolbar",
		Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
		},
	}}
	h := NewHelp(testTheme(), testStyles(), sections)
	h.SetSize(100, 40)
	h.Toggle()
	view := h.View()
	if !strings.Contains(view, "next theme") {
		t.Error("binding missing from help")
	}
	if strings.Contains(view, "hidden") {
		t.Error("disabled binding shown")
	}
	if !strings.Contains(view, "Pointer") {
		t.Error("pointer section missing")
	}

	h, cmd := h.Update(keyMsg("?"))
	if h.Visible {
		t.Error("? should close help")
	}
	if m, ok := cmd().(msgs.SetModeMsg); !ok || m.Mode != msgs.ModeNormal {
		t.Errorf("cmd() = %#v", cmd())
	}
}
