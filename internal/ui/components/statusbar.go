package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/option"
	"github.com/sadopc/floatbar/internal/ui/msgs"
	"github.com/sadopc/floatbar/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusInfo is the toolbar state shown in the status bar.
type StatusInfo struct {
	ActiveTool string
	SetName    string
	Set        int
	Sets       int
	Frame      toolbar.Frame
}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	info    StatusInfo
	mode    msgs.AppMode
	message string
	compact bool
	width   int
	theme   theme.Theme
	styles  theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		mode:   msgs.ModeNormal,
	}
}

// SetInfo replaces the toolbar state shown.
func (m *StatusBar) SetInfo(info StatusInfo) {
	m.info = info
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetCompact drops the key hints on narrow terminals.
func (m *StatusBar) SetCompact(c bool) {
	m.compact = c
}

// SetMessage sets a temporary status message.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg.(type) {
	case clearStatusMsg:
		m.message = ""
	}
	return m, nil
}

// minimapRows is the anchor grid in screen order.
var minimapRows = [][]option.Anchor{
	{option.TopLeft, option.TopCenter, option.TopRight},
	{option.CenterLeft, option.Center, option.CenterRight},
	{option.BottomLeft, option.BottomCenter, option.BottomRight},
}

// Minimap draws the nine anchors as three rows. While dragging with
// snapping it marks the allowed targets and the nearest one; otherwise it
// marks the current anchor.
func (m StatusBar) Minimap() string {
	f := m.info.Frame
	hints := make(map[option.Anchor]bool, len(f.SnapHints))
	for _, h := range f.SnapHints {
		hints[h.Anchor] = h.Active
	}
	bg := m.theme.Surface
	rows := make([]string, len(minimapRows))
	for i, row := range minimapRows {
		var b strings.Builder
		for _, a := range row {
			glyph, fg := "·", m.theme.Muted
			if active, ok := hints[a]; ok {
				glyph, fg = "○", m.theme.Subtext
				if active {
					glyph, fg = "●", m.theme.Green
				}
			} else if len(hints) == 0 && !f.Free && a == f.Position {
				glyph, fg = "◆", m.theme.Mauve
			}
			b.WriteString(lipgloss.NewStyle().Foreground(fg).Background(bg).Render(glyph))
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, lipgloss.NewStyle().Background(bg).Render(" "))
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)
	seg := func(fg lipgloss.Color, s string) string {
		return lipgloss.NewStyle().Foreground(fg).Background(m.theme.Surface).Render(s)
	}
	f := m.info.Frame

	var leftParts []string
	if m.message != "" {
		leftParts = append(leftParts, seg(m.theme.Text, m.message))
	} else {
		if m.info.ActiveTool != "" {
			leftParts = append(leftParts, seg(m.theme.Mauve, "● "+m.info.ActiveTool))
		}
		if m.info.Sets > 1 {
			leftParts = append(leftParts, seg(m.theme.Subtext, fmt.Sprintf("%s %d/%d", m.info.SetName, m.info.Set+1, m.info.Sets)))
		}
		if f.Pager != nil {
			leftParts = append(leftParts, seg(m.theme.Subtext, fmt.Sprintf("page %d/%d", f.Pager.Page+1, f.Pager.Pages)))
		}
		switch {
		case f.Dragging:
			leftParts = append(leftParts, seg(m.theme.Yellow, "dragging"))
		case f.Snapping:
			leftParts = append(leftParts, seg(m.theme.Green, "snapping"))
		case f.Hidden:
			leftParts = append(leftParts, seg(m.theme.Muted, "hidden"))
		case f.Collapsed:
			leftParts = append(leftParts, seg(m.theme.Muted, "collapsed"))
		}
	}
	left := strings.Join(leftParts, seg(m.theme.Muted, " │ "))

	center := seg(m.theme.Mauve, "["+m.mode.String()+"] ") + m.Minimap()

	var rightParts []string
	if f.EffectiveTheme != "" {
		theme := string(f.EffectiveTheme)
		if f.Theme == option.System {
			theme = "system:" + theme
		}
		rightParts = append(rightParts, seg(m.theme.Teal, fmt.Sprintf("%s %s %s", theme, f.Size, f.DisplayMode)))
	}
	if !m.compact {
		rightParts = append(rightParts, seg(m.theme.Muted, m.mode.Hint()))
	}
	right := strings.Join(rightParts, seg(m.theme.Muted, "  "))

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent+2 >= m.width {
		return barStyle.Render(" " + left + " " + center + " " + right)
	}

	remaining := m.width - totalContent - 2
	gap1 := remaining / 2
	gap2 := remaining - gap1
	line := " " + left +
		strings.Repeat(" ", gap1) + center +
		strings.Repeat(" ", gap2) + right
	return barStyle.Render(line)
}
