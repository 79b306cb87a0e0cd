package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/floatbar/internal/toolbar/icons"
	"github.com/sadopc/floatbar/internal/ui/theme"
)

const defaultToastDuration = 2 * time.Second

// ToastLevel picks a notice's accent color.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// Notice is one toast. Icon is a symbolic path or literal glyph. A zero
// Duration uses the default.
type Notice struct {
	Text     string
	Icon     string
	Level    ToastLevel
	Duration time.Duration
}

// toastDismissMsg dismisses the notice it was scheduled for.
type toastDismissMsg struct{ seq int }

// Toast shows one notice at a time in the canvas corner. A newer notice
// outlives the dismissal scheduled by an older one.
type Toast struct {
	Visible bool
	notice  Notice
	seq     int
	icons   icons.Resolver
	theme   theme.Theme
	styles  theme.Styles
}

// NewToast creates a toast. A nil resolver shows icons literally.
func NewToast(t theme.Theme, s theme.Styles, r icons.Resolver) Toast {
	return Toast{theme: t, styles: s, icons: r}
}

// SetPalette restyles the toast without dropping the notice on screen.
func (m *Toast) SetPalette(t theme.Theme, s theme.Styles) {
	m.theme, m.styles = t, s
}

// Show displays n and returns the command that dismisses it.
func (m *Toast) Show(n Notice) tea.Cmd {
	if n.Duration <= 0 {
		n.Duration = defaultToastDuration
	}
	m.Visible = true
	m.notice = n
	m.seq++
	seq := m.seq
	return tea.Tick(n.Duration, func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

// Text returns the message shown.
func (m Toast) Text() string { return m.notice.Text }

// Notice returns the notice shown.
func (m Toast) Notice() Notice { return m.notice }

func (m Toast) Init() tea.Cmd {
	return nil
}

func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if msg, ok := msg.(toastDismissMsg); ok && msg.seq == m.seq {
		m.Visible = false
		m.notice = Notice{}
	}
	return m, nil
}

func (m Toast) accent() lipgloss.Color {
	switch m.notice.Level {
	case ToastSuccess:
		return m.theme.Green
	case ToastError:
		return m.theme.Red
	default:
		return m.theme.Blue
	}
}

func (m Toast) View() string {
	if !m.Visible || m.notice.Text == "" {
		return ""
	}
	fg := m.accent()

	text := m.notice.Text
	glyph := m.notice.Icon
	if m.icons != nil {
		glyph = m.icons.Resolve(glyph)
	}
	if glyph != "" {
		text = lipgloss.NewStyle().Foreground(fg).Render(glyph) + " " + text
	}

	return lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Background(m.theme.Surface).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Render(text)
}
