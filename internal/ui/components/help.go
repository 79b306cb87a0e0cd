package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/floatbar/internal/ui/msgs"
	"github.com/sadopc/floatbar/internal/ui/theme"
)

const helpBoxWidth = 64

// HelpSection is a titled list of key bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// pointerHelp documents the mouse, which has no key bindings.
var pointerHelp = [][2]string{
	{"click", "Activate tool or control"},
	{"drag handle", "Move the toolbar; release to snap"},
	{"hover", "Show tooltip"},
}

// Help is a help overlay listing key bindings.
type Help struct {
	Visible  bool
	sections []HelpSection
	viewport viewport.Model
	theme    theme.Theme
	styles   theme.Styles
	width    int
	height   int
	ready    bool
}

// NewHelp creates a new help overlay.
func NewHelp(t theme.Theme, s theme.Styles, sections []HelpSection) Help {
	return Help{
		theme:    t,
		styles:   s,
		sections: sections,
	}
}

// SetSize sets the terminal dimensions for sizing the viewport.
func (m *Help) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.ready = false
}

// Toggle toggles help visibility.
func (m *Help) Toggle() {
	m.Visible = !m.Visible
	if m.Visible {
		m.buildViewport()
	}
}

func (m *Help) buildViewport() {
	contentWidth := helpBoxWidth - 6

	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.Mauve).
		Bold(true).
		Width(16).
		Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	sectionStyle := lipgloss.NewStyle().
		Foreground(m.theme.Lavender).
		Bold(true).
		MarginTop(1)
	sepStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	row := func(k, desc string) string {
		return keyStyle.Render(k) + sepStyle.Render(" │ ") + descStyle.Render(desc)
	}

	var lines []string
	for _, section := range m.sections {
		lines = append(lines, sectionStyle.Render(section.Title))
		lines = append(lines, sepStyle.Render(strings.Repeat("─", contentWidth)))
		for _, b := range section.Bindings {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			lines = append(lines, row(h.Key, h.Desc))
		}
	}
	lines = append(lines, sectionStyle.Render("Pointer"))
	lines = append(lines, sepStyle.Render(strings.Repeat("─", contentWidth)))
	for _, p := range pointerHelp {
		lines = append(lines, row(p[0], p[1]))
	}

	vpHeight := max(m.height-8, 10)
	m.viewport = viewport.New(contentWidth, vpHeight)
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.ready = true
}

// Init implements tea.Model.
func (m Help) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			m.Visible = false
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
		}
	}

	if !m.ready {
		m.buildViewport()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the help overlay.
func (m Help) View() string {
	if !m.Visible {
		return ""
	}
	if !m.ready {
		m.buildViewport()
	}

	title := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(helpBoxWidth - 6).
		Align(lipgloss.Center).
		Render("Keyboard Shortcuts")

	return lipgloss.NewStyle().
		Width(helpBoxWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(title + "\n\n" + m.viewport.View())
}
