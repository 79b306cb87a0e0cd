package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/sadopc/floatbar/internal/ui/msgs"
	"github.com/sadopc/floatbar/internal/ui/theme"
)

const (
	finderWidth    = 60
	finderMaxItems = 12
)

// FinderEntry is one searchable tool.
type FinderEntry struct {
	Set      int // -1 without tool sets
	SetName  string
	ToolID   string
	Label    string
	Shortcut string
}

func (e FinderEntry) title() string {
	name := e.Label
	if name == "" {
		name = e.ToolID
	}
	if e.SetName != "" {
		return e.SetName + " › " + name
	}
	return name
}

// finderSource adapts entries to fuzzy.Source.
type finderSource []FinderEntry

func (s finderSource) String(i int) string { return s[i].title() + " " + s[i].ToolID }
func (s finderSource) Len() int            { return len(s) }

// Finder is a fuzzy search overlay over every tool of every tool set.
type Finder struct {
	Visible  bool
	input    textinput.Model
	entries  []FinderEntry
	filtered []FinderEntry
	cursor   int
	theme    theme.Theme
	styles   theme.Styles
}

// NewFinder creates a new tool finder.
func NewFinder(t theme.Theme, s theme.Styles) Finder {
	ti := textinput.New()
	ti.Placeholder = "Find a tool..."
	ti.CharLimit = 64
	ti.Width = finderWidth - 6

	return Finder{
		input:  ti,
		theme:  t,
		styles: s,
	}
}

// Open shows the finder over entries.
func (m *Finder) Open(entries []FinderEntry) {
	m.Visible = true
	m.entries = entries
	m.filtered = entries
	m.cursor = 0
	m.input.SetValue("")
	m.input.Focus()
}

// Close hides the finder.
func (m *Finder) Close() {
	m.Visible = false
	m.input.Blur()
}

// Filtered returns the entries matching the current query.
func (m Finder) Filtered() []FinderEntry { return m.filtered }

// Init implements tea.Model.
func (m Finder) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Finder) Update(msg tea.Msg) (Finder, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.Close()
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
		case "enter":
			if m.cursor >= len(m.filtered) {
				return m, nil
			}
			selected := m.filtered[m.cursor]
			m.Close()
			return m, tea.Batch(
				func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} },
				func() tea.Msg { return msgs.ToolChosenMsg{Set: selected.Set, ToolID: selected.ToolID} },
			)
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()
	return m, cmd
}

func (m *Finder) filter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = m.entries
	} else {
		matches := fuzzy.FindFrom(query, finderSource(m.entries))
		m.filtered = make([]FinderEntry, len(matches))
		for i, match := range matches {
			m.filtered[i] = m.entries[match.Index]
		}
	}
	m.cursor = min(m.cursor, max(len(m.filtered)-1, 0))
}

// View renders the finder overlay.
func (m Finder) View() string {
	if !m.Visible {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(finderWidth - 6).
		Align(lipgloss.Center).
		Render("Find Tool")

	inner := finderWidth - 6
	var items []string
	for i, e := range m.filtered[:min(len(m.filtered), finderMaxItems)] {
		name := e.title()
		nameWidth := inner
		if e.Shortcut != "" {
			nameWidth -= lipgloss.Width(e.Shortcut) + 1
		}
		if lipgloss.Width(name) > nameWidth {
			name = string([]rune(name)[:max(nameWidth-1, 0)]) + "…"
		}
		gap := max(inner-lipgloss.Width(name)-lipgloss.Width(e.Shortcut), 1)

		if i == m.cursor {
			items = append(items, m.styles.Selected.
				Width(inner).
				Render(name+strings.Repeat(" ", gap)+e.Shortcut))
			continue
		}
		items = append(items, m.styles.Normal.Render(name)+
			strings.Repeat(" ", gap)+
			m.styles.Muted.Render(e.Shortcut))
	}
	if len(items) == 0 {
		items = append(items, m.styles.Hint.Render("no matching tools"))
	}

	content := title + "\n\n" + m.input.View() + "\n\n" + strings.Join(items, "\n")
	return lipgloss.NewStyle().
		Width(finderWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(content)
}
