// internal/tui/tui.go

// Package tui implements the interactive live-search view: a query input on
// top of a scrollable result list that refreshes on every keystroke.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/linegrep/internal/appconfig"
	"github.com/mwiater/linegrep/internal/strategyfactory"
	"github.com/mwiater/linegrep/internal/util"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	matchStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// headerLines is the number of rows above the viewport: title, input,
// status, and a separator.
const headerLines = 4

// Model is the bubbletea model for interactive search over a single file.
type Model struct {
	input      textinput.Model
	viewport   viewport.Model
	content    string
	filePath   string
	ignoreCase bool
	matches    []string
	lastQuery  string
	width      int
	height     int
	ready      bool
}

// New builds the interactive model over the already loaded file content.
func New(filePath, content string, ignoreCase bool) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a query..."
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		input:      ti,
		content:    content,
		filePath:   filePath,
		ignoreCase: ignoreCase,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Typing updates the query and recomputes the
// matches; ctrl+t toggles case folding; esc or ctrl+c quits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.ignoreCase = !m.ignoreCase
			m.refresh()
			return m, nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			// Navigation belongs to the result list; everything else is
			// typed into the query input.
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerLines)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerLines
		}
		m.refresh()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.input.Value() != m.lastQuery {
		m.refresh()
	}

	if _, isKey := msg.(tea.KeyMsg); !isKey {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// refresh recomputes the match list for the current query and rebuilds the
// viewport content with highlighted occurrences.
func (m *Model) refresh() {
	query := m.input.Value()
	m.lastQuery = query

	strategy := strategyfactory.New(m.ignoreCase)
	m.matches = strategy.Search(query, m.content)

	if !m.ready {
		return
	}
	wrap := func(s string) string { return matchStyle.Render(s) }
	rendered := make([]string, len(m.matches))
	for i, line := range m.matches {
		rendered[i] = util.Highlight(line, query, m.ignoreCase, wrap)
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.GotoTop()
}

// View implements tea.Model.
func (m Model) View() string {
	title := titleStyle.Render(util.TruncateRunes(m.filePath, 60))

	mode := "case-sensitive"
	if m.ignoreCase {
		mode = "case-insensitive"
	}
	status := statusStyle.Render(fmt.Sprintf(
		"%d matching lines — %s (ctrl+t toggles, esc quits)", len(m.matches), mode))

	body := "\n  Loading..."
	if m.ready {
		body = m.viewport.View()
	}

	return fmt.Sprintf("%s\n%s\n%s\n\n%s", title, m.input.View(), status, body)
}

// MatchCount reports how many lines currently match the query.
func (m Model) MatchCount() int {
	return len(m.matches)
}

// Run starts the interactive view over the file described by cfg, with
// content already loaded by the caller.
func Run(cfg appconfig.Config, content string) error {
	p := tea.NewProgram(New(cfg.FilePath, content, cfg.IgnoreCase), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
