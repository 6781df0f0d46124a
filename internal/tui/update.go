package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/steviee/go-gitmoji/internal/action"
	"github.com/steviee/go-gitmoji/internal/plugin"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case ConfigChangedMsg:
		m.host.OnEvents(plugin.EventConfigChanged)
		m.refilter()
		slog.Debug("picker settings reloaded")
		return m, nil

	case copiedMsg:
		m.executing = false
		if msg.err != nil {
			m.err = fmt.Errorf("copy failed: %w", msg.err)
			m.errorTime = time.Now()
			slog.Error("copy failed", "error", msg.err)
			return m, clearErrorCmd()
		}

		m.copied = msg.result
		m.quitting = true
		return m, tea.Quit

	case clearErrorMsg:
		if time.Since(m.errorTime) >= 3*time.Second {
			m.err = nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "ctrl+p":
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		m.scroll()
		return m, nil

	case "down", "ctrl+n":
		if m.selectedIdx < len(m.results)-1 {
			m.selectedIdx++
		}
		m.scroll()
		return m, nil

	case "enter":
		return m.execute("")

	case "ctrl+e":
		return m.execute(action.CopyEmoji.String())

	case "ctrl+y":
		return m.execute(action.CopyCode.String())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.query {
		m.refilter()
	}
	return m, cmd
}

// execute starts a copy of the selected result. An empty actionName uses the
// default action. Keys are ignored while a copy is running.
func (m Model) execute(actionName string) (tea.Model, tea.Cmd) {
	if m.executing || len(m.results) == 0 {
		return m, nil
	}
	if actionName == "" {
		actionName = m.host.DefaultAction().String()
	}

	m.executing = true
	entry := m.results[m.selectedIdx]
	return m, executeCmd(m.ctx, m.host, entry, actionName)
}

// scroll keeps the selected row inside the visible window
func (m *Model) scroll() {
	rows := m.visibleRows()
	if m.selectedIdx < m.offset {
		m.offset = m.selectedIdx
	}
	if m.selectedIdx >= m.offset+rows {
		m.offset = m.selectedIdx - rows + 1
	}
}
