package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/steviee/go-gitmoji/internal/catalog"
)

const (
	glyphWidth = 3
	codeWidth  = 28
)

// View renders the picker
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(fmt.Sprintf("No gitmoji matches %q\n", m.query))
	} else {
		b.WriteString(m.renderResults())
	}

	b.WriteString(m.renderFooter())

	if m.err != nil && time.Since(m.errorTime) < 3*time.Second {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.err)))
	}

	return b.String()
}

// renderHeader renders the picker title with the result count
func (m Model) renderHeader() string {
	return headerStyle.Render(fmt.Sprintf("gitmoji  %d match(es)", len(m.results)))
}

// renderResults renders the visible window of results
func (m Model) renderResults() string {
	var b strings.Builder

	end := m.offset + m.visibleRows()
	if end > len(m.results) {
		end = len(m.results)
	}

	for i := m.offset; i < end; i++ {
		row := formatRow(m.results[i], m.width)
		if i == m.selectedIdx {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(row)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// formatRow lays out glyph, code and description in fixed display columns.
// Emoji glyphs are double width, so widths are measured in terminal cells.
func formatRow(e catalog.Entry, width int) string {
	glyph := runewidth.FillRight(runewidth.Truncate(e.Glyph, glyphWidth, ""), glyphWidth)
	code := runewidth.FillRight(runewidth.Truncate(e.Label, codeWidth, "…"), codeWidth)

	desc := e.ShortDesc
	if width > 0 {
		room := width - glyphWidth - codeWidth - 3
		if room < 1 {
			room = 1
		}
		desc = runewidth.Truncate(desc, room, "…")
	}

	return fmt.Sprintf(" %s %s %s", glyph, codeStyle.Render(code), descStyle.Render(desc))
}

// renderFooter renders the key help line
func (m Model) renderFooter() string {
	defaultName := m.host.DefaultAction().String()
	return footerStyle.Render(fmt.Sprintf("enter: %s • ctrl+e: copy emoji • ctrl+y: copy code • ↑/↓: move • esc: quit", defaultName))
}
