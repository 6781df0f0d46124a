package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/steviee/go-gitmoji/internal/action"
)

// Picker runs the interactive gitmoji picker.
type Picker struct {
	program *tea.Program
}

// NewPicker creates a picker for host seeded with query.
func NewPicker(ctx context.Context, host Host, query string, opts ...tea.ProgramOption) *Picker {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	return &Picker{
		program: tea.NewProgram(NewModel(ctx, host, query), opts...),
	}
}

// NotifyConfigChanged asks the running picker to re-read its settings. It is
// safe to call from any goroutine.
func (p *Picker) NotifyConfigChanged() {
	p.program.Send(ConfigChangedMsg{})
}

// Run blocks until the user copies a gitmoji or quits. The result is nil when
// the picker was dismissed.
func (p *Picker) Run() (*action.Result, error) {
	final, err := p.program.Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return m.Copied(), nil
}
