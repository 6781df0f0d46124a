package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/steviee/go-gitmoji/internal/action"
	"github.com/steviee/go-gitmoji/internal/catalog"
	"github.com/steviee/go-gitmoji/internal/plugin"
)

// Host is the plugin surface the picker drives. *plugin.Plugin implements it.
type Host interface {
	Suggest(input string) []catalog.Entry
	OnExecute(ctx context.Context, entry catalog.Entry, actionName string) (*action.Result, error)
	OnEvents(flags plugin.Event) []catalog.Entry
	DefaultAction() action.Kind
}

// Model is the bubbletea model for the gitmoji picker
type Model struct {
	host        Host
	ctx         context.Context
	input       textinput.Model
	query       string
	results     []catalog.Entry
	selectedIdx int
	offset      int
	width       int
	height      int
	err         error
	errorTime   time.Time
	copied      *action.Result
	executing   bool
	quitting    bool
}

// NewModel creates a picker seeded with query
func NewModel(ctx context.Context, host Host, query string) Model {
	ti := textinput.New()
	ti.Placeholder = "search gitmoji"
	ti.Prompt = "❯ "
	ti.SetValue(query)
	ti.Focus()

	m := Model{
		host:  host,
		ctx:   ctx,
		input: ti,
	}
	m.refilter()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Copied returns the completed copy, or nil if the picker was dismissed.
func (m Model) Copied() *action.Result {
	return m.copied
}

// refilter recomputes the results from the current input
func (m *Model) refilter() {
	m.query = m.input.Value()
	m.results = m.host.Suggest(m.query)
	m.selectedIdx = 0
	m.offset = 0
}

// visibleRows returns how many result rows fit on screen
func (m Model) visibleRows() int {
	if m.height <= 0 {
		return 10
	}
	// header, input, blank line, footer, error line
	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

// executeCmd returns a command that copies entry with the named action. The
// command runs off the update goroutine, so actionName must already be
// resolved: an empty name would read the plugin's default concurrently with
// a settings reload.
func executeCmd(ctx context.Context, host Host, entry catalog.Entry, actionName string) tea.Cmd {
	return func() tea.Msg {
		res, err := host.OnExecute(ctx, entry, actionName)
		return copiedMsg{
			result: res,
			err:    err,
		}
	}
}

// clearErrorCmd returns a command that clears the error message after a delay
func clearErrorCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
