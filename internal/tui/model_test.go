package tui

import (
	"context"
	"strings"

	"github.com/steviee/go-gitmoji/internal/action"
	"github.com/steviee/go-gitmoji/internal/catalog"
	"github.com/steviee/go-gitmoji/internal/plugin"
	"github.com/stretchr/testify/mock"
)

// mockHost is a mock implementation of Host
type mockHost struct {
	mock.Mock
	entries       []catalog.Entry
	defaultAction action.Kind
}

func (m *mockHost) Suggest(input string) []catalog.Entry {
	out := []catalog.Entry{}
	for _, e := range m.entries {
		if strings.Contains(strings.ToLower(e.Label), strings.ToLower(input)) {
			out = append(out, e)
		}
	}
	return out
}

func (m *mockHost) OnExecute(ctx context.Context, entry catalog.Entry, actionName string) (*action.Result, error) {
	args := m.Called(ctx, entry, actionName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Result), args.Error(1)
}

func (m *mockHost) OnEvents(flags plugin.Event) []catalog.Entry {
	m.Called(flags)
	m.defaultAction = action.CopyEmoji
	return nil
}

func (m *mockHost) DefaultAction() action.Kind {
	return m.defaultAction
}

func newTestHost() *mockHost {
	return &mockHost{entries: []catalog.Entry{
		{Label: ":art:", ShortDesc: "Improve structure", Target: ":art:", Glyph: "🎨"},
		{Label: ":bug:", ShortDesc: "Fix a bug", Target: ":bug:", Glyph: "🐛"},
		{Label: ":sparkles:", ShortDesc: "Introduce new features", Target: ":sparkles:", Glyph: "✨"},
	}}
}
