package action

import (
	"context"
	"errors"
	"testing"

	"github.com/steviee/go-gitmoji/internal/catalog"
	"github.com/steviee/go-gitmoji/internal/gitmoji"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockClipboard is a mock implementation of Clipboard
type mockClipboard struct {
	mock.Mock
}

func (m *mockClipboard) WriteText(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

type docSource struct {
	doc *gitmoji.Document
	err error
}

func (s *docSource) Read() (*gitmoji.Document, error) {
	return s.doc, s.err
}

func bugSource() *docSource {
	return &docSource{doc: &gitmoji.Document{Gitmojis: []gitmoji.Record{
		{Emoji: "🎨", Code: ":art:", Description: "Improve structure", Name: "art"},
		{Emoji: "🐛", Code: ":bug:", Description: "Fix a bug", Name: "bug"},
	}}}
}

var bugEntry = catalog.Entry{Label: ":bug:", ShortDesc: "Fix a bug", Target: ":bug:"}

func kindPtr(k Kind) *Kind { return &k }

func TestExecute(t *testing.T) {
	tests := []struct {
		name        string
		defaultKind Kind
		kind        *Kind
		want        string
	}{
		{name: "copy code", kind: kindPtr(CopyCode), want: ":bug:"},
		{name: "copy emoji", kind: kindPtr(CopyEmoji), want: "🐛"},
		{name: "default is code", want: ":bug:"},
		{name: "configured default", defaultKind: CopyEmoji, want: "🐛"},
		{name: "explicit beats default", defaultKind: CopyEmoji, kind: kindPtr(CopyCode), want: ":bug:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &mockClipboard{}
			clip.On("WriteText", mock.Anything, tt.want).Return(nil).Once()

			e := NewExecutor(bugSource(), clip, WithDefault(tt.defaultKind))
			res, err := e.Execute(context.Background(), bugEntry, tt.kind)

			require.NoError(t, err)
			assert.Equal(t, ":bug:", res.Code)
			assert.Equal(t, tt.want, res.Text)
			clip.AssertExpectations(t)
		})
	}
}

func TestExecute_RecordNotFound(t *testing.T) {
	clip := &mockClipboard{}
	e := NewExecutor(bugSource(), clip)

	_, err := e.Execute(context.Background(), catalog.Entry{Target: ":zzz:"}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	clip.AssertNotCalled(t, "WriteText", mock.Anything, mock.Anything)
}

func TestExecute_CacheUnreadable(t *testing.T) {
	readErr := errors.New("corrupt cache")
	clip := &mockClipboard{}
	e := NewExecutor(&docSource{err: readErr}, clip)

	_, err := e.Execute(context.Background(), bugEntry, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	clip.AssertNotCalled(t, "WriteText", mock.Anything, mock.Anything)
}

func TestExecute_ClipboardError(t *testing.T) {
	clip := &mockClipboard{}
	clip.On("WriteText", mock.Anything, ":bug:").Return(errors.New("no display"))

	called := false
	e := NewExecutor(bugSource(), clip, WithHook(func(ctx context.Context, res Result) error {
		called = true
		return nil
	}))

	_, err := e.Execute(context.Background(), bugEntry, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.False(t, called, "hooks only run after a successful copy")
}

func TestExecute_HooksDoNotFail(t *testing.T) {
	clip := &mockClipboard{}
	clip.On("WriteText", mock.Anything, "🐛").Return(nil)

	var seen []Result
	e := NewExecutor(bugSource(), clip,
		WithHook(func(ctx context.Context, res Result) error {
			return errors.New("history unavailable")
		}),
		WithHook(func(ctx context.Context, res Result) error {
			seen = append(seen, res)
			return nil
		}),
	)

	res, err := e.Execute(context.Background(), bugEntry, kindPtr(CopyEmoji))

	require.NoError(t, err)
	assert.Equal(t, "🐛", res.Text)
	require.Len(t, seen, 1)
	assert.Equal(t, CopyEmoji, seen[0].Kind)
}

func TestExecutor_SetDefault(t *testing.T) {
	e := NewExecutor(bugSource(), &mockClipboard{})
	assert.Equal(t, CopyCode, e.Default())

	e.SetDefault(CopyEmoji)
	assert.Equal(t, CopyEmoji, e.Default())
}

// An explicit kind never reads the default, so a settings reload may change
// it while the copy runs. Run with -race.
func TestExecute_ExplicitKindDuringSetDefault(t *testing.T) {
	clip := &mockClipboard{}
	clip.On("WriteText", mock.Anything, "🐛").Return(nil).Once()
	e := NewExecutor(bugSource(), clip)

	done := make(chan *Result, 1)
	go func() {
		res, err := e.Execute(context.Background(), bugEntry, kindPtr(CopyEmoji))
		assert.NoError(t, err)
		done <- res
	}()
	e.SetDefault(CopyEmoji)

	res := <-done
	require.NotNil(t, res)
	assert.Equal(t, "🐛", res.Text)
	clip.AssertExpectations(t)
}
