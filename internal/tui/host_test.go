package tui

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/steviee/go-gitmoji/internal/action"
	"github.com/steviee/go-gitmoji/internal/cache"
	"github.com/steviee/go-gitmoji/internal/catalog"
	"github.com/steviee/go-gitmoji/internal/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hostDocument = `{"gitmojis":[{"code":":bug:","emoji":"🐛","description":"Fix a bug","name":"bug"}]}`

type freshCache struct{}

func (freshCache) RefreshIfStale(context.Context) (bool, error) { return false, nil }

type syncClipboard struct {
	mu    sync.Mutex
	texts []string
}

func (c *syncClipboard) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.texts = append(c.texts, text)
	return nil
}

// newPluginHost builds a real plugin over a cache file in a temp dir.
func newPluginHost(t *testing.T) (*plugin.Plugin, *viper.Viper, *syncClipboard) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gitmoji.json")
	require.NoError(t, os.WriteFile(path, []byte(hostDocument), 0644))
	store := cache.NewStore(path)

	settings := viper.New()
	clip := &syncClipboard{}
	p := plugin.New(plugin.Deps{
		Settings:  settings,
		Refresher: freshCache{},
		Catalog:   catalog.New(store),
		Executor:  action.NewExecutor(store, clip),
	})
	require.NoError(t, p.OnStart(context.Background()))
	return p, settings, clip
}

// Run with -race: the copy command runs on its own goroutine while the
// update loop handles a settings reload.
func TestModel_CopyDuringConfigReload(t *testing.T) {
	host, settings, clip := newPluginHost(t)
	model := NewModel(context.Background(), host, "bug")

	updated, cmd := model.handleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	settings.Set(plugin.KeyDefaultCopyAction, "copy_emoji")
	updated, _ = updated.(Model).Update(ConfigChangedMsg{})

	copied, ok := (<-done).(copiedMsg)
	require.True(t, ok)
	require.NoError(t, copied.err)
	assert.Equal(t, ":bug:", copied.result.Text, "the action is fixed when the key is pressed")
	assert.Equal(t, action.CopyEmoji, host.DefaultAction())

	updated, _ = updated.(Model).Update(copied)
	m := updated.(Model)
	assert.False(t, m.executing)
	assert.Equal(t, copied.result, m.Copied())
	assert.Equal(t, []string{":bug:"}, clip.texts)
}
