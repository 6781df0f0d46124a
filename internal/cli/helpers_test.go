package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const testDocument = `{"gitmojis":[
  {"emoji":"🎨","entity":"&#x1f3a8;","code":":art:","description":"Improve structure / format of the code.","name":"art"},
  {"emoji":"🐛","entity":"&#x1f41b;","code":":bug:","description":"Fix a bug.","name":"bug"},
  {"emoji":"🚑️","entity":"&#128657;","code":":ambulance:","description":"Critical hotfix.","name":"ambulance"}
]}`

// testEnv points every XDG directory at a temp dir, writes a fresh cache
// and routes the clipboard to stdout.
type testEnv struct {
	cachePath   string
	historyPath string
}

func setupTestEnv(t *testing.T, document string) *testEnv {
	t.Helper()

	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("GITMOJI_CLIPBOARD_BACKEND", "stdout")
	t.Setenv("SSH_TTY", "")

	viper.Reset()
	t.Cleanup(viper.Reset)

	env := &testEnv{
		cachePath:   filepath.Join(root, "cache", "go-gitmoji", "gitmoji.json"),
		historyPath: filepath.Join(root, "data", "go-gitmoji", "history.db"),
	}

	if document != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(env.cachePath), 0755))
		require.NoError(t, os.WriteFile(env.cachePath, []byte(document), 0644))
	}
	return env
}

// execute runs the root command with args and returns stdout and stderr
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand("dev", "unknown", "unknown", "unknown")
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
