package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/steviee/go-gitmoji/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, state.AppDirName, state.ConfigFileName)
}

func noJSON() bool { return false }

func TestNewCommand(t *testing.T) {
	cmd := NewCommand(noJSON)

	assert.Equal(t, "config", cmd.Use)
	assert.Equal(t, "Manage configuration", cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Example)
	assert.Contains(t, cmd.Aliases, "cfg")

	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"init", "show", "path"}, names)
}

func TestRunInit(t *testing.T) {
	path := useTempConfigHome(t)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, runInit(ctx, &out, false, false))
	assert.Contains(t, out.String(), path)
	assert.FileExists(t, path)

	out.Reset()
	err := runInit(ctx, &out, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, runInit(ctx, &out, false, true))
}

func TestRunInit_JSONError(t *testing.T) {
	useTempConfigHome(t)
	ctx := context.Background()
	require.NoError(t, runInit(ctx, &bytes.Buffer{}, true, false))

	var out bytes.Buffer
	require.Error(t, runInit(ctx, &out, true, false))

	var result Output
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "error", result.Status)
	assert.Contains(t, result.Error, "already exists")
}

func TestRunShow(t *testing.T) {
	path := useTempConfigHome(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("main:\n  default_copy_action: copy_emoji\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, runShow(context.Background(), &out, false))
	assert.Contains(t, out.String(), "default_copy_action: copy_emoji")
	assert.Contains(t, out.String(), "max_age_days: 7")

	out.Reset()
	require.NoError(t, runShow(context.Background(), &out, true))

	var result struct {
		Status string       `json:"status"`
		Data   state.Config `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "copy_emoji", result.Data.Main.DefaultCopyAction)
}

func TestPathCommand(t *testing.T) {
	path := useTempConfigHome(t)

	cmd := NewCommand(noJSON)
	cmd.SetArgs([]string{"path"})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, path+"\n", out.String())
}
