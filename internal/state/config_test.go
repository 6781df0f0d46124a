package state

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempXDG points every XDG base directory at a fresh temp dir.
func useTempXDG(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("XDG_CACHE_HOME", tmpDir)
	t.Setenv("XDG_DATA_HOME", tmpDir)
	return tmpDir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "copy_code", cfg.Main.DefaultCopyAction)
	assert.Equal(t, "substring", cfg.Main.MatchMode)
	assert.False(t, cfg.Main.Notify)
	assert.Equal(t, DefaultGitmojiURL, cfg.Cache.URL)
	assert.Equal(t, 7, cfg.Cache.MaxAgeDays)
	assert.Equal(t, 10*time.Second, cfg.Cache.Timeout)
	assert.False(t, cfg.Catalog.RequireEntity)
	assert.Equal(t, "auto", cfg.Clipboard.Backend)
	assert.True(t, cfg.History.Enabled)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadConfig_CreatesDefaultIfMissing(t *testing.T) {
	useTempXDG(t)
	require.NoError(t, InitDirs())

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "copy_code", cfg.Main.DefaultCopyAction)

	configPath, err := GetConfigPath()
	require.NoError(t, err)
	_, err = os.Stat(configPath)
	require.NoError(t, err)
}

func TestLoadConfig_LoadsExisting(t *testing.T) {
	useTempXDG(t)
	ctx := context.Background()

	custom := DefaultConfig()
	custom.Main.DefaultCopyAction = "copy_emoji"
	custom.Cache.MaxAgeDays = 30
	require.NoError(t, SaveConfig(ctx, custom))

	cfg, err := LoadConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "copy_emoji", cfg.Main.DefaultCopyAction)
	assert.Equal(t, 30, cfg.Cache.MaxAgeDays)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	useTempXDG(t)
	require.NoError(t, InitDirs())

	configPath, err := GetConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, []byte("main:\n  default_copy_action: copy_emoji\n"), 0644))

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "copy_emoji", cfg.Main.DefaultCopyAction)
	assert.Equal(t, DefaultMaxAgeDays, cfg.Cache.MaxAgeDays)
	assert.Equal(t, DefaultGitmojiURL, cfg.Cache.URL)
}

func TestLoadConfig_RecoversFromCorruption(t *testing.T) {
	useTempXDG(t)
	require.NoError(t, InitDirs())

	configPath, err := GetConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, []byte("this is not valid YAML: {[}]"), 0644))

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	_, err = os.Stat(configPath + ".corrupted")
	require.NoError(t, err)
	assert.Equal(t, "copy_code", cfg.Main.DefaultCopyAction)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	useTempXDG(t)
	require.NoError(t, InitDirs())

	configPath, err := GetConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, []byte("main:\n  default_copy_action: copy_everything\n"), 0644))

	_, err = LoadConfig(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid default copy action")
}

func TestSaveConfig_NilConfig(t *testing.T) {
	err := SaveConfig(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config cannot be nil")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "copy emoji default",
			mutate:  func(cfg *Config) { cfg.Main.DefaultCopyAction = "copy_emoji" },
			wantErr: false,
		},
		{
			name:    "unknown copy action",
			mutate:  func(cfg *Config) { cfg.Main.DefaultCopyAction = "copy" },
			wantErr: true,
			errMsg:  "invalid default copy action",
		},
		{
			name:    "unknown match mode",
			mutate:  func(cfg *Config) { cfg.Main.MatchMode = "regex" },
			wantErr: true,
			errMsg:  "invalid match mode",
		},
		{
			name:    "empty url",
			mutate:  func(cfg *Config) { cfg.Cache.URL = "" },
			wantErr: true,
			errMsg:  "invalid cache url",
		},
		{
			name:    "zero max age",
			mutate:  func(cfg *Config) { cfg.Cache.MaxAgeDays = 0 },
			wantErr: true,
			errMsg:  "cache max age must be >= 1 day",
		},
		{
			name:    "timeout too short",
			mutate:  func(cfg *Config) { cfg.Cache.Timeout = 10 * time.Millisecond },
			wantErr: true,
			errMsg:  "cache timeout must be >= 1s",
		},
		{
			name:    "unknown clipboard backend",
			mutate:  func(cfg *Config) { cfg.Clipboard.Backend = "xclip" },
			wantErr: true,
			errMsg:  "invalid clipboard backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("nil config", func(t *testing.T) {
		err := ValidateConfig(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config cannot be nil")
	})
}
