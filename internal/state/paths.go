package state

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "go-gitmoji"

	// File names
	ConfigFileName  = "config.yaml"
	CacheFileName   = "gitmoji.json"
	HistoryFileName = "history.db"
)

// xdgDir resolves an XDG base directory, falling back to a path under the
// user's home directory when the variable is unset.
func xdgDir(envVar string, fallback ...string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		base = filepath.Join(append([]string{homeDir}, fallback...)...)
	}
	return filepath.Join(base, AppDirName), nil
}

// GetConfigDir returns the path to the go-gitmoji configuration directory.
// It defaults to ~/.config/go-gitmoji/.
func GetConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetCacheDir returns the directory holding the downloaded gitmoji document.
// It defaults to ~/.cache/go-gitmoji/.
func GetCacheDir() (string, error) {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

// GetDataDir returns the directory holding persistent user data such as the
// copy history. It defaults to ~/.local/share/go-gitmoji/.
func GetDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetConfigPath returns the path to the main configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// GetCachePath returns the path to the cached gitmoji document.
func GetCachePath() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, CacheFileName), nil
}

// GetHistoryPath returns the path to the copy history database.
func GetHistoryPath() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, HistoryFileName), nil
}

// InitDirs creates the config, cache and data directories.
func InitDirs() error {
	for _, get := range []func() (string, error){GetConfigDir, GetCacheDir, GetDataDir} {
		dir, err := get()
		if err != nil {
			return err
		}
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir ensures that a directory exists, creating it if necessary.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to ensure directory %s: %w", path, err)
	}
	return nil
}
