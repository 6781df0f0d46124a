package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/steviee/go-gitmoji/internal/gitmoji"
	"github.com/steviee/go-gitmoji/internal/state"
)

// Store reads and writes the cached catalog document at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store for the cache file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the cache file path.
func (s *Store) Path() string {
	return s.path
}

// Read parses the cache file.
func (s *Store) Read() (*gitmoji.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCacheMissing, s.path)
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	doc, err := gitmoji.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCacheCorrupt, s.path, err)
	}

	return doc, nil
}

// Write replaces the cache file with the given JSON, re-indented for
// readability. Invalid JSON is rejected before anything touches the disk.
func (s *Store) Write(raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indent cache document: %w", err)
	}
	buf.WriteByte('\n')

	if err := state.AtomicWrite(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// ModTime returns the cache file's modification time.
func (s *Store) ModTime() (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
