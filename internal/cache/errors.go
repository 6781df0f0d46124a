package cache

import "errors"

// Sentinel errors for the local catalog cache.
var (
	// ErrCacheMissing is returned when the cache file does not exist.
	ErrCacheMissing = errors.New("gitmoji cache file not found")

	// ErrCacheCorrupt is returned when the cache file cannot be parsed.
	ErrCacheCorrupt = errors.New("gitmoji cache file is corrupt")
)
