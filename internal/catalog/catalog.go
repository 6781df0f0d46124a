package catalog

import (
	"fmt"
	"log/slog"

	"github.com/steviee/go-gitmoji/internal/gitmoji"
)

// Source supplies the catalog document. *cache.Store implements it.
type Source interface {
	Read() (*gitmoji.Document, error)
}

// Catalog owns the suggestion list. The list is built from the source on the
// first successful Load and never changes afterwards.
type Catalog struct {
	source        Source
	requireEntity bool
	iconPackage   string
	entries       []Entry
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRequireEntity skips records that carry no HTML entity.
func WithRequireEntity(require bool) Option {
	return func(c *Catalog) {
		c.requireEntity = require
	}
}

// WithIconPackage sets the package name used in icon references.
func WithIconPackage(pkg string) Option {
	return func(c *Catalog) {
		c.iconPackage = pkg
	}
}

// New creates an empty Catalog backed by source.
func New(source Source, opts ...Option) *Catalog {
	c := &Catalog{
		source:      source,
		iconPackage: DefaultIconPackage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load builds the suggestion list in document order. Once populated, later
// calls return the same list without reading the source again.
func (c *Catalog) Load() ([]Entry, error) {
	if len(c.entries) > 0 {
		return c.entries, nil
	}

	doc, err := c.source.Read()
	if err != nil {
		return nil, fmt.Errorf("load gitmoji catalog: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Gitmojis))
	skipped := 0
	for _, r := range doc.Gitmojis {
		if c.requireEntity && r.Entity == "" {
			skipped++
			continue
		}
		entries = append(entries, Entry{
			Label:     r.Code,
			ShortDesc: r.Description,
			Target:    r.Code,
			Glyph:     r.Emoji,
			Icon:      IconRef(c.iconPackage, r.Name),
		})
	}

	slog.Debug("gitmoji catalog loaded", "entries", len(entries), "skipped", skipped)

	c.entries = entries
	return c.entries, nil
}

// Entries returns the loaded list, or nil before Load.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Lookup finds a loaded entry by target code.
func (c *Catalog) Lookup(target string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Target == target {
			return e, true
		}
	}
	return Entry{}, false
}
