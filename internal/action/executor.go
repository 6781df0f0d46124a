package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/steviee/go-gitmoji/internal/catalog"
	"github.com/steviee/go-gitmoji/internal/gitmoji"
)

// ErrRecordNotFound is returned when the cache has no record for a code.
var ErrRecordNotFound = errors.New("gitmoji record not found")

// Clipboard receives the copied text.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Result describes a completed copy.
type Result struct {
	Code string `json:"code"`
	Text string `json:"text"`
	Kind Kind   `json:"-"`
}

// Hook runs after a successful copy. Hook errors are logged and never fail
// the execution.
type Hook func(ctx context.Context, res Result) error

// Executor resolves a selected entry against the cache and copies it.
type Executor struct {
	source      catalog.Source
	clipboard   Clipboard
	defaultKind Kind
	hooks       []Hook
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithDefault sets the action used when none is requested.
func WithDefault(kind Kind) ExecutorOption {
	return func(e *Executor) {
		e.defaultKind = kind
	}
}

// WithHook registers a hook to run after every successful copy.
func WithHook(h Hook) ExecutorOption {
	return func(e *Executor) {
		e.hooks = append(e.hooks, h)
	}
}

// NewExecutor creates an Executor reading records from source.
func NewExecutor(source catalog.Source, clip Clipboard, opts ...ExecutorOption) *Executor {
	e := &Executor{
		source:      source,
		clipboard:   clip,
		defaultKind: CopyCode,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Default returns the action used when none is requested.
func (e *Executor) Default() Kind {
	return e.defaultKind
}

// SetDefault changes the action used when none is requested.
func (e *Executor) SetDefault(kind Kind) {
	e.defaultKind = kind
}

// Execute re-reads the cache, finds the record whose code equals the entry
// target and copies the code or the glyph. A nil kind uses the default.
// On failure nothing is copied.
func (e *Executor) Execute(ctx context.Context, entry catalog.Entry, kind *Kind) (*Result, error) {
	var k Kind
	if kind != nil {
		k = *kind
	} else {
		k = e.defaultKind
	}

	doc, err := e.source.Read()
	if err != nil {
		return nil, fmt.Errorf("read gitmoji cache: %w", err)
	}

	rec, ok := doc.Find(entry.Target)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, entry.Target)
	}

	res := Result{Code: rec.Code, Text: text(rec, k), Kind: k}
	if err := e.clipboard.WriteText(ctx, res.Text); err != nil {
		return nil, fmt.Errorf("copy %s to clipboard: %w", rec.Code, err)
	}

	slog.Debug("gitmoji copied", "code", res.Code, "action", k.String())

	for _, h := range e.hooks {
		if err := h(ctx, res); err != nil {
			slog.Warn("post-copy hook failed", "code", res.Code, "error", err)
		}
	}

	return &res, nil
}

func text(rec gitmoji.Record, kind Kind) string {
	if kind == CopyEmoji {
		return rec.Emoji
	}
	return rec.Code
}
