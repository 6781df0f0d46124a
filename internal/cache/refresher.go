package cache

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/steviee/go-gitmoji/internal/gitmoji"
	"github.com/steviee/go-gitmoji/internal/state"
)

// DefaultMaxAgeDays is the number of calendar days a cache file stays fresh.
const DefaultMaxAgeDays = state.DefaultMaxAgeDays

// Fetcher downloads the catalog. *gitmoji.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context) (*gitmoji.Snapshot, error)
}

// Refresher keeps the cache file no older than MaxAgeDays calendar days.
type Refresher struct {
	store      *Store
	fetcher    Fetcher
	maxAgeDays int
	now        func() time.Time
}

// Option configures a Refresher.
type Option func(*Refresher)

// WithClock overrides the clock used to decide staleness.
func WithClock(now func() time.Time) Option {
	return func(r *Refresher) {
		r.now = now
	}
}

// NewRefresher creates a Refresher. A maxAgeDays below 1 uses DefaultMaxAgeDays.
func NewRefresher(store *Store, fetcher Fetcher, maxAgeDays int, opts ...Option) *Refresher {
	if maxAgeDays < 1 {
		maxAgeDays = DefaultMaxAgeDays
	}

	r := &Refresher{
		store:      store,
		fetcher:    fetcher,
		maxAgeDays: maxAgeDays,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MaxAgeDays returns the staleness threshold in calendar days.
func (r *Refresher) MaxAgeDays() int {
	return r.maxAgeDays
}

// IsStale reports whether the cache file needs a refresh. A cache whose
// modification time cannot be read counts as stale.
func (r *Refresher) IsStale() bool {
	modTime, err := r.store.ModTime()
	if err != nil {
		return true
	}
	return DaysBetween(modTime, r.now()) > r.maxAgeDays
}

// RefreshIfStale downloads the catalog when the cache is stale. Download and
// parse failures are logged and swallowed so an existing cache stays in use;
// only a failing local write is returned. The bool reports whether the cache
// file was rewritten.
func (r *Refresher) RefreshIfStale(ctx context.Context) (bool, error) {
	if !r.IsStale() {
		slog.Debug("gitmoji cache is fresh", "path", r.store.Path(), "max_age_days", r.maxAgeDays)
		return false, nil
	}

	snap, err := r.fetcher.Fetch(ctx)
	if err != nil {
		slog.Error("could not reach the gitmoji source to refresh the cache",
			"path", r.store.Path(),
			"error", err)
		return false, nil
	}

	if err := r.store.Write(snap.Raw); err != nil {
		return false, err
	}

	slog.Info("gitmoji cache refreshed", "path", r.store.Path(), "records", len(snap.Document.Gitmojis))
	return true, nil
}

// Refresh downloads the catalog regardless of the cache age.
// Unlike RefreshIfStale it reports download failures.
func (r *Refresher) Refresh(ctx context.Context) (int, error) {
	snap, err := r.fetcher.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch gitmoji catalog: %w", err)
	}

	if err := r.store.Write(snap.Raw); err != nil {
		return 0, err
	}

	slog.Info("gitmoji cache refreshed", "path", r.store.Path(), "records", len(snap.Document.Gitmojis))
	return len(snap.Document.Gitmojis), nil
}

// Status describes the cache file on disk.
type Status struct {
	Path       string    `json:"path"`
	Exists     bool      `json:"exists"`
	Size       int64     `json:"size"`
	ModTime    time.Time `json:"mod_time,omitempty"`
	AgeDays    int       `json:"age_days"`
	MaxAgeDays int       `json:"max_age_days"`
	Stale      bool      `json:"stale"`
}

// Status inspects the cache file.
func (r *Refresher) Status() Status {
	st := Status{
		Path:       r.store.Path(),
		MaxAgeDays: r.maxAgeDays,
		Stale:      true,
	}

	info, err := os.Stat(r.store.Path())
	if err != nil {
		return st
	}

	st.Exists = true
	st.Size = info.Size()
	st.ModTime = info.ModTime()
	st.AgeDays = DaysBetween(info.ModTime(), r.now())
	st.Stale = st.AgeDays > r.maxAgeDays
	return st
}

// DaysBetween returns the number of calendar days from the date of `from` to
// the date of `to`, both taken in to's location. Times of day are ignored:
// 23:59 yesterday and 00:01 today are one day apart.
func DaysBetween(from, to time.Time) int {
	loc := to.Location()
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.Date()

	// UTC midnights avoid DST-shortened days.
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
