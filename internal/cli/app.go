package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"
	"github.com/steviee/go-gitmoji/internal/action"
	"github.com/steviee/go-gitmoji/internal/cache"
	"github.com/steviee/go-gitmoji/internal/catalog"
	"github.com/steviee/go-gitmoji/internal/clipboard"
	"github.com/steviee/go-gitmoji/internal/gitmoji"
	"github.com/steviee/go-gitmoji/internal/history"
	"github.com/steviee/go-gitmoji/internal/notify"
	"github.com/steviee/go-gitmoji/internal/plugin"
	"github.com/steviee/go-gitmoji/internal/state"
)

// app is the gitmoji plugin wired from the active settings
type app struct {
	settings  *viper.Viper
	store     *cache.Store
	refresher *cache.Refresher
	plugin    *plugin.Plugin
	history   *history.Store
	notifier  *notify.Notifier
}

// newCacheRefresher builds the cache store and refresher from settings
func newCacheRefresher(v *viper.Viper) (*cache.Store, *cache.Refresher, error) {
	cachePath, err := state.GetCachePath()
	if err != nil {
		return nil, nil, fmt.Errorf("get cache path: %w", err)
	}

	store := cache.NewStore(cachePath)
	client := gitmoji.NewClient(&gitmoji.Config{
		URL:     v.GetString("cache.url"),
		Timeout: v.GetDuration("cache.timeout"),
	})
	return store, cache.NewRefresher(store, client, v.GetInt("cache.max_age_days")), nil
}

// historyPath returns the configured history database path
func historyPath(v *viper.Viper) (string, error) {
	if p := v.GetString("history.path"); p != "" {
		return p, nil
	}
	return state.GetHistoryPath()
}

// clipboardOutput returns the writer for the osc52 and stdout clipboard
// backends. In JSON mode stdout carries only the envelope.
func clipboardOutput(stdout, stderr io.Writer) io.Writer {
	if IsJSONOutput() {
		return stderr
	}
	return stdout
}

// newApp wires the plugin. Clipboard escape sequences and printed text go to out.
func newApp(v *viper.Viper, out io.Writer) (*app, error) {
	store, refresher, err := newCacheRefresher(v)
	if err != nil {
		return nil, err
	}

	clip, err := clipboard.New(v.GetString("clipboard.backend"), out)
	if err != nil {
		return nil, err
	}

	a := &app{
		settings:  v,
		store:     store,
		refresher: refresher,
	}

	var opts []action.ExecutorOption

	if v.GetBool("history.enabled") {
		path, err := historyPath(v)
		if err != nil {
			return nil, err
		}
		h, err := history.Open(path)
		if err != nil {
			slog.Warn("copy history disabled", "path", path, "error", err)
		} else {
			a.history = h
			opts = append(opts, action.WithHook(a.recordHistory))
		}
	}

	if v.GetBool("main.notify") {
		n, err := notify.Connect(state.AppDirName)
		if err != nil {
			slog.Warn("desktop notifications disabled", "error", err)
		} else {
			a.notifier = n
			opts = append(opts, action.WithHook(a.notifyCopied))
		}
	}

	a.plugin = plugin.New(plugin.Deps{
		Settings:  v,
		Refresher: refresher,
		Catalog:   catalog.New(store, catalog.WithRequireEntity(v.GetBool("catalog.require_entity"))),
		Executor:  action.NewExecutor(store, clip, opts...),
	})

	return a, nil
}

// start runs the plugin start callback
func (a *app) start(ctx context.Context) error {
	return a.plugin.OnStart(ctx)
}

// recordHistory stores a completed copy in the history database
func (a *app) recordHistory(ctx context.Context, res action.Result) error {
	return a.history.Record(ctx, res.Code, res.Kind.String())
}

// notifyCopied shows a desktop notification for a completed copy
func (a *app) notifyCopied(ctx context.Context, res action.Result) error {
	_, err := a.notifier.Notify(ctx, fmt.Sprintf("Copied %s", res.Code), res.Text)
	return err
}

// Close releases the history database and the bus connection
func (a *app) Close() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			slog.Warn("failed to close history", "error", err)
		}
	}
	if a.notifier != nil {
		_ = a.notifier.Close()
	}
}
