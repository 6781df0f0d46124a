// Package plugin is the in-process launcher host: it owns the gitmoji
// suggestion list and exposes the lifecycle callbacks the CLI and the
// interactive picker drive.
package plugin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/steviee/go-gitmoji/internal/action"
	"github.com/steviee/go-gitmoji/internal/catalog"
)

// Settings keys read by the plugin.
const (
	KeyDefaultCopyAction = "main.default_copy_action"
	KeyMatchMode         = "main.match_mode"
)

// Keyword is the catalog item that triggers gitmoji suggestions.
var Keyword = catalog.Entry{
	Label:     "gitmoji",
	ShortDesc: "Search gitmoji and copy them to your clipboard",
	Target:    "gitmoji",
}

// Event is a set of host notifications.
type Event uint

const (
	// EventConfigChanged is sent when the settings source changed.
	EventConfigChanged Event = 1 << iota
)

// Settings is the key/value configuration source. *viper.Viper implements it.
type Settings interface {
	GetString(key string) string
	IsSet(key string) bool
}

// Refresher keeps the cache file current.
type Refresher interface {
	RefreshIfStale(ctx context.Context) (bool, error)
}

// Deps are the collaborators a Plugin drives.
type Deps struct {
	Settings  Settings
	Refresher Refresher
	Catalog   *catalog.Catalog
	Executor  *action.Executor
}

// Plugin is one gitmoji plugin instance. Its callbacks must not be called
// concurrently.
type Plugin struct {
	settings  Settings
	refresher Refresher
	catalog   *catalog.Catalog
	executor  *action.Executor
	matchMode catalog.MatchMode
}

// New creates a Plugin.
func New(deps Deps) *Plugin {
	return &Plugin{
		settings:  deps.Settings,
		refresher: deps.Refresher,
		catalog:   deps.Catalog,
		executor:  deps.Executor,
		matchMode: catalog.MatchSubstring,
	}
}

// OnStart reads the settings, refreshes a stale cache and builds the
// suggestion list. An error means no suggestions can be produced.
func (p *Plugin) OnStart(ctx context.Context) error {
	p.readConfig()

	if _, err := p.refresher.RefreshIfStale(ctx); err != nil {
		slog.Error("failed to update gitmoji cache", "error", err)
	}

	if _, err := p.catalog.Load(); err != nil {
		return fmt.Errorf("gitmoji plugin cannot start: %w", err)
	}
	return nil
}

// OnCatalog returns the top-level items to register with the host.
func (p *Plugin) OnCatalog() []catalog.Entry {
	return []catalog.Entry{Keyword}
}

// OnSuggest returns suggestions for input when the item chain starts with the
// gitmoji keyword, in presentation order. Any other chain yields nil.
func (p *Plugin) OnSuggest(input string, chain []catalog.Entry) []catalog.Entry {
	if len(chain) == 0 || chain[0].Target != Keyword.Target {
		return nil
	}
	return catalog.Suggest(p.catalog.Entries(), input, p.matchMode)
}

// Suggest filters the suggestion list without a keyword chain.
func (p *Plugin) Suggest(input string) []catalog.Entry {
	return p.OnSuggest(input, []catalog.Entry{Keyword})
}

// OnExecute copies entry using the named action. An empty name uses the
// configured default and an unknown name copies the code.
func (p *Plugin) OnExecute(ctx context.Context, entry catalog.Entry, actionName string) (*action.Result, error) {
	if actionName == "" {
		return p.executor.Execute(ctx, entry, nil)
	}

	kind, ok := action.ParseKind(actionName)
	if !ok {
		slog.Warn("unknown action, copying the code", "action", actionName)
	}
	return p.executor.Execute(ctx, entry, &kind)
}

// OnEvents handles host notifications. On a configuration change the settings
// are re-read and the catalog items are returned for re-registration.
func (p *Plugin) OnEvents(flags Event) []catalog.Entry {
	if flags&EventConfigChanged == 0 {
		return nil
	}
	p.readConfig()
	return p.OnCatalog()
}

// Actions returns the actions offered for every suggestion.
func (p *Plugin) Actions() []action.Definition {
	return action.Definitions()
}

// Lookup finds a suggestion by its code.
func (p *Plugin) Lookup(code string) (catalog.Entry, bool) {
	return p.catalog.Lookup(code)
}

// DefaultAction returns the action used when none is requested.
func (p *Plugin) DefaultAction() action.Kind {
	return p.executor.Default()
}

// MatchMode returns the active match mode.
func (p *Plugin) MatchMode() catalog.MatchMode {
	return p.matchMode
}

// SetMatchMode overrides the configured match mode until the settings are
// read again.
func (p *Plugin) SetMatchMode(mode catalog.MatchMode) {
	p.matchMode = mode
}

func (p *Plugin) readConfig() {
	def := action.CopyCode
	if p.settings.IsSet(KeyDefaultCopyAction) {
		name := p.settings.GetString(KeyDefaultCopyAction)
		kind, ok := action.ParseKind(name)
		if !ok {
			slog.Warn("unknown default copy action, using copy_code", "value", name)
		}
		def = kind
	}
	p.executor.SetDefault(def)

	p.matchMode = catalog.MatchSubstring
	if p.settings.IsSet(KeyMatchMode) {
		p.matchMode = catalog.ParseMatchMode(p.settings.GetString(KeyMatchMode))
	}

	slog.Debug("gitmoji settings loaded", "default_copy_action", def.String(), "match_mode", string(p.matchMode))
}
