// Package plugin is the launcher-host boundary: it owns one activation
// session and answers queries and selections against it.
package plugin

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/chazuruo/hyprwin/internal/config"
	"github.com/chazuruo/hyprwin/internal/desktop"
	"github.com/chazuruo/hyprwin/internal/hyprctl"
	"github.com/chazuruo/hyprwin/internal/icon"
	"github.com/chazuruo/hyprwin/internal/logging"
	"github.com/chazuruo/hyprwin/internal/matcher"
	"github.com/chazuruo/hyprwin/internal/proc"
	"github.com/chazuruo/hyprwin/internal/window"
)

// Info describes the plugin to the host.
type Info struct {
	Name string
	Icon string
}

// PluginInfo returns the host-facing name and icon.
func PluginInfo() Info {
	return Info{
		Name: "Hyprland window",
		Icon: "focus-windows-symbolic",
	}
}

// Match is one result handed to the host.
type Match struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Icon is empty when no icon could be resolved.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
	// ID is passed back to Handle on selection.
	ID uint64 `json:"id" yaml:"id"`
}

// HandleResult tells the host what to do after a selection.
type HandleResult int

const (
	// Close ends the host session.
	Close HandleResult = iota
)

func (r HandleResult) String() string {
	switch r {
	case Close:
		return "close"
	default:
		return fmt.Sprintf("HandleResult(%d)", int(r))
	}
}

// Activator brings a window to the foreground.
type Activator interface {
	Focus(address string) error
}

// Options configures Init. Zero fields select production collaborators.
type Options struct {
	// Config supplies limits and collaborator settings. Nil means defaults.
	Config *config.Config
	// Logger is the operator log. A session sub-logger is derived from it.
	Logger hclog.Logger
	// Getenv resolves search directories when Config.Desktop.Dirs is empty.
	Getenv desktop.Getenv
	// Runner executes the compositor CLI.
	Runner hyprctl.Runner
	// Procs looks up process names for icon resolution.
	Procs proc.Namer
	// Scorer rates fuzzy matches.
	Scorer matcher.Scorer
	// Activator overrides the compositor as the activation sink.
	Activator Activator
	// Snapshot skips the compositor query and uses these windows instead.
	Snapshot *window.Snapshot
}

// State is one activation session. The catalog and snapshot are fixed once
// Init returns, so GetMatches may be called concurrently.
type State struct {
	catalog   *desktop.Catalog
	snapshot  *window.Snapshot
	resolver  *icon.Resolver
	matcher   *matcher.Matcher
	activator Activator
	logger    hclog.Logger
}

// Init builds the catalog and takes the window snapshot. It never fails:
// unreadable desktop files are skipped and an unavailable compositor yields
// an empty snapshot.
func Init(ctx context.Context, opts Options) *State {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	parent := opts.Logger
	if parent == nil {
		parent = logging.Discard()
	}
	logger := logging.Session(parent)

	dirs := cfg.Desktop.Dirs
	if len(dirs) == 0 {
		getenv := opts.Getenv
		if getenv == nil {
			getenv = os.Getenv
		}
		dirs = desktop.SearchDirs(getenv)
	}
	catalog := desktop.Load(dirs, logger.Named("desktop"))

	client := hyprctl.New(cfg.Hyprctl.Command, opts.Runner, logger.Named("hyprctl"))

	snapshot := opts.Snapshot
	if snapshot == nil {
		snapshot = client.Snapshot(ctx)
	}

	procs := opts.Procs
	if procs == nil {
		procs = proc.NewTable()
	}
	resolver := icon.NewResolver(catalog, procs, logger.Named("icon"))

	var activator Activator = client
	if opts.Activator != nil {
		activator = opts.Activator
	}

	logger.Debug("session ready", "entries", catalog.Len(), "windows", snapshot.Len(), "dirs", dirs)

	return &State{
		catalog:  catalog,
		snapshot: snapshot,
		resolver: resolver,
		matcher: matcher.New(snapshot, resolver, opts.Scorer, matcher.Options{
			MaxEntries:     cfg.MaxEntries,
			ScoreThreshold: cfg.ScoreThreshold,
		}),
		activator: activator,
		logger:    logger,
	}
}

// Info returns PluginInfo.
func (s *State) Info() Info {
	return PluginInfo()
}

// GetMatches ranks the session's windows against query.
func (s *State) GetMatches(query string) []Match {
	results := s.matcher.Match(query)

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Title: r.Window.Title,
			Icon:  r.Icon,
			ID:    r.Window.ID,
		}
	}

	s.logger.Trace("query", "query", query, "matches", len(matches))
	return matches
}

// Handle activates the window behind selection and asks the host to close.
// It panics if selection.ID did not come from this session, since ids are
// only ever produced by GetMatches.
func (s *State) Handle(selection Match) HandleResult {
	w, ok := s.snapshot.ByID(selection.ID)
	if !ok {
		panic(fmt.Sprintf("plugin: selected window id %d not in snapshot of %d windows", selection.ID, s.snapshot.Len()))
	}

	if err := s.activator.Focus(w.Address); err != nil {
		s.logger.Warn("activation failed", "address", w.Address, "error", err)
	}
	return Close
}

// Catalog returns the session catalog.
func (s *State) Catalog() *desktop.Catalog { return s.catalog }

// Snapshot returns the session windows.
func (s *State) Snapshot() *window.Snapshot { return s.snapshot }

// Resolver returns the session icon resolver.
func (s *State) Resolver() *icon.Resolver { return s.resolver }

// Matcher returns the session matcher.
func (s *State) Matcher() *matcher.Matcher { return s.matcher }
