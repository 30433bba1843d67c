package cli

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/chazuruo/hyprwin/internal/config"
	"github.com/chazuruo/hyprwin/internal/plugin"
	"github.com/chazuruo/hyprwin/internal/window"
)

// openSession starts a plugin session. Tests replace it to avoid the
// compositor.
var openSession = plugin.Init

// startSession opens a session from cfg. Without withWindows the compositor
// is not queried and the session has an empty snapshot.
func startSession(ctx context.Context, cfg *config.Config, logger hclog.Logger, withWindows bool) *plugin.State {
	opts := plugin.Options{
		Config: cfg,
		Logger: logger,
	}
	if !withWindows {
		opts.Snapshot = window.Empty()
	}
	return openSession(ctx, opts)
}
