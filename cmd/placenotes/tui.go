package main

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/marcus/placenotes/internal/app"
	"github.com/marcus/placenotes/internal/keymap"
	"github.com/marcus/placenotes/internal/kv"
	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/plugin"
	"github.com/marcus/placenotes/internal/plugins/activity"
	"github.com/marcus/placenotes/internal/plugins/explore"
	"github.com/marcus/placenotes/internal/plugins/lists"
	"github.com/marcus/placenotes/internal/plugins/profile"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	e, err := openEnv(ctx, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	pluginCtx := &plugin.Context{
		Config: e.cfg,
		Logger: e.logger,
		Notes:  e.notes,
		Prefs:  e.prefs,
		Places: e.places,
	}

	// Register plugins (order determines tab order)
	registry := plugin.NewRegistry(pluginCtx)
	home := lists.New()
	for _, p := range []plugin.Plugin{home, explore.New(), activity.New(), profile.New()} {
		_ = registry.Register(p)
	}
	if len(registry.Plugins()) == 0 {
		return fmt.Errorf("no tabs available: %v", registry.Unavailable())
	}

	km := keymap.NewRegistry(keymap.DefaultBindings())
	model := app.New(registry, km, pluginCtx, home.ID())
	p := tea.NewProgram(model, tea.WithAltScreen())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		return nil
	})
	if w, ok := e.store.(kv.Watchable); ok {
		g.Go(func() error {
			return forwardChanges(gctx, w, p.Send, e.logger)
		})
	}
	return g.Wait()
}

// forwardChanges relays keys written by other processes into the program
// until ctx ends. A watcher that cannot start only disables live reload.
func forwardChanges(ctx context.Context, w kv.Watchable, send func(tea.Msg), logger *slog.Logger) error {
	changes, err := w.Watch(ctx)
	if err != nil {
		logger.Warn("storage watch unavailable", "error", err)
		return nil
	}
	for key := range changes {
		logger.Debug("storage changed", "key", key)
		send(msg.StoreChangedMsg{Key: key})
	}
	return nil
}
