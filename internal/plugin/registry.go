package plugin

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Registry holds the plugins in tab order.
type Registry struct {
	ctx *Context

	mu          sync.RWMutex
	plugins     []Plugin
	unavailable map[string]string
}

// NewRegistry creates a registry handing ctx to each plugin's Init.
func NewRegistry(ctx *Context) *Registry {
	return &Registry{ctx: ctx, unavailable: make(map[string]string)}
}

// Register initializes p and adds it. A plugin whose Init fails is recorded
// as unavailable and left out of the tabs.
func (r *Registry) Register(p Plugin) error {
	if err := safeInit(p, r.ctx); err != nil {
		r.mu.Lock()
		r.unavailable[p.ID()] = err.Error()
		r.mu.Unlock()
		if r.ctx != nil && r.ctx.Logger != nil {
			r.ctx.Logger.Warn("plugin unavailable", "id", p.ID(), "error", err)
		}
		return err
	}
	r.mu.Lock()
	r.plugins = append(r.plugins, p)
	r.mu.Unlock()
	return nil
}

func safeInit(p Plugin, ctx *Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("init panicked: %v", rec)
		}
	}()
	return p.Init(ctx)
}

// Plugins returns the registered plugins in order.
func (r *Registry) Plugins() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Plugin(nil), r.plugins...)
}

// Unavailable returns the plugins that failed to initialize, by id.
func (r *Registry) Unavailable() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.unavailable))
	for k, v := range r.unavailable {
		out[k] = v
	}
	return out
}

// Start collects the start commands of every plugin.
func (r *Registry) Start() []tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range r.Plugins() {
		if cmd := p.Start(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Stop stops every plugin.
func (r *Registry) Stop() {
	for _, p := range r.Plugins() {
		p.Stop()
	}
}
