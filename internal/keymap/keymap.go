// Package keymap maps app-level keys to command IDs per focus context.
package keymap

// Binding maps a key to a command in a context.
type Binding struct {
	Key     string // e.g. "ctrl+c", "?"
	Command string // e.g. "quit"
	Context string // "global" or a plugin focus context
}

// Registry holds bindings indexed by context.
type Registry struct {
	byContext map[string][]Binding
}

// NewRegistry builds a registry from bindings. Later bindings for the same
// key and context replace earlier ones.
func NewRegistry(bindings []Binding) *Registry {
	r := &Registry{byContext: make(map[string][]Binding)}
	for _, b := range bindings {
		r.Set(b)
	}
	return r
}

// Set adds or replaces a binding.
func (r *Registry) Set(b Binding) {
	list := r.byContext[b.Context]
	for i, existing := range list {
		if existing.Key == b.Key {
			list[i] = b
			return
		}
	}
	r.byContext[b.Context] = append(list, b)
}

// Lookup returns the command bound to key, checking context first and then
// the global bindings.
func (r *Registry) Lookup(key, context string) (string, bool) {
	if context != "" && context != "global" {
		if cmd, ok := r.find(key, context); ok {
			return cmd, true
		}
	}
	return r.find(key, "global")
}

func (r *Registry) find(key, context string) (string, bool) {
	for _, b := range r.byContext[context] {
		if b.Key == key {
			return b.Command, true
		}
	}
	return "", false
}

// BindingsForContext returns the bindings of a context in insertion order.
func (r *Registry) BindingsForContext(context string) []Binding {
	return append([]Binding(nil), r.byContext[context]...)
}

// KeysFor returns the keys bound to command in context.
func (r *Registry) KeysFor(command, context string) []string {
	var keys []string
	for _, b := range r.byContext[context] {
		if b.Command == command {
			keys = append(keys, b.Key)
		}
	}
	return keys
}
