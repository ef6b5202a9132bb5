package keymap

// Resolver maps key strings to actions, scoped by context.
type Resolver struct {
	bindings map[string]map[string]Action // context -> key -> action
	byAction map[Action][]string          // action -> keys, for help
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		keys := r.bindings[b.Context]
		if keys == nil {
			keys = make(map[string]Action)
			r.bindings[b.Context] = keys
		}
		for _, key := range b.Keys {
			keys[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action bound to key in the focused pane context,
// falling back to playback and global bindings. Empty if unbound.
func (r *Resolver) Resolve(focus, key string) Action {
	for _, ctx := range []string{focus, ContextPlayback, ContextGlobal} {
		if a, ok := r.bindings[ctx][key]; ok {
			return a
		}
	}
	return ""
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
