package ui

// stateStore maps widget identities to lazily-created persistent state.
// Slots live for the lifetime of the Context; nothing sweeps them. The
// cardinality is bounded by the number of distinct ids ever drawn, not by
// frame count, so the leak is accepted.
type stateStore struct {
	slots map[ID]any
}

func newStateStore() stateStore {
	return stateStore{slots: make(map[ID]any, 256)}
}

// StateOf returns the persistent *T slot for id, creating a zero value on
// first access. If the slot exists but holds a different type — the caller
// reused an id for another widget kind — the slot is recreated rather than
// panicking, since ids are caller-chosen and collisions are their hazard to
// manage.
func StateOf[T any](ctx *Context, id ID) *T {
	if v, ok := ctx.store.slots[id]; ok {
		if t, ok := v.(*T); ok {
			return t
		}
	}
	t := new(T)
	ctx.store.slots[id] = t
	return t
}

// StateLen reports how many widget slots exist; exposed for debug overlays.
func (ctx *Context) StateLen() int { return len(ctx.store.slots) }
