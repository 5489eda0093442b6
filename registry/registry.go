// Package registry provides the concurrency-safe id-to-entry map that owns
// the overlay lifecycle records. Entries hold configuration and a teardown
// state only; native window objects live on the UI thread and are looked up
// by id there, never through the registry.
package registry

import "sync"

// State tracks the teardown phase of an entry. Removal is two-phase:
// logical removal from the map is immediate, physical release of the UI
// resources happens later on the UI thread. The entry returned by Remove is
// marked PendingRelease so the two never disagree silently.
type State int

const (
	Live State = iota
	PendingRelease
)

// Entry is one overlay record. Config is a caller-defined value type and is
// always copied in and out; no caller ever sees a half-updated entry.
type Entry[T any] struct {
	ID     string
	Config T
	State  State
}

// Registry is a coarse-grained locked map. Expected cardinality is tens of
// overlays, so one mutex over the whole map is enough; per-entry locks would
// buy nothing.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]*Entry[T]
}

func New[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]*Entry[T])}
}

// Insert adds or replaces the entry for id in the Live state.
func (r *Registry[T]) Insert(id string, cfg T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &Entry[T]{ID: id, Config: cfg, State: Live}
}

// Get returns a copy of the entry. An unknown id is not an error at this
// layer; callers decide whether "not found" is worth surfacing.
func (r *Registry[T]) Get(id string) (Entry[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return Entry[T]{}, false
	}
	return *e, true
}

// Update runs fn with exclusive access to the entry. Reports false when the
// id is unknown. fn must not block; the registry lock is held for its whole
// duration.
func (r *Registry[T]) Update(id string, fn func(*Entry[T])) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return false
	}
	fn(e)
	return true
}

// Remove deletes the entry and returns it marked PendingRelease. IDs
// reflects the removal immediately, before any UI-side teardown runs.
func (r *Registry[T]) Remove(id string) (Entry[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return Entry[T]{}, false
	}
	delete(r.entries, id)
	e.State = PendingRelease
	return *e, true
}

// IDs returns a snapshot of the current keys. Order is unspecified.
func (r *Registry[T]) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Clear removes every entry and returns the removed ids.
func (r *Registry[T]) Clear() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.entries))
	for id, e := range r.entries {
		e.State = PendingRelease
		ids = append(ids, id)
	}
	r.entries = make(map[string]*Entry[T])
	return ids
}
