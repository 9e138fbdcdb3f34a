package core

import "fmt"

// Registry is the blocked set: the matchers currently in force for one
// Blocker. Insertion order is preserved so enumeration is deterministic.
//
// The registry assumes a single logical thread of control (the test
// process) and is not safe for concurrent mutation.
type Registry struct {
	keys    []string
	entries map[string]Matcher
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Matcher)}
}

// Add registers a matcher. Adding a matcher already present is a no-op.
func (r *Registry) Add(m Matcher) {
	key := m.String()
	if _, ok := r.entries[key]; ok {
		return
	}

	r.entries[key] = m
	r.keys = append(r.keys, key)
}

// All returns the registered matchers in insertion order.
func (r *Registry) All() []Matcher {
	out := make([]Matcher, 0, len(r.keys))
	for _, key := range r.keys {
		out = append(out, r.entries[key])
	}

	return out
}

// Matches reports whether any registered matcher matches the canonical name.
func (r *Registry) Matches(name string) bool {
	for _, key := range r.keys {
		if r.entries[key].Matches(name) {
			return true
		}
	}

	return false
}

// Remove unregisters a matcher. Removing a matcher that was never added
// fails with ErrNotBlocked: the caller's picture of the blocked set has
// drifted from actual state, and that is worth surfacing loudly.
func (r *Registry) Remove(m Matcher) error {
	key := m.String()
	if _, ok := r.entries[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotBlocked, key)
	}

	delete(r.entries, key)

	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)

			break
		}
	}

	return nil
}
