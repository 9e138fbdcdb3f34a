package core

// Blocker simulates missing modules for one host. It owns the blocked-set
// registry and the resolver hook, and keeps the host's resolved-module
// cache consistent with the blocked set across enable/disable cycles.
//
// All state is mutated synchronously; the Blocker assumes the single
// logical thread of control a test process has. A concurrent host would
// need Enable/Disable made mutually exclusive with hook invocations.
type Blocker struct {
	registry *Registry
	chain    Chain
	cache    Cache
	hook     *hook
}

// NewBlocker creates a Blocker for the given host. Each host gets its own
// Blocker; nothing is shared ambiently, so a test can discard one and start
// the next run fresh.
func NewBlocker(host Host) *Blocker {
	registry := NewRegistry()

	return &Blocker{
		registry: registry,
		chain:    host.ResolutionChain(),
		cache:    host.ModuleCache(),
		hook:     &hook{registry: registry, units: host.Units()},
	}
}

// Blocked returns the matchers currently in force, in the order they were
// enabled. Introspection only; mutating the result changes nothing.
func (b *Blocker) Blocked() []Matcher {
	return b.registry.All()
}

// Disable unblocks the given matchers, applied sequentially. A matcher that
// was never enabled fails with ErrNotBlocked; matchers processed earlier in
// the same call stay disabled (no rollback). Each removed matcher's cache
// entries are scrubbed, including any stand-in records the host cached
// while the block was in force, so the next resolution attempt reaches the
// real chain fresh. The hook stays installed; an empty registry makes it
// decline everything.
func (b *Blocker) Disable(matchers ...Matcher) error {
	for _, m := range matchers {
		if err := b.registry.Remove(m); err != nil {
			return err
		}

		scrub(b.cache, m)
	}

	return nil
}

// Enable blocks every module whose canonical name matches any of the given
// matchers. Each matcher is registered before the cache is scrubbed for it,
// so there is no window where a matching name is both blocked and still
// cached as loaded. Enabling an already-enabled matcher is a no-op. The
// hook ends up at the front of the resolution chain whether or not it was
// already installed.
func (b *Blocker) Enable(matchers ...Matcher) {
	for _, m := range matchers {
		b.registry.Add(m)
		scrub(b.cache, m)
	}

	b.hook.installFront(b.chain)
}
