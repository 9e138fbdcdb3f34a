// Package memhost provides an in-memory module host: an ordered resolver
// chain, a load cache keyed by raw resolution path, and a loader that
// honors the falsy-terminal contract (a module body whose final top-level
// value is falsy fails to load). It implements every collaborator interface
// a modblock.Blocker needs, so block behavior can be exercised without
// embedding a real interpreter.
package memhost

import (
	"errors"
	"fmt"

	"github.com/toejough/modblock"
)

// ErrLoadFailed is the failure kind every failed load wraps, whether the
// module was never found or its body evaluated falsy. Guarded callers that
// only check the kind cannot tell the two apart.
var ErrLoadFailed = errors.New("module load failed")

// record is one load-cache entry. The host caches failed loads too, so a
// broken module is not re-evaluated on every attempt.
type record struct {
	module *Module
	err    error
}

// Host is an in-memory module host. It implements modblock.Host along with
// the Chain, Cache, and UnitFactory collaborators that entails.
//
// Single-threaded by design, like the test processes it stands in for.
type Host struct {
	// DenyUnits makes NewUnit fail, for exercising hosts that refuse to
	// create transient readable units.
	DenyUnits bool

	resolvers []modblock.Resolver
	loaded    map[string]record
}

// New creates a Host with an empty resolution chain and load cache.
func New() *Host {
	return &Host{loaded: make(map[string]record)}
}

// AttemptLoad resolves and loads the module at the raw path. A cached
// record, success or failure, short-circuits resolution entirely. Failed
// loads are cached as broken records; clearing those is the cache owner's
// (or a scrubber's) job.
func (h *Host) AttemptLoad(raw string) (*Module, error) {
	if rec, ok := h.loaded[raw]; ok {
		if rec.err != nil {
			return nil, rec.err
		}

		return rec.module, nil
	}

	for _, r := range h.resolvers {
		unit, ok, err := r.Resolve(raw)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", raw, err)
		}

		if !ok {
			continue
		}

		mod, err := loadUnit(unit)
		if err != nil {
			h.loaded[raw] = record{err: err}

			return nil, err
		}

		h.loaded[raw] = record{module: mod}

		return mod, nil
	}

	return nil, fmt.Errorf("%w: no resolver provides %q", ErrLoadFailed, raw)
}

// Loaded reports whether the raw path currently has a cache entry of any
// kind, broken records included.
func (h *Host) Loaded(raw string) bool {
	_, ok := h.loaded[raw]

	return ok
}

// ModuleCache implements modblock.Host.
func (h *Host) ModuleCache() modblock.Cache {
	return h
}

// ResolutionChain implements modblock.Host.
func (h *Host) ResolutionChain() modblock.Chain {
	return h
}

// Units implements modblock.Host.
func (h *Host) Units() modblock.UnitFactory {
	return h
}

// Chain implementation.

// PushFront places r at the front of the resolution chain.
func (h *Host) PushFront(r modblock.Resolver) {
	h.resolvers = append([]modblock.Resolver{r}, h.resolvers...)
}

// Remove deletes r from the resolution chain if present.
func (h *Host) Remove(r modblock.Resolver) {
	for i, existing := range h.resolvers {
		if existing == r {
			h.resolvers = append(h.resolvers[:i], h.resolvers[i+1:]...)

			return
		}
	}
}

// Resolvers returns the resolution chain in resolution order.
func (h *Host) Resolvers() []modblock.Resolver {
	return h.resolvers
}

// Cache implementation.

// Delete removes the cache entry for the raw path.
func (h *Host) Delete(key string) {
	delete(h.loaded, key)
}

// Keys returns the raw paths currently cached.
func (h *Host) Keys() []string {
	keys := make([]string, 0, len(h.loaded))
	for key := range h.loaded {
		keys = append(keys, key)
	}

	return keys
}

// UnitFactory implementation.

// NewUnit creates a transient in-memory unit, or refuses to if DenyUnits is
// set.
func (h *Host) NewUnit(name string, source []byte) (modblock.Unit, error) {
	if h.DenyUnits {
		return nil, errUnitsDenied
	}

	return &unit{name: name, source: source}, nil
}

var errUnitsDenied = errors.New("host denies transient units")
