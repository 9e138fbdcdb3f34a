package core

import "io"

// Unit is a readable module body in the shape a host's load path consumes:
// the same shape a filesystem resolver would return, so host-internal
// loaders that only understand that shape keep working.
type Unit interface {
	// Name is the canonical module name the unit was resolved for.
	Name() string
	// Open returns the module body for the host's loader to consume.
	Open() (io.ReadCloser, error)
}

// Resolver is one participant in a host's ordered resolution chain. ok
// reports whether the resolver claimed the identifier; false means it
// declines, and the chain continues with the next resolver.
type Resolver interface {
	Resolve(raw string) (unit Unit, ok bool, err error)
}

// Chain is a host's mutable, ordered resolution chain.
type Chain interface {
	// Resolvers returns the chain in resolution order.
	Resolvers() []Resolver
	// PushFront places r at the front of the chain.
	PushFront(r Resolver)
	// Remove deletes r from the chain if present; absent is a no-op.
	Remove(r Resolver)
}

// Cache is the host's resolved-module cache, keyed by the raw resolution
// path. The blocker only ever enumerates and deletes entries; it never adds
// any.
type Cache interface {
	Keys() []string
	Delete(key string)
}

// UnitFactory creates the transient in-memory units the hook substitutes
// for blocked modules. Hosts may deny creation.
type UnitFactory interface {
	NewUnit(name string, source []byte) (Unit, error)
}

// Host bundles the collaborators a Blocker needs from its host runtime.
type Host interface {
	ResolutionChain() Chain
	ModuleCache() Cache
	Units() UnitFactory
}
