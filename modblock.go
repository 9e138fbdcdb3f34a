// Package modblock lets a test harness simulate the absence of an installed
// module. It targets hosts that resolve named modules through an ordered
// resolver chain and cache successful loads by name: enabling a block
// intercepts future resolution attempts for matching names with a
// deliberately failing stand-in, and scrubs any trace of them from the
// host's resolved-module cache, since a cache hit would bypass resolution
// entirely.
//
// This is the public API entry point. Implementation lives in internal/core.
package modblock

import (
	"github.com/toejough/modblock/internal/core"
)

// Blocker simulates missing modules for one host via Enable and Disable.
type Blocker = core.Blocker

// New creates a Blocker for the given host.
func New(host Host) *Blocker {
	return core.NewBlocker(host)
}

// Cache is the host's resolved-module cache, keyed by raw resolution path.
type Cache = core.Cache

// Chain is a host's mutable, ordered resolution chain.
type Chain = core.Chain

// Host bundles the collaborators a Blocker needs from its host runtime.
type Host = core.Host

// Matcher decides whether a canonical module name is blocked.
type Matcher = core.Matcher

// Exact returns a matcher that matches only the given canonical name.
func Exact(name string) Matcher {
	return core.Exact(name)
}

// Pattern returns a matcher that matches every canonical name the regular
// expression matches in full.
func Pattern(expr string) (Matcher, error) {
	return core.Pattern(expr)
}

// Resolver is one participant in a host's ordered resolution chain.
type Resolver = core.Resolver

// Unit is a readable module body in the shape a host's load path consumes.
type Unit = core.Unit

// UnitFactory creates the transient units the hook substitutes for blocked
// modules.
type UnitFactory = core.UnitFactory

// Errors re-exported from internal/core.
var (
	// ErrNotBlocked is returned by Disable for a matcher that is not
	// currently registered.
	ErrNotBlocked = core.ErrNotBlocked

	// ErrStandinSynthesis is returned when the host denies creation of the
	// stand-in unit for a blocked module.
	ErrStandinSynthesis = core.ErrStandinSynthesis
)

// Normalize converts a resolver-visible raw identifier into the canonical
// dotted module name matchers are tested against.
func Normalize(raw string) string {
	return core.Normalize(raw)
}
