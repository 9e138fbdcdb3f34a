package core

import (
	"fmt"
	"strings"
)

// hook is the resolution-chain participant that intercepts blocked names.
// One hook serves one Blocker; the registry's content decides what it
// intercepts, so installation is permanent and Disable only shrinks the
// registry.
type hook struct {
	registry *Registry
	units    UnitFactory
}

// Resolve implements Resolver. Unblocked names are declined so the chain
// falls through to the real resolvers unchanged. Blocked names get a fresh
// stand-in unit; if the host denies the unit, the error propagates and the
// resolution attempt fails rather than falling through.
func (h *hook) Resolve(raw string) (Unit, bool, error) {
	name := Normalize(raw)
	if !h.registry.Matches(name) {
		return nil, false, nil
	}

	unit, err := h.units.NewUnit(name, standinSource(name))
	if err != nil {
		return nil, false, fmt.Errorf("%w for %q: %v", ErrStandinSynthesis, name, err)
	}

	return unit, true, nil
}

// installFront places the hook at the front of the chain, removing it from
// any position it already occupies so it cannot end up behind a resolver
// pushed in front of it since the last enable. Runs before any filesystem
// resolver on every subsequent resolution attempt.
func (h *hook) installFront(chain Chain) {
	chain.Remove(h)
	chain.PushFront(h)
}

// standinSource fabricates a module body for a blocked name: a module
// declaration naming the canonical name, a no-op initializer so code that
// merely imports-and-ignores the module does not crash, and a terminal
// falsy value. The falsy terminal is the contract: the host treats a module
// whose top-level evaluation yields a falsy value as a failed load, which
// is exactly what a guarded "attempt to load, check for failure" caller
// observes for a genuinely missing module.
func standinSource(name string) []byte {
	var b strings.Builder

	b.WriteString("module " + name + "\n")
	b.WriteString("init\n")
	b.WriteString("return false\n")

	return []byte(b.String())
}
