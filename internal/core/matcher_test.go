//nolint:testpackage // Tests internal functions
package core

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// TestExact_MatchesOnlyItsOwnName verifies exact matchers use equality, not
// containment.
func TestExact_MatchesOnlyItsOwnName(t *testing.T) {
	t.Parallel()

	m := Exact("Alpha.Beta")

	if !m.Matches("Alpha.Beta") {
		t.Error("should match its own name")
	}

	for _, name := range []string{"Alpha", "Alpha.Beta.Gamma", "XAlpha.Beta", ""} {
		if m.Matches(name) {
			t.Errorf("should not match %q", name)
		}
	}
}

// TestPattern_FullNameAnchoring verifies a pattern cannot over-match names
// that merely contain a satisfying substring.
func TestPattern_FullNameAnchoring(t *testing.T) {
	t.Parallel()

	m, err := Pattern(`Foo\..*`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !m.Matches("Foo.Bar") || !m.Matches("Foo.Qux") {
		t.Error("pattern should match names under Foo")
	}

	for _, name := range []string{"XFoo.Bar", "Foo", "Zzz"} {
		if m.Matches(name) {
			t.Errorf("pattern should not match %q", name)
		}
	}
}

// TestPattern_InvalidExpression verifies bad regexes surface as errors
// instead of silently never matching.
func TestPattern_InvalidExpression(t *testing.T) {
	t.Parallel()

	if _, err := Pattern(`Foo.(`); err == nil {
		t.Error("expected an error for an unclosed group")
	}
}

// TestMatcher_IdentityIsRepresentation verifies an exact matcher and a
// pattern matcher over the same text are distinct registry identities.
func TestMatcher_IdentityIsRepresentation(t *testing.T) {
	t.Parallel()

	exact := Exact("Alpha.Beta")

	pattern, err := Pattern("Alpha.Beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exact.String() == pattern.String() {
		t.Errorf("exact and pattern identities collide: %q", exact.String())
	}
}

// TestPattern_MatchesUnseenNames_Property proves a prefix pattern blocks
// every name satisfying it, including names invented after the pattern was.
func TestPattern_MatchesUnseenNames_Property(t *testing.T) {
	t.Parallel()

	m, err := Pattern(`Foo\..*`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rapid.Check(t, func(rt *rapid.T) {
		suffix := rapid.StringMatching(`[A-Za-z][A-Za-z0-9_.]{0,15}`).Draw(rt, "suffix")
		name := "Foo." + suffix

		if !m.Matches(name) {
			rt.Fatalf("pattern should match %q", name)
		}

		if !strings.HasPrefix(name, "Foo.") {
			rt.Fatalf("generator drift: %q", name)
		}
	})
}
