//nolint:testpackage // Tests internal functions
package core

import (
	"errors"
	"testing"
)

// TestRegistry_AddIsIdempotent verifies re-adding a matcher leaves a single
// entry.
func TestRegistry_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add(Exact("Alpha"))
	r.Add(Exact("Alpha"))

	if got := len(r.All()); got != 1 {
		t.Errorf("expected 1 entry, got %d", got)
	}
}

// TestRegistry_RemoveAbsentFailsNotBlocked verifies removing an unknown
// matcher surfaces ErrNotBlocked and changes nothing.
func TestRegistry_RemoveAbsentFailsNotBlocked(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add(Exact("Alpha"))

	err := r.Remove(Exact("Beta"))
	if !errors.Is(err, ErrNotBlocked) {
		t.Fatalf("expected ErrNotBlocked, got %v", err)
	}

	if !r.Matches("Alpha") {
		t.Error("a failed remove should leave existing entries in force")
	}
}

// TestRegistry_MatchesAnyRegisteredMatcher verifies a name is blocked when
// at least one matcher of either kind matches it.
func TestRegistry_MatchesAnyRegisteredMatcher(t *testing.T) {
	t.Parallel()

	pattern, err := Pattern(`Foo\..*`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewRegistry()
	r.Add(Exact("Alpha.Beta"))
	r.Add(pattern)

	for _, name := range []string{"Alpha.Beta", "Foo.Bar", "Foo.Qux"} {
		if !r.Matches(name) {
			t.Errorf("%q should match", name)
		}
	}

	for _, name := range []string{"Alpha", "Zzz", "XFoo.Bar"} {
		if r.Matches(name) {
			t.Errorf("%q should not match", name)
		}
	}
}

// TestRegistry_AllPreservesInsertionOrder verifies enumeration is
// deterministic regardless of add/remove history.
func TestRegistry_AllPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add(Exact("C"))
	r.Add(Exact("A"))
	r.Add(Exact("B"))

	if err := r.Remove(Exact("A")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Add(Exact("A"))

	want := []string{"exact:C", "exact:B", "exact:A"}
	got := r.All()

	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}

	for i, m := range got {
		if m.String() != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], m.String())
		}
	}
}
