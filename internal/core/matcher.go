package core

import (
	"fmt"
	"regexp"
)

// Matcher decides whether a canonical module name is blocked.
// Its String form is its identity: the registry stores and removes matchers
// by representation, never by semantic equivalence, so two patterns that
// happen to match the same names are still distinct entries.
type Matcher interface {
	Matches(name string) bool
	String() string
}

// Exact returns a matcher that matches only the given canonical name.
func Exact(name string) Matcher {
	return exactMatcher(name)
}

// exactMatcher is the implementation of the Exact() matcher.
type exactMatcher string

// Matches reports whether name equals the matcher's name.
func (m exactMatcher) Matches(name string) bool {
	return string(m) == name
}

// String returns the matcher's identity representation.
func (m exactMatcher) String() string {
	return "exact:" + string(m)
}

// Pattern returns a matcher that matches every canonical name the regular
// expression matches in full. The expression is anchored on both ends, so a
// pattern like `Foo\..*` cannot over-match `XFoo.Bar`. Returns an error for
// expressions that do not compile.
func Pattern(expr string) (Matcher, error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("invalid block pattern %q: %w", expr, err)
	}

	return &patternMatcher{expr: expr, re: re}, nil
}

// patternMatcher is the implementation of the Pattern() matcher.
type patternMatcher struct {
	expr string
	re   *regexp.Regexp
}

// Matches reports whether the full name satisfies the pattern.
func (m *patternMatcher) Matches(name string) bool {
	return m.re.MatchString(name)
}

// String returns the matcher's identity representation.
func (m *patternMatcher) String() string {
	return "pattern:" + m.expr
}
