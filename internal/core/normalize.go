package core

import "strings"

// sourceSuffix is the trailing source-file suffix a resolver-visible path
// may carry. Normalization strips exactly one.
const sourceSuffix = ".src"

// Normalize converts a resolver-visible raw identifier into the canonical
// dotted module name used everywhere else: path separators become namespace
// separators, and one trailing source suffix is stripped.
// Deterministic, total, no side effects.
func Normalize(raw string) string {
	name := strings.TrimSuffix(raw, sourceSuffix)

	return strings.ReplaceAll(name, "/", ".")
}
