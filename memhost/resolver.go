package memhost

import (
	"bytes"
	"io"

	"github.com/toejough/modblock"
)

// SourceResolver resolves raw paths against an in-memory source map. It
// plays the filesystem resolver's role at the back of the chain: the
// resolver a blocking hook has to outrun.
type SourceResolver struct {
	sources map[string][]byte
}

// NewSourceResolver creates an empty SourceResolver.
func NewSourceResolver() *SourceResolver {
	return &SourceResolver{sources: make(map[string][]byte)}
}

// Add registers module source under the raw resolution path.
func (r *SourceResolver) Add(raw, source string) {
	r.sources[raw] = []byte(source)
}

// Resolve implements modblock.Resolver. Unknown paths are declined.
func (r *SourceResolver) Resolve(raw string) (modblock.Unit, bool, error) {
	source, ok := r.sources[raw]
	if !ok {
		return nil, false, nil
	}

	return &unit{name: modblock.Normalize(raw), source: source}, true, nil
}

// unit is an in-memory readable module body.
type unit struct {
	name   string
	source []byte
}

// Name returns the canonical module name the unit was resolved for.
func (u *unit) Name() string {
	return u.name
}

// Open returns the module body for the loader to consume.
func (u *unit) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(u.source)), nil
}
