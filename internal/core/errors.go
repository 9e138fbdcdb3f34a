package core

import "errors"

var (
	// ErrNotBlocked is returned by Disable for a matcher that is not
	// currently registered.
	ErrNotBlocked = errors.New("matcher is not blocked")

	// ErrStandinSynthesis is returned when the host denies creation of the
	// transient stand-in unit for a blocked module. It is fatal to the
	// resolution attempt it occurred in.
	ErrStandinSynthesis = errors.New("could not synthesize stand-in unit")
)
