package suggest

import "errors"

// Predefined errors for the suggest package.
var (
	// ErrNoCandidates indicates that the matcher was constructed with an
	// empty dictionary, leaving it nothing to suggest from.
	ErrNoCandidates = errors.New("suggest: no candidates provided")
)
