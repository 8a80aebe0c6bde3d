package sentinel

import "errors"

// Sentinel errors for the facts the generation engines can report. Engines
// return these (optionally wrapped) so consumers can translate them into
// domain errors.
//
// These describe why no code was produced, not transport failures:
// - ErrUnsupportedCountry: country code is not in the catalog or registry
// - ErrExhaustedConstraints: the scheme cannot satisfy the requested gender/year
// - ErrMalformedInput: the code cannot be segmented into the country's layout
//
// For request validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrUnsupportedCountry   = errors.New("unsupported country")
	ErrExhaustedConstraints = errors.New("constraints cannot be satisfied")
	ErrMalformedInput       = errors.New("malformed input")
)
