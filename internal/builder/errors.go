package builder

import "errors"

var (
	// ErrNoTerms is returned when an interaction is set without any
	// coefficient terms.
	ErrNoTerms = errors.New("no interaction terms found")

	// ErrUnpairedSymbols is returned when an interaction's symbols are not
	// given as a pair.
	ErrUnpairedSymbols = errors.New("interaction symbols must be given in pairs")

	// ErrUnknownSymbol is returned when an interaction names a symbol the
	// builder's symbol/element lists do not contain.
	ErrUnknownSymbol = errors.New("symbol not in symbols/elements")

	// ErrIncompleteCoverage is returned when building a record before
	// every unique symbol pair has an interaction assigned.
	ErrIncompleteCoverage = errors.New("not all interactions set")

	// ErrUnsupportedStyle is returned when a builder is asked for a pair
	// style outside its supported set.
	ErrUnsupportedStyle = errors.New("unsupported pair style")
)
