package moneydec

import "errors"

// ErrZeroStep is returned by RoundTo (and anything built on it, such as
// CeilStep and ESTVRound) when asked to round to a non-positive step. spec.md treats "division by zero" in the decimal layer as a fatal
// error; here it is a typed, recoverable error instead of a panic, so
// callers in internal/taxengine and internal/optimize can wrap it into the
// CalculationError taxonomy rather than crash the process.
var ErrZeroStep = errors.New("moneydec: round step must be positive")
