package amati

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates request parameters were malformed, missing or
	// contradictory. It is always fatal to the run.
	ErrValidation = errors.New("validation error")

	// ErrLookup indicates a tone, scale or chord name could not be resolved.
	// Lookup failures reach callers wrapped in ErrValidation as well.
	ErrLookup = errors.New("lookup error")

	// ErrUnsupportedAnalytic indicates an analytic cannot run over the
	// theory object carried by the query.
	ErrUnsupportedAnalytic = errors.New("unsupported analytic")

	// ErrIO indicates the output destination could not be opened or written.
	ErrIO = errors.New("io error")
)

// UnsupportedAnalyticError reports that a single analytic was skipped.
// It unwraps to ErrUnsupportedAnalytic.
type UnsupportedAnalyticError struct {
	Analytic string
	Reason   string
}

func (e *UnsupportedAnalyticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Analytic, e.Reason)
}

// Unwrap returns ErrUnsupportedAnalytic.
func (e *UnsupportedAnalyticError) Unwrap() error { return ErrUnsupportedAnalytic }
