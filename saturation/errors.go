package saturation

import (
	"errors"
	"fmt"
)

var (
	// ErrSaturationNotFound indicates no saturation point could be established.
	ErrSaturationNotFound = errors.New("saturation: saturation point not found")

	// ErrNoTwoPhaseSeed indicates the initial guess could not be moved into
	// the region where the cubic has distinct vapor and liquid roots.
	ErrNoTwoPhaseSeed = errors.New("saturation: no two-phase state near the initial guess")

	// ErrOutOfRange indicates the pinned variable is outside the subcritical range.
	ErrOutOfRange = errors.New("saturation: pinned variable outside subcritical range")
)

// Error describes a failed saturation search. It matches ErrSaturationNotFound
// and its cause under errors.Is.
type Error struct {
	Fluid      string
	Method     Method
	Pinned     float64 // pressure in kPa for temperature searches, temperature in K otherwise
	Iterations int
	Residual   float64
	Err        error
}

func (e *Error) Error() string {
	sym, unit := e.Method.pinned()
	msg := fmt.Sprintf("saturation: %s of %s at %s=%g %s not found", e.Method.target(), e.Fluid, sym, e.Pinned, unit)
	if e.Iterations > 0 {
		msg += fmt.Sprintf(" after %d iterations (residual %g)", e.Iterations, e.Residual)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSaturationNotFound}
	}
	return []error{ErrSaturationNotFound, e.Err}
}
