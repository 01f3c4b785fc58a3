// Package rootfind provides derivative-free root finders behind one interface.
//
// Objectives signal a trial point they cannot evaluate by returning Invalid
// (any NaN or infinity is treated the same way). Open methods react by
// shortening the step; bracketing methods report the failure.
package rootfind

import "math"

// DefaultMaxIter caps every search loop.
const DefaultMaxIter = 1000

// DefaultTol is the residual tolerance of the open methods.
const DefaultTol = 1e-6

// DefaultMaxBacktrack is the number of step halvings tried on a rejected trial point.
const DefaultMaxBacktrack = 40

// Func is a scalar objective.
type Func func(x float64) float64

// VecFunc writes the residual at x into dst.
type VecFunc func(dst, x []float64)

// Invalid is the residual of a trial point that could not be evaluated.
var Invalid = math.Inf(1)

// IsInvalid reports whether v marks a rejected trial point.
func IsInvalid(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Span is where a search starts: the bracket [A, B] for bracketing methods, or
// the two starting points of an open method. B == A lets an open method pick
// its own second point.
type Span struct {
	A float64
	B float64
}

// Result is the final state of one search.
type Result struct {
	X          float64
	Residual   float64
	Iterations int
	Converged  bool
}

// Solver finds a root of f starting from s.
type Solver interface {
	Solve(f Func, s Span) (Result, error)
}

// Trace receives every accepted iterate.
type Trace func(iter int, x, residual float64)

func (t Trace) emit(iter int, x, residual float64) {
	if t != nil {
		t(iter, x, residual)
	}
}

func orInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func orFloat(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
