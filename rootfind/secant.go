package rootfind

import (
	"fmt"
	"math"
)

// Secant is the two-point secant method with step halving on rejected points.
type Secant struct {
	Tol          float64 // residual tolerance, default DefaultTol
	MaxIter      int
	MaxBacktrack int
	Trace        Trace
}

/*
スカラー関数 f の根を s.A, s.B の2点から探索する。

	Notes:
		s.B == s.A の場合は s.A の近傍に第2点を取る。
		評価できない第2点は s.A に向かって半分ずつ戻す。
*/
func (sc Secant) Solve(f Func, s Span) (Result, error) {
	tol := orFloat(sc.Tol, DefaultTol)
	maxIter := orInt(sc.MaxIter, DefaultMaxIter)
	maxBacktrack := orInt(sc.MaxBacktrack, DefaultMaxBacktrack)

	x0, f0 := s.A, f(s.A)
	if IsInvalid(f0) {
		return Result{X: x0, Residual: f0}, fmt.Errorf("%w: x=%g", ErrInvalidStart, x0)
	}
	if math.Abs(f0) <= tol {
		return Result{X: x0, Residual: f0, Converged: true}, nil
	}

	x1 := s.B
	if x1 == x0 {
		x1 = x0*(1+1e-4) + math.Copysign(1e-4, x0)
	}
	f1 := f(x1)
	for k := 0; IsInvalid(f1) && k < maxBacktrack; k++ {
		x1 = x0 + (x1-x0)/2
		f1 = f(x1)
	}
	if IsInvalid(f1) {
		return Result{X: x0, Residual: f0}, fmt.Errorf("%w: no evaluable second point near x=%g", ErrStalled, x0)
	}

	for it := 0; it < maxIter; it++ {
		if math.Abs(f1) <= tol {
			return Result{X: x1, Residual: f1, Iterations: it, Converged: true}, nil
		}
		if f1 == f0 {
			return Result{X: x1, Residual: f1, Iterations: it}, fmt.Errorf("%w: flat secant at x=%g", ErrStalled, x1)
		}

		dx := -f1 * (x1 - x0) / (f1 - f0)
		xn, fn := x1+dx, f(x1+dx)
		for k := 0; IsInvalid(fn) && k < maxBacktrack; k++ {
			dx /= 2
			xn, fn = x1+dx, f(x1+dx)
		}
		if IsInvalid(fn) {
			return Result{X: x1, Residual: f1, Iterations: it}, fmt.Errorf("%w: no evaluable point along step from x=%g", ErrStalled, x1)
		}
		if xn == x1 {
			return Result{X: x1, Residual: f1, Iterations: it}, fmt.Errorf("%w: zero step at x=%g", ErrStalled, x1)
		}

		x0, f0, x1, f1 = x1, f1, xn, fn
		sc.Trace.emit(it+1, x1, f1)
	}

	if math.Abs(f1) <= tol {
		return Result{X: x1, Residual: f1, Iterations: maxIter, Converged: true}, nil
	}
	return Result{X: x1, Residual: f1, Iterations: maxIter}, ErrMaxIterations
}
