package rootfind

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Broyden is the "good" Broyden quasi-Newton method. The Jacobian is estimated
// once by finite differences and then updated by rank-one corrections.
type Broyden struct {
	Tol          float64 // max-norm residual tolerance, default DefaultTol
	MaxIter      int
	MaxBacktrack int
	Trace        Trace
}

// VecResult is the final state of one vector search.
type VecResult struct {
	X          []float64
	Residual   []float64
	Norm       float64 // max-norm of Residual
	Iterations int
	Converged  bool
}

/*
スカラー関数 f の根を s.A から探索する。

	Notes:
		s.B が s.A と異なり両点で評価可能なら、その割線勾配を初期ヤコビアンとする。
		それ以外は差分近似で初期ヤコビアンを求める。
*/
func (b Broyden) Solve(f Func, s Span) (Result, error) {
	vf := func(dst, x []float64) {
		dst[0] = f(x[0])
	}

	var jac *mat.Dense
	if s.B != s.A {
		fa, fb := f(s.A), f(s.B)
		if !IsInvalid(fa) && !IsInvalid(fb) && fa != fb {
			jac = mat.NewDense(1, 1, []float64{(fb - fa) / (s.B - s.A)})
		}
	}

	r, err := b.solve(vf, []float64{s.A}, jac)
	res := Result{Iterations: r.Iterations, Converged: r.Converged}
	if len(r.X) == 1 {
		res.X, res.Residual = r.X[0], r.Residual[0]
	}
	return res, err
}

// SolveVec finds x with f(x) = 0 starting from x0. x0 is not modified.
func (b Broyden) SolveVec(f VecFunc, x0 []float64) (VecResult, error) {
	return b.solve(f, x0, nil)
}

func (b Broyden) solve(f VecFunc, x0 []float64, jac *mat.Dense) (VecResult, error) {
	tol := orFloat(b.Tol, DefaultTol)
	maxIter := orInt(b.MaxIter, DefaultMaxIter)
	maxBacktrack := orInt(b.MaxBacktrack, DefaultMaxBacktrack)

	n := len(x0)
	if n == 0 {
		panic("rootfind: empty starting point")
	}

	x := make([]float64, n)
	copy(x, x0)
	fx := make([]float64, n)
	f(fx, x)
	if !finite(fx) {
		return VecResult{X: x, Residual: fx, Norm: math.Inf(1)}, fmt.Errorf("%w: x=%v", ErrInvalidStart, x)
	}

	var err error
	fresh := false
	if jac == nil {
		if jac, err = jacobian(f, x, fx); err != nil {
			return VecResult{X: x, Residual: fx, Norm: maxNorm(fx)}, err
		}
		fresh = true
	}

	xn := make([]float64, n)
	fn := make([]float64, n)
	neg := make([]float64, n)
	var dx, js, u mat.VecDense

	for it := 0; it < maxIter; it++ {
		norm := maxNorm(fx)
		if norm <= tol {
			return VecResult{X: x, Residual: fx, Norm: norm, Iterations: it, Converged: true}, nil
		}

		// J dx = -f
		floats.ScaleTo(neg, -1, fx)
		err := dx.SolveVec(jac, mat.NewVecDense(n, neg))
		if err != nil || !finite(dx.RawVector().Data) {
			if fresh {
				return VecResult{X: x, Residual: fx, Norm: norm, Iterations: it}, fmt.Errorf("%w at x=%v", ErrSingular, x)
			}
			if jac, err = jacobian(f, x, fx); err != nil {
				return VecResult{X: x, Residual: fx, Norm: norm, Iterations: it}, err
			}
			fresh = true
			continue
		}

		step := dx.RawVector().Data
		accepted := false
		t := 1.0
		for k := 0; k <= maxBacktrack; k++ {
			floats.AddScaledTo(xn, x, t, step)
			f(fn, xn)
			if finite(fn) {
				accepted = true
				break
			}
			t /= 2
		}
		if !accepted {
			return VecResult{X: x, Residual: fx, Norm: norm, Iterations: it}, fmt.Errorf("%w: no evaluable point along step from x=%v", ErrStalled, x)
		}

		// J += (y - J s) s^T / (s^T s)
		s := mat.NewVecDense(n, floats.SubTo(make([]float64, n), xn, x))
		y := mat.NewVecDense(n, floats.SubTo(make([]float64, n), fn, fx))
		ss := mat.Dot(s, s)
		if ss == 0 {
			return VecResult{X: x, Residual: fx, Norm: norm, Iterations: it}, fmt.Errorf("%w: zero step at x=%v", ErrStalled, x)
		}
		js.MulVec(jac, s)
		u.SubVec(y, &js)
		jac.RankOne(jac, 1/ss, &u, s)

		copy(x, xn)
		copy(fx, fn)
		fresh = false
		b.Trace.emit(it+1, x[0], fx[0])
	}

	norm := maxNorm(fx)
	if norm <= tol {
		return VecResult{X: x, Residual: fx, Norm: norm, Iterations: maxIter, Converged: true}, nil
	}
	return VecResult{X: x, Residual: fx, Norm: norm, Iterations: maxIter}, ErrMaxIterations
}

// jacobian estimates df/dx at x, falling back from central to one-sided
// differences when a stencil point cannot be evaluated.
func jacobian(f VecFunc, x, fx []float64) (*mat.Dense, error) {
	n := len(x)
	step := 1e-6 * math.Max(1, floats.Norm(x, math.Inf(1)))
	jac := mat.NewDense(n, n, nil)
	for _, formula := range []fd.Formula{fd.Central, fd.Forward, fd.Backward} {
		fd.Jacobian(jac, f, x, &fd.JacobianSettings{
			Formula:     formula,
			OriginValue: fx,
			Step:        step,
		})
		if finite(jac.RawMatrix().Data) && mat.Det(jac) != 0 {
			return jac, nil
		}
	}
	return nil, fmt.Errorf("%w: finite differences failed at x=%v", ErrSingular, x)
}

func finite(v []float64) bool {
	for _, e := range v {
		if IsInvalid(e) {
			return false
		}
	}
	return true
}

func maxNorm(v []float64) float64 {
	return floats.Norm(v, math.Inf(1))
}
