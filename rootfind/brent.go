package rootfind

import (
	"fmt"
	"math"
)

// Brent is the Brent-Dekker bracketing method: bisection combined with secant
// and inverse quadratic interpolation steps.
type Brent struct {
	XTol    float64 // absolute x tolerance, default 2e-12
	RTol    float64 // relative x tolerance, default 4 eps
	MaxIter int
	Trace   Trace
}

/*
区間 [s.A, s.B] 内の f の根を求める。

	Notes:
		両端の残差が同符号、または評価できない場合は探索せずにエラーを返す。
		区間内で評価できない点に当たった場合も ErrInvalidEvaluation を返す。
*/
func (b Brent) Solve(f Func, s Span) (Result, error) {
	xtol := orFloat(b.XTol, 2e-12)
	rtol := orFloat(b.RTol, 4*2.220446049250313e-16)
	maxIter := orInt(b.MaxIter, DefaultMaxIter)

	xpre, xcur := s.A, s.B
	fpre, fcur := f(xpre), f(xcur)
	if IsInvalid(fpre) || IsInvalid(fcur) {
		return Result{}, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrInvalidEndpoint, xpre, fpre, xcur, fcur)
	}
	if fpre == 0 {
		return Result{X: xpre, Converged: true}, nil
	}
	if fcur == 0 {
		return Result{X: xcur, Converged: true}, nil
	}
	if math.Signbit(fpre) == math.Signbit(fcur) {
		return Result{}, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoSignChange, xpre, fpre, xcur, fcur)
	}

	var xblk, fblk, spre, scur float64
	for i := 0; i < maxIter; i++ {
		if fpre != 0 && fcur != 0 && math.Signbit(fpre) != math.Signbit(fcur) {
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}

		delta := (xtol + rtol*math.Abs(xcur)) / 2
		sbis := (xblk - xcur) / 2
		if fcur == 0 || math.Abs(sbis) < delta {
			return Result{X: xcur, Residual: fcur, Iterations: i, Converged: true}, nil
		}

		if math.Abs(spre) > delta && math.Abs(fcur) < math.Abs(fpre) {
			var stry float64
			if xpre == xblk {
				// interpolate
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// extrapolate
				dpre := (fpre - fcur) / (xpre - xcur)
				dblk := (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
			}
			if 2*math.Abs(stry) < math.Min(math.Abs(spre), 3*math.Abs(sbis)-delta) {
				spre, scur = scur, stry
			} else {
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}

		xpre, fpre = xcur, fcur
		if math.Abs(scur) > delta {
			xcur += scur
		} else if sbis > 0 {
			xcur += delta
		} else {
			xcur -= delta
		}

		fcur = f(xcur)
		if IsInvalid(fcur) {
			return Result{X: xcur, Residual: fcur, Iterations: i + 1}, fmt.Errorf("%w: f(%g)", ErrInvalidEvaluation, xcur)
		}
		b.Trace.emit(i+1, xcur, fcur)
	}
	return Result{X: xcur, Residual: fcur, Iterations: maxIter}, ErrMaxIterations
}
