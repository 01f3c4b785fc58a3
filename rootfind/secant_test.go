package rootfind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecant(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) - 702.38 }

	cases := []struct {
		name string
		span Span
	}{
		{"given second point", Span{math.Log(405.94), math.Log(405.94) + 0.05}},
		{"derived second point", Span{6, 6}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Secant{}.Solve(f, c.span)
			require.NoError(t, err)
			assert.True(t, r.Converged)
			assert.InDelta(t, math.Log(702.38), r.X, 1e-8)
			assert.LessOrEqual(t, math.Abs(r.Residual), DefaultTol)
		})
	}
}

func TestSecant_StartIsRoot(t *testing.T) {
	r, err := Secant{}.Solve(math.Sin, Span{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.X)
	assert.Equal(t, 0, r.Iterations)
}

func TestSecant_BacktracksSecondPoint(t *testing.T) {
	f := func(x float64) float64 {
		if x > 2 {
			return Invalid
		}
		return x - 1.5
	}

	r, err := Secant{}.Solve(f, Span{0, 10})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, r.X, 1e-9)
}

func TestSecant_Errors(t *testing.T) {
	cases := []struct {
		name string
		f    Func
		span Span
		want error
	}{
		{"invalid start", func(x float64) float64 { return math.NaN() }, Span{1, 2}, ErrInvalidStart},
		{"invalid everywhere else", func(x float64) float64 {
			if x == 1 {
				return 1
			}
			return Invalid
		}, Span{1, 2}, ErrStalled},
		{"flat", func(x float64) float64 { return 3 }, Span{1, 2}, ErrStalled},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Secant{}.Solve(c.f, c.span)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestSecant_MaxIterations(t *testing.T) {
	f := func(x float64) float64 { return math.Atan(x) }

	_, err := Secant{MaxIter: 2, Tol: 1e-15}.Solve(f, Span{1, 1.2})
	assert.ErrorIs(t, err, ErrMaxIterations)
}

func TestSolversShareInterface(t *testing.T) {
	f := func(x float64) float64 { return x*x - 9 }
	solvers := map[string]Solver{
		"brent":   Brent{},
		"broyden": Broyden{},
		"secant":  Secant{},
	}
	spans := map[string]Span{
		"brent":   {0, 10},
		"broyden": {2, 2},
		"secant":  {2, 2.5},
	}
	for name, s := range solvers {
		t.Run(name, func(t *testing.T) {
			r, err := s.Solve(f, spans[name])
			require.NoError(t, err)
			assert.InDelta(t, 3.0, r.X, 1e-6)
		})
	}
}
