package rootfind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrent_Polynomial(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x - 5 }

	r, err := Brent{}.Solve(f, Span{2, 3})
	require.NoError(t, err)
	assert.True(t, r.Converged)
	assert.InDelta(t, 2.0945514815423265, r.X, 1e-12)
	assert.Less(t, r.Iterations, 20)
}

func TestBrent_ReversedBracket(t *testing.T) {
	r, err := Brent{}.Solve(math.Cos, Span{2, 1})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, r.X, 1e-12)
}

func TestBrent_RootAtEndpoint(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }

	r, err := Brent{}.Solve(f, Span{1, 4})
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.X)
	assert.Equal(t, 0, r.Iterations)
}

func TestBrent_RelativeTolerance(t *testing.T) {
	f := func(x float64) float64 { return x - 374.48999 }

	r, err := Brent{XTol: 2e-12, RTol: 1e-6}.Solve(f, Span{200, 582})
	require.NoError(t, err)
	assert.InDelta(t, 374.48999, r.X, 1e-3)
}

func TestBrent_Errors(t *testing.T) {
	cases := []struct {
		name string
		f    Func
		span Span
		want error
	}{
		{"same sign", func(x float64) float64 { return x*x + 1 }, Span{-1, 1}, ErrNoSignChange},
		{"invalid low end", func(x float64) float64 {
			if x < 0 {
				return Invalid
			}
			return x - 0.5
		}, Span{-1, 1}, ErrInvalidEndpoint},
		{"nan high end", func(x float64) float64 {
			if x > 0.9 {
				return math.NaN()
			}
			return x
		}, Span{-1, 1}, ErrInvalidEndpoint},
		{"invalid interior", func(x float64) float64 {
			if math.Abs(x) < 0.5 {
				return Invalid
			}
			return x
		}, Span{-1, 2}, ErrInvalidEvaluation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Brent{}.Solve(c.f, c.span)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestBrent_MaxIterations(t *testing.T) {
	_, err := Brent{MaxIter: 2}.Solve(math.Cos, Span{0, 3})
	assert.ErrorIs(t, err, ErrMaxIterations)
}

func TestBrent_Trace(t *testing.T) {
	var iters []int
	tr := func(iter int, x, residual float64) { iters = append(iters, iter) }

	r, err := Brent{Trace: tr}.Solve(math.Sin, Span{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, r.X, 1e-12)
	require.NotEmpty(t, iters)
	assert.Equal(t, 1, iters[0])
	assert.Equal(t, r.Iterations, iters[len(iters)-1])
}
