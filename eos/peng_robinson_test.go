package eos

import (
	"math"
	"testing"

	"saturation_calc/fluid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, name string) fluid.Parameters {
	t.Helper()
	f, err := fluid.NewDefaultRegistry().Lookup(name)
	require.NoError(t, err)
	return f
}

func TestAlpha(t *testing.T) {
	water := lookup(t, "Water")

	assert.InDelta(t, 1.0, Alpha(water.CriticalTemperature, water), 1e-15)
	assert.InDelta(t, 1.464392407707119, Alpha(373.15, water), 1e-9)

	// damped above the critical point
	tc := water.CriticalTemperature
	m := get_m(water.AcentricFactor)
	for _, tr := range []float64{1.1, 1.5, 2, 3} {
		s := 1 + m*(1-math.Sqrt(tr))
		undamped := s * s
		got := Alpha(tr*tc, water)
		assert.Less(t, got, undamped, "Tr=%g", tr)
		assert.Greater(t, got, 0.0, "Tr=%g", tr)
	}

	// continuous through Tr = 1
	assert.InDelta(t, Alpha(tc*(1-1e-9), water), Alpha(tc*(1+1e-9), water), 1e-8)
}

func TestEvaluate_Water(t *testing.T) {
	water := lookup(t, "Water")

	s, err := Evaluate(373.15, 101.325, water, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.9913088935577081, s.Z, 1e-8)
	assert.InDelta(t, 0.009247079402497298, s.A, 1e-12)
	assert.InDelta(t, 0.0006195797711008829, s.B, 1e-12)
	assert.Equal(t, 3, s.RootCount)
	assert.InDelta(t, s.Z*R*373.15/101.325, s.MolarVolume, 1e-12)
}

func TestEvaluate_OffsetShiftsB(t *testing.T) {
	water := lookup(t, "Water")

	plain, err := Evaluate(373.15, 101.325, water, 0)
	require.NoError(t, err)
	shifted, err := Evaluate(373.15, 101.325, water, 0.1)
	require.NoError(t, err)

	assert.InDelta(t, plain.B-0.1, shifted.B, 1e-15)
	assert.Equal(t, plain.A, shifted.A)
	assert.Greater(t, shifted.Z-shifted.B, 0.0)
}

func TestEvaluate_Idempotent(t *testing.T) {
	r134a := lookup(t, "R134a")

	first, err := Evaluate(300, 500, r134a, 0)
	require.NoError(t, err)
	second, err := Evaluate(300, 500, r134a, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p1, err := EvaluatePhases(300, 500, r134a)
	require.NoError(t, err)
	p2, err := EvaluatePhases(300, 500, r134a)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestEvaluate_InvalidInput(t *testing.T) {
	water := lookup(t, "Water")

	tests := []struct {
		name string
		t, p float64
	}{
		{"zero T", 0, 100},
		{"negative P", 300, -1},
		{"NaN T", math.NaN(), 100},
		{"Inf P", 300, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.t, tt.p, water, 0)
			assert.ErrorIs(t, err, ErrInvalidInput)

			_, err = EvaluatePhases(tt.t, tt.p, water)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// Below Tc every (T, P) has a valid root, the vapor root is never below the
// liquid root and Z - B > 0 holds for everything returned.
func TestEvaluate_RootProperties(t *testing.T) {
	reg := fluid.NewDefaultRegistry()
	for _, name := range reg.Names() {
		f, err := reg.Lookup(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			for tr := 0.45; tr < 1.0; tr += 0.05 {
				for pr := 0.001; pr < 1.0; pr *= 1.7 {
					temp := tr * f.CriticalTemperature
					p := pr * f.CriticalPressure

					s, err := Evaluate(temp, p, f, 0)
					require.NoError(t, err, "T=%g P=%g", temp, p)
					assert.Greater(t, s.Z-s.B, 0.0)
					assert.GreaterOrEqual(t, s.RootCount, 1)

					ph, err := EvaluatePhases(temp, p, f)
					if err != nil {
						require.ErrorIs(t, err, ErrSinglePhase)
					}
					assert.GreaterOrEqual(t, ph.Vapor.Z, ph.Liquid.Z)
					assert.Greater(t, ph.Liquid.Z-ph.Liquid.B, 0.0)
					assert.Equal(t, s.Z, ph.Vapor.Z)

					_, err = ph.Liquid.LnPhi()
					assert.NoError(t, err)
					_, err = ph.Vapor.LnPhi()
					assert.NoError(t, err)
				}
			}
		})
	}
}

func TestEvaluatePhases_SinglePhase(t *testing.T) {
	water := lookup(t, "Water")
	r134a := lookup(t, "R134a")

	// supercritical gas
	ph, err := EvaluatePhases(700, 1000, water)
	require.ErrorIs(t, err, ErrSinglePhase)
	assert.Equal(t, ph.Vapor, ph.Liquid)
	assert.Equal(t, 1, ph.Vapor.RootCount)
	assert.True(t, ph.Vapor.VaporLike())

	// compressed liquid
	ph, err = EvaluatePhases(250, 4000, r134a)
	require.ErrorIs(t, err, ErrSinglePhase)
	assert.InDelta(t, 0.14404282413239997, ph.Liquid.Z, 1e-8)
	assert.False(t, ph.Liquid.VaporLike())
}

func TestEvaluatePhases_TwoPhase(t *testing.T) {
	r134a := lookup(t, "R134a")

	ph, err := EvaluatePhases(300, 500, r134a)
	require.NoError(t, err)
	assert.Equal(t, 3, ph.Vapor.RootCount)
	assert.InDelta(t, 0.9011229337289153, ph.Vapor.Z, 1e-8)
	assert.InDelta(t, 0.017549931317557572, ph.Liquid.Z, 1e-8)
	assert.True(t, ph.Vapor.VaporLike())
	assert.False(t, ph.Liquid.VaporLike())
	assert.Greater(t, ph.Vapor.MolarVolume, ph.Liquid.MolarVolume)
}
