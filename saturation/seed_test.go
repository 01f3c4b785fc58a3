package saturation

import (
	"math"
	"testing"

	"saturation_calc/fluid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureSeed(t *testing.T) {
	reg := fluid.NewDefaultRegistry()

	water, err := reg.Lookup("Water")
	require.NoError(t, err)
	assert.InDelta(t, 373.15, temperature_seed(water, 101.325), 0.01)

	r134a, err := reg.Lookup("R134a")
	require.NoError(t, err)

	// capped below the critical point
	assert.Equal(t, 0.999*r134a.CriticalTemperature, temperature_seed(r134a, 0.9999*r134a.CriticalPressure))

	seed := temperature_seed(r134a, 500)
	assert.InDelta(t, 288.9, seed, 5)
}

func TestClassify(t *testing.T) {
	r134a, err := fluid.NewDefaultRegistry().Lookup("R134a")
	require.NoError(t, err)

	assert.Equal(t, phaseTwo, classify(300, 500, r134a))
	assert.Equal(t, phaseLiquid, classify(250, 4000, r134a))
	assert.Equal(t, phaseVapor, classify(370, 10, r134a))
	assert.Equal(t, phaseNone, classify(-1, 500, r134a))
}

func TestWalk(t *testing.T) {
	// two-phase window is [10, 12); below it is "up", above it is "down"
	class := func(x float64) phase {
		switch {
		case x < 10:
			return phaseLiquid
		case x < 12:
			return phaseTwo
		default:
			return phaseVapor
		}
	}

	for _, x0 := range []float64{0, 9.99, 10, 11.5, 12, 100} {
		x, err := walk(x0, 0.5, phaseLiquid, class)
		require.NoError(t, err, "x0=%g", x0)
		assert.Equal(t, phaseTwo, class(x), "x0=%g", x0)
	}

	// narrow window found by bisection after overshooting
	narrow := func(x float64) phase {
		switch {
		case x < 1:
			return phaseVapor
		case x < 1.001:
			return phaseTwo
		default:
			return phaseLiquid
		}
	}
	x, err := walk(0, 0.75, phaseVapor, narrow)
	require.NoError(t, err)
	assert.Equal(t, phaseTwo, narrow(x))

	_, err = walk(0, 1, phaseLiquid, func(float64) phase { return phaseNone })
	assert.ErrorIs(t, err, ErrNoTwoPhaseSeed)

	_, err = walk(0, 1, phaseLiquid, func(float64) phase { return phaseLiquid })
	assert.ErrorIs(t, err, ErrNoTwoPhaseSeed)
}

func TestResiduals(t *testing.T) {
	water, err := fluid.NewDefaultRegistry().Lookup("Water")
	require.NoError(t, err)

	// liquid has the lower fugacity below the saturation temperature
	assert.Less(t, equilibrium_residual(300, 101.325, water), 0.0)
	assert.Greater(t, phi_difference(300, 101.325, water), 0.0)

	assert.True(t, math.IsInf(equilibrium_residual(700, 1000, water), 1))
	assert.True(t, math.IsInf(phi_difference(700, 1000, water), 1))

	r := equilibrium_residual(374.48996, 101.325, water)
	assert.InDelta(t, 0, r, 1e-5)
	assert.InDelta(t, 0, phi_difference(374.48996, 101.325, water), 1e-5)
}

func TestTemperatureBracket(t *testing.T) {
	reg := fluid.NewDefaultRegistry()

	water, err := reg.Lookup("Water")
	require.NoError(t, err)
	lo, hi := get_temperature_bracket(water)
	assert.Equal(t, 200.0, lo)
	assert.InDelta(t, 582.3864, hi, 1e-9)

	r134a, err := reg.Lookup("R134a")
	require.NoError(t, err)
	lo, hi = get_temperature_bracket(r134a)
	assert.Equal(t, 200.0, lo)
	assert.InDelta(t, 336.789, hi, 1e-9)
}
