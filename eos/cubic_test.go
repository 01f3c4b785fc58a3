package eos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoots(t *testing.T) {
	tests := []struct {
		name       string
		c2, c1, c0 float64
		want       []float64
	}{
		{"three distinct", -6, 11, -6, []float64{1, 2, 3}},
		{"one real", -2, 1, -2, []float64{2}},          // (z-2)(z^2+1)
		{"double root", -4, 5, -2, []float64{1, 1, 2}}, // (z-1)^2 (z-2)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Roots(tt.c2, tt.c1, tt.c0)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-6)
			}
		})
	}
}

func TestRoots_SmallRootsKeepRelativePrecision(t *testing.T) {
	r1, r2, r3 := 1.0, 1e-9, 2e-9
	c2 := -(r1 + r2 + r3)
	c1 := r1*r2 + r1*r3 + r2*r3
	c0 := -r1 * r2 * r3

	got, err := Roots(c2, c1, c0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InEpsilon(t, r2, got[0], 1e-6)
	assert.InEpsilon(t, r3, got[1], 1e-6)
	assert.InEpsilon(t, r1, got[2], 1e-12)
}

func TestRoots_NonFinite(t *testing.T) {
	_, err := Roots(math.NaN(), 0, 0)
	assert.ErrorIs(t, err, ErrNoRealRoot)

	_, err = Roots(0, math.Inf(1), 0)
	assert.ErrorIs(t, err, ErrNoRealRoot)
}
