// Package eos evaluates the Peng-Robinson cubic equation of state for pure fluids.
//
// Temperatures are in K and pressures in kPa throughout. Molar volumes are
// returned in m3/kmol (equivalently L/mol).
package eos

import (
	"fmt"
	"math"

	"saturation_calc/fluid"

	"gonum.org/v1/gonum/floats"
)

// State is the result of one (T, P) evaluation of the equation of state.
// Z - B > 0 holds for every State returned by this package.
type State struct {
	Temperature float64 // 温度, K
	Pressure    float64 // 圧力, kPa
	Z           float64 // 圧縮係数, -
	A           float64 // 無次元引力パラメータ, -
	B           float64 // 無次元排除体積パラメータ, -
	MolarVolume float64 // モル体積, m3/kmol
	RootCount   int     // 有効な実数解の数
}

// Phases holds the vapor-like (largest) and liquid-like (smallest) roots of one cubic.
type Phases struct {
	Vapor  State
	Liquid State
}

/*
温度補正係数 α を計算する。

	Args:
		t: 温度, K
		f: 流体定数

	Returns:
		α, -

	Notes:
		超臨界 (Tr > 1) では exp(m (1 - Tr)(1 + m (1 - √Tr))) を乗じて
		α が発散しないよう滑らかに減衰させる。
*/
func Alpha(t float64, f fluid.Parameters) float64 {
	t_r := f.ReducedTemperature(t)
	m := get_m(f.AcentricFactor)
	s := 1 + m*(1-math.Sqrt(t_r))
	alpha := s * s
	if t_r > 1 {
		alpha *= math.Exp(m * (1 - t_r) * s)
	}
	return alpha
}

// 偏心因子から α の勾配 m を求める。
func get_m(omega float64) float64 {
	return 0.37464 + 1.54226*omega - 0.26992*omega*omega
}

/*
無次元パラメータ A, B を計算する。

	Args:
		t: 温度, K
		p: 圧力, kPa
		f: 流体定数
		offset: B から差し引く量, -

	Returns:
		(1) A, -
		(2) B, -
*/
func get_A_B(t, p float64, f fluid.Parameters, offset float64) (float64, float64) {
	t_c, p_c := f.CriticalTemperature, f.CriticalPressure

	a := omega_a * (R * t_c) * (R * t_c) / p_c * Alpha(t, f)
	b := omega_b * R * t_c / p_c

	rt := R * t
	A := a * p / (rt * rt)
	B := b*p/rt - offset

	return clip(A), clip(B)
}

func clip(v float64) float64 {
	return math.Max(-clipLimit, math.Min(clipLimit, v))
}

/*
圧縮係数の3次式の有効な解を求める。

	Returns:
		Z - B > 0 を満たす解（昇順）, A, B
*/
func valid_roots(t, p float64, f fluid.Parameters, offset float64) ([]float64, float64, float64, error) {
	if !(t > 0) || !(p > 0) || math.IsInf(t, 0) || math.IsInf(p, 0) {
		return nil, 0, 0, fmt.Errorf("%w: T=%g K, P=%g kPa", ErrInvalidInput, t, p)
	}

	A, B := get_A_B(t, p, f, offset)

	// Z^3 + (B - 1) Z^2 + (A - 3B^2 - 2B) Z + (B^3 + B^2 - AB) = 0
	roots, err := Roots(B-1, A-3*B*B-2*B, B*B*B+B*B-A*B)
	if err != nil {
		return nil, A, B, fmt.Errorf("T=%g K, P=%g kPa: %w", t, p, err)
	}

	valid := roots[:0]
	for _, z := range roots {
		if z-B > 0 && !math.IsInf(z, 0) {
			valid = append(valid, z)
		}
	}
	if len(valid) == 0 {
		return nil, A, B, fmt.Errorf("%w at T=%g K, P=%g kPa", ErrNoRealRoot, t, p)
	}
	return valid, A, B, nil
}

func new_state(t, p, z, A, B float64, n int) State {
	return State{
		Temperature: t,
		Pressure:    p,
		Z:           z,
		A:           A,
		B:           B,
		MolarVolume: z * R * t / p,
		RootCount:   n,
	}
}

// Evaluate solves the equation of state at (t, p) and returns the largest
// (most vapor-like) valid root. offset is subtracted from B before the cubic
// is formed; pass 0 for the plain equation of state.
func Evaluate(t, p float64, f fluid.Parameters, offset float64) (State, error) {
	roots, A, B, err := valid_roots(t, p, f, offset)
	if err != nil {
		return State{}, err
	}
	return new_state(t, p, floats.Max(roots), A, B, len(roots)), nil
}

// EvaluatePhases returns the largest and smallest valid roots of the cubic at (t, p).
//
// When only one distinct root exists the error wraps ErrSinglePhase and both
// fields of the returned Phases hold that root, so the caller can still tell
// whether the state is vapor-like or liquid-like.
func EvaluatePhases(t, p float64, f fluid.Parameters) (Phases, error) {
	roots, A, B, err := valid_roots(t, p, f, 0)
	if err != nil {
		return Phases{}, err
	}

	n := len(roots)
	z_v, z_l := floats.Max(roots), floats.Min(roots)
	ph := Phases{
		Vapor:  new_state(t, p, z_v, A, B, n),
		Liquid: new_state(t, p, z_l, A, B, n),
	}
	if z_v-z_l <= distinctRootGap {
		ph.Liquid = ph.Vapor
		return ph, fmt.Errorf("%w at T=%g K, P=%g kPa", ErrSinglePhase, t, p)
	}
	return ph, nil
}

// PackingFraction returns b/V = B/Z.
func (s State) PackingFraction() float64 {
	return s.B / s.Z
}

// VaporLike reports whether the state is less densely packed than the
// critical point of the Peng-Robinson fluid.
func (s State) VaporLike() bool {
	return s.PackingFraction() < criticalPacking
}

// LnPhi returns the natural log of the fugacity coefficient of the state.
func (s State) LnPhi() (float64, error) {
	return LnFugacityCoefficient(s.Z, s.A, s.B)
}

// Fugacity returns the direct-form fugacity of the state.
func (s State) Fugacity() (float64, error) {
	return Fugacity(s.Pressure, s.MolarVolume, s.Z, s.B)
}
