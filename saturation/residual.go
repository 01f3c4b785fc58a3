package saturation

import (
	"math"

	"saturation_calc/eos"
	"saturation_calc/fluid"
	"saturation_calc/rootfind"
)

/*
気相・液相のフガシティ係数の対数を計算する。

	Args:
		t: 温度, K
		p: 圧力, kPa
		f: 流体定数

	Returns:
		(1) ln φ_vapor, -
		(2) ln φ_liquid, -
		(3) 両相が定義されるか

	Notes:
		同じ3次式の最大解を気相、最小解を液相とする。
*/
func get_ln_phi(t, p float64, f fluid.Parameters) (float64, float64, bool) {
	ph, err := eos.EvaluatePhases(t, p, f)
	if err != nil {
		return 0, 0, false
	}
	ln_phi_v, err := ph.Vapor.LnPhi()
	if err != nil {
		return 0, 0, false
	}
	ln_phi_l, err := ph.Liquid.LnPhi()
	if err != nil {
		return 0, 0, false
	}
	return ln_phi_v, ln_phi_l, true
}

// equilibrium_residual returns ln φ_liquid - ln φ_vapor, or rootfind.Invalid
// where the two phases are not both defined.
func equilibrium_residual(t, p float64, f fluid.Parameters) float64 {
	ln_phi_v, ln_phi_l, ok := get_ln_phi(t, p, f)
	if !ok {
		return rootfind.Invalid
	}
	return ln_phi_l - ln_phi_v
}

// phi_difference returns φ_vapor - φ_liquid, or rootfind.Invalid where the
// two phases are not both defined.
func phi_difference(t, p float64, f fluid.Parameters) float64 {
	ln_phi_v, ln_phi_l, ok := get_ln_phi(t, p, f)
	if !ok {
		return rootfind.Invalid
	}
	return math.Exp(ln_phi_v) - math.Exp(ln_phi_l)
}
