package eos

import (
	"fmt"
	"math"
)

/*
フガシティ係数の自然対数を計算する。

	Args:
		z: 圧縮係数, -
		A: 無次元引力パラメータ, -
		B: 無次元排除体積パラメータ, -

	Returns:
		ln φ, -

	Notes:
		ln φ = Z - 1 - ln(Z - B) - A/(2√2 B) ln[(Z + (1+√2)B)/(Z + (1-√2)B)]
*/
func LnFugacityCoefficient(z, A, B float64) (float64, error) {
	if !(B > 0) || !(z-B > 0) || math.IsNaN(A) {
		return 0, fmt.Errorf("%w: Z=%g, B=%g", ErrInvalidState, z, B)
	}

	num := z + (1+math.Sqrt2)*B
	den := z + (1-math.Sqrt2)*B
	if !(num > 0) || !(den > 0) {
		return 0, fmt.Errorf("%w: log argument outside domain (Z=%g, B=%g)", ErrInvalidState, z, B)
	}

	ln_phi := z - 1 - math.Log(z-B) - A/(2*math.Sqrt2*B)*math.Log(num/den)
	if math.IsNaN(ln_phi) || math.IsInf(ln_phi, 0) {
		return 0, fmt.Errorf("%w: ln(phi) not finite (Z=%g, A=%g, B=%g)", ErrInvalidState, z, A, B)
	}
	return ln_phi, nil
}

// FugacityCoefficient returns φ = exp(ln φ).
func FugacityCoefficient(z, A, B float64) (float64, error) {
	ln_phi, err := LnFugacityCoefficient(z, A, B)
	if err != nil {
		return 0, err
	}
	return math.Exp(ln_phi), nil
}

/*
フガシティを直接形で計算する。

	Args:
		p: 圧力, kPa
		v: モル体積, m3/kmol
		z: 圧縮係数, -
		B: 無次元排除体積パラメータ, -

	Returns:
		f = P V exp(Z - 1 - ln(Z - B))

	Notes:
		診断用。飽和点の探索はフガシティ係数 (LnFugacityCoefficient) の一致で判定し、この式は使わない。
*/
func Fugacity(p, v, z, B float64) (float64, error) {
	if !(z-B > 0) {
		return 0, fmt.Errorf("%w: Z=%g, B=%g", ErrInvalidState, z, B)
	}
	return p * v * math.Exp(z-1-math.Log(z-B)), nil
}
