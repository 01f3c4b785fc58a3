package fluid

import (
	"fmt"
	"math"
)

// Antoine holds the coefficients of log10(P) = A - B/(C + T), P in kPa, T in K.
type Antoine struct {
	A float64
	B float64
	C float64
}

/*
蒸気圧相関式を温度について解く。

	Args:
		p: 圧力, kPa

	Returns:
		飽和温度の推定値, K
*/
func (a Antoine) Temperature(p float64) float64 {
	return a.B/(a.A-math.Log10(p)) - a.C
}

/*
蒸気圧相関式から圧力を求める。

	Args:
		t: 温度, K

	Returns:
		飽和圧力の推定値, kPa
*/
func (a Antoine) Pressure(t float64) float64 {
	return math.Pow(10, a.A-a.B/(a.C+t))
}

// Parameters are the critical constants of one pure fluid.
// Values are immutable once registered.
type Parameters struct {
	Name                string
	CriticalTemperature float64 // 臨界温度, K
	CriticalPressure    float64 // 臨界圧力, kPa
	AcentricFactor      float64 // 偏心因子, -

	// fluid specific vapour pressure correlation, nil when the generalized one is used
	VaporPressure *Antoine
}

// Validate reports whether the constants describe a physical fluid.
func (p Parameters) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("fluid: empty name")
	case !(p.CriticalTemperature > 0) || math.IsInf(p.CriticalTemperature, 0):
		return fmt.Errorf("fluid %q: critical temperature must be positive, got %g", p.Name, p.CriticalTemperature)
	case !(p.CriticalPressure > 0) || math.IsInf(p.CriticalPressure, 0):
		return fmt.Errorf("fluid %q: critical pressure must be positive, got %g", p.Name, p.CriticalPressure)
	case math.IsNaN(p.AcentricFactor) || math.IsInf(p.AcentricFactor, 0):
		return fmt.Errorf("fluid %q: acentric factor must be finite", p.Name)
	}
	return nil
}

/*
初期値推定用の蒸気圧相関式の係数を取得する。

	Returns:
		Antoine 型の係数

	Notes:
		固有の係数が登録されていない流体については、
		Edmister の一般化相関 log10(P/Pc) = 7/3 (1 + ω)(1 - Tc/T) を
		Antoine 型 (C = 0) に書き換えたものを返す。
*/
func (p Parameters) Antoine() Antoine {
	if p.VaporPressure != nil {
		return *p.VaporPressure
	}
	k := 7.0 / 3.0 * (1 + p.AcentricFactor)
	return Antoine{
		A: k + math.Log10(p.CriticalPressure),
		B: k * p.CriticalTemperature,
		C: 0,
	}
}

// ReducedTemperature returns T / Tc.
func (p Parameters) ReducedTemperature(t float64) float64 {
	return t / p.CriticalTemperature
}
