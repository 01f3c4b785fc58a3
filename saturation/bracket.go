package saturation

import (
	"fmt"
	"math"

	"saturation_calc/fluid"
	"saturation_calc/rootfind"
)

/*
飽和温度の探索区間を求める。

	Args:
		f: 流体定数

	Returns:
		(1) 下限温度, K
		(2) 上限温度, K

	Notes:
		下限 max(0.2 Tc, 200 K)、上限 min(0.9 Tc, Tc - 10 K)
*/
func get_temperature_bracket(f fluid.Parameters) (float64, float64) {
	t_c := f.CriticalTemperature
	return math.Max(0.2*t_c, 200), math.Min(0.9*t_c, t_c-10)
}

/*
圧力を与えて、固定の温度区間内で飽和温度を求める。

	Args:
		name: 流体名
		p: 圧力, kPa

	Returns:
		飽和点

	Notes:
		区間の両端で φ_vapor - φ_liquid が定義され、かつ符号が異なる場合のみ探索する。
		それ以外は ErrSaturationNotFound を返す。
		解での残差の絶対値が許容値を超える場合も ErrSaturationNotFound を返す。
*/
func (s *Solver) SaturationTemperatureBracketed(name string, p float64) (Point, error) {
	f, err := s.fluids.Lookup(name)
	if err != nil {
		return Point{}, err
	}
	if !(p > 0) || p >= f.CriticalPressure {
		return Point{}, s.fail(f, BracketedTemperature, p, rootfind.Result{},
			fmt.Errorf("%w: pressure must be in (0, %g) kPa", ErrOutOfRange, f.CriticalPressure))
	}

	lo, hi := get_temperature_bracket(f)
	if !(lo < hi) {
		return Point{}, s.fail(f, BracketedTemperature, p, rootfind.Result{},
			fmt.Errorf("%w: empty temperature bracket [%g, %g] K", ErrOutOfRange, lo, hi))
	}
	s.logger.Printf("%s: %s P=%g kPa bracket [%.3f, %.3f] K", BracketedTemperature, f.Name, p, lo, hi)

	objective := func(t float64) float64 {
		return phi_difference(t, p, f)
	}
	res, err := s.bracket.Solve(objective, rootfind.Span{A: lo, B: hi})
	if err != nil {
		return Point{}, s.fail(f, BracketedTemperature, p, res, err)
	}
	if !res.Converged || !(res.X >= lo && res.X <= hi) {
		return Point{}, s.fail(f, BracketedTemperature, p, res,
			fmt.Errorf("root finder returned %g outside [%g, %g] K", res.X, lo, hi))
	}

	res.Residual = objective(res.X)
	if !(math.Abs(res.Residual) <= s.tol) {
		return Point{}, s.fail(f, BracketedTemperature, p, res,
			fmt.Errorf("residual exceeds tolerance %g", s.tol))
	}
	return s.point(f, BracketedTemperature, p, res.X, p, res)
}
