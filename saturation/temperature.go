package saturation

import (
	"fmt"
	"math"

	"saturation_calc/rootfind"
)

/*
圧力を与えて飽和温度を求める。

	Args:
		name: 流体名
		p: 圧力, kPa

	Returns:
		飽和点

	Notes:
		初期値は蒸気圧相関式から推定し、3次式が2解を持つ温度まで移動させる。
		1解しかない場合、液相的なら昇温、気相的なら降温する。
		残差 ln φ_liquid - ln φ_vapor の絶対値が許容値以下になったときのみ成功とする。
		解の換算温度が MinReducedTemperature 未満の場合は ErrOutOfRange とする。
*/
func (s *Solver) SaturationTemperature(name string, p float64) (Point, error) {
	f, err := s.fluids.Lookup(name)
	if err != nil {
		return Point{}, err
	}
	if !(p > 0) || p >= f.CriticalPressure {
		return Point{}, s.fail(f, Temperature, p, rootfind.Result{},
			fmt.Errorf("%w: pressure must be in (0, %g) kPa", ErrOutOfRange, f.CriticalPressure))
	}

	t0 := temperature_seed(f, p)
	t0, err = walk(t0, 0.01*t0, phaseLiquid, func(t float64) phase { return classify(t, p, f) })
	if err != nil {
		return Point{}, s.fail(f, Temperature, p, rootfind.Result{}, err)
	}
	s.logger.Printf("%s: %s P=%g kPa seed T=%.6f K", Temperature, f.Name, p, t0)

	objective := func(t float64) float64 {
		return equilibrium_residual(t, p, f)
	}
	res, err := s.temperature.Solve(objective, rootfind.Span{A: t0, B: t0})
	if err != nil {
		return Point{}, s.fail(f, Temperature, p, res, err)
	}

	// accept only a point the equilibrium condition confirms
	res.Residual = objective(res.X)
	if !(math.Abs(res.Residual) <= s.tol) {
		return Point{}, s.fail(f, Temperature, p, res,
			fmt.Errorf("residual exceeds tolerance %g", s.tol))
	}
	if t_min := MinReducedTemperature * f.CriticalTemperature; res.X < t_min {
		return Point{}, s.fail(f, Temperature, p, res,
			fmt.Errorf("%w: saturation temperature %g K is below %g K", ErrOutOfRange, res.X, t_min))
	}
	return s.point(f, Temperature, p, res.X, p, res)
}
