package saturation

import (
	"fmt"
	"math"

	"saturation_calc/rootfind"
)

/*
温度を与えて飽和圧力を求める。

	Args:
		name: 流体名
		t: 温度, K

	Returns:
		飽和点

	Notes:
		x = ln P を変数として探索する。初期値は臨界圧力の 10% とし、
		3次式が2解を持つ圧力まで移動させる。
		1解しかない場合、気相的なら昇圧、液相的なら降圧する。
		換算温度が MinReducedTemperature 未満の場合は探索しない。
*/
func (s *Solver) SaturationPressure(name string, t float64) (Point, error) {
	f, err := s.fluids.Lookup(name)
	if err != nil {
		return Point{}, err
	}
	t_c := f.CriticalTemperature
	if !(t >= MinReducedTemperature*t_c) || t >= t_c {
		return Point{}, s.fail(f, Pressure, t, rootfind.Result{},
			fmt.Errorf("%w: temperature must be in [%g, %g) K", ErrOutOfRange, MinReducedTemperature*t_c, t_c))
	}

	x0 := math.Log(0.1 * f.CriticalPressure)
	x0, err = walk(x0, 0.1, phaseVapor, func(x float64) phase { return classify(t, math.Exp(x), f) })
	if err != nil {
		return Point{}, s.fail(f, Pressure, t, rootfind.Result{}, err)
	}
	s.logger.Printf("%s: %s T=%g K seed P=%.6f kPa", Pressure, f.Name, t, math.Exp(x0))

	objective := func(x float64) float64 {
		return equilibrium_residual(t, math.Exp(x), f)
	}
	res, err := s.pressure.Solve(objective, rootfind.Span{A: x0, B: x0 + 0.05})
	if err != nil {
		return Point{}, s.fail(f, Pressure, t, res, err)
	}

	res.Residual = objective(res.X)
	if !(math.Abs(res.Residual) <= s.tol) {
		return Point{}, s.fail(f, Pressure, t, res,
			fmt.Errorf("residual exceeds tolerance %g", s.tol))
	}
	return s.point(f, Pressure, t, t, math.Exp(res.X), res)
}
