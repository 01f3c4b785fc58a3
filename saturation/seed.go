package saturation

import (
	"errors"
	"fmt"
	"math"

	"saturation_calc/eos"
	"saturation_calc/fluid"
)

// maxWalk caps the steps taken to move a seed into the two-phase window.
const maxWalk = 100

// 3次式の解の状態
type phase int

const (
	phaseNone   phase = iota // 有効な解なし
	phaseTwo                 // 気相・液相の2解
	phaseVapor               // 気相的な1解
	phaseLiquid              // 液相的な1解
)

// classify reports which roots the cubic has at (t, p).
func classify(t, p float64, f fluid.Parameters) phase {
	ph, err := eos.EvaluatePhases(t, p, f)
	switch {
	case err == nil:
		return phaseTwo
	case errors.Is(err, eos.ErrSinglePhase):
		if ph.Vapor.VaporLike() {
			return phaseVapor
		}
		return phaseLiquid
	default:
		return phaseNone
	}
}

/*
圧力から飽和温度の初期値を推定する。

	Args:
		f: 流体定数
		p: 圧力, kPa

	Returns:
		飽和温度の初期値, K

	Notes:
		蒸気圧相関式を温度について解き、臨界温度の 0.999 倍を上限とする。
		相関式が使えない場合は臨界温度の 0.7 倍とする。
*/
func temperature_seed(f fluid.Parameters, p float64) float64 {
	t_c := f.CriticalTemperature
	t := f.Antoine().Temperature(p)
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		t = 0.7 * t_c
	}
	return math.Min(t, 0.999*t_c)
}

/*
初期値を2解が存在する領域まで移動する。

	Args:
		x: 初期値
		step: 最初の移動量
		up: x を増やすべき解の状態
		class: x における解の状態

	Returns:
		2解が存在する x

	Notes:
		片側しか見えていない間は移動量を倍にしながら進み、
		両側が見えたら二分法で挟み込む。
*/
func walk(x, step float64, up phase, class func(float64) phase) (float64, error) {
	var lo, hi float64
	have_lo, have_hi := false, false
	for i := 0; i < maxWalk; i++ {
		c := class(x)
		switch c {
		case phaseTwo:
			return x, nil
		case phaseNone:
			return x, fmt.Errorf("%w: no valid root at %g", ErrNoTwoPhaseSeed, x)
		case up:
			lo, have_lo = x, true
		default:
			hi, have_hi = x, true
		}

		switch {
		case have_lo && have_hi:
			x = (lo + hi) / 2
		case have_lo:
			x = lo + step
			step *= 2
		default:
			x = hi - step
			step *= 2
		}
	}
	return x, fmt.Errorf("%w: gave up after %d steps", ErrNoTwoPhaseSeed, maxWalk)
}
