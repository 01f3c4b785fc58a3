package fluid

import "math"

/*
水の飽和水蒸気圧を計算する。

	Args:
		t: 温度, K

	Returns:
		飽和水蒸気圧, kPa

	Notes:
		Wexler-Hyland の式。0 degree C 未満では氷面に対する値を返す。
		状態方程式による飽和圧力の検証用の参照値として使う。
*/
func WaterVaporPressure(t float64) float64 {
	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	var p_vs float64
	if t >= 273.15 {
		p_vs = math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t))
	} else {
		p_vs = math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t))
	}

	// Pa -> kPa
	return p_vs / 1000.0
}
