package eos

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// 固有値の虚部を 0 とみなす相対許容差
const imagTol = 1e-10

// 2次式の判別式の負の丸め誤差の許容差
const discTol = 1e-14

const maxPolish = 8

/*
3次方程式 z^3 + c2 z^2 + c1 z + c0 = 0 の実数解を求める。

	Args:
		c2, c1, c0: 係数

	Returns:
		昇順に並べた実数解（1個から3個）

	Notes:
		コンパニオン行列の固有値から最大の実数解を求め、Newton 法で補正した後、
		2次式に次数を下げて残りの解を桁落ちしない公式で求める。
		小さな（液相側の）解の相対精度を保つため。
*/
func Roots(c2, c1, c0 float64) ([]float64, error) {
	for _, c := range [...]float64{c2, c1, c0} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: non-finite coefficient", ErrNoRealRoot)
		}
	}

	companion := mat.NewDense(3, 3, []float64{
		-c2, -c1, -c0,
		1, 0, 0,
		0, 1, 0,
	})

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: eigenvalue decomposition failed", ErrNoRealRoot)
	}

	z1 := math.Inf(-1)
	for _, v := range eig.Values(nil) {
		re := real(v)
		if math.Abs(imag(v)) <= imagTol*math.Max(1, math.Abs(re)) && re > z1 {
			z1 = re
		}
	}
	if math.IsInf(z1, -1) {
		return nil, ErrNoRealRoot
	}
	z1 = polish(z1, c2, c1, c0)

	// z^2 + b z + c = 0
	b := c2 + z1
	c := c1 + z1*b

	roots := []float64{z1}
	disc := b*b - 4*c
	if disc >= -discTol*math.Max(b*b, math.Abs(c)) {
		disc = math.Max(disc, 0)
		q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
		if q != 0 {
			roots = append(roots, polish(q, c2, c1, c0), polish(c/q, c2, c1, c0))
		} else {
			roots = append(roots, 0, 0)
		}
	}

	sort.Float64s(roots)
	return roots, nil
}

func cubic(z, c2, c1, c0 float64) float64 {
	return ((z+c2)*z+c1)*z + c0
}

// Newton 法による解の補正。残差が減らない場合は打ち切る。
func polish(z, c2, c1, c0 float64) float64 {
	f := cubic(z, c2, c1, c0)
	for i := 0; i < maxPolish && f != 0; i++ {
		d := (3*z+2*c2)*z + c1
		if d == 0 {
			break
		}
		zn := z - f/d
		fn := cubic(zn, c2, c1, c0)
		if !(math.Abs(fn) < math.Abs(f)) {
			break
		}
		z, f = zn, fn
	}
	return z
}
