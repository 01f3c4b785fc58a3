package main

import (
	"io"
	"log"

	"saturation_calc/fluid"
	"saturation_calc/saturation"
)

// 絶対温度とセルシウス温度の差, K
const celsiusOffset = 273.15

// app holds what every subcommand needs once the configuration is known.
type app struct {
	cfg    Config
	fluids *fluid.Registry
	solver *saturation.Solver
	logger *log.Logger
}

/*
設定から流体表と飽和点ソルバーを構築する。

	Args:
		cfg: 設定
		stderr: ログの出力先 (cfg.Verbose の場合のみ使用)
*/
func (a *app) init(cfg Config, stderr io.Writer) error {
	a.cfg = cfg
	if cfg.Verbose {
		a.logger = log.New(stderr, "", log.LstdFlags)
	} else {
		a.logger = log.New(io.Discard, "", 0)
	}

	if cfg.Fluids == "" {
		a.fluids = fluid.NewDefaultRegistry()
	} else {
		a.logger.Printf("流体定数の読み込み開始: %s", cfg.Fluids)
		reg, err := fluid.LoadRegistryFile(cfg.Fluids)
		if err != nil {
			return err
		}
		a.fluids = reg
	}
	a.logger.Printf("%d fluids registered", a.fluids.Len())

	a.solver = saturation.New(a.fluids,
		saturation.WithTolerance(cfg.Solver.Tolerance),
		saturation.WithMaxIterations(cfg.Solver.MaxIterations),
		saturation.WithLogger(a.logger),
	)
	return nil
}

func toKelvin(t float64, celsius bool) float64 {
	if celsius {
		return t + celsiusOffset
	}
	return t
}
