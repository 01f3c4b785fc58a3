package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"

	"saturation_calc/saturation"
)

// 一括計算の入力行
type Request struct {
	Fluid  string  `csv:"fluid"`
	Method string  `csv:"method"` // temperature, pressure, temperature-bracketed
	Value  float64 `csv:"value"`  // 圧力 kPa（温度の探索）または温度 K（圧力の探索）
}

// 一括計算の出力行
type Result struct {
	Fluid       string  `csv:"fluid"`
	Method      string  `csv:"method"`
	Value       float64 `csv:"value"`
	Temperature float64 `csv:"temperature"` // 飽和温度, K
	Pressure    float64 `csv:"pressure"`    // 飽和圧力, kPa
	VaporZ      float64 `csv:"vapor_z"`
	LiquidZ     float64 `csv:"liquid_z"`
	Iterations  int     `csv:"iterations"`
	Residual    float64 `csv:"residual"`
	Error       string  `csv:"error"`
}

// ReadRequests parses a request table.
func ReadRequests(in io.Reader) ([]Request, error) {
	var rows []Request
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("reading requests: %w", err)
	}
	return rows, nil
}

// ReadRequestsFile parses the request table at path.
func ReadRequestsFile(path string) ([]Request, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadRequests(file)
}

// WriteResults writes results with a header row.
func WriteResults(out io.Writer, results []Result) error {
	return gocsv.Marshal(results, out)
}

// WriteResultsFile writes results to path, reporting a failed close.
func WriteResultsFile(path string, results []Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteResults(file, results); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// BatchRunner solves independent requests on a bounded number of goroutines.
type BatchRunner struct {
	solver  *saturation.Solver
	workers int
	metrics *Metrics
	logger  *log.Logger
}

// NewBatchRunner returns a runner sharing solver across workers. metrics may be nil.
func NewBatchRunner(solver *saturation.Solver, workers int, metrics *Metrics, logger *log.Logger) *BatchRunner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &BatchRunner{solver: solver, workers: workers, metrics: metrics, logger: logger}
}

/*
全ての要求を解く。

	Args:
		ctx: 中断用のコンテキスト
		requests: 要求

	Returns:
		要求と同じ順の結果

	Notes:
		個々の要求の失敗は結果の Error 列に記録し、全体は中断しない。
		ctx が中断された場合のみエラーを返す。
*/
func (b *BatchRunner) Run(ctx context.Context, requests []Request) ([]Result, error) {
	results := make([]Result, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, req := range requests {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = b.solve(req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always done after Wait; only the caller's context tells cancellation
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.logger.Printf("batch: %d requests solved on %d workers", len(requests), b.workers)
	return results, nil
}

func (b *BatchRunner) solve(req Request) Result {
	res := Result{Fluid: req.Fluid, Method: req.Method, Value: req.Value}

	m, err := saturation.ParseMethod(req.Method)
	if err != nil {
		res.Error = err.Error()
		b.observe(res, 0, err)
		return res
	}
	res.Method = string(m)

	start := time.Now()
	pt, err := b.solver.Solve(m, req.Fluid, req.Value)
	elapsed := time.Since(start)
	if err != nil {
		res.Error = err.Error()
		b.observe(res, elapsed, err)
		return res
	}

	res.Fluid = pt.Fluid
	res.Temperature = pt.Temperature
	res.Pressure = pt.Pressure
	res.VaporZ = pt.Vapor.Z
	res.LiquidZ = pt.Liquid.Z
	res.Iterations = pt.Iterations
	res.Residual = pt.Residual
	b.observe(res, elapsed, nil)
	return res
}

func (b *BatchRunner) observe(res Result, elapsed time.Duration, err error) {
	if b.metrics != nil {
		b.metrics.Observe(res.Fluid, res.Method, res.Iterations, elapsed, err)
	}
}
