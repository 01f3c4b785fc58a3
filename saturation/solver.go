// Package saturation finds saturation temperatures and pressures of pure
// fluids from the Peng-Robinson equation of state.
//
// Every search drives the same equilibrium condition, equal fugacity
// coefficients of the vapor-like and liquid-like roots of one cubic, with an
// injected root finder. A Solver is immutable after New and safe for
// concurrent use.
package saturation

import (
	"io"
	"log"

	"saturation_calc/eos"
	"saturation_calc/fluid"
	"saturation_calc/rootfind"
)

const (
	DefaultTolerance     = 1e-6 // 相平衡残差の許容値
	DefaultMaxIterations = 1000 // 探索の最大反復回数

	// 飽和点として扱う換算温度の下限
	// これより低温では液相の圧縮係数が倍精度で表せなくなる
	MinReducedTemperature = 0.3
)

// Point is one converged saturation state.
type Point struct {
	Fluid       string
	Temperature float64 // 飽和温度, K
	Pressure    float64 // 飽和圧力, kPa
	Vapor       eos.State
	Liquid      eos.State
	Iterations  int
	Residual    float64
}

// Solver computes saturation points for the fluids of one registry.
type Solver struct {
	fluids *fluid.Registry

	temperature rootfind.Solver
	pressure    rootfind.Solver
	bracket     rootfind.Solver

	tol     float64
	maxIter int
	logger  *log.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithTemperatureSolver replaces the root finder of SaturationTemperature.
func WithTemperatureSolver(r rootfind.Solver) Option {
	return func(s *Solver) { s.temperature = r }
}

// WithPressureSolver replaces the root finder of SaturationPressure. It works
// in x = ln P.
func WithPressureSolver(r rootfind.Solver) Option {
	return func(s *Solver) { s.pressure = r }
}

// WithBracketSolver replaces the root finder of SaturationTemperatureBracketed.
func WithBracketSolver(r rootfind.Solver) Option {
	return func(s *Solver) { s.bracket = r }
}

// WithTolerance sets the equilibrium residual accepted as converged.
func WithTolerance(tol float64) Option {
	return func(s *Solver) { s.tol = tol }
}

// WithMaxIterations sets the iteration cap of the default root finders.
func WithMaxIterations(n int) Option {
	return func(s *Solver) { s.maxIter = n }
}

// WithLogger sets the logger receiving search progress and iteration traces.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// New returns a Solver over the given registry. Root finders not supplied by
// options default to Broyden for temperature, secant for pressure and Brent
// for the bracketed search.
func New(fluids *fluid.Registry, opts ...Option) *Solver {
	if fluids == nil {
		panic("saturation: nil registry")
	}
	s := &Solver{
		fluids:  fluids,
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !(s.tol > 0) {
		s.tol = DefaultTolerance
	}
	if s.maxIter <= 0 {
		s.maxIter = DefaultMaxIterations
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}

	if s.temperature == nil {
		s.temperature = rootfind.Broyden{Tol: s.tol, MaxIter: s.maxIter, Trace: s.trace(Temperature)}
	}
	if s.pressure == nil {
		s.pressure = rootfind.Secant{Tol: s.tol, MaxIter: s.maxIter, Trace: s.trace(Pressure)}
	}
	if s.bracket == nil {
		s.bracket = rootfind.Brent{XTol: 2e-12, MaxIter: s.maxIter, Trace: s.trace(BracketedTemperature)}
	}
	return s
}

// Tolerance returns the equilibrium residual accepted as converged.
func (s *Solver) Tolerance() float64 {
	return s.tol
}

func (s *Solver) trace(m Method) rootfind.Trace {
	return func(iter int, x, residual float64) {
		s.logger.Printf("%s: iter=%d x=%.10g residual=%.3e", m, iter, x, residual)
	}
}

// Solve dispatches to the search selected by m. value is the pinned pressure
// in kPa for temperature searches and the pinned temperature in K otherwise.
func (s *Solver) Solve(m Method, name string, value float64) (Point, error) {
	switch m {
	case Temperature:
		return s.SaturationTemperature(name, value)
	case Pressure:
		return s.SaturationPressure(name, value)
	case BracketedTemperature:
		return s.SaturationTemperatureBracketed(name, value)
	default:
		panic("invalid method")
	}
}

func (s *Solver) fail(f fluid.Parameters, m Method, pinned float64, res rootfind.Result, cause error) error {
	err := &Error{
		Fluid:      f.Name,
		Method:     m,
		Pinned:     pinned,
		Iterations: res.Iterations,
		Residual:   res.Residual,
		Err:        cause,
	}
	s.logger.Print(err)
	return err
}

// point builds the result at (t, p) from the final root finder state.
func (s *Solver) point(f fluid.Parameters, m Method, pinned, t, p float64, res rootfind.Result) (Point, error) {
	ph, err := eos.EvaluatePhases(t, p, f)
	if err != nil {
		return Point{}, s.fail(f, m, pinned, res, err)
	}
	s.logger.Printf("%s: %s T=%.6f K P=%.6f kPa after %d iterations", m, f.Name, t, p, res.Iterations)
	return Point{
		Fluid:       f.Name,
		Temperature: t,
		Pressure:    p,
		Vapor:       ph.Vapor,
		Liquid:      ph.Liquid,
		Iterations:  res.Iterations,
		Residual:    res.Residual,
	}, nil
}
