package experiment

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/slopefield/internal/equations"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/integrators"
	"github.com/san-kum/slopefield/internal/ode"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Equation string
	Params   map[string]float64
	Methods  []string
	Initial  ode.InitialCondition
	Step     float64
	RangeX   field.Range
	RangeY   field.Range
	Samples  int
	FieldN   int
}

func (c Config) Validate() error {
	if err := ode.ValidateStep(c.Step); err != nil {
		return err
	}
	if math.IsNaN(c.Initial.X0) || math.IsInf(c.Initial.X0, 0) {
		return fmt.Errorf("%w: x0 must be finite, got %v", ode.ErrInvalidArgument, c.Initial.X0)
	}
	if err := c.RangeX.Validate(); err != nil {
		return err
	}
	if err := c.RangeY.Validate(); err != nil {
		return err
	}
	if c.Samples < 1 {
		return fmt.Errorf("%w: samples must be at least 1, got %d", ode.ErrInvalidArgument, c.Samples)
	}
	if c.FieldN < 1 {
		return fmt.Errorf("%w: field size must be at least 1, got %d", ode.ErrInvalidArgument, c.FieldN)
	}
	return nil
}

// Series is one method's curve over Result.Xs.
type Series struct {
	Method string    `json:"method"`
	Order  int       `json:"order"`
	Ys     []float64 `json:"ys"`
}

type Result struct {
	Equation string               `json:"equation"`
	Params   map[string]float64   `json:"params,omitempty"`
	Initial  ode.InitialCondition `json:"initial"`
	Step     float64              `json:"step"`
	Xs       []float64            `json:"xs"`
	Curves   []Series             `json:"curves"`
	Exact    []float64            `json:"exact,omitempty"`
	Field    *field.Grid          `json:"field"`
	Elapsed  time.Duration        `json:"elapsed_ns"`
}

// Experiment computes every configured method's curve over RangeX and
// the direction field over RangeX × RangeY.
type Experiment struct {
	cfg      Config
	f        ode.Func
	steppers []ode.Stepper
	exact    equations.Solution
	logger   *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Experiment {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Experiment{cfg: cfg, logger: logger}
}

func (e *Experiment) Setup(f ode.Func, steppers []ode.Stepper) error {
	if f == nil {
		return fmt.Errorf("%w: right-hand side is nil", ode.ErrInvalidArgument)
	}
	if len(steppers) == 0 {
		return fmt.Errorf("%w: no integration methods", ode.ErrInvalidArgument)
	}
	e.f = f
	e.steppers = steppers
	return nil
}

// SetExact attaches a closed-form solution to sample alongside the curves.
func (e *Experiment) SetExact(sol equations.Solution) {
	e.exact = sol
}

// Build resolves the equation and methods named in cfg through r.
func Build(r *Registry, cfg Config, logger *zap.Logger) (*Experiment, error) {
	eq, err := r.GetEquation(cfg.Equation)
	if err != nil {
		return nil, err
	}
	f, err := eq.Func(cfg.Params)
	if err != nil {
		return nil, err
	}
	steppers, err := r.GetSteppers(cfg.Methods)
	if err != nil {
		return nil, err
	}

	exp := New(cfg, logger)
	if err := exp.Setup(f, steppers); err != nil {
		return nil, err
	}
	if sol, ok := eq.Exact(cfg.Params, cfg.Initial); ok {
		exp.SetExact(sol)
	}
	return exp, nil
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.f == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	xs := field.Linspace(e.cfg.RangeX, e.cfg.Samples)
	curves := make([]Series, len(e.steppers))

	e.logger.Info("running experiment",
		zap.String("equation", e.cfg.Equation),
		zap.Int("methods", len(e.steppers)),
		zap.Int("samples", len(xs)),
		zap.Float64("step", e.cfg.Step),
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range e.steppers {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			ys, err := integrators.Curve(s, e.f, e.cfg.Initial, xs, e.cfg.Step)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name(), err)
			}
			curves[i] = Series{Method: s.Name(), Order: s.Order(), Ys: ys}
			e.logger.Debug("curve computed",
				zap.String("method", s.Name()),
				zap.Duration("elapsed", time.Since(t0)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	grid, err := field.DirectionField(e.f, e.cfg.RangeX, e.cfg.RangeY, e.cfg.FieldN)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Equation: e.cfg.Equation,
		Params:   e.cfg.Params,
		Initial:  e.cfg.Initial,
		Step:     e.cfg.Step,
		Xs:       xs,
		Curves:   curves,
		Field:    grid,
	}
	if e.exact != nil {
		result.Exact = make([]float64, len(xs))
		for i, x := range xs {
			result.Exact[i] = e.exact(x)
		}
	}
	result.Elapsed = time.Since(start)

	e.logger.Info("experiment finished", zap.Duration("elapsed", result.Elapsed))
	return result, nil
}
