package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/slopefield/internal/equations"
	"github.com/san-kum/slopefield/internal/integrators"
	"github.com/san-kum/slopefield/internal/ode"
)

// ErrorSample is the global error of one run at a given step.
type ErrorSample struct {
	Step  float64 `json:"step"`
	Steps int     `json:"steps"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Exact float64 `json:"exact"`
	Error float64 `json:"error"`
}

// Convergence integrates from ic to xf once per step and compares with the
// exact solution at the abscissa the march actually ended on, so overshoot
// past xf does not pollute the error.
func Convergence(s ode.Stepper, f ode.Func, exact equations.Solution, ic ode.InitialCondition, xf float64, steps []float64) ([]ErrorSample, error) {
	if exact == nil {
		return nil, fmt.Errorf("%w: exact solution is nil", ode.ErrInvalidArgument)
	}

	samples := make([]ErrorSample, 0, len(steps))
	dir := ode.ResolveDirection(ic.X0, xf)

	for _, step := range steps {
		n, err := ode.StepCount(ic.X0, xf, step)
		if err != nil {
			return nil, err
		}
		y, err := integrators.Solve(s, f, ic, xf, step)
		if err != nil {
			return nil, err
		}
		xEnd := ic.X0 + float64(n)*dir.Sign()*step
		want := exact(xEnd)

		samples = append(samples, ErrorSample{
			Step:  step,
			Steps: n,
			X:     xEnd,
			Y:     y,
			Exact: want,
			Error: math.Abs(y - want),
		})
	}

	return samples, nil
}

// ObservedOrder fits log(error) = p*log(step) + c and returns p. Samples
// with zero or non-finite error carry no information and are skipped.
func ObservedOrder(samples []ErrorSample) (float64, error) {
	var sx, sy, sxx, sxy float64
	n := 0
	for _, s := range samples {
		if s.Error <= 0 || math.IsNaN(s.Error) || math.IsInf(s.Error, 0) || s.Step <= 0 {
			continue
		}
		lx, ly := math.Log(s.Step), math.Log(s.Error)
		sx += lx
		sy += ly
		sxx += lx * lx
		sxy += lx * ly
		n++
	}
	if n < 2 {
		return 0, fmt.Errorf("%w: need at least two samples with non-zero error, got %d", ode.ErrInvalidArgument, n)
	}

	denom := float64(n)*sxx - sx*sx
	if denom == 0 {
		return 0, fmt.Errorf("%w: all samples use the same step", ode.ErrInvalidArgument)
	}
	return (float64(n)*sxy - sx*sy) / denom, nil
}

// HalvingSteps returns count steps starting at start, each half the previous.
func HalvingSteps(start float64, count int) []float64 {
	steps := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		steps = append(steps, start)
		start /= 2
	}
	return steps
}
