package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/slopefield/internal/ode"
)

// Solve marches s from ic towards xf in fixed steps of the given magnitude
// and returns y once x has reached or passed xf. When ic.X0 == xf the
// initial y is returned without evaluating f.
func Solve(s ode.Stepper, f ode.Func, ic ode.InitialCondition, xf, step float64) (float64, error) {
	n, err := ode.StepCount(ic.X0, xf, step)
	if err != nil {
		return 0, err
	}
	h := ode.ResolveDirection(ic.X0, xf).Sign() * step
	return march(s, f, ic.X0, ic.Y0, h, 0, n), nil
}

// SolveN takes exactly n equal steps from ic.X0 to xf.
func SolveN(s ode.Stepper, f ode.Func, ic ode.InitialCondition, xf float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: step count must be at least 1, got %d", ode.ErrInvalidArgument, n)
	}
	if err := ode.ValidateSpan(ic.X0, xf); err != nil {
		return 0, err
	}
	if ic.X0 == xf {
		return ic.Y0, nil
	}
	h := (xf - ic.X0) / float64(n)
	return march(s, f, ic.X0, ic.Y0, h, 0, n), nil
}

// Curve returns the value Solve would give for every x in xs, using one
// forward and one backward march instead of re-integrating per target.
func Curve(s ode.Stepper, f ode.Func, ic ode.InitialCondition, xs []float64, step float64) ([]float64, error) {
	if err := ode.ValidateStep(step); err != nil {
		return nil, err
	}

	type target struct {
		idx, steps int
	}
	var forward, backward []target

	ys := make([]float64, len(xs))
	for i, x := range xs {
		n, err := ode.StepCount(ic.X0, x, step)
		if err != nil {
			return nil, err
		}
		switch ode.ResolveDirection(ic.X0, x) {
		case ode.Forward:
			forward = append(forward, target{i, n})
		case ode.Backward:
			backward = append(backward, target{i, n})
		default:
			ys[i] = ic.Y0
		}
	}

	sweep := func(targets []target, h float64) {
		sort.SliceStable(targets, func(a, b int) bool { return targets[a].steps < targets[b].steps })
		y, k := ic.Y0, 0
		for _, tg := range targets {
			y = march(s, f, ic.X0, y, h, k, tg.steps)
			k = tg.steps
			ys[tg.idx] = y
		}
	}
	sweep(forward, step)
	sweep(backward, -step)

	return ys, nil
}

// march applies steps from..to-1 with abscissae x0 + i*h.
func march(s ode.Stepper, f ode.Func, x0, y, h float64, from, to int) float64 {
	for i := from; i < to; i++ {
		y = s.Step(f, x0+float64(i)*h, y, h)
	}
	return y
}
