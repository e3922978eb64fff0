package integrators

import "github.com/san-kum/slopefield/internal/ode"

// Euler is the explicit first-order method y += h*f(x, y).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }
func (e *Euler) Order() int   { return 1 }

func (e *Euler) Step(f ode.Func, x, y, h float64) float64 {
	return y + h*f(x, y)
}

// SolveEuler approximates y(xf) with fixed-step Euler.
func SolveEuler(f ode.Func, ic ode.InitialCondition, xf, step float64) (float64, error) {
	return Solve(NewEuler(), f, ic, xf, step)
}
