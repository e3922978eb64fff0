package integrators

import "github.com/san-kum/slopefield/internal/ode"

// Heun is the improved Euler method: an Euler predictor followed by a
// trapezoidal corrector over both slope estimates.
type Heun struct{}

func NewHeun() *Heun {
	return &Heun{}
}

func (m *Heun) Name() string { return "heun" }
func (m *Heun) Order() int   { return 2 }

func (m *Heun) Step(f ode.Func, x, y, h float64) float64 {
	g1 := f(x, y)
	g2 := f(x+h, y+h*g1)
	return y + h*(g1+g2)*0.5
}

// SolveHeun approximates y(xf) with fixed-step improved Euler.
func SolveHeun(f ode.Func, ic ode.InitialCondition, xf, step float64) (float64, error) {
	return Solve(NewHeun(), f, ic, xf, step)
}
