package integrators

import "github.com/san-kum/slopefield/internal/ode"

type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }
func (r *RK4) Order() int   { return 4 }

func (r *RK4) Step(f ode.Func, x, y, h float64) float64 {
	half := h * 0.5

	k1 := f(x, y)
	k2 := f(x+half, y+half*k1)
	k3 := f(x+half, y+half*k2)
	k4 := f(x+h, y+h*k3)

	return y + h*(k1+2*k2+2*k3+k4)/6
}

// SolveRK4 approximates y(xf) with classical fourth-order Runge-Kutta.
func SolveRK4(f ode.Func, ic ode.InitialCondition, xf, step float64) (float64, error) {
	return Solve(NewRK4(), f, ic, xf, step)
}
