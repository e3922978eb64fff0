// Package equations is a catalog of named right-hand sides f(x, y).
//
// Each [Equation] carries default parameters and, where one is known, the
// closed-form solution through an initial condition. The catalog exists so
// that config files and the CLI can refer to an equation by name; library
// callers are free to pass any [ode.Func] straight to the integrators.
//
//	eq, _ := equations.Lookup("decay")
//	f, _ := eq.Func(map[string]float64{"k": 0.5})
//	exact, ok := eq.Exact(nil, ode.InitialCondition{X0: 0, Y0: 1})
package equations
