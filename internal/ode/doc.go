// Package ode provides the shared vocabulary for first-order scalar ODEs.
//
// An equation dy/dx = f(x, y) is represented by a [Func]. Integrators in
// package integrators march an [InitialCondition] towards a target x in
// fixed steps; the helpers here decide the direction of travel and the
// number of steps once per call:
//
//   - [ResolveDirection]: forward, backward, or no integration at all
//   - [StepCount]: validated number of fixed steps to reach (or pass) xf
//   - [ErrInvalidArgument]: returned before any evaluation of f
//
// # Example
//
//	f := func(x, y float64) float64 { return math.Cos(x * y) }
//	y, err := integrators.SolveRK4(f, ode.InitialCondition{X0: 0, Y0: 2}, 3, ode.DefaultStep)
//
// Everything in this package is a pure function of its inputs.
package ode
