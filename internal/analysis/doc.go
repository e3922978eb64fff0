// Package analysis measures how fixed-step integrators converge.
//
//   - [Convergence]: error against a closed-form solution for a list of steps
//   - [ObservedOrder]: least-squares slope of log(error) over log(step)
//   - [HalvingSteps]: geometric step sequence for refinement studies
//
// # Order of accuracy
//
// Halving the step should divide Euler's error by about 2, Heun's by 4
// and RK4's by 16:
//
//	samples, _ := analysis.Convergence(integrators.NewRK4(), f, exact, ic, 1, analysis.HalvingSteps(0.1, 4))
//	order, _ := analysis.ObservedOrder(samples) // ≈ 4
package analysis
