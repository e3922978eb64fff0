package ode

import (
	"fmt"
	"math"
)

// DefaultStep is the step magnitude used when the caller does not pick one.
const DefaultStep = 0.005

// stepSlack absorbs rounding in |xf-x0|/step so exact multiples do not gain a step.
const stepSlack = 1e-9

// Func is the right-hand side f(x, y) of dy/dx = f(x, y).
type Func func(x, y float64) float64

// InitialCondition is the known point (X0, Y0) on the solution curve.
type InitialCondition struct {
	X0 float64 `json:"x0" yaml:"x0"`
	Y0 float64 `json:"y0" yaml:"y0"`
}

// Direction of travel along the x-axis.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

// Sign is +1, -1 or 0 for Forward, Backward and None.
func (d Direction) Sign() float64 {
	switch d {
	case Forward:
		return 1
	case Backward:
		return -1
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// ResolveDirection decides once per call which way to step from x0 to xf.
func ResolveDirection(x0, xf float64) Direction {
	switch {
	case x0 < xf:
		return Forward
	case x0 > xf:
		return Backward
	default:
		return None
	}
}

// ValidateStep rejects zero, negative and non-finite step magnitudes.
func ValidateStep(step float64) error {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return fmt.Errorf("%w: step must be positive and finite, got %v", ErrInvalidArgument, step)
	}
	return nil
}

// ValidateSpan rejects non-finite endpoints.
func ValidateSpan(x0, xf float64) error {
	if math.IsNaN(x0) || math.IsInf(x0, 0) {
		return fmt.Errorf("%w: x0 must be finite, got %v", ErrInvalidArgument, x0)
	}
	if math.IsNaN(xf) || math.IsInf(xf, 0) {
		return fmt.Errorf("%w: target x must be finite, got %v", ErrInvalidArgument, xf)
	}
	return nil
}

// StepCount returns how many fixed steps of the given magnitude take x0 to
// xf or just past it. The last step may overshoot xf by less than one step.
func StepCount(x0, xf, step float64) (int, error) {
	if err := ValidateStep(step); err != nil {
		return 0, err
	}
	if err := ValidateSpan(x0, xf); err != nil {
		return 0, err
	}
	if x0 == xf {
		return 0, nil
	}
	ratio := math.Abs(xf-x0) / step
	n := math.Ceil(ratio - stepSlack*math.Max(1, ratio))
	if n < 1 {
		n = 1
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %.3g steps needed, step too small for span", ErrInvalidArgument, n)
	}
	return int(n), nil
}

// Stepper advances y by one signed step h from (x, y).
type Stepper interface {
	Name() string
	Order() int
	Step(f Func, x, y, h float64) float64
}
