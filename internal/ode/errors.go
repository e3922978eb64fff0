package ode

import "errors"

// Domain errors for integration and sampling.
var (
	// ErrInvalidArgument indicates a step, count or coordinate that cannot be integrated.
	ErrInvalidArgument = errors.New("ode: invalid argument")

	// ErrUnknown indicates an unknown equation, method or preset name.
	ErrUnknown = errors.New("ode: unknown name")
)
