package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/slopefield/internal/equations"
	"github.com/san-kum/slopefield/internal/integrators"
	"github.com/san-kum/slopefield/internal/ode"
)

type Registry struct {
	steppers map[string]func() ode.Stepper
	aliases  map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		steppers: make(map[string]func() ode.Stepper),
		aliases:  make(map[string]string),
	}

	r.steppers["euler"] = func() ode.Stepper { return integrators.NewEuler() }
	r.steppers["heun"] = func() ode.Stepper { return integrators.NewHeun() }
	r.steppers["rk4"] = func() ode.Stepper { return integrators.NewRK4() }

	r.aliases["improved_euler"] = "heun"
	r.aliases["runge_kutta_4"] = "rk4"

	return r
}

func (r *Registry) GetEquation(name string) (*equations.Equation, error) {
	return equations.Lookup(name)
}

func (r *Registry) GetStepper(name string) (ode.Stepper, error) {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: method %q", ode.ErrUnknown, name)
	}
	return fn(), nil
}

func (r *Registry) GetSteppers(names []string) ([]ode.Stepper, error) {
	out := make([]ode.Stepper, 0, len(names))
	for _, name := range names {
		s, err := r.GetStepper(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *Registry) ListEquations() []string {
	return equations.Names()
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
