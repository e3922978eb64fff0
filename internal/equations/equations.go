package equations

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/slopefield/internal/ode"
)

// Solution is a closed-form y(x) through a fixed initial condition.
type Solution func(x float64) float64

type Equation struct {
	Name        string
	Description string
	Defaults    map[string]float64

	rhs   func(p map[string]float64) ode.Func
	exact func(p map[string]float64, ic ode.InitialCondition) Solution
}

// Params merges overrides onto the defaults. Unknown names are rejected.
func (e *Equation) Params(overrides map[string]float64) (map[string]float64, error) {
	p := make(map[string]float64, len(e.Defaults))
	for k, v := range e.Defaults {
		p[k] = v
	}
	for k, v := range overrides {
		if _, ok := e.Defaults[k]; !ok {
			return nil, fmt.Errorf("%w: equation %s has no parameter %q", ode.ErrInvalidArgument, e.Name, k)
		}
		p[k] = v
	}
	return p, nil
}

func (e *Equation) Func(overrides map[string]float64) (ode.Func, error) {
	p, err := e.Params(overrides)
	if err != nil {
		return nil, err
	}
	return e.rhs(p), nil
}

// Exact returns the closed-form solution, if the equation has one.
func (e *Equation) Exact(overrides map[string]float64, ic ode.InitialCondition) (Solution, bool) {
	if e.exact == nil {
		return nil, false
	}
	p, err := e.Params(overrides)
	if err != nil {
		return nil, false
	}
	return e.exact(p, ic), true
}

func (e *Equation) HasExact() bool { return e.exact != nil }

var catalog = map[string]*Equation{
	"cos_xy": {
		Name:        "cos_xy",
		Description: "dy/dx = cos(a*x*y)",
		Defaults:    map[string]float64{"a": 1},
		rhs: func(p map[string]float64) ode.Func {
			a := p["a"]
			return func(x, y float64) float64 { return math.Cos(a * x * y) }
		},
	},
	"sin_y": {
		Name:        "sin_y",
		Description: "dy/dx = sin(y)",
		Defaults:    map[string]float64{},
		rhs: func(p map[string]float64) ode.Func {
			return func(x, y float64) float64 { return math.Sin(y) }
		},
	},
	"zero": {
		Name:        "zero",
		Description: "dy/dx = 0",
		Defaults:    map[string]float64{},
		rhs: func(p map[string]float64) ode.Func {
			return func(x, y float64) float64 { return 0 }
		},
		exact: func(p map[string]float64, ic ode.InitialCondition) Solution {
			return func(x float64) float64 { return ic.Y0 }
		},
	},
	"const": {
		Name:        "const",
		Description: "dy/dx = c",
		Defaults:    map[string]float64{"c": 1},
		rhs: func(p map[string]float64) ode.Func {
			c := p["c"]
			return func(x, y float64) float64 { return c }
		},
		exact: func(p map[string]float64, ic ode.InitialCondition) Solution {
			c := p["c"]
			return func(x float64) float64 { return ic.Y0 + c*(x-ic.X0) }
		},
	},
	"linear": {
		Name:        "linear",
		Description: "dy/dx = x",
		Defaults:    map[string]float64{},
		rhs: func(p map[string]float64) ode.Func {
			return func(x, y float64) float64 { return x }
		},
		exact: func(p map[string]float64, ic ode.InitialCondition) Solution {
			return func(x float64) float64 { return ic.Y0 + 0.5*(x*x-ic.X0*ic.X0) }
		},
	},
	"decay": {
		Name:        "decay",
		Description: "dy/dx = -k*y",
		Defaults:    map[string]float64{"k": 1},
		rhs: func(p map[string]float64) ode.Func {
			k := p["k"]
			return func(x, y float64) float64 { return -k * y }
		},
		exact: func(p map[string]float64, ic ode.InitialCondition) Solution {
			k := p["k"]
			return func(x float64) float64 { return ic.Y0 * math.Exp(-k*(x-ic.X0)) }
		},
	},
	"logistic": {
		Name:        "logistic",
		Description: "dy/dx = r*y*(1-y)",
		Defaults:    map[string]float64{"r": 1},
		rhs: func(p map[string]float64) ode.Func {
			r := p["r"]
			return func(x, y float64) float64 { return r * y * (1 - y) }
		},
		exact: func(p map[string]float64, ic ode.InitialCondition) Solution {
			r := p["r"]
			return func(x float64) float64 {
				g := math.Exp(r * (x - ic.X0))
				return ic.Y0 * g / (1 - ic.Y0 + ic.Y0*g)
			}
		},
	},
	"x_minus_y": {
		Name:        "x_minus_y",
		Description: "dy/dx = x - y",
		Defaults:    map[string]float64{},
		rhs: func(p map[string]float64) ode.Func {
			return func(x, y float64) float64 { return x - y }
		},
		exact: func(p map[string]float64, ic ode.InitialCondition) Solution {
			return func(x float64) float64 {
				return x - 1 + (ic.Y0-ic.X0+1)*math.Exp(-(x - ic.X0))
			}
		},
	},
}

func Lookup(name string) (*Equation, error) {
	eq, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: equation %q", ode.ErrUnknown, name)
	}
	return eq, nil
}

// Names lists catalog entries in lexical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
