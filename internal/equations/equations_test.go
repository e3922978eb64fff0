package equations

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/slopefield/internal/ode"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		eq, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if eq.Name != name {
			t.Errorf("Lookup(%q) returned %q", name, eq.Name)
		}
		if _, err := eq.Func(nil); err != nil {
			t.Errorf("%s: Func(nil) failed: %v", name, err)
		}
	}

	if _, err := Lookup("nonexistent"); !errors.Is(err, ode.ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
}

func TestParams(t *testing.T) {
	eq, err := Lookup("decay")
	if err != nil {
		t.Fatal(err)
	}

	p, err := eq.Params(map[string]float64{"k": 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p["k"] != 3 {
		t.Errorf("expected k=3, got %v", p["k"])
	}
	if eq.Defaults["k"] != 1 {
		t.Error("overrides leaked into defaults")
	}

	if _, err := eq.Params(map[string]float64{"q": 1}); !errors.Is(err, ode.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for unknown parameter, got %v", err)
	}
}

// Each closed form must satisfy its own equation: check y' against f
// with a central difference, and y(x0) against y0.
func TestExactSolutionsSatisfyEquation(t *testing.T) {
	ic := ode.InitialCondition{X0: 0.3, Y0: 0.4}
	const h = 1e-5

	for _, name := range Names() {
		eq, _ := Lookup(name)
		sol, ok := eq.Exact(nil, ic)
		if !ok {
			continue
		}
		f, _ := eq.Func(nil)

		if math.Abs(sol(ic.X0)-ic.Y0) > 1e-12 {
			t.Errorf("%s: y(x0) = %v, want %v", name, sol(ic.X0), ic.Y0)
		}
		for _, x := range []float64{-1, 0.3, 0.9, 2} {
			dydx := (sol(x+h) - sol(x-h)) / (2 * h)
			if math.Abs(dydx-f(x, sol(x))) > 1e-6 {
				t.Errorf("%s at x=%v: y' = %v, f = %v", name, x, dydx, f(x, sol(x)))
			}
		}
	}
}

func TestExact_Missing(t *testing.T) {
	eq, _ := Lookup("cos_xy")
	if eq.HasExact() {
		t.Error("cos_xy should have no closed form")
	}
	if _, ok := eq.Exact(nil, ode.InitialCondition{}); ok {
		t.Error("expected no exact solution")
	}
}
