package field

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/slopefield/internal/ode"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		n    int
		want []float64
	}{
		{"unit", Range{0, 1}, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"reversed", Range{1, -1}, 3, []float64{1, 0, -1}},
		{"single", Range{2, 9}, 1, []float64{2}},
		{"degenerate", Range{3, 3}, 3, []float64{3, 3, 3}},
		{"empty", Range{0, 1}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linspace(tt.r, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("Linspace[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDirectionField_MeshgridShape(t *testing.T) {
	f := func(x, y float64) float64 { return x - y }

	g, err := DirectionField(f, Range{0, 1}, Range{0, 1}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, m := range map[string][][]float64{"X": g.X, "Y": g.Y, "U": g.U, "V": g.V} {
		if len(m) != 5 {
			t.Fatalf("%s has %d rows, want 5", name, len(m))
		}
		for i := range m {
			if len(m[i]) != 5 {
				t.Fatalf("%s row %d has %d cols, want 5", name, i, len(m[i]))
			}
		}
	}
	if g.Rows() != 5 || g.Cols() != 5 {
		t.Errorf("Rows/Cols = %d/%d, want 5/5", g.Rows(), g.Cols())
	}

	for i := 1; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if g.X[i][j] != g.X[0][j] {
				t.Errorf("X rows differ at (%d,%d)", i, j)
			}
		}
	}
	for i := 0; i < 5; i++ {
		for j := 1; j < 5; j++ {
			if g.Y[i][j] != g.Y[i][0] {
				t.Errorf("Y columns differ at (%d,%d)", i, j)
			}
		}
	}
	if g.X[0][4] != 1 || g.Y[4][0] != 1 {
		t.Errorf("grid does not reach range end: X=%v Y=%v", g.X[0][4], g.Y[4][0])
	}
}

func TestDirectionField_UnitLength(t *testing.T) {
	fields := map[string]ode.Func{
		"cos_xy": func(x, y float64) float64 { return math.Cos(x * y) },
		"zero":   func(x, y float64) float64 { return 0 },
		"steep":  func(x, y float64) float64 { return 1e6 * (x + y) },
		"sin_y":  func(x, y float64) float64 { return math.Sin(y) },
	}

	for name, f := range fields {
		g, err := DirectionField(f, Range{-4, 4}, Range{-4, 4}, DefaultN)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		for i := range g.U {
			for j := range g.U[i] {
				u, v := g.U[i][j], g.V[i][j]
				if math.Abs(u*u+v*v-1) > 1e-12 {
					t.Errorf("%s (%d,%d): |(u,v)|² = %v", name, i, j, u*u+v*v)
				}
				if u <= 0 {
					t.Errorf("%s (%d,%d): horizontal component %v not positive", name, i, j, u)
				}
			}
		}
	}
}

func TestDirectionField_PreservesSlope(t *testing.T) {
	f := func(x, y float64) float64 { return x * y }

	g, err := DirectionField(f, Range{-2, 2}, Range{-1, 3}, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range g.V {
		for j := range g.V[i] {
			want := f(g.X[i][j], g.Y[i][j])
			if got := g.V[i][j] / g.U[i][j]; math.Abs(got-want) > 1e-9 {
				t.Errorf("(%d,%d): slope %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestDirectionField_Invalid(t *testing.T) {
	f := func(x, y float64) float64 { return 0 }

	tests := []struct {
		name   string
		rx, ry Range
		n      int
	}{
		{"zero n", Range{0, 1}, Range{0, 1}, 0},
		{"negative n", Range{0, 1}, Range{0, 1}, -2},
		{"NaN range", Range{math.NaN(), 1}, Range{0, 1}, 3},
		{"infinite range", Range{0, 1}, Range{0, math.Inf(1)}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DirectionField(f, tt.rx, tt.ry, tt.n); !errors.Is(err, ode.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestRangeAndGridAccessors(t *testing.T) {
	r := Range{Min: 2, Max: -1}
	if got := r.Span(); got != -3 {
		t.Errorf("Span() = %v, want -3", got)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("reversed finite range should validate: %v", err)
	}
	if err := (Range{Min: math.Inf(-1), Max: 0}).Validate(); !errors.Is(err, ode.ErrInvalidArgument) {
		t.Errorf("infinite bound: got %v", err)
	}

	empty := &Grid{}
	if empty.Rows() != 0 || empty.Cols() != 0 {
		t.Errorf("empty grid is %dx%d", empty.Rows(), empty.Cols())
	}
}
