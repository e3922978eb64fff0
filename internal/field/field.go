// Package field samples normalized direction fields of dy/dx = f(x, y).
package field

import (
	"fmt"
	"math"

	"github.com/san-kum/slopefield/internal/ode"
)

// DefaultN is the number of samples per axis when none is given.
const DefaultN = 20

// Range is a closed interval [Min, Max] along one axis.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Span is Max - Min; negative for a reversed range.
func (r Range) Span() float64 { return r.Max - r.Min }

// Validate rejects non-finite bounds.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: range bounds must be finite, got [%v, %v]", ode.ErrInvalidArgument, r.Min, r.Max)
	}
	return nil
}

// Grid holds four n×n matrices in meshgrid layout: X[i][j] is the j-th
// x-sample and Y[i][j] the i-th y-sample. (U[i][j], V[i][j]) is the unit
// direction of the solution curve through (X[i][j], Y[i][j]).
type Grid struct {
	X [][]float64 `json:"x"`
	Y [][]float64 `json:"y"`
	U [][]float64 `json:"u"`
	V [][]float64 `json:"v"`
}

// Rows is the number of y-samples.
func (g *Grid) Rows() int { return len(g.X) }

// Cols is the number of x-samples.
func (g *Grid) Cols() int {
	if len(g.X) == 0 {
		return 0
	}
	return len(g.X[0])
}

// Linspace returns n evenly spaced samples over r, endpoints included.
// A single sample is the range start.
func Linspace(r Range, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = r.Min
		return out
	}
	delta := r.Span() / float64(n-1)
	for i := range out {
		out[i] = r.Min + float64(i)*delta
	}
	out[n-1] = r.Max
	return out
}

// Meshgrid expands xs and ys into len(ys)×len(xs) coordinate matrices.
func Meshgrid(xs, ys []float64) (X, Y [][]float64) {
	X = make([][]float64, len(ys))
	Y = make([][]float64, len(ys))
	for i, y := range ys {
		X[i] = make([]float64, len(xs))
		Y[i] = make([]float64, len(xs))
		copy(X[i], xs)
		for j := range xs {
			Y[i][j] = y
		}
	}
	return X, Y
}

// DirectionField evaluates f over an n×n grid covering rx × ry and
// normalizes (1, f) at every point to unit length. Magnitude is discarded;
// only the slope survives. Since the horizontal component is 1 the norm is
// at least 1.
func DirectionField(f ode.Func, rx, ry Range, n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: grid size must be at least 1, got %d", ode.ErrInvalidArgument, n)
	}
	if err := rx.Validate(); err != nil {
		return nil, err
	}
	if err := ry.Validate(); err != nil {
		return nil, err
	}

	X, Y := Meshgrid(Linspace(rx, n), Linspace(ry, n))
	g := &Grid{
		X: X,
		Y: Y,
		U: make([][]float64, n),
		V: make([][]float64, n),
	}

	for i := 0; i < n; i++ {
		g.U[i] = make([]float64, n)
		g.V[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			slope := f(X[i][j], Y[i][j])
			norm := math.Sqrt(1 + slope*slope)
			g.U[i][j] = 1 / norm
			g.V[i][j] = slope / norm
		}
	}

	return g, nil
}
