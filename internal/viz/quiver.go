package viz

import (
	"math"
	"strings"

	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/field"
)

// Arrow picks a glyph for a direction, where dx and dy are already scaled
// to the drawing surface.
func Arrow(dx, dy float64) rune {
	if math.IsNaN(dx) || math.IsNaN(dy) {
		return '?'
	}
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	switch {
	case angle > 67.5 || angle < -67.5:
		return '|'
	case angle > 22.5:
		return '/'
	case angle < -22.5:
		return '\\'
	default:
		return '-'
	}
}

type surface struct {
	minX, maxX, minY, maxY float64
	cols, rows             int
	cells                  [][]rune
}

func newSurface(minX, maxX, minY, maxY float64, cols, rows int) *surface {
	if maxX == minX {
		minX, maxX = minX-0.5, maxX+0.5
	}
	if maxY == minY {
		minY, maxY = minY-0.5, maxY+0.5
	}
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &surface{minX: minX, maxX: maxX, minY: minY, maxY: maxY, cols: cols, rows: rows, cells: cells}
}

// cell maps data coordinates to (row, col); ok is false off the surface.
func (s *surface) cell(x, y float64) (row, col int, ok bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	col = int(math.Round((x - s.minX) / (s.maxX - s.minX) * float64(s.cols-1)))
	row = s.rows - 1 - int(math.Round((y-s.minY)/(s.maxY-s.minY)*float64(s.rows-1)))
	ok = row >= 0 && row < s.rows && col >= 0 && col < s.cols
	return row, col, ok
}

// glyph scales a unit field vector into surface proportions.
func (s *surface) glyph(u, v float64) rune {
	dx := u * float64(s.cols) / (s.maxX - s.minX)
	// terminal cells are roughly twice as tall as wide
	dy := v * float64(s.rows) * 2 / (s.maxY - s.minY)
	return Arrow(dx, dy)
}

func (s *surface) drawField(g *field.Grid) {
	for i := range g.X {
		for j := range g.X[i] {
			if row, col, ok := s.cell(g.X[i][j], g.Y[i][j]); ok {
				s.cells[row][col] = s.glyph(g.U[i][j], g.V[i][j])
			}
		}
	}
}

func (s *surface) String() string {
	var sb strings.Builder
	for _, row := range s.cells {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteRune('\n')
	}
	return sb.String()
}

func gridBounds(g *field.Grid) (minX, maxX, minY, maxY float64) {
	last := g.Rows() - 1
	minX, maxX = g.X[0][0], g.X[0][g.Cols()-1]
	minY, maxY = g.Y[0][0], g.Y[last][0]
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return
}

// Quiver draws one glyph per grid sample, spaced two columns apart so the
// field reads at a roughly square aspect.
func Quiver(g *field.Grid) string {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return ""
	}
	minX, maxX, minY, maxY := gridBounds(g)
	s := newSurface(minX, maxX, minY, maxY, 2*g.Cols()-1, g.Rows())
	s.drawField(g)
	return s.String()
}

// Overlay draws the direction field and marks every curve sample with the
// first letter of its method. Later curves win where they overlap.
func Overlay(r *experiment.Result, width, height int) string {
	if r == nil || r.Field == nil || r.Field.Rows() == 0 || width < 2 || height < 2 {
		return ""
	}
	minX, maxX, minY, maxY := gridBounds(r.Field)
	s := newSurface(minX, maxX, minY, maxY, width, height)
	s.drawField(r.Field)

	for _, c := range r.Curves {
		marker := '*'
		if c.Method != "" {
			marker = []rune(c.Method)[0]
		}
		for i, x := range r.Xs {
			if i >= len(c.Ys) {
				break
			}
			if row, col, ok := s.cell(x, c.Ys[i]); ok {
				s.cells[row][col] = marker
			}
		}
	}
	return s.String()
}
