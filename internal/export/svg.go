package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/slopefield/internal/experiment"
)

var curveColors = []string{"#ff6b6b", "#feca57", "#48dbfb", "#1dd1a1", "#ff9ff3"}

type viewport struct {
	minX, maxX, minY, maxY float64
	width, height          float64
}

func (v viewport) px(x, y float64) (float64, float64) {
	return (x - v.minX) / (v.maxX - v.minX) * v.width,
		v.height - (y-v.minY)/(v.maxY-v.minY)*v.height
}

func (v viewport) inside(y float64) bool {
	return y >= v.minY && y <= v.maxY
}

// resultViewport spans the sampled x-range and the field's y-range padded
// by 5% so arrows on the border are not cut off.
func resultViewport(r *experiment.Result, width, height int) viewport {
	vp := viewport{width: float64(width), height: float64(height)}
	if len(r.Xs) > 0 {
		vp.minX, vp.maxX = r.Xs[0], r.Xs[len(r.Xs)-1]
	}
	if vp.minX > vp.maxX {
		vp.minX, vp.maxX = vp.maxX, vp.minX
	}

	if r.Field != nil && r.Field.Rows() > 0 {
		vp.minY, vp.maxY = r.Field.Y[0][0], r.Field.Y[r.Field.Rows()-1][0]
	} else {
		vp.minY, vp.maxY = math.Inf(1), math.Inf(-1)
		for _, c := range r.Curves {
			for _, y := range c.Ys {
				if math.IsNaN(y) || math.IsInf(y, 0) {
					continue
				}
				vp.minY = math.Min(vp.minY, y)
				vp.maxY = math.Max(vp.maxY, y)
			}
		}
	}
	if vp.minY > vp.maxY {
		vp.minY, vp.maxY = vp.maxY, vp.minY
	}
	if math.IsInf(vp.minY, 0) || math.IsInf(vp.maxY, 0) {
		vp.minY, vp.maxY = -1, 1
	}

	pad := (vp.maxY - vp.minY) * 0.05
	vp.minY -= pad
	vp.maxY += pad

	if vp.maxX == vp.minX {
		vp.minX -= 0.5
		vp.maxX += 0.5
	}
	if vp.maxY == vp.minY {
		vp.minY -= 0.5
		vp.maxY += 0.5
	}
	return vp
}

// ResultToSVG draws the direction field as short segments and each method's
// curve as a path. Curve points outside the viewport break the path.
func ResultToSVG(r *experiment.Result, width, height int) string {
	if r == nil || len(r.Xs) == 0 {
		return ""
	}
	vp := resultViewport(r, width, height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if g := r.Field; g != nil && g.Rows() > 0 {
		cell := math.Min(vp.width/float64(g.Cols()), vp.height/float64(g.Rows()))
		half := cell * 0.35
		sb.WriteString(`<g stroke="#666666" stroke-width="1">` + "\n")
		for i := range g.X {
			for j := range g.X[i] {
				cx, cy := vp.px(g.X[i][j], g.Y[i][j])
				// data-space direction mapped through the anisotropic viewport
				dx := g.U[i][j] * vp.width / (vp.maxX - vp.minX)
				dy := -g.V[i][j] * vp.height / (vp.maxY - vp.minY)
				norm := math.Hypot(dx, dy)
				if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
					continue
				}
				dx, dy = dx/norm*half, dy/norm*half
				sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
					cx-dx, cy-dy, cx+dx, cy+dy))
			}
		}
		sb.WriteString("</g>\n")
	}

	for ci, c := range r.Curves {
		color := curveColors[ci%len(curveColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" data-method="%s" d="`, color, c.Method))
		pen := false
		for i, x := range r.Xs {
			if i >= len(c.Ys) || !vp.inside(c.Ys[i]) {
				pen = false
				continue
			}
			px, py := vp.px(x, c.Ys[i])
			if pen {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" M%.1f,%.1f", px, py))
				pen = true
			}
		}
		sb.WriteString(`"/>` + "\n")
		sb.WriteString(fmt.Sprintf(`<text x="10" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>`+"\n",
			20+16*ci, color, c.Method))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
