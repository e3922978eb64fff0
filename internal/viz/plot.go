package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/slopefield/internal/experiment"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Yellow,
	asciigraph.Blue,
	asciigraph.Green,
	asciigraph.Magenta,
}

// YLimits is the plotted band; values outside it are dropped from the plot
// so one diverging method does not flatten the others.
type YLimits struct {
	Min, Max float64
}

// PaddedLimits widens [min, max] by 5% on each side.
func PaddedLimits(min, max float64) YLimits {
	pad := (max - min) * 0.05
	return YLimits{Min: min - pad, Max: max + pad}
}

func clip(ys []float64, lim YLimits) []float64 {
	out := make([]float64, len(ys))
	for i, y := range ys {
		if math.IsNaN(y) || y < lim.Min || y > lim.Max {
			out[i] = math.NaN()
			continue
		}
		out[i] = y
	}
	return out
}

// Curves plots every method (and the exact solution, when present) on one
// asciigraph chart.
func Curves(r *experiment.Result, lim YLimits, width, height int, caption string) string {
	if r == nil || len(r.Curves) == 0 || len(r.Xs) == 0 {
		return ""
	}

	data := make([][]float64, 0, len(r.Curves)+1)
	legends := make([]string, 0, len(r.Curves)+1)
	colors := make([]asciigraph.AnsiColor, 0, len(r.Curves)+1)

	for i, c := range r.Curves {
		data = append(data, clip(c.Ys, lim))
		legends = append(legends, c.Method)
		colors = append(colors, seriesColors[i%len(seriesColors)])
	}
	if r.Exact != nil {
		data = append(data, clip(r.Exact, lim))
		legends = append(legends, "exact")
		colors = append(colors, asciigraph.White)
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(lim.Min),
		asciigraph.UpperBound(lim.Max),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}
