package export

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/stretchr/testify/assert"
)

func TestResultToSVG(t *testing.T) {
	r := sampleResult(t)
	svg := ResultToSVG(r, 400, 300)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, `viewBox="0 0 400 300"`)
	assert.Equal(t, len(r.Curves), strings.Count(svg, "<path"))
	assert.Equal(t, r.Field.Rows()*r.Field.Cols(), strings.Count(svg, "<line"))
	assert.Contains(t, svg, `data-method="rk4"`)
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestResultToSVG_BreaksOnNonFinite(t *testing.T) {
	r := sampleResult(t)
	r.Field = nil
	r.Curves = []experiment.Series{{Method: "euler", Ys: []float64{0, math.NaN(), 1}}}

	svg := ResultToSVG(r, 100, 100)
	assert.Equal(t, 2, strings.Count(svg, " M"), "path should restart after NaN")
	assert.NotContains(t, svg, "NaN")
}

func TestResultToSVG_Empty(t *testing.T) {
	assert.Empty(t, ResultToSVG(nil, 10, 10))
	assert.Empty(t, ResultToSVG(&experiment.Result{}, 10, 10))
}
