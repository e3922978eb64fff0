package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/ode"
)

type ExportData struct {
	Equation string               `json:"equation"`
	Params   map[string]float64   `json:"params,omitempty"`
	Initial  ode.InitialCondition `json:"initial"`
	Step     float64              `json:"step"`
	Samples  int                  `json:"samples"`
	Xs       []float64            `json:"xs"`
	Curves   map[string][]float64 `json:"curves"`
	Exact    []float64            `json:"exact,omitempty"`
	Field    *field.Grid          `json:"field,omitempty"`
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// WriteCSV writes one row per sampled x with a column per method, plus an
// exact column when the result carries one.
func WriteCSV(w io.Writer, result *experiment.Result) error {
	cw := csv.NewWriter(w)

	header := []string{"x"}
	for _, c := range result.Curves {
		header = append(header, c.Method)
	}
	if result.Exact != nil {
		header = append(header, "exact")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, x := range result.Xs {
		row := []string{formatFloat(x)}
		for _, c := range result.Curves {
			if i >= len(c.Ys) {
				return fmt.Errorf("curve %s has %d samples, want %d", c.Method, len(c.Ys), len(result.Xs))
			}
			row = append(row, formatFloat(c.Ys[i]))
		}
		if result.Exact != nil {
			row = append(row, formatFloat(result.Exact[i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFieldCSV flattens a direction field into x,y,u,v rows.
func WriteFieldCSV(w io.Writer, g *field.Grid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "u", "v"}); err != nil {
		return err
	}
	for i := range g.X {
		for j := range g.X[i] {
			row := []string{
				formatFloat(g.X[i][j]),
				formatFloat(g.Y[i][j]),
				formatFloat(g.U[i][j]),
				formatFloat(g.V[i][j]),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, result *experiment.Result) error {
	data := ExportData{
		Equation: result.Equation,
		Params:   result.Params,
		Initial:  result.Initial,
		Step:     result.Step,
		Samples:  len(result.Xs),
		Xs:       result.Xs,
		Curves:   make(map[string][]float64, len(result.Curves)),
		Exact:    result.Exact,
		Field:    result.Field,
	}
	for _, c := range result.Curves {
		data.Curves[c.Method] = c.Ys
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
