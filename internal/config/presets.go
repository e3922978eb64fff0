package config

import (
	"sort"

	"github.com/san-kum/slopefield/internal/field"
)

var Presets = map[string]map[string]*Config{
	"cos_xy": {
		"classic": {
			Equation: "cos_xy", Methods: DefaultMethods, Step: 0.005, Target: 4,
			Initial: InitialConfig{X: 0, Y: 2},
			RangeX:  field.Range{Min: -4, Max: 4}, RangeY: field.Range{Min: -4, Max: 4},
			Samples: 1000, FieldN: 20,
		},
		"coarse": {
			Equation: "cos_xy", Methods: DefaultMethods, Step: 0.25, Target: 4,
			Initial: InitialConfig{X: 0, Y: 2},
			RangeX:  field.Range{Min: -4, Max: 4}, RangeY: field.Range{Min: -4, Max: 4},
			Samples: 200, FieldN: 20,
		},
	},
	"sin_y": {
		"script": {
			Equation: "sin_y", Methods: []string{"euler"}, Step: 0.2, Target: 2,
			Initial: InitialConfig{X: 0, Y: 1},
			RangeX:  field.Range{Min: 0, Max: 2}, RangeY: field.Range{Min: 0, Max: 3.5},
			Samples: 100, FieldN: 15,
		},
		"separatrix": {
			Equation: "sin_y", Methods: DefaultMethods, Step: 0.01, Target: 6,
			Initial: InitialConfig{X: 0, Y: 3},
			RangeX:  field.Range{Min: -6, Max: 6}, RangeY: field.Range{Min: -1, Max: 7},
			Samples: 600, FieldN: 24,
		},
	},
	"logistic": {
		"growth": {
			Equation: "logistic", Params: map[string]float64{"r": 1}, Methods: DefaultMethods, Step: 0.1, Target: 10,
			Initial: InitialConfig{X: 0, Y: 0.05},
			RangeX:  field.Range{Min: 0, Max: 10}, RangeY: field.Range{Min: -0.25, Max: 1.5},
			Samples: 500, FieldN: 20,
		},
	},
	"decay": {
		"stiffish": {
			Equation: "decay", Params: map[string]float64{"k": 15}, Methods: DefaultMethods, Step: 0.1, Target: 2,
			Initial: InitialConfig{X: 0, Y: 1},
			RangeX:  field.Range{Min: 0, Max: 2}, RangeY: field.Range{Min: -1.5, Max: 1.5},
			Samples: 200, FieldN: 16,
		},
		"gentle": {
			Equation: "decay", Params: map[string]float64{"k": 0.5}, Methods: DefaultMethods, Step: 0.05, Target: 6,
			Initial: InitialConfig{X: 0, Y: 3},
			RangeX:  field.Range{Min: -2, Max: 6}, RangeY: field.Range{Min: 0, Max: 8},
			Samples: 400, FieldN: 20,
		},
	},
	"x_minus_y": {
		"asymptote": {
			Equation: "x_minus_y", Methods: DefaultMethods, Step: 0.05, Target: 5,
			Initial: InitialConfig{X: 0, Y: 3},
			RangeX:  field.Range{Min: -1, Max: 5}, RangeY: field.Range{Min: -2, Max: 5},
			Samples: 300, FieldN: 20,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(equation, preset string) *Config {
	eqPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	cfg, ok := eqPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(equation string) []string {
	eqPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(eqPresets))
	for name := range eqPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
