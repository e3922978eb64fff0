package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/ode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "cos_xy", cfg.Equation)
	assert.Equal(t, []string{"euler", "heun", "rk4"}, cfg.Methods)
	assert.Equal(t, 0.005, cfg.Step)
	assert.Equal(t, 2.0, cfg.Initial.Y)
	assert.Equal(t, 20, cfg.FieldN)
	require.NoError(t, cfg.Validate())
}

func TestDefaultConfig_MethodsNotShared(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Methods[0] = "rk4"
	assert.Equal(t, "euler", DefaultMethods[0])
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Equation = "decay"
	cfg.Params = map[string]float64{"k": 2}
	cfg.Step = 0.01
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("equation: sin_y\nstep: 0.2\ninitial:\n  y: 1\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sin_y", cfg.Equation)
	assert.Equal(t, 0.2, cfg.Step)
	assert.Equal(t, 1.0, cfg.Initial.Y)
	assert.Equal(t, DefaultSamples, cfg.Samples)
	assert.Equal(t, DefaultMin, cfg.RangeX.Min)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no equation", func(c *Config) { c.Equation = "" }},
		{"no methods", func(c *Config) { c.Methods = nil }},
		{"zero step", func(c *Config) { c.Step = 0 }},
		{"negative step", func(c *Config) { c.Step = -1 }},
		{"no samples", func(c *Config) { c.Samples = 0 }},
		{"no field", func(c *Config) { c.FieldN = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ode.ErrInvalidArgument)
		})
	}
}

func TestExperiment(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params = map[string]float64{"a": 2}

	exp := cfg.Experiment()
	assert.Equal(t, experiment.Config{
		Equation: "cos_xy",
		Params:   map[string]float64{"a": 2},
		Methods:  []string{"euler", "heun", "rk4"},
		Initial:  ode.InitialCondition{X0: 0, Y0: 2},
		Step:     0.005,
		RangeX:   cfg.RangeX,
		RangeY:   cfg.RangeY,
		Samples:  1000,
		FieldN:   20,
	}, exp)

	exp.Params["a"] = 5
	assert.Equal(t, 2.0, cfg.Params["a"], "experiment config must not alias params")
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sin_y", "script")
	require.NotNil(t, cfg)
	assert.Equal(t, 0.2, cfg.Step)
	assert.Equal(t, []string{"euler"}, cfg.Methods)

	cfg.Methods[0] = "rk4"
	assert.Equal(t, "euler", Presets["sin_y"]["script"].Methods[0], "presets must be copied")
}

func TestGetPreset_NotFound(t *testing.T) {
	assert.Nil(t, GetPreset("cos_xy", "nonexistent"))
	assert.Nil(t, GetPreset("nonexistent", "classic"))
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"classic", "coarse"}, ListPresets("cos_xy"))
	assert.Nil(t, ListPresets("nonexistent"))
}

func TestPresetsValidate(t *testing.T) {
	r := experiment.NewRegistry()
	for eq, presets := range Presets {
		for name, cfg := range presets {
			assert.Equal(t, eq, cfg.Equation, "%s/%s", eq, name)
			assert.NoError(t, cfg.Validate(), "%s/%s", eq, name)
			_, err := experiment.Build(r, cfg.Experiment(), nil)
			assert.NoError(t, err, "%s/%s", eq, name)
		}
	}
}

func TestLoadOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step: 0.02\nparams:\n  k: 3\n"), 0644))

	base := GetPreset("decay", "gentle")
	cfg, err := LoadOver(path, base)
	require.NoError(t, err)

	assert.Equal(t, "decay", cfg.Equation)
	assert.Equal(t, 0.02, cfg.Step)
	assert.Equal(t, 3.0, cfg.Params["k"])
	assert.Equal(t, 0.05, base.Step, "base must not be modified")
	assert.Equal(t, 0.5, base.Params["k"])
}
