package config

import (
	"fmt"
	"os"

	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/ode"
	"gopkg.in/yaml.v3"
)

const (
	DefaultEquation = "cos_xy"
	DefaultStep     = ode.DefaultStep
	DefaultX0       = 0.0
	DefaultY0       = 2.0
	DefaultMin      = -4.0
	DefaultMax      = 4.0
	DefaultSamples  = 1000
	DefaultFieldN   = field.DefaultN
)

var DefaultMethods = []string{"euler", "heun", "rk4"}

type Config struct {
	Equation string             `yaml:"equation"`
	Params   map[string]float64 `yaml:"params,omitempty"`
	Methods  []string           `yaml:"methods"`
	Step     float64            `yaml:"step"`
	Initial  InitialConfig      `yaml:"initial"`
	Target   float64            `yaml:"target"`
	RangeX   field.Range        `yaml:"range_x"`
	RangeY   field.Range        `yaml:"range_y"`
	Samples  int                `yaml:"samples"`
	FieldN   int                `yaml:"field_n"`
}

type InitialConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Equation: DefaultEquation,
		Methods:  append([]string(nil), DefaultMethods...),
		Step:     DefaultStep,
		Initial:  InitialConfig{X: DefaultX0, Y: DefaultY0},
		Target:   DefaultMax,
		RangeX:   field.Range{Min: DefaultMin, Max: DefaultMax},
		RangeY:   field.Range{Min: DefaultMin, Max: DefaultMax},
		Samples:  DefaultSamples,
		FieldN:   DefaultFieldN,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base. Keys absent from the file
// keep base's values; params are merged.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Equation == "" {
		return fmt.Errorf("%w: equation is required", ode.ErrInvalidArgument)
	}
	if len(c.Methods) == 0 {
		return fmt.Errorf("%w: at least one method is required", ode.ErrInvalidArgument)
	}
	return c.Experiment().Validate()
}

func (c *Config) InitialCondition() ode.InitialCondition {
	return ode.InitialCondition{X0: c.Initial.X, Y0: c.Initial.Y}
}

// Experiment converts the file representation into a run description.
func (c *Config) Experiment() experiment.Config {
	params := make(map[string]float64, len(c.Params))
	for k, v := range c.Params {
		params[k] = v
	}
	return experiment.Config{
		Equation: c.Equation,
		Params:   params,
		Methods:  append([]string(nil), c.Methods...),
		Initial:  c.InitialCondition(),
		Step:     c.Step,
		RangeX:   c.RangeX,
		RangeY:   c.RangeY,
		Samples:  c.Samples,
		FieldN:   c.FieldN,
	}
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	out := *c
	out.Methods = append([]string(nil), c.Methods...)
	if c.Params != nil {
		out.Params = make(map[string]float64, len(c.Params))
		for k, v := range c.Params {
			out.Params[k] = v
		}
	}
	return &out
}
