package main

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/slopefield/internal/analysis"
	"github.com/san-kum/slopefield/internal/config"
	"github.com/san-kum/slopefield/internal/equations"
	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/export"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/integrators"
	"github.com/san-kum/slopefield/internal/ode"
	"github.com/san-kum/slopefield/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resolveConfig layers the run description: defaults, then the preset,
// then the config file, then any flag set explicitly on the command line.
// A positional equation name beats all of them.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Equation = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Equation, preset)
		if p == nil {
			return nil, fmt.Errorf("%w: preset %q for %s (available: %v)", ode.ErrUnknown, preset, cfg.Equation, config.ListPresets(cfg.Equation))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Equation = args[0]
		}
	}

	flags := cmd.Flags()
	if flags.Changed("x0") {
		cfg.Initial.X = x0
	}
	if flags.Changed("y0") {
		cfg.Initial.Y = y0
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("xmin") {
		cfg.RangeX.Min = xmin
	}
	if flags.Changed("xmax") {
		cfg.RangeX.Max = xmax
	}
	if flags.Changed("ymin") {
		cfg.RangeY.Min = ymin
	}
	if flags.Changed("ymax") {
		cfg.RangeY.Max = ymax
	}
	if flags.Changed("samples") {
		cfg.Samples = samples
	}
	if flags.Changed("n") {
		cfg.FieldN = fieldN
	}
	if flags.Changed("method") {
		cfg.Methods = append([]string(nil), methods...)
	}
	if flags.Changed("x") {
		cfg.Target = target
	}
	if len(params) > 0 {
		parsed, err := parseParams(params)
		if err != nil {
			return nil, err
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64, len(parsed))
		}
		for k, v := range parsed {
			cfg.Params[k] = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("resolved config",
		zap.String("equation", cfg.Equation),
		zap.Strings("methods", cfg.Methods),
		zap.Float64("step", cfg.Step),
		zap.String("preset", preset),
		zap.String("config", configFile),
	)
	return cfg, nil
}

func parseParams(raw []string) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: parameter %q must be name=value", ode.ErrInvalidArgument, kv)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %s: %v", ode.ErrInvalidArgument, name, err)
		}
		out[name] = v
	}
	return out, nil
}

func runExperiment(cmd *cobra.Command, args []string) (*config.Config, *experiment.Result, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}

	exp, err := experiment.Build(experiment.NewRegistry(), cfg.Experiment(), logger)
	if err != nil {
		return nil, nil, err
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		return nil, nil, err
	}
	return cfg, result, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func solveEquation(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if fixedSteps < 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", ode.ErrInvalidArgument, fixedSteps)
	}

	registry := experiment.NewRegistry()
	eq, err := registry.GetEquation(cfg.Equation)
	if err != nil {
		return err
	}
	f, err := eq.Func(cfg.Params)
	if err != nil {
		return err
	}
	steppers, err := registry.GetSteppers(cfg.Methods)
	if err != nil {
		return err
	}
	ic := cfg.InitialCondition()
	exact, hasExact := eq.Exact(cfg.Params, ic)

	// Fixed-step marches may overshoot; compare against the landing point.
	n, xEnd := fixedSteps, cfg.Target
	if n == 0 {
		if n, err = ode.StepCount(ic.X0, cfg.Target, cfg.Step); err != nil {
			return err
		}
		xEnd = ic.X0 + float64(n)*ode.ResolveDirection(ic.X0, cfg.Target).Sign()*cfg.Step
	}

	headers := []string{"method", "order", "steps", fmt.Sprintf("y(%s)", formatValue(xEnd))}
	if hasExact {
		headers = append(headers, "error")
	}
	rows := make([][]string, 0, len(steppers))
	for _, s := range steppers {
		var y float64
		if fixedSteps > 0 {
			y, err = integrators.SolveN(s, f, ic, cfg.Target, fixedSteps)
		} else {
			y, err = integrators.Solve(s, f, ic, cfg.Target, cfg.Step)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
		row := []string{s.Name(), strconv.Itoa(s.Order()), strconv.Itoa(n), formatValue(y)}
		if hasExact {
			row = append(row, fmt.Sprintf("%.3e", math.Abs(y-exact(xEnd))))
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(out, viz.Title(fmt.Sprintf("%s from (%s, %s)", eq.Name, formatValue(ic.X0), formatValue(ic.Y0))))
	if fixedSteps == 0 {
		fmt.Fprintln(out, viz.KeyValue("step", formatValue(cfg.Step)))
	}
	fmt.Fprintln(out, viz.Table(headers, rows))
	return nil
}

func plotEquation(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, result, err := runExperiment(cmd, args)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, viz.Title(result.Equation))
	fmt.Fprintln(out, viz.KeyValue("initial", fmt.Sprintf("(%s, %s)", formatValue(result.Initial.X0), formatValue(result.Initial.Y0))))
	fmt.Fprintln(out, viz.KeyValue("step", formatValue(result.Step)))
	fmt.Fprintln(out, viz.KeyValue("elapsed", result.Elapsed.String()))
	fmt.Fprintln(out)

	lim := viz.PaddedLimits(cfg.RangeY.Min, cfg.RangeY.Max)
	caption := fmt.Sprintf("y(x) over [%s, %s]", formatValue(cfg.RangeX.Min), formatValue(cfg.RangeX.Max))
	fmt.Fprintln(out, viz.Curves(result, lim, plotWidth, plotHeight, caption))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.Overlay(result, plotWidth, plotHeight))
	return nil
}

func drawField(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	eq, err := equations.Lookup(cfg.Equation)
	if err != nil {
		return err
	}
	f, err := eq.Func(cfg.Params)
	if err != nil {
		return err
	}

	grid, err := field.DirectionField(f, cfg.RangeX, cfg.RangeY, cfg.FieldN)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, viz.Title(fmt.Sprintf("%s direction field (%dx%d)", eq.Name, grid.Rows(), grid.Cols())))
	fmt.Fprintln(out, viz.FieldStyle().Render(viz.Quiver(grid)))
	return nil
}

func convergeEquation(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if levels < 2 {
		return fmt.Errorf("%w: need at least two levels, got %d", ode.ErrInvalidArgument, levels)
	}

	registry := experiment.NewRegistry()
	eq, err := registry.GetEquation(cfg.Equation)
	if err != nil {
		return err
	}
	ic := cfg.InitialCondition()
	exact, ok := eq.Exact(cfg.Params, ic)
	if !ok {
		return fmt.Errorf("%w: %s has no closed-form solution", ode.ErrInvalidArgument, eq.Name)
	}
	f, err := eq.Func(cfg.Params)
	if err != nil {
		return err
	}
	steppers, err := registry.GetSteppers(cfg.Methods)
	if err != nil {
		return err
	}

	steps := analysis.HalvingSteps(startStep, levels)
	headers := []string{"step"}
	errs := make([][]analysis.ErrorSample, len(steppers))
	orderRow := []string{"order"}
	for i, s := range steppers {
		study, err := analysis.Convergence(s, f, exact, ic, cfg.Target, steps)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
		errs[i] = study
		headers = append(headers, s.Name())

		p, err := analysis.ObservedOrder(study)
		if err != nil {
			logger.Debug("observed order unavailable", zap.String("method", s.Name()), zap.Error(err))
			orderRow = append(orderRow, "-")
			continue
		}
		orderRow = append(orderRow, fmt.Sprintf("%.2f (%d)", p, s.Order()))
	}

	rows := make([][]string, 0, len(steps)+1)
	for j, h := range steps {
		row := []string{formatValue(h)}
		for i := range steppers {
			row = append(row, fmt.Sprintf("%.3e", errs[i][j].Error))
		}
		rows = append(rows, row)
	}
	rows = append(rows, orderRow)

	fmt.Fprintln(out, viz.Title(fmt.Sprintf("%s: global error at x = %s", eq.Name, formatValue(cfg.Target))))
	fmt.Fprintln(out, viz.Table(headers, rows))
	return nil
}

func solveFamily(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	ens := experiment.NewEnsemble(experiment.NewRegistry(), cfg.Experiment(), logger)
	results, err := ens.Run(context.Background(), y0s)
	if err != nil {
		return err
	}

	xs := results[0].Xs
	headers := []string{"y0"}
	for _, c := range results[0].Curves {
		headers = append(headers, fmt.Sprintf("%s y(%s)", c.Method, formatValue(xs[len(xs)-1])))
	}
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		row := []string{formatValue(res.Initial.Y0)}
		for _, c := range res.Curves {
			row = append(row, formatValue(c.Ys[len(c.Ys)-1]))
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(out, viz.Title(fmt.Sprintf("%s family from x0 = %s", cfg.Equation, formatValue(cfg.Initial.X))))
	fmt.Fprintln(out, viz.Table(headers, rows))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, result, err := runExperiment(cmd, args)
	if err != nil {
		return err
	}
	if fieldOnly {
		return export.WriteFieldCSV(cmd.OutOrStdout(), result.Field)
	}
	return export.WriteCSV(cmd.OutOrStdout(), result)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	_, result, err := runExperiment(cmd, args)
	if err != nil {
		return err
	}
	return export.WriteJSON(cmd.OutOrStdout(), result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, result, err := runExperiment(cmd, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), export.ResultToSVG(result, svgWidth, svgHeight))
	return err
}

func listEquations(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	rows := [][]string{}
	for _, name := range equations.Names() {
		eq, err := equations.Lookup(name)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(eq.Defaults))
		for k, v := range eq.Defaults {
			names = append(names, k+"="+formatValue(v))
		}
		exact := "no"
		if eq.HasExact() {
			exact = "yes"
		}
		sort.Strings(names)
		rows = append(rows, []string{eq.Name, strings.Join(names, " "), exact, eq.Description})
	}
	fmt.Fprintln(out, viz.Table([]string{"name", "params", "exact", "description"}, rows))
	return nil
}
