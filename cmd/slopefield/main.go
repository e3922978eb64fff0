package main

import (
	"fmt"
	"os"

	"github.com/san-kum/slopefield/internal/config"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/logging"
	"github.com/san-kum/slopefield/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevel string
	theme    string
	logger   = zap.NewNop()

	// Run description, layered preset < config file < flags.
	configFile string
	preset     string
	x0         float64
	y0         float64
	step       float64
	xmin       float64
	xmax       float64
	ymin       float64
	ymax       float64
	samples    int
	fieldN     int
	methods    []string
	params     []string
	target     float64

	// Per-command options
	fixedSteps int
	plotWidth  int
	plotHeight int
	svgWidth   int
	svgHeight  int
	levels     int
	startStep  float64
	fieldOnly  bool
	y0s        []float64
)

func main() {
	err := newRootCmd().Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorStyle().Render("error: "+err.Error()))
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags are bound afresh on every call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "slopefield",
		Short:         "first-order ODE integrators and direction fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel)
			if err != nil {
				return err
			}
			logger = l
			viz.SetTheme(theme)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", viz.ThemeCyberpunk.Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	solveCmd := &cobra.Command{
		Use:   "solve [equation]",
		Short: "integrate to --x and print y for each method",
		Args:  cobra.MaximumNArgs(1),
		RunE:  solveEquation,
	}
	addRunFlags(solveCmd)
	solveCmd.Flags().Float64Var(&target, "x", config.DefaultMax, "target x")
	solveCmd.Flags().IntVar(&fixedSteps, "steps", 0, "take exactly this many equal steps to --x instead of using --step")

	plotCmd := &cobra.Command{
		Use:   "plot [equation]",
		Short: "plot every method's curve over the field",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotEquation,
	}
	addRunFlags(plotCmd)
	addSizeFlags(plotCmd, &plotWidth, &plotHeight, 80, 20)

	fieldCmd := &cobra.Command{
		Use:   "field [equation]",
		Short: "draw the normalized direction field",
		Args:  cobra.MaximumNArgs(1),
		RunE:  drawField,
	}
	addRunFlags(fieldCmd)

	convergeCmd := &cobra.Command{
		Use:   "converge [equation]",
		Short: "measure global error against the exact solution while halving the step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  convergeEquation,
	}
	addRunFlags(convergeCmd)
	convergeCmd.Flags().Float64Var(&target, "x", config.DefaultMax, "target x")
	convergeCmd.Flags().IntVar(&levels, "levels", 6, "number of step halvings")
	convergeCmd.Flags().Float64Var(&startStep, "start", 0.5, "largest step")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [equation]",
		Short: "write the sampled curves as CSV to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	addRunFlags(exportCSVCmd)
	exportCSVCmd.Flags().BoolVar(&fieldOnly, "field", false, "write the direction field instead of the curves")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [equation]",
		Short: "write the full run as JSON to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	addRunFlags(exportJSONCmd)

	svgCmd := &cobra.Command{
		Use:   "svg [equation]",
		Short: "write the curves and field as SVG to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addRunFlags(svgCmd)
	addSizeFlags(svgCmd, &svgWidth, &svgHeight, 800, 600)

	familyCmd := &cobra.Command{
		Use:   "family [equation]",
		Short: "solve from several initial values and compare the end points",
		Args:  cobra.MaximumNArgs(1),
		RunE:  solveFamily,
	}
	addRunFlags(familyCmd)
	familyCmd.Flags().Float64SliceVar(&y0s, "y0s", []float64{-2, -1, 0, 1, 2}, "initial values of y")

	presetsCmd := &cobra.Command{
		Use:   "presets [equation]",
		Short: "list available presets for an equation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for equation: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	equationsCmd := &cobra.Command{
		Use:   "equations",
		Short: "list the built-in equations",
		Args:  cobra.NoArgs,
		RunE:  listEquations,
	}

	rootCmd.AddCommand(solveCmd, plotCmd, fieldCmd, convergeCmd, familyCmd, exportCSVCmd, exportJSONCmd, svgCmd, presetsCmd, equationsCmd)

	return rootCmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial x")
	cmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial y")
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "step size")
	cmd.Flags().Float64Var(&xmin, "xmin", config.DefaultMin, "x range start")
	cmd.Flags().Float64Var(&xmax, "xmax", config.DefaultMax, "x range end")
	cmd.Flags().Float64Var(&ymin, "ymin", config.DefaultMin, "y range start")
	cmd.Flags().Float64Var(&ymax, "ymax", config.DefaultMax, "y range end")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "x samples per curve")
	cmd.Flags().IntVar(&fieldN, "n", field.DefaultN, "direction field samples per axis")
	cmd.Flags().StringSliceVar(&methods, "method", append([]string(nil), config.DefaultMethods...), "integration methods")
	cmd.Flags().StringArrayVar(&params, "param", nil, "equation parameter as name=value (repeatable)")
}

func addSizeFlags(cmd *cobra.Command, width, height *int, w, h int) {
	cmd.Flags().IntVar(width, "width", w, "output width")
	cmd.Flags().IntVar(height, "height", h, "output height")
}
