package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathmap/analysis"
	"github.com/katalvlaran/pathmap/choke"
	"github.com/katalvlaran/pathmap/config"
)

type analyzeFlags struct {
	grid   string
	config string
}

func newAnalyzeCmd(gf *globalFlags) *cobra.Command {
	af := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute openness, base patches and main chokes",
		Long: `Run the full analysis over a fixture map and print openness statistics per
movement type, the neighborhood openness of every base and the main choke of
every start location. Starts are named S1, S2, ... and bases B1, B2, ... in
reading order.

Examples:
  pathmap analyze --grid maps/two-rooms.txt
  pathmap analyze --grid maps/two-rooms.txt --config pathmap.yaml --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, gf, af)
		},
	}
	cmd.Flags().StringVar(&af.grid, "grid", "", "Fixture map file (required)")
	cmd.Flags().StringVar(&af.config, "config", "", "YAML file overriding the default parameters")

	return cmd
}

func runAnalyze(cmd *cobra.Command, gf *globalFlags, af *analyzeFlags) error {
	cfg, err := config.Load(af.config)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), gf, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	fx, err := loadFixture(af.grid)
	if err != nil {
		return err
	}

	starts := make([]choke.StartLocation, len(fx.Starts))
	for i, p := range fx.Starts {
		starts[i] = choke.StartLocation{Name: fmt.Sprintf("S%d", i+1), Loc: p}
	}
	bases := make([]analysis.BaseLocation, len(fx.Bases))
	for i, p := range fx.Bases {
		bases[i] = analysis.BaseLocation{Name: fmt.Sprintf("B%d", i+1), Loc: p}
	}

	m, err := analysis.Analyze(fx.Grid, starts, bases, cfg,
		analysis.WithContext(cmd.Context()), analysis.WithLogger(logger))
	if err != nil {
		return err
	}
	printAnalysis(cmd.OutOrStdout(), m, cfg)

	return nil
}

func printAnalysis(w io.Writer, m *analysis.Map, cfg *config.Config) {
	fmt.Fprintln(w, "openness:")
	for _, t := range cfg.Derived.OpennessTypes {
		if s, ok := m.OpennessStats(t); ok {
			fmt.Fprintf(w, "  %-36s max=%.2f avg=%.2f passes=%d\n", t, s.Max, s.Average, s.Passes)
		}
	}

	if bases := m.Bases(); len(bases) > 0 {
		fmt.Fprintln(w, "bases:")
		for _, b := range bases {
			o, _ := m.BaseOpenness(b.Name)
			fmt.Fprintf(w, "  %-4s (%.1f, %.1f) openness=%.2f\n", b.Name, b.Loc.X, b.Loc.Y, o)
		}
	}

	fmt.Fprintln(w, "chokes:")
	for _, r := range m.Chokes() {
		if !r.Found {
			fmt.Fprintf(w, "  %-4s not found\n", r.Start.Name)
			continue
		}
		fmt.Fprintf(w, "  %-4s (%.1f, %.1f)\n", r.Start.Name, r.Choke.X, r.Choke.Y)
	}
}
