package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathmap/config"
	"github.com/katalvlaran/pathmap/pathing"
	"github.com/katalvlaran/pathmap/shortestpath"
)

type distanceFlags struct {
	grid string
	from string
	to   string
	mt   string
}

func newDistanceCmd(gf *globalFlags) *cobra.Command {
	df := &distanceFlags{}
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Shortest-path and air distance between two map points",
		Long: `Print the shortest-path distance between two map points under one movement
type, followed by the straight-line distance. Points are map coordinates;
cell (x, y) spans [x, x+1) × [y, y+1).

Examples:
  pathmap distance --grid maps/two-rooms.txt --from 1.5,3.5 --to 7.5,1.5
  pathmap distance --grid maps/rocks.txt --from 0.5,0.5 --to 6.5,2.5 --type ground-clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDistance(cmd, gf, df)
		},
	}
	cmd.Flags().StringVar(&df.grid, "grid", "", "Fixture map file (required)")
	cmd.Flags().StringVar(&df.from, "from", "", "Source point X,Y (required)")
	cmd.Flags().StringVar(&df.to, "to", "", "Target point X,Y (required)")
	cmd.Flags().StringVar(&df.mt, "type", pathing.GroundWithObstacles.String(), "Movement type")

	return cmd
}

func runDistance(cmd *cobra.Command, gf *globalFlags, df *distanceFlags) error {
	def := config.Default()
	logger, err := newLogger(cmd.ErrOrStderr(), gf, def.Log.Level, def.Log.Format)
	if err != nil {
		return err
	}
	mt, err := pathing.ParseMovementType(df.mt)
	if err != nil {
		return err
	}
	from, err := parsePoint(df.from)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := parsePoint(df.to)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	fx, err := loadFixture(df.grid)
	if err != nil {
		return err
	}

	e := shortestpath.New(fx.Grid,
		shortestpath.WithMovementTypes(mt), shortestpath.WithLogger(logger))
	w := cmd.OutOrStdout()
	if d := e.PointDistance(from, to, mt); shortestpath.EffectivelyInfinite(d) {
		fmt.Fprintf(w, "%s: unreachable\n", mt)
	} else {
		fmt.Fprintf(w, "%s: %.2f\n", mt, d)
	}
	fmt.Fprintf(w, "air: %.2f\n", shortestpath.AirDistance(from, to))

	return nil
}
