package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathmap/pathing"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "pathmap",
		Short: "Pathing analysis for grid maps",
		Long: `pathmap builds the pathing graphs of a grid map and reports openness,
main choke points and shortest-path distances.

Maps are plain-text fixtures: one line per row, top row first.
  .  open        #  blocked      r  destructible obstacle
  m  resource    c  cliff        n/N  no-build / no-build in main
  S  start       B  base         b  base on an obstacle`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&gf.logLevel, "log-level", "",
		"Log level: debug, info, warn or error (default from config)")
	cmd.PersistentFlags().StringVar(&gf.logFormat, "log-format", "",
		"Log format: text or json (default from config)")

	cmd.AddCommand(newAnalyzeCmd(gf), newDistanceCmd(gf))

	return cmd
}

// newLogger builds the slog logger writing to w. Empty flag values fall
// back to the given defaults.
func newLogger(w io.Writer, gf *globalFlags, defLevel, defFormat string) (*slog.Logger, error) {
	level := valueOrDefault(gf.logLevel, defLevel)
	format := valueOrDefault(gf.logFormat, defFormat)

	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lv}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (want text or json)", format)
	}
}

func valueOrDefault(value, def string) string {
	if value == "" {
		return def
	}

	return value
}

// loadFixture parses the fixture file at path.
func loadFixture(path string) (*pathing.Fixture, error) {
	if path == "" {
		return nil, fmt.Errorf("--grid is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grid: %w", err)
	}
	defer f.Close()

	fx, err := pathing.ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("parsing grid %s: %w", path, err)
	}

	return fx, nil
}

// parsePoint reads a map point written as "X,Y".
func parsePoint(s string) (pathing.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return pathing.Point{}, fmt.Errorf("point %q: want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return pathing.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return pathing.Point{}, fmt.Errorf("point %q: %w", s, err)
	}

	return pathing.Point{X: x, Y: y}, nil
}
