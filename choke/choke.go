package choke

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathmap/pathgraph"
	"github.com/katalvlaran/pathmap/pathing"
	"github.com/katalvlaran/pathmap/shortestpath"
)

// axes are the four direction pairs whose opposite spans are summed.
var axes = [4][2]pathing.Cell{
	{{X: -1, Y: 0}, {X: 1, Y: 0}},
	{{X: 0, Y: -1}, {X: 0, Y: 1}},
	{{X: -1, Y: -1}, {X: 1, Y: 1}},
	{{X: 1, Y: -1}, {X: -1, Y: 1}},
}

// Detector finds choke points on one movement type's graph. It shares the
// engine's cache and inherits its single-threaded contract.
type Detector struct {
	e    *shortestpath.Engine
	g    *pathgraph.Graph
	opts Options
}

// New returns a detector over e.
// Returns ErrEngineNil, ErrOptionViolation, or shortestpath.ErrUnknownType
// when e has no graph for the selected movement type.
func New(e *shortestpath.Engine, opts ...Option) (*Detector, error) {
	if e == nil {
		return nil, ErrEngineNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !slices.Contains(e.Types(), o.MovementType) {
		return nil, fmt.Errorf("%w: %s", shortestpath.ErrUnknownType, o.MovementType)
	}

	return &Detector{e: e, g: e.Graph(o.MovementType), opts: o}, nil
}

// SpanDistance steps from c in direction (dx, dy) while cells stay
// pathable and returns the distance from c's center to the center of the
// first unpathable or off-map cell. An unpathable c gives 0.
func (d *Detector) SpanDistance(c pathing.Cell, dx, dy int) float64 {
	step := pathing.Cell{X: dx, Y: dy}
	s := c
	for {
		if _, ok := d.g.At(s); !ok {
			break
		}
		s = s.Add(step)
	}

	return r2.Norm(r2.Vec{X: float64(s.X - c.X), Y: float64(s.Y - c.Y)})
}

// ChokeDistance returns the narrowest width through c over the four axes.
func (d *Detector) ChokeDistance(c pathing.Cell) float64 {
	best := shortestpath.Infinity
	for _, ax := range axes {
		span := d.SpanDistance(c, ax[0].X, ax[0].Y) + d.SpanDistance(c, ax[1].X, ax[1].Y)
		if span < best {
			best = span
		}
	}

	return best
}

// Candidate returns the choke candidate of s1 with respect to s2: the local
// minimum of ChokeDistance on the half of the route nearer to s1, taken
// once the distance falls below the threshold.
//
// Returns ErrStartUnpathable, ErrNoPath when the starts are disconnected
// (or share a cell), or ErrNoChoke when the walk never trips the threshold.
func (d *Detector) Candidate(s1, s2 StartLocation) (pathing.Point, error) {
	mt := d.opts.MovementType
	src, ok := d.g.AtPoint(s2.Loc)
	if !ok {
		return NotFound, fmt.Errorf("%w: %s", ErrStartUnpathable, s2.Name)
	}
	u, ok := d.g.AtPoint(s1.Loc)
	if !ok {
		return NotFound, fmt.Errorf("%w: %s", ErrStartUnpathable, s1.Name)
	}

	v, ok := d.e.Predecessor(src, u, mt)
	if !ok {
		return NotFound, fmt.Errorf("%w: %s to %s", ErrNoPath, s1.Name, s2.Name)
	}

	total := d.e.Distance(src, u, mt)
	test := total
	best, lowest := pathgraph.NoNode, shortestpath.Infinity
	tripped := false
	for ok && test > 0.5*total {
		dc := d.ChokeDistance(d.g.Node(v).Cell)
		if tripped && dc > lowest {
			break
		}
		if dc < d.opts.Threshold {
			tripped, lowest, best = true, dc, v
		}
		u = v
		v, ok = d.e.Predecessor(src, u, mt)
		test = d.e.Distance(src, u, mt)
	}
	if !tripped {
		return NotFound, fmt.Errorf("%w: %s to %s", ErrNoChoke, s1.Name, s2.Name)
	}

	return d.g.Center(best), nil
}

// Locate returns the choke of s1 against every other entry of all (entries
// equal to s1 in both name and location are skipped). The bool is false when the choke is
// undefined; that case is logged as a warning, not returned as an error.
func (d *Detector) Locate(s1 StartLocation, all []StartLocation) (pathing.Point, bool, error) {
	log := d.opts.Logger.With(slog.String("start", s1.Name))

	var candidates []pathing.Point
	for _, s2 := range all {
		if s2 == s1 {
			continue
		}
		p, err := d.Candidate(s1, s2)
		switch {
		case err == nil:
			candidates = append(candidates, p)
		case errors.Is(err, ErrNoPath):
			log.Debug("no route to start location, skipped", slog.String("other", s2.Name))
		case errors.Is(err, ErrNoChoke):
			log.Warn("could not locate main choke", slog.String("reason", err.Error()))
			return NotFound, false, nil
		default:
			return NotFound, false, err
		}
	}
	if len(candidates) == 0 {
		log.Warn("could not locate main choke", slog.String("reason", "no reachable start location"))
		return NotFound, false, nil
	}

	var sum r2.Vec
	for i, c1 := range candidates {
		for _, c2 := range candidates[i+1:] {
			if shortestpath.AirDistance(c1, c2) > d.opts.Agreement {
				log.Warn("could not locate main choke",
					slog.String("reason", "candidates disagree"),
					slog.Any("candidates", candidates))
				return NotFound, false, nil
			}
		}
		sum = r2.Add(sum, c1.Vec())
	}
	avg := pathing.PointOf(r2.Scale(1/float64(len(candidates)), sum))
	log.Debug("main choke located", slog.Float64("x", avg.X), slog.Float64("y", avg.Y))

	return avg, true, nil
}

// LocateAll runs Locate for every start location, in order.
func (d *Detector) LocateAll(all []StartLocation) ([]Result, error) {
	out := make([]Result, 0, len(all))
	for _, s := range all {
		p, found, err := d.Locate(s, all)
		if err != nil {
			return nil, err
		}
		out = append(out, Result{Start: s, Choke: p, Found: found})
	}

	return out, nil
}
