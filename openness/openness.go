package openness

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/pathmap/pathgraph"
	"github.com/katalvlaran/pathmap/pathing"
)

// Field holds the openness of every playable cell under one movement type.
// It is immutable once Compute returns.
type Field struct {
	mt     pathing.MovementType
	bounds pathing.Bounds
	values []float64 // per playable cell, row-major
	set    int
	max    float64
	sum    float64
	passes int
}

// layers carries the double-buffered per-node state of one computation.
type layers struct {
	g    Graph
	f    *Field
	prev []float64
	cur  []float64
}

// Compute builds the openness field of g.
// Returns ErrGraphNil, ErrStalled, or the context error on cancellation.
func Compute(g Graph, opts ...Option) (*Field, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := g.Bounds()
	n := g.Len()
	f := &Field{
		mt:     g.Type(),
		bounds: b,
		values: make([]float64, b.Size()),
	}
	for i := range f.values {
		f.values[i] = NotComputed
	}
	l := &layers{
		g:    g,
		f:    f,
		prev: make([]float64, n),
		cur:  make([]float64, n),
	}
	for i := range l.cur {
		l.cur[i] = NotComputed
	}

	// 1) seed: one cell away from an edge or obstacle
	l.seed()

	// 2) layered relaxation against the previous snapshot
	for f.set < n {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		before := f.set
		l.pass()
		if f.set == before {
			return nil, fmt.Errorf("%w: %s: %d of %d cells after %d passes",
				ErrStalled, f.mt, f.set, n, f.passes)
		}
	}

	// 3) publish per cell
	for id := 0; id < n; id++ {
		node := g.Node(pathgraph.NodeID(id))
		f.values[b.Index(node.Cell)] = l.cur[id]
	}

	o.Logger.Info("openness computed",
		slog.String("type", f.mt.String()),
		slog.Float64("max", f.max),
		slog.Float64("avg", f.Average()),
		slog.Int("passes", f.passes))

	return f, nil
}

func (l *layers) seed() {
	for id := 0; id < l.g.Len(); id++ {
		nb := &l.g.Node(pathgraph.NodeID(id)).Neighbors
		for slot := 0; slot < 4; slot++ {
			if nb[slot] == pathgraph.NoNode {
				l.mark(id, 1)
				break
			}
		}
	}
	l.f.passes++
}

func (l *layers) pass() {
	copy(l.prev, l.cur)
	for id := range l.cur {
		if l.prev[id] != NotComputed {
			continue
		}
		best, reached := math.Inf(1), false
		l.g.Neighbors(pathgraph.NodeID(id), func(_ int, v pathgraph.NodeID, w float64) {
			if l.prev[v] == NotComputed {
				return
			}
			reached = true
			if d := l.prev[v] + w; d < best {
				best = d
			}
		})
		if reached {
			l.mark(id, best)
		}
	}
	l.f.passes++
}

func (l *layers) mark(id int, v float64) {
	l.cur[id] = v
	l.f.set++
	l.f.sum += v
	if v > l.f.max {
		l.f.max = v
	}
}

// Type returns the movement type the field was computed for.
func (f *Field) Type() pathing.MovementType { return f.mt }

// Max returns the largest openness value.
func (f *Field) Max() float64 { return f.max }

// Average returns the mean openness over all pathable cells, or 0 for a
// field without cells.
func (f *Field) Average() float64 {
	if f.set == 0 {
		return 0
	}

	return f.sum / float64(f.set)
}

// Passes returns the number of passes, seed pass included.
func (f *Field) Passes() int { return f.passes }

// Len returns the number of cells with a value.
func (f *Field) Len() int { return f.set }

// Value returns the openness of c, or NotComputed for an unpathable cell.
// It panics with ErrOutOfBounds when c is not playable.
func (f *Field) Value(c pathing.Cell) float64 {
	if !f.bounds.Contains(c) {
		panic(fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, c.X, c.Y))
	}

	return f.values[f.bounds.Index(c)]
}

// Has reports whether c is playable and has an openness value.
func (f *Field) Has(c pathing.Cell) bool {
	return f.bounds.Contains(c) && f.values[f.bounds.Index(c)] != NotComputed
}

// NeighborhoodAverage averages openness over the disk of the given radius
// around center. Every sampled cell counts, so unpathable and off-map cells
// pull the average down. A negative radius yields 0.
func (f *Field) NeighborhoodAverage(center pathing.Cell, radius float64) float64 {
	if radius < 0 {
		return 0
	}
	r := int(radius + 1)
	total, sampled := 0.0, 0
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if math.Hypot(float64(dx), float64(dy)) > radius {
				continue
			}
			sampled++
			c := center.Add(pathing.Cell{X: dx, Y: dy})
			if f.Has(c) {
				total += f.values[f.bounds.Index(c)]
			}
		}
	}

	return total / float64(sampled)
}
