// Package shortestpath answers distance and route queries over the pathing
// graphs with lazily cached single-source Dijkstra.
//
// The first query from a source node runs Dijkstra over the whole graph of
// that movement type and caches the distance and predecessor arrays; every
// later query from the same source is a slice lookup.
//
// Complexity:
//
//   - First query from a source: O((V + E) log V) with E ≤ 8V.
//   - Cached queries:            O(1).
//   - Memory:                    O(V) per distinct source and movement type.
//
// Notes on implementation choices:
//
//   - A single indexable heap (pqueue) is owned by the Engine and reused by
//     every run; ids are seeded at Infinity and lowered with DecreaseKey,
//     so each node is in the heap exactly once.
//   - The Engine is not reentrant and not safe for concurrent use. A run
//     that finds the heap non-empty panics with ErrQueueNotEmpty.
package shortestpath

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathmap/pathgraph"
	"github.com/katalvlaran/pathmap/pathing"
	"github.com/katalvlaran/pathmap/pqueue"
)

// Engine owns one graph per enabled movement type, the per-source cache and
// the shared priority queue.
type Engine struct {
	bounds  pathing.Bounds
	types   []pathing.MovementType
	graphs  [pathing.NumMovementTypes]*pathgraph.Graph
	trees   [pathing.NumMovementTypes]map[pathgraph.NodeID]*Tree
	pq      *pqueue.Queue
	running bool
	runs    int
	logger  *slog.Logger
}

// New builds the graphs of the configured movement types from o.
// Complexity: O(T×W×H) for T movement types.
func New(o pathing.Oracle, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		bounds: o.Bounds(),
		types:  cfg.Types,
		logger: cfg.Logger,
	}
	largest := 0
	for _, t := range cfg.Types {
		g := pathgraph.Build(o, t)
		e.graphs[t] = g
		e.trees[t] = make(map[pathgraph.NodeID]*Tree)
		if g.Len() > largest {
			largest = g.Len()
		}
		e.logger.Info("pathing graph built",
			slog.String("type", t.String()),
			slog.Int("nodes", g.Len()),
			slog.Int("edges", g.EdgeCount()))
	}
	e.pq = pqueue.New(largest)

	return e
}

// Types returns the movement types the engine has graphs for.
func (e *Engine) Types() []pathing.MovementType {
	return append([]pathing.MovementType(nil), e.types...)
}

// Bounds returns the playable area.
func (e *Engine) Bounds() pathing.Bounds {
	return e.bounds
}

// Graph returns the graph of movement type t.
// Panics with ErrUnknownType if the engine was built without t.
func (e *Engine) Graph(t pathing.MovementType) *pathgraph.Graph {
	if !t.Valid() || e.graphs[t] == nil {
		panic(fmt.Errorf("%w: %s", ErrUnknownType, t))
	}

	return e.graphs[t]
}

// Runs returns how many Dijkstra runs the engine has executed.
func (e *Engine) Runs() int {
	return e.runs
}

// Tree returns the cached single-source result for u, computing it on the
// first request. The returned slices must not be modified.
func (e *Engine) Tree(u pathgraph.NodeID, t pathing.MovementType) *Tree {
	g := e.Graph(t)
	if tr, ok := e.trees[t][u]; ok {
		return tr
	}
	tr := e.compute(g, u)
	e.trees[t][u] = tr

	return tr
}

// Distance returns the shortest-path distance from u to v, or Infinity.
// Distance(u, u) is 0 and never triggers a run.
func (e *Engine) Distance(u, v pathgraph.NodeID, t pathing.MovementType) float64 {
	if u == v {
		return 0
	}

	return e.Tree(u, t).Dist[v]
}

// Predecessor returns the node before v on a shortest path from u.
// It reports false when u == v or v is unreachable.
func (e *Engine) Predecessor(u, v pathgraph.NodeID, t pathing.MovementType) (pathgraph.NodeID, bool) {
	if u == v {
		return pathgraph.NoNode, false
	}
	p := e.Tree(u, t).Pred[v]

	return p, p != pathgraph.NoNode
}

// Path returns the node sequence from u to v inclusive, or nil when v is
// unreachable from u.
func (e *Engine) Path(u, v pathgraph.NodeID, t pathing.MovementType) []pathgraph.NodeID {
	if u == v {
		return []pathgraph.NodeID{u}
	}
	tr := e.Tree(u, t)
	if tr.Pred[v] == pathgraph.NoNode {
		return nil
	}

	var path []pathgraph.NodeID
	for cur := v; cur != pathgraph.NoNode; cur = tr.Pred[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PointNode resolves a map point to its node under t. Points over
// unpathable or unplayable cells report false; that is a common case.
func (e *Engine) PointNode(p pathing.Point, t pathing.MovementType) (pathgraph.NodeID, bool) {
	return e.Graph(t).AtPoint(p)
}

// PointDistance returns the distance between two map points, or Infinity
// when either lies on an unpathable cell.
func (e *Engine) PointDistance(p, q pathing.Point, t pathing.MovementType) float64 {
	u, ok := e.PointNode(p, t)
	if !ok {
		return Infinity
	}
	v, ok := e.PointNode(q, t)
	if !ok {
		return Infinity
	}

	return e.Distance(u, v, t)
}

// compute runs single-source Dijkstra from src over g.
//
// Preconditions: src inside g, no run in flight and the shared queue empty.
// Violations panic before the queue is touched.
func (e *Engine) compute(g *pathgraph.Graph, src pathgraph.NodeID) *Tree {
	if src < 0 || int(src) >= g.Len() {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrSourceOutOfRange, src, g.Len()))
	}
	if e.running {
		panic(ErrReentrant)
	}
	if !e.pq.IsEmpty() {
		panic(fmt.Errorf("%w: %d items left", ErrQueueNotEmpty, e.pq.Len()))
	}
	e.running = true
	defer func() { e.running = false }()

	n := g.Len()
	tr := &Tree{
		Source: src,
		Dist:   make([]float64, n),
		Pred:   make([]pathgraph.NodeID, n),
	}

	// 1) every node starts at Infinity with no predecessor
	e.pq.Reset(n)
	for id := 0; id < n; id++ {
		e.pq.Insert(id, Infinity)
		tr.Pred[id] = pathgraph.NoNode
	}
	e.pq.DecreaseKey(int(src), 0)

	// 2) settle in non-decreasing distance order and relax all 16 slots
	for !e.pq.IsEmpty() {
		id, d := e.pq.ExtractMin()
		u := pathgraph.NodeID(id)
		tr.Dist[u] = d
		g.Neighbors(u, func(_ int, v pathgraph.NodeID, w float64) {
			if !e.pq.Contains(int(v)) {
				return
			}
			if nd := d + w; nd < e.pq.Key(int(v)) {
				e.pq.DecreaseKey(int(v), nd)
				tr.Pred[v] = u
			}
		})
	}

	e.runs++
	e.logger.Debug("shortest paths computed",
		slog.String("type", g.Type().String()),
		slog.Int("source", int(src)),
		slog.Int("nodes", n))

	return tr
}
