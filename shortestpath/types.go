// Package shortestpath defines the sentinel values, errors, options and
// cache types of the shortest-path engine.
package shortestpath

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pathmap/pathgraph"
	"github.com/katalvlaran/pathmap/pathing"
)

// Infinity is the distance of an unreachable target. It is large but finite
// so sums and comparisons with it stay well defined; no map has a route of
// millions of cells.
const Infinity = 9000000.0

// DefaultPatchCastCells is how far AssignPatches casts from a base sitting
// on unpathable cells.
const DefaultPatchCastCells = 10

// Sentinel errors. ErrQueueNotEmpty, ErrReentrant, ErrUnknownType and
// ErrSourceOutOfRange are raised via panic: they mark corrupted engine state
// or caller misuse.
var (
	// ErrQueueNotEmpty indicates a Dijkstra run started while a previous run
	// left items in the shared priority queue.
	ErrQueueNotEmpty = errors.New("shortestpath: priority queue not empty when starting a new run")

	// ErrReentrant indicates a query issued while a Dijkstra run is in flight.
	ErrReentrant = errors.New("shortestpath: engine is not reentrant")

	// ErrUnknownType indicates a movement type the engine has no graph for.
	ErrUnknownType = errors.New("shortestpath: no graph for movement type")

	// ErrSourceOutOfRange indicates a source id outside the graph's arena.
	ErrSourceOutOfRange = errors.New("shortestpath: source node out of range")

	// ErrNoPatch indicates no pathable cell was found near a base.
	ErrNoPatch = errors.New("shortestpath: cannot find any pathable cells near base")
)

// EffectivelyInfinite reports whether d should be treated as unreachable.
func EffectivelyInfinite(d float64) bool {
	return d > Infinity-1
}

// Tree is the cached result of one single-source run: Dist[v] is the
// distance from Source to v and Pred[v] the node before v on one shortest
// path. Unreached nodes keep Infinity and NoNode. Trees are write-once.
type Tree struct {
	Source pathgraph.NodeID
	Dist   []float64
	Pred   []pathgraph.NodeID
}

// Patch pairs a pathable node near a base with its straight-line distance
// to the base's position.
type Patch struct {
	Node pathgraph.NodeID
	Dist float64
}

// Base is a map location whose position may sit over unpathable cells
// (for example enclosed by destructible obstacles). Queries against a base
// minimize over its per-movement-type patch set.
type Base struct {
	Name    string
	Loc     pathing.Point
	Patches [pathing.NumMovementTypes][]Patch
}

// Options configures an Engine.
//
//	Types  – movement types to build graphs for (default: all seven).
//	Logger – structured logger (default: discard).
type Options struct {
	Types  []pathing.MovementType
	Logger *slog.Logger
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithMovementTypes restricts the engine to the given movement types.
// Panics with ErrUnknownType on an invalid type.
func WithMovementTypes(types ...pathing.MovementType) Option {
	for _, t := range types {
		if !t.Valid() {
			panic(fmt.Errorf("%w: %s", ErrUnknownType, t))
		}
	}

	return func(o *Options) {
		o.Types = append([]pathing.MovementType(nil), types...)
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns every movement type and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Types:  pathing.AllMovementTypes(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
