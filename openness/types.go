// Package openness defines the sentinel values, errors and options of the
// openness field.
package openness

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/pathmap/pathgraph"
	"github.com/katalvlaran/pathmap/pathing"
)

// NotComputed is the value of a cell that has no openness: unpathable cells
// and cells the field never reached.
const NotComputed = -1.0

// Sentinel errors for openness computation and lookup.
var (
	// ErrGraphNil is returned if a nil graph is passed to Compute.
	ErrGraphNil = errors.New("openness: graph is nil")

	// ErrStalled is returned when a pass sets no new cell before every node
	// has a value.
	ErrStalled = errors.New("openness: propagation stalled before every cell was set")

	// ErrOutOfBounds is raised (via panic) by Value on an unplayable cell.
	ErrOutOfBounds = errors.New("openness: cell outside playable area")
)

// Graph is the read-only view Compute needs. *pathgraph.Graph satisfies it.
type Graph interface {
	Type() pathing.MovementType
	Bounds() pathing.Bounds
	Len() int
	Node(id pathgraph.NodeID) *pathgraph.Node
	Neighbors(id pathgraph.NodeID, fn func(slot int, v pathgraph.NodeID, w float64))
}

// Options configures Compute.
//
//	Ctx    – checked once per pass; cancellation aborts with ctx.Err().
//	Logger – structured logger (default: discard).
type Options struct {
	Ctx    context.Context
	Logger *slog.Logger
}

// Option represents a functional option for Compute.
type Option func(*Options)

// WithContext sets a context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
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

// DefaultOptions returns a background context and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
