// Package analysis defines the inputs, options and errors of a map
// analysis run.
package analysis

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/pathmap/pathing"
)

// Sentinel errors for analysis.
var (
	// ErrAborted wraps an internal-consistency failure raised while
	// analyzing; the wrapped error names the violated invariant.
	ErrAborted = errors.New("analysis: aborted on internal error")

	// ErrOracleNil is returned if Analyze receives a nil oracle.
	ErrOracleNil = errors.New("analysis: oracle is nil")

	// ErrNotComputed indicates a query for a movement type without an
	// openness field.
	ErrNotComputed = errors.New("analysis: openness not computed for movement type")
)

// BaseLocation is a named base position handed to Analyze.
type BaseLocation struct {
	Name string
	Loc  pathing.Point
}

// Options configures Analyze.
//
//	Ctx    – passed to the openness computation.
//	Logger – structured logger shared by every stage (default: discard).
type Options struct {
	Ctx    context.Context
	Logger *slog.Logger
}

// Option represents a functional option for Analyze.
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
