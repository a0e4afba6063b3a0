// Package choke defines the options, errors and result types of the choke
// detector.
package choke

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pathmap/pathing"
)

// Defaults for the detector.
const (
	DefaultThreshold    = 12.0
	DefaultAgreement    = 7.0
	DefaultMovementType = pathing.GroundWithObstaclesNoResources
)

// NotFound is the choke of a start location whose choke is undefined.
var NotFound = pathing.Point{X: -1, Y: -1}

// Sentinel errors for choke detection.
var (
	// ErrStartUnpathable indicates a start location on an unpathable cell.
	ErrStartUnpathable = errors.New("choke: start location is in an unpathable cell")

	// ErrNoPath indicates two start locations without a route between them.
	ErrNoPath = errors.New("choke: no path between start locations")

	// ErrNoChoke indicates a route whose first half never narrows below
	// the detection threshold.
	ErrNoChoke = errors.New("choke: no point below detection threshold")

	// ErrEngineNil is returned if New receives a nil engine.
	ErrEngineNil = errors.New("choke: engine is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("choke: invalid option supplied")
)

// StartLocation is a named player start position.
type StartLocation struct {
	Name string
	Loc  pathing.Point
}

// Result is the choke of one start location. Choke is NotFound when Found
// is false.
type Result struct {
	Start StartLocation
	Choke pathing.Point
	Found bool
}

// Options configures a Detector.
//
//	Threshold    – choke distance a point must fall below to count (12).
//	Agreement    – largest distance between two agreeing candidates (7).
//	MovementType – graph the routes and spans use.
//	Logger       – structured logger (default: discard).
type Options struct {
	Threshold    float64
	Agreement    float64
	MovementType pathing.MovementType
	Logger       *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for New. An invalid Option is
// recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// WithThreshold sets the detection threshold; it must be positive.
func WithThreshold(v float64) Option {
	return func(o *Options) {
		if v <= 0 {
			o.err = fmt.Errorf("%w: threshold %v must be positive", ErrOptionViolation, v)
			return
		}
		o.Threshold = v
	}
}

// WithAgreement sets the candidate agreement tolerance; it must be
// non-negative.
func WithAgreement(v float64) Option {
	return func(o *Options) {
		if v < 0 {
			o.err = fmt.Errorf("%w: agreement %v must not be negative", ErrOptionViolation, v)
			return
		}
		o.Agreement = v
	}
}

// WithMovementType selects the graph used for routes and spans.
func WithMovementType(t pathing.MovementType) Option {
	return func(o *Options) {
		if !t.Valid() {
			o.err = fmt.Errorf("%w: movement type %s", ErrOptionViolation, t)
			return
		}
		o.MovementType = t
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

// DefaultOptions returns the detector defaults and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Threshold:    DefaultThreshold,
		Agreement:    DefaultAgreement,
		MovementType: DefaultMovementType,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
