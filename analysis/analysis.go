package analysis

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathmap/choke"
	"github.com/katalvlaran/pathmap/config"
	"github.com/katalvlaran/pathmap/openness"
	"github.com/katalvlaran/pathmap/pathing"
	"github.com/katalvlaran/pathmap/shortestpath"
)

// Map is the analyzed state of one map.
type Map struct {
	cfg          *config.Config
	engine       *shortestpath.Engine
	bases        []*shortestpath.Base
	baseOpenness map[string]float64
	fields       [pathing.NumMovementTypes]*openness.Field
	chokes       []choke.Result
	elapsed      time.Duration
}

// Analyze runs every stage over o. A nil cfg selects config.Default();
// any other cfg is validated first, which also refreshes its Derived fields.
//
// Returns ErrOracleNil, config.ErrInvalid, shortestpath.ErrNoPatch for a
// base without nearby pathable cells, choke.ErrStartUnpathable, openness
// errors, or an error wrapping ErrAborted when a lower layer panicked.
func Analyze(o pathing.Oracle, starts []choke.StartLocation, bases []BaseLocation, cfg *config.Config, opts ...Option) (m *Map, err error) {
	if o == nil {
		return nil, ErrOracleNil
	}
	if cfg == nil {
		cfg = config.Default()
	} else if err = cfg.Validate(); err != nil {
		return nil, err
	}
	op := DefaultOptions()
	for _, opt := range opts {
		opt(&op)
	}
	log := op.Logger

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cause, ok := r.(error)
		if !ok {
			cause = fmt.Errorf("%v", r)
		}
		m, err = nil, fmt.Errorf("%w: %w", ErrAborted, cause)
		log.Error("analysis aborted", slog.String("error", cause.Error()))
	}()

	began := time.Now()
	m = &Map{
		cfg:          cfg,
		baseOpenness: make(map[string]float64, len(bases)),
	}

	// 1) graphs
	m.engine = shortestpath.New(o, shortestpath.WithLogger(log))

	// 2) base patches
	for _, bl := range bases {
		b := &shortestpath.Base{Name: bl.Name, Loc: bl.Loc}
		if err = m.engine.AssignPatches(b, cfg.Bases.PatchCastCells); err != nil {
			return nil, err
		}
		m.bases = append(m.bases, b)
	}

	// 3) openness
	for _, t := range cfg.Derived.OpennessTypes {
		if m.fields[t] != nil {
			continue
		}
		f, ferr := openness.Compute(m.engine.Graph(t),
			openness.WithContext(op.Ctx), openness.WithLogger(log))
		if ferr != nil {
			return nil, ferr
		}
		m.fields[t] = f
	}
	primary := m.fields[cfg.Derived.OpennessTypes[0]]
	for _, b := range m.bases {
		c := m.engine.Bounds().CellOf(b.Loc)
		m.baseOpenness[b.Name] = primary.NeighborhoodAverage(c, cfg.Openness.NeighborhoodRadius)
	}

	// 4) chokes
	det, err := choke.New(m.engine,
		choke.WithThreshold(cfg.Choke.DetectionThreshold),
		choke.WithAgreement(cfg.Choke.DetectionAgreement),
		choke.WithMovementType(cfg.Derived.ChokeType),
		choke.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if m.chokes, err = det.LocateAll(starts); err != nil {
		return nil, err
	}

	m.elapsed = time.Since(began)
	log.Info("analysis complete", slog.Any("stats", m.Stats()))

	return m, nil
}

// Engine returns the shortest-path engine for further distance queries.
func (m *Map) Engine() *shortestpath.Engine {
	return m.engine
}

// Config returns the configuration the map was analyzed with.
func (m *Map) Config() *config.Config {
	return m.cfg
}

// Field returns the openness field of t, if computed.
func (m *Map) Field(t pathing.MovementType) (*openness.Field, bool) {
	if !t.Valid() || m.fields[t] == nil {
		return nil, false
	}

	return m.fields[t], true
}

// Openness returns the openness of c under t, or openness.NotComputed for
// an unpathable cell. Returns ErrNotComputed or pathing.ErrOutOfBounds.
func (m *Map) Openness(c pathing.Cell, t pathing.MovementType) (float64, error) {
	f, ok := m.Field(t)
	if !ok {
		return openness.NotComputed, fmt.Errorf("%w: %s", ErrNotComputed, t)
	}
	if !m.engine.Bounds().Contains(c) {
		return openness.NotComputed, fmt.Errorf("%w: (%d, %d)", pathing.ErrOutOfBounds, c.X, c.Y)
	}

	return f.Value(c), nil
}

// OpennessSummary is the per-type running maximum and average.
type OpennessSummary struct {
	Max     float64
	Average float64
	Passes  int
}

// OpennessStats returns the summary of t, if computed.
func (m *Map) OpennessStats(t pathing.MovementType) (OpennessSummary, bool) {
	f, ok := m.Field(t)
	if !ok {
		return OpennessSummary{}, false
	}

	return OpennessSummary{Max: f.Max(), Average: f.Average(), Passes: f.Passes()}, true
}

// ChokePoint returns the main choke of the named start location. It
// reports false for an unknown name or an undefined choke.
func (m *Map) ChokePoint(name string) (pathing.Point, bool) {
	for _, r := range m.chokes {
		if r.Start.Name == name {
			return r.Choke, r.Found
		}
	}

	return choke.NotFound, false
}

// Chokes returns the choke results in start-location order.
func (m *Map) Chokes() []choke.Result {
	return append([]choke.Result(nil), m.chokes...)
}

// Bases returns the bases with their patch sets. The bases must not be
// modified.
func (m *Map) Bases() []*shortestpath.Base {
	return append([]*shortestpath.Base(nil), m.bases...)
}

// BaseOpenness returns the average openness around the named base under
// the first configured openness type.
func (m *Map) BaseOpenness(name string) (float64, bool) {
	v, ok := m.baseOpenness[name]

	return v, ok
}
