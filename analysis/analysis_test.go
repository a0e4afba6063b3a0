package analysis_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathmap/analysis"
	"github.com/katalvlaran/pathmap/choke"
	"github.com/katalvlaran/pathmap/config"
	"github.com/katalvlaran/pathmap/pathing"
	"github.com/katalvlaran/pathmap/shortestpath"
)

var twoRooms = []string{
	"#########",
	"#S..#...#",
	"#.B.....#",
	"#...#..S#",
	"#########",
}

func inputs(t *testing.T, rows []string) (*pathing.Fixture, []choke.StartLocation, []analysis.BaseLocation) {
	t.Helper()
	fx, err := pathing.FromRows(rows)
	require.NoError(t, err)
	var starts []choke.StartLocation
	for i, p := range fx.Starts {
		starts = append(starts, choke.StartLocation{Name: string(rune('A' + i)), Loc: p})
	}
	var bases []analysis.BaseLocation
	for i, p := range fx.Bases {
		bases = append(bases, analysis.BaseLocation{Name: string(rune('a' + i)), Loc: p})
	}

	return fx, starts, bases
}

// AnalyzeSuite runs one analysis and checks the read surface.
type AnalyzeSuite struct {
	suite.Suite
	m   *analysis.Map
	log bytes.Buffer
}

func (s *AnalyzeSuite) SetupSuite() {
	fx, starts, bases := inputs(s.T(), twoRooms)
	logger := slog.New(slog.NewTextHandler(&s.log, nil))
	m, err := analysis.Analyze(fx.Grid, starts, bases, nil, analysis.WithLogger(logger))
	s.Require().NoError(err)
	s.m = m
}

func (s *AnalyzeSuite) TestChokes() {
	p, ok := s.m.ChokePoint("A")
	s.True(ok)
	s.Equal(pathing.Point{X: 4.5, Y: 2.5}, p)

	p, ok = s.m.ChokePoint("nobody")
	s.False(ok)
	s.Equal(choke.NotFound, p)

	s.Len(s.m.Chokes(), 2)
}

func (s *AnalyzeSuite) TestOpenness() {
	v, err := s.m.Openness(pathing.Cell{X: 1, Y: 3}, pathing.GroundWithObstacles)
	s.Require().NoError(err)
	s.Equal(1.0, v)

	_, err = s.m.Openness(pathing.Cell{X: 1, Y: 3}, pathing.Buildable)
	s.ErrorIs(err, analysis.ErrNotComputed)
	_, err = s.m.Openness(pathing.Cell{X: 9, Y: 0}, pathing.GroundClear)
	s.ErrorIs(err, pathing.ErrOutOfBounds)

	sum, ok := s.m.OpennessStats(pathing.GroundClear)
	s.True(ok)
	s.GreaterOrEqual(sum.Max, 1.0)
	_, ok = s.m.OpennessStats(pathing.CliffWalkClear)
	s.False(ok)
}

func (s *AnalyzeSuite) TestBases() {
	bases := s.m.Bases()
	s.Require().Len(bases, 1)
	s.Len(bases[0].Patches[pathing.GroundClear], 1)

	v, ok := s.m.BaseOpenness("a")
	s.True(ok)
	s.Greater(v, 0.0)
	s.Less(v, 2.0)
}

func (s *AnalyzeSuite) TestStats() {
	st := s.m.Stats()
	s.Len(st.Graphs, int(pathing.NumMovementTypes))
	s.Equal(1, st.Bases)
	s.Equal(2, st.Starts)
	s.Equal(2, st.ChokesFound)
	s.Len(st.Openness, 2)
	s.Positive(st.DijkstraRuns)

	s.Contains(s.log.String(), "analysis complete")
	s.Contains(s.log.String(), "chokes_found=2")
	s.Equal(config.Default(), s.m.Config())
}

func TestAnalyzeSuite(t *testing.T) {
	suite.Run(t, new(AnalyzeSuite))
}

// overreach reports one column more than the grid holds and probes through
// the strict accessor, so graph building trips an out-of-bounds panic.
type overreach struct {
	*pathing.Grid
}

func (o overreach) Bounds() pathing.Bounds {
	b := o.Grid.Bounds()
	b.Width++

	return b
}

func (o overreach) PathingOutOfBoundsOK(c pathing.Cell, t pathing.MovementType) bool {
	return o.Grid.Pathing(c, t)
}

func TestAnalyze_Aborted(t *testing.T) {
	fx, starts, bases := inputs(t, twoRooms)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	m, err := analysis.Analyze(overreach{fx.Grid}, starts, bases, nil, analysis.WithLogger(logger))
	assert.Nil(t, m)
	require.ErrorIs(t, err, analysis.ErrAborted)
	require.ErrorIs(t, err, pathing.ErrOutOfBounds)
	assert.Contains(t, buf.String(), "analysis aborted")
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := analysis.Analyze(nil, nil, nil, nil)
	require.ErrorIs(t, err, analysis.ErrOracleNil)

	// the base sits farther than the patch rays reach from any open cell
	rows := []string{"#b#"}
	for i := 0; i < 10; i++ {
		rows = append(rows, "###")
	}
	fx, starts, _ := inputs(t, append(rows, "S.S"))
	walled := []analysis.BaseLocation{{Name: "walled", Loc: fx.Bases[0]}}
	_, err = analysis.Analyze(fx.Grid, starts, walled, nil)
	require.ErrorIs(t, err, shortestpath.ErrNoPatch)

	fx, starts, bases := inputs(t, twoRooms)
	rock := choke.StartLocation{Name: "rock", Loc: pathing.Point{X: 0.5, Y: 0.5}}
	_, err = analysis.Analyze(fx.Grid, append(starts, rock), bases, nil)
	require.ErrorIs(t, err, choke.ErrStartUnpathable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = analysis.Analyze(fx.Grid, starts, bases, nil, analysis.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_Config(t *testing.T) {
	fx, starts, bases := inputs(t, twoRooms)
	cfg, err := config.Parse([]byte("openness: {movement_types: [cliff-walk-clear]}\nchoke: {detection_threshold: 1}"))
	require.NoError(t, err)

	m, err := analysis.Analyze(fx.Grid, starts, bases, cfg)
	require.NoError(t, err)
	_, ok := m.OpennessStats(pathing.CliffWalkClear)
	assert.True(t, ok)
	_, ok = m.OpennessStats(pathing.GroundClear)
	assert.False(t, ok)
	_, found := m.ChokePoint("A")
	assert.False(t, found, "no point is narrower than one cell")
}

func TestAnalyze_ConfigRevalidated(t *testing.T) {
	fx, starts, bases := inputs(t, twoRooms)

	// a literal never went through Parse and is rejected as input
	_, err := analysis.Analyze(fx.Grid, starts, bases, &config.Config{})
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.NotErrorIs(t, err, analysis.ErrAborted)

	// edits after loading take effect
	cfg := config.Default()
	cfg.Openness.MovementTypes = []string{"cliff-walk-clear"}
	m, err := analysis.Analyze(fx.Grid, starts, bases, cfg)
	require.NoError(t, err)
	_, ok := m.OpennessStats(pathing.CliffWalkClear)
	assert.True(t, ok)
	_, ok = m.OpennessStats(pathing.GroundWithObstacles)
	assert.False(t, ok)

	cfg.Openness.MovementTypes = []string{"hovering"}
	_, err = analysis.Analyze(fx.Grid, starts, bases, cfg)
	require.ErrorIs(t, err, config.ErrInvalid)
}
