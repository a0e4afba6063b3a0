package openness_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathmap/openness"
	"github.com/katalvlaran/pathmap/pathgraph"
	"github.com/katalvlaran/pathmap/pathing"
)

const eps = 1e-9

var sqrt5 = math.Sqrt(5)

// room returns an n×n open room inside a one-cell '#' border.
func room(t testing.TB, n int) *pathing.Grid {
	t.Helper()
	rows := []string{strings.Repeat("#", n+2)}
	for i := 0; i < n; i++ {
		rows = append(rows, "#"+strings.Repeat(".", n)+"#")
	}
	rows = append(rows, strings.Repeat("#", n+2))
	fx, err := pathing.FromRows(rows)
	require.NoError(t, err)

	return fx.Grid
}

func roomField(t *testing.T) *openness.Field {
	t.Helper()
	g := pathgraph.Build(room(t, 12), pathing.GroundClear)
	f, err := openness.Compute(g)
	require.NoError(t, err)

	return f
}

// TestCompute_BorderIsOne checks every room cell touching the wall.
func TestCompute_BorderIsOne(t *testing.T) {
	f := roomField(t)
	require.Equal(t, 144, f.Len())
	for i := 1; i <= 12; i++ {
		for _, c := range []pathing.Cell{{X: i, Y: 1}, {X: i, Y: 12}, {X: 1, Y: i}, {X: 12, Y: i}} {
			assert.Equal(t, 1.0, f.Value(c), "cell %v", c)
		}
	}
	assert.Equal(t, openness.NotComputed, f.Value(pathing.Cell{X: 0, Y: 0}))
	assert.False(t, f.Has(pathing.Cell{X: 0, Y: 5}))
	assert.False(t, f.Has(pathing.Cell{X: -1, Y: 5}))
	assert.True(t, f.Has(pathing.Cell{X: 1, Y: 5}))
}

// TestCompute_Layers pins the layered values: the second ring is reached by
// a unit step, the third by a knight jump from the first.
func TestCompute_Layers(t *testing.T) {
	f := roomField(t)

	assert.InDelta(t, 2.0, f.Value(pathing.Cell{X: 2, Y: 6}), eps)
	assert.InDelta(t, 1+sqrt5, f.Value(pathing.Cell{X: 3, Y: 6}), eps)
	assert.InDelta(t, 2+2*sqrt5, f.Max(), eps)
	assert.Equal(t, 4, f.Passes())
	assert.Greater(t, f.Average(), 1.0)
	assert.Less(t, f.Average(), f.Max())
	assert.Equal(t, pathing.GroundClear, f.Type())
}

func TestCompute_ObstacleTypes(t *testing.T) {
	fx, err := pathing.FromRows([]string{
		".....",
		"..r..",
		".....",
	})
	require.NoError(t, err)
	center := pathing.Cell{X: 2, Y: 1}

	clear, err := openness.Compute(pathgraph.Build(fx.Grid, pathing.GroundClear))
	require.NoError(t, err)
	rocks, err := openness.Compute(pathgraph.Build(fx.Grid, pathing.GroundWithObstacles))
	require.NoError(t, err)

	assert.Equal(t, 2.0, clear.Value(center))
	assert.False(t, rocks.Has(center))
	assert.Equal(t, 1.0, rocks.Value(pathing.Cell{X: 1, Y: 1}))
}

func TestValue_OutOfBoundsPanics(t *testing.T) {
	f := roomField(t)
	assert.PanicsWithError(t, openness.ErrOutOfBounds.Error()+": (14, 0)", func() {
		f.Value(pathing.Cell{X: 14, Y: 0})
	})
}

func TestNeighborhoodAverage(t *testing.T) {
	f := roomField(t)

	assert.InDelta(t, 2+2*sqrt5, f.NeighborhoodAverage(pathing.Cell{X: 7, Y: 7}, 0), eps)
	want := (3*(2+2*sqrt5) + 2*(1+2*sqrt5)) / 5
	assert.InDelta(t, want, f.NeighborhoodAverage(pathing.Cell{X: 7, Y: 7}, 1), eps)

	// the two wall cells in the disk count as zero
	assert.InDelta(t, 0.6, f.NeighborhoodAverage(pathing.Cell{X: 1, Y: 1}, 1), eps)
	assert.Equal(t, 0.0, f.NeighborhoodAverage(pathing.Cell{X: 1, Y: 1}, -1))
}

// ring is a hand-made graph whose nodes all have four cardinal neighbors,
// so nothing ever seeds.
type ring struct {
	nodes []pathgraph.Node
}

func newRing(n int) *ring {
	r := &ring{nodes: make([]pathgraph.Node, n)}
	for i := range r.nodes {
		nd := &r.nodes[i]
		nd.ID = pathgraph.NodeID(i)
		nd.Cell = pathing.Cell{X: i}
		for s := range nd.Neighbors {
			nd.Neighbors[s] = pathgraph.NoNode
		}
		for s := 0; s < 4; s++ {
			nd.Neighbors[s] = pathgraph.NodeID((i + 1) % n)
		}
	}

	return r
}

func (r *ring) Type() pathing.MovementType {
	return pathing.GroundClear
}

func (r *ring) Bounds() pathing.Bounds {
	return pathing.Bounds{Width: len(r.nodes), Height: 1}
}

func (r *ring) Len() int {
	return len(r.nodes)
}

func (r *ring) Node(id pathgraph.NodeID) *pathgraph.Node {
	return &r.nodes[id]
}

func (r *ring) Neighbors(id pathgraph.NodeID, fn func(int, pathgraph.NodeID, float64)) {
	for s, v := range r.nodes[id].Neighbors {
		if v != pathgraph.NoNode {
			fn(s, v, pathgraph.Weights[s])
		}
	}
}

func TestCompute_Stalled(t *testing.T) {
	_, err := openness.Compute(newRing(3))
	require.ErrorIs(t, err, openness.ErrStalled)
}

func TestCompute_Errors(t *testing.T) {
	_, err := openness.Compute(nil)
	require.ErrorIs(t, err, openness.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := pathgraph.Build(room(t, 12), pathing.GroundClear)
	_, err = openness.Compute(g, openness.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompute_EmptyGraph(t *testing.T) {
	fx, err := pathing.FromRows([]string{"###"})
	require.NoError(t, err)
	f, err := openness.Compute(pathgraph.Build(fx.Grid, pathing.GroundClear))
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, 0.0, f.Average())
	assert.Equal(t, 1, f.Passes())
}
