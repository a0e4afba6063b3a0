package shortestpath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathmap/pathgraph"
	"github.com/katalvlaran/pathmap/pathing"
	"github.com/katalvlaran/pathmap/shortestpath"
)

// TestBaseDistance_SinglePatch is the enclosed-base scenario: the base cell
// is blocked and exactly one adjacent node is reachable by ray casting.
//
//	###
//	#b#
//	#.#
//	...
func TestBaseDistance_SinglePatch(t *testing.T) {
	fx, err := pathing.FromRows([]string{"###", "#b#", "#.#", "..."})
	require.NoError(t, err)
	require.Len(t, fx.Bases, 1)

	mt := pathing.GroundWithObstacles
	e := shortestpath.New(fx.Grid, shortestpath.WithMovementTypes(mt))
	b := &shortestpath.Base{Name: "enclosed", Loc: fx.Bases[0]}
	require.NoError(t, e.AssignPatches(b, 0))

	require.Len(t, b.Patches[mt], 1)
	patch := b.Patches[mt][0]
	assert.InDelta(t, 1.0, patch.Dist, eps)

	g := e.Graph(mt)
	want, _ := g.At(pathing.Cell{X: 1, Y: 1})
	assert.Equal(t, want, patch.Node)

	u, _ := g.At(pathing.Cell{X: 0, Y: 0})
	d := e.NodeBaseDistance(u, b, mt)
	assert.InDelta(t, 1.0+e.Distance(u, patch.Node, mt), d, eps)
	assert.InDelta(t, 1.0+math.Sqrt2, d, eps)

	assert.InDelta(t, d, e.PointBaseDistance(pathing.Point{X: 0.5, Y: 0.5}, b, mt), eps)
	assert.Equal(t, shortestpath.Infinity, e.PointBaseDistance(pathing.Point{X: 0.5, Y: 3.5}, b, mt))

	pred, ok := e.BasePredecessor(u, b, mt)
	require.True(t, ok)
	assert.Equal(t, patch.Node, pred)
}

// TestAssignPatches_OnNode uses the base cell itself when it is pathable.
func TestAssignPatches_OnNode(t *testing.T) {
	fx, err := pathing.FromRows([]string{"..b.."})
	require.NoError(t, err)
	e := shortestpath.New(fx.Grid, shortestpath.WithMovementTypes(pathing.GroundClear, pathing.GroundWithObstacles))
	b := &shortestpath.Base{Name: "rocks", Loc: fx.Bases[0]}
	require.NoError(t, e.AssignPatches(b, 3))

	// rocks cleared: the base sits on its own node
	require.Len(t, b.Patches[pathing.GroundClear], 1)
	assert.Equal(t, 0.0, b.Patches[pathing.GroundClear][0].Dist)

	// rocks present: one patch east and one west
	require.Len(t, b.Patches[pathing.GroundWithObstacles], 2)
	for _, p := range b.Patches[pathing.GroundWithObstacles] {
		assert.InDelta(t, 1.0, p.Dist, eps)
	}
	assert.Empty(t, b.Patches[pathing.Buildable], "types the engine lacks stay empty")
}

// TestAssignPatches_NoPatch reports ErrNoPatch when every ray misses.
func TestAssignPatches_NoPatch(t *testing.T) {
	fx, err := pathing.FromRows([]string{"#b#"})
	require.NoError(t, err)
	e := shortestpath.New(fx.Grid, shortestpath.WithMovementTypes(pathing.GroundWithObstacles))
	err = e.AssignPatches(&shortestpath.Base{Name: "walled", Loc: fx.Bases[0]}, 0)
	require.ErrorIs(t, err, shortestpath.ErrNoPatch)
}

// TestBaseToBase minimizes over both patch sets.
func TestBaseToBase(t *testing.T) {
	fx, err := pathing.FromRows([]string{
		".b......b.",
		"..........",
	})
	require.NoError(t, err)
	mt := pathing.GroundWithObstacles
	e := shortestpath.New(fx.Grid, shortestpath.WithMovementTypes(mt))

	b1 := &shortestpath.Base{Name: "west", Loc: fx.Bases[0]}
	b2 := &shortestpath.Base{Name: "east", Loc: fx.Bases[1]}
	require.NoError(t, e.AssignPatches(b1, 0))
	require.NoError(t, e.AssignPatches(b2, 0))

	// (1,1)->(8,1): patches (2,1) and (7,1) at 1.0 each, 5 cells between
	d := e.BaseDistance(b1, b2, mt)
	assert.InDelta(t, 7.0, d, eps)
	assert.InDelta(t, d, e.BaseDistance(b2, b1, mt), eps)

	u, v, ok := e.BasePredecessors(b1, b2, mt)
	require.True(t, ok)
	g := e.Graph(mt)
	assert.Equal(t, pathing.Cell{X: 2, Y: 1}, g.Node(u).Cell)
	assert.Equal(t, pathing.Cell{X: 7, Y: 1}, g.Node(v).Cell)

	empty := &shortestpath.Base{Name: "nowhere"}
	assert.Equal(t, shortestpath.Infinity, e.BaseDistance(b1, empty, mt))
	_, _, ok = e.BasePredecessors(b1, empty, mt)
	assert.False(t, ok)
	_, ok = e.BasePredecessor(pathgraph.NodeID(0), empty, mt)
	assert.False(t, ok)
}
