package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robovillage/core"
)

func buildLine(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.BuildGraph([]string{"A-B", "B-C", "C-D"})
	require.NoError(t, err)
	return g
}

func TestNeighbors_Errors(t *testing.T) {
	g := buildLine(t)

	_, err := g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyLocation)

	_, err = g.Neighbors(LocMissing)
	assert.ErrorIs(t, err, core.ErrLocationNotFound)

	_, err = g.Degree("")
	assert.ErrorIs(t, err, core.ErrEmptyLocation)

	_, err = g.Degree(LocMissing)
	assert.ErrorIs(t, err, core.ErrLocationNotFound)
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := buildLine(t)

	nbrs, err := g.Neighbors(LocB)
	require.NoError(t, err)
	require.Equal(t, []string{LocA, LocC}, nbrs)

	nbrs[0] = "mutated"
	again, err := g.Neighbors(LocB)
	require.NoError(t, err)
	assert.Equal(t, []string{LocA, LocC}, again)

	locs := g.Locations()
	locs[0] = "mutated"
	assert.Equal(t, []string{LocA, LocB, LocC, LocD}, g.Locations())

	adj := g.AdjacencyList()
	adj[LocB][0] = "mutated"
	assert.Equal(t, []string{LocA, LocC}, g.AdjacencyList()[LocB])

	edges := g.Edges()
	edges[0][0] = "mutated"
	assert.Equal(t, [2]string{LocA, LocB}, g.Edges()[0])
}

func TestAdjacentAndHasLocation(t *testing.T) {
	g := buildLine(t)

	assert.True(t, g.HasLocation(LocA))
	assert.False(t, g.HasLocation(LocMissing))

	assert.True(t, g.Adjacent(LocA, LocB))
	assert.True(t, g.Adjacent(LocB, LocA))
	assert.False(t, g.Adjacent(LocA, LocC))
	assert.False(t, g.Adjacent(LocMissing, LocA))

	d, err := g.Degree(LocB)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}
