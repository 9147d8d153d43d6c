package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robovillage/bfs"
)

var villageRoads = []string{
	"Alice's House-Bob's House", "Alice's House-Cabin",
	"Alice's House-Post Office", "Bob's House-Town Hall",
	"Daria's House-Ernie's House", "Daria's House-Town Hall",
	"Ernie's House-Grete's House", "Grete's House-Farm",
	"Grete's House-Shop", "Marketplace-Farm",
	"Marketplace-Post Office", "Marketplace-Shop",
	"Marketplace-Town Hall", "Shop-Town Hall",
}

func TestFindRoute_Scenario(t *testing.T) {
	g := mustGraph(t, "A-B", "B-C")

	route, err := bfs.FindRoute(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, route)

	route, err = bfs.FindRoute(g, "B", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, route)

	route, err = bfs.FindRoute(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, route)
}

func TestFindRoute_Village(t *testing.T) {
	g := mustGraph(t, villageRoads...)

	route, err := bfs.FindRoute(g, "Post Office", "Shop")
	require.NoError(t, err)
	assert.Equal(t, []string{"Marketplace", "Shop"}, route)

	route, err = bfs.FindRoute(g, "Cabin", "Ernie's House")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice's House", "Bob's House", "Town Hall", "Daria's House", "Ernie's House"}, route)
}

// TestFindRoute_Optimality checks every (from, to) pair of the village against
// an independent BFS depth computation and the adjacency of consecutive hops.
func TestFindRoute_Optimality(t *testing.T) {
	g := mustGraph(t, villageRoads...)

	for _, from := range g.Locations() {
		res, err := bfs.BFS(g, from)
		require.NoError(t, err)
		for _, to := range g.Locations() {
			route, err := bfs.FindRoute(g, from, to)
			require.NoError(t, err, "%s → %s", from, to)
			require.Len(t, route, res.Hops[to], "%s → %s", from, to)
			if from == to {
				continue
			}
			require.Equal(t, to, route[len(route)-1])
			prev := from
			for _, hop := range route {
				require.True(t, g.Adjacent(prev, hop), "%s → %s not a road", prev, hop)
				prev = hop
			}
		}
	}
}

func TestFindRoute_TieBreakByDeclarationOrder(t *testing.T) {
	g := mustGraph(t, "A-B", "A-C", "B-D", "C-D")
	route, err := bfs.FindRoute(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, route)

	g = mustGraph(t, "A-C", "A-B", "B-D", "C-D")
	route, err = bfs.FindRoute(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, route)
}

func TestFindRoute_SameLocation(t *testing.T) {
	g := mustGraph(t, "A-B")
	route, err := bfs.FindRoute(g, "A", "A")
	require.NoError(t, err)
	require.NotNil(t, route)
	assert.Empty(t, route)
}

func TestFindRoute_Errors(t *testing.T) {
	g := mustGraph(t, "A-B", "P-Q")

	_, err := bfs.FindRoute(nil, "A", "B")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.FindRoute(g, "Nowhere", "B")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.FindRoute(g, "A", "Nowhere")
	assert.ErrorIs(t, err, bfs.ErrTargetNotFound)

	route, err := bfs.FindRoute(g, "A", "Q")
	assert.ErrorIs(t, err, bfs.ErrRouteNotFound)
	assert.Nil(t, route, "not found is never an empty route")

	_, err = bfs.FindRoute(g, "A", "B", bfs.WithMaxHops(-2))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestFindRoute_Options(t *testing.T) {
	g := mustGraph(t, "A-B", "B-C", "C-D")

	_, err := bfs.FindRoute(g, "A", "D", bfs.WithMaxHops(2))
	assert.ErrorIs(t, err, bfs.ErrRouteNotFound)

	route, err := bfs.FindRoute(g, "A", "D", bfs.WithMaxHops(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, route)

	_, err = bfs.FindRoute(g, "A", "D", bfs.WithRoadFilter(func(_, to string) bool {
		return to != "C"
	}))
	assert.ErrorIs(t, err, bfs.ErrRouteNotFound)

	var reached []string
	_, err = bfs.FindRoute(g, "A", "D", bfs.WithOnReach(func(loc string, _ int) {
		reached = append(reached, loc)
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, reached)

	boom := errors.New("boom")
	_, err = bfs.FindRoute(g, "A", "D", bfs.WithOnVisit(func(loc string, _ int) error {
		if loc == "B" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.FindRoute(g, "A", "D", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindRoute_ResultIsFresh(t *testing.T) {
	g := mustGraph(t, villageRoads...)

	first, err := bfs.FindRoute(g, "Cabin", "Shop")
	require.NoError(t, err)
	want := append([]string(nil), first...)
	first[0] = "mutated"

	second, err := bfs.FindRoute(g, "Cabin", "Shop")
	require.NoError(t, err)
	assert.Equal(t, want, second)
}
