package robot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robovillage/core"
	"github.com/katalvlaran/robovillage/village"
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

const depot = "Post Office"

func mustGraph(t *testing.T, roads ...string) *core.Graph {
	t.Helper()
	g, err := core.BuildGraph(roads)
	require.NoError(t, err)
	return g
}

func mustState(t *testing.T, g *core.Graph, place string, parcels ...village.Parcel) *village.State {
	t.Helper()
	s, err := village.NewState(g, place, parcels)
	require.NoError(t, err)
	return s
}
