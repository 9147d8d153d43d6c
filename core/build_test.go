package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/robovillage/core"
)

type BuildSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *BuildSuite) SetupTest() {
	g, err := core.BuildGraph(villageRoads)
	s.Require().NoError(err)
	s.g = g
}

func (s *BuildSuite) TestSymmetry() {
	require := require.New(s.T())
	for _, road := range villageRoads {
		from, to, err := core.ParseEdge(road)
		require.NoError(err)
		require.True(s.g.Adjacent(from, to), "%s should reach %s", from, to)
		require.True(s.g.Adjacent(to, from), "%s should reach %s", to, from)
	}
}

func (s *BuildSuite) TestCounts() {
	require := require.New(s.T())
	require.Equal(11, s.g.LocationCount())
	require.Equal(len(villageRoads), s.g.EdgeCount())

	// handshake lemma: Σdeg = 2|E|
	total := 0
	for _, loc := range s.g.Locations() {
		d, err := s.g.Degree(loc)
		require.NoError(err)
		total += d
	}
	require.Equal(2*s.g.EdgeCount(), total)
}

func (s *BuildSuite) TestDeclarationOrder() {
	require := require.New(s.T())
	nbrs, err := s.g.Neighbors("Alice's House")
	require.NoError(err)
	require.Equal([]string{"Bob's House", "Cabin", "Post Office"}, nbrs)

	nbrs, err = s.g.Neighbors("Marketplace")
	require.NoError(err)
	require.Equal([]string{"Farm", "Post Office", "Shop", "Town Hall"}, nbrs)

	locs := s.g.Locations()
	require.Equal([]string{
		"Alice's House", "Bob's House", "Cabin", "Post Office", "Town Hall",
		"Daria's House", "Ernie's House", "Grete's House", "Farm", "Shop", "Marketplace",
	}, locs)
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func TestParseEdge(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		from    string
		to      string
		wantErr error
	}{
		{name: "plain", in: "A-B", from: LocA, to: LocB},
		{name: "spaces trimmed", in: " Town Hall - Shop ", from: "Town Hall", to: "Shop"},
		{name: "no separator", in: "AB", wantErr: core.ErrMalformedEdge},
		{name: "three endpoints", in: "A-B-C", wantErr: core.ErrMalformedEdge},
		{name: "empty endpoint", in: "A-", wantErr: core.ErrMalformedEdge},
		{name: "loop", in: "A-A", wantErr: core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to, err := core.ParseEdge(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.from, from)
			require.Equal(t, tc.to, to)
		})
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := core.BuildGraph(nil)
	require.ErrorIs(t, err, core.ErrNoEdges)

	_, err = core.BuildGraph([]string{"A-B", "B"})
	require.ErrorIs(t, err, core.ErrMalformedEdge)

	_, err = core.BuildGraph([]string{"A-B", "B-A"})
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	g, err := core.BuildGraph([]string{"A-B", "C-C"})
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.Nil(t, g, "no partial graph on failure")
}
