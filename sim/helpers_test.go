package sim_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robovillage/config"
	"github.com/katalvlaran/robovillage/robot"
	"github.com/katalvlaran/robovillage/village"
)

// lineWorld is A-B-C with coordinates giving hop lengths 5 (A-B) and 4 (B-C).
func lineWorld(tb testing.TB) *config.World {
	tb.Helper()
	c := config.Config{
		Depot:       "A",
		ParcelCount: 1,
		Robot:       robot.KindGoalOriented,
		MaxTurns:    10,
		Edges:       []string{"A-B", "B-C"},
		Coordinates: map[string][]float64{"A": {0, 0}, "B": {3, 4}, "C": {3, 0}},
	}
	w, err := c.Build()
	require.NoError(tb, err)
	return w
}

func mustState(tb testing.TB, w *config.World, place string, parcels ...village.Parcel) *village.State {
	tb.Helper()
	s, err := village.NewState(w.Graph, place, parcels)
	require.NoError(tb, err)
	return s
}

// scripted replays a fixed list of directions, repeating the last one.
type scripted struct {
	dirs []string
	i    int
}

func (s *scripted) Kind() robot.Kind { return robot.KindRandom }

func (s *scripted) Decide(*village.State, robot.Memory) (robot.Action, error) {
	d := s.dirs[min(s.i, len(s.dirs)-1)]
	s.i++
	return robot.Action{Direction: d}, nil
}

var errBroken = errors.New("broken strategy")

type failing struct{}

func (failing) Kind() robot.Kind { return robot.KindGoalOriented }

func (failing) Decide(*village.State, robot.Memory) (robot.Action, error) {
	return robot.Action{}, errBroken
}
