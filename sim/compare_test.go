package sim_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robovillage/config"
	"github.com/katalvlaran/robovillage/robot"
	"github.com/katalvlaran/robovillage/sim"
)

func TestCompare_DefaultVillage(t *testing.T) {
	w, err := config.Default().Build()
	require.NoError(t, err)

	kinds := robot.Kinds()
	got, err := sim.Compare(context.Background(), w, kinds, 20, 5, 7)
	require.NoError(t, err)
	require.Len(t, got, len(kinds))

	byKind := map[robot.Kind]sim.Comparison{}
	for i, c := range got {
		assert.Equal(t, kinds[i], c.Kind)
		assert.Equal(t, 20, c.Runs)
		assert.Positive(t, c.MeanTurns)
		assert.Positive(t, c.MeanDistance)
		byKind[c.Kind] = c
	}

	// Two loops of the mail route always suffice.
	assert.LessOrEqual(t, byKind[robot.KindFixedRoute].MeanTurns, float64(2*len(robot.DefaultMailRoute)))
	assert.Less(t, byKind[robot.KindGoalOriented].MeanTurns, byKind[robot.KindRandom].MeanTurns)

	again, err := sim.Compare(context.Background(), w, kinds, 20, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, got, again, "same seed, same averages")
}

func TestCompare_Errors(t *testing.T) {
	w, err := config.Default().Build()
	require.NoError(t, err)

	_, err = sim.Compare(context.Background(), nil, robot.Kinds(), 1, 5, 1)
	assert.ErrorIs(t, err, sim.ErrNilArgument)

	_, err = sim.Compare(context.Background(), w, robot.Kinds(), 0, 5, 1)
	assert.ErrorIs(t, err, sim.ErrNoRuns)

	_, err = sim.Compare(context.Background(), w, []robot.Kind{robot.Kind(9)}, 1, 5, 1)
	assert.ErrorIs(t, err, robot.ErrUnknownKind)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.Compare(ctx, w, robot.Kinds(), 1, 5, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompare_EmptyKinds(t *testing.T) {
	w, err := config.Default().Build()
	require.NoError(t, err)
	got, err := sim.Compare(context.Background(), w, nil, 3, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
