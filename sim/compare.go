package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/robovillage/config"
	"github.com/katalvlaran/robovillage/robot"
	"github.com/katalvlaran/robovillage/village"
)

// ErrNoRuns is returned by Compare when runs < 1.
var ErrNoRuns = errors.New("sim: at least one run is required")

const methodCompare = "Compare"

// Comparison holds the averages of one strategy over a batch of runs.
type Comparison struct {
	Kind         robot.Kind
	Runs         int
	MeanTurns    float64
	MeanDistance float64
}

// Compare plays runs villages of parcels parcels for each kind and reports the
// average turn count per kind, in the order kinds were given.
//
// Run i of every kind starts from the same village, drawn with seed+i, so
// strategies are measured on identical tasks. The random walker of run i is
// seeded with seed+i as well. Kinds are played concurrently; each goroutine
// owns its RNGs and runners and only reads the shared World.
//
// parcels < 1 falls back to the world's parcel_count; seed 0 means
// village.DefaultSeed. Any run error, ErrTurnLimit included, aborts the
// comparison.
func Compare(ctx context.Context, world *config.World, kinds []robot.Kind, runs, parcels int, seed int64) ([]Comparison, error) {
	if world == nil {
		return nil, ErrNilArgument
	}
	if runs < 1 {
		return nil, fmt.Errorf("%s: runs=%d: %w", methodCompare, runs, ErrNoRuns)
	}
	if parcels < 1 {
		parcels = world.Config.ParcelCount
	}
	if seed == 0 {
		seed = village.DefaultSeed
	}

	out := make([]Comparison, len(kinds))
	errs := make([]error, len(kinds))
	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind robot.Kind) {
			defer wg.Done()
			out[i], errs[i] = compareKind(ctx, world, kind, runs, parcels, seed)
		}(i, kind)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

func compareKind(ctx context.Context, world *config.World, kind robot.Kind, runs, parcels int, seed int64) (Comparison, error) {
	c := Comparison{Kind: kind, Runs: runs}
	var turns, distance float64
	for i := 0; i < runs; i++ {
		runSeed := seed + int64(i)
		state, err := village.Random(world.Graph, world.Config.Depot, parcels, village.NewRand(runSeed))
		if err != nil {
			return c, fmt.Errorf("%s: %s run %d: %w", methodCompare, kind, i, err)
		}
		strategy, err := world.Strategy(kind, village.NewRand(runSeed))
		if err != nil {
			return c, fmt.Errorf("%s: %s: %w", methodCompare, kind, err)
		}
		r, err := NewRunner(world, strategy, state, WithDelay(0))
		if err != nil {
			return c, err
		}
		sum, err := r.Run(ctx)
		if err != nil {
			return c, fmt.Errorf("%s: %s run %d: %w", methodCompare, kind, i, err)
		}
		turns += float64(sum.Turns)
		distance += sum.Distance
	}
	c.MeanTurns = turns / float64(runs)
	c.MeanDistance = distance / float64(runs)
	return c, nil
}
