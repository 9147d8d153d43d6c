// File: random.go
// Role: deterministic RNG helpers and random world initialisation.
//
// Goals:
//   - Determinism: same seed ⇒ identical worlds across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.

package village

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/robovillage/core"
)

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// DefaultParcelCount is the number of parcels a fresh village starts with.
const DefaultParcelCount = 5

const methodRandom = "Random"

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Pick returns a uniformly chosen element of items.
// items must be non-empty; rng==nil falls back to NewRand(0).
func Pick[T any](rng *rand.Rand, items []T) T {
	if rng == nil {
		rng = NewRand(0)
	}
	return items[rng.Intn(len(items))]
}

// Random builds the starting world: the robot at depot and n parcels.
//
// For each parcel the address is drawn uniformly from g.Locations(); the
// place is then drawn uniformly from all locations, redrawing until it
// differs from the address. Parcels are independent of each other and may
// share places or addresses.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrParcelCount if n < 0.
//   - ErrUnknownLocation if depot is not in g.
//
// core.BuildGraph rejects self-loops, so every graph has at least two
// locations and the redraw loop always terminates.
func Random(g *core.Graph, depot string, n int, rng *rand.Rand) (*State, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandom, n, ErrParcelCount)
	}
	if !g.HasLocation(depot) {
		return nil, fmt.Errorf("%s: depot %q: %w", methodRandom, depot, ErrUnknownLocation)
	}
	locs := g.Locations()
	if rng == nil {
		rng = NewRand(0)
	}

	parcels := make([]Parcel, 0, n)
	for i := 0; i < n; i++ {
		address := Pick(rng, locs)
		place := Pick(rng, locs)
		for place == address {
			place = Pick(rng, locs)
		}
		parcels = append(parcels, Parcel{Place: place, Address: address})
	}

	return &State{graph: g, place: depot, parcels: parcels}, nil
}
