package robot

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/robovillage/village"
)

// Random walks to a uniformly chosen neighbour every turn.
// Its *rand.Rand is not goroutine-safe; give each driver its own Random.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random walker drawing from rng (nil ⇒ village.NewRand(0)).
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = village.NewRand(0)
	}
	return &Random{rng: rng}
}

// Kind implements Strategy.
func (r *Random) Kind() Kind { return KindRandom }

// Decide ignores m and returns a random neighbour with empty memory.
func (r *Random) Decide(s *village.State, _ Memory) (Action, error) {
	if s == nil {
		return Action{}, ErrStateNil
	}
	nbrs, err := s.Graph().Neighbors(s.Place())
	if err != nil {
		return Action{}, fmt.Errorf("robot: random at %q: %w", s.Place(), err)
	}
	return Action{Direction: village.Pick(r.rng, nbrs)}, nil
}
