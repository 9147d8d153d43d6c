package robot

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/robovillage/core"
	"github.com/katalvlaran/robovillage/village"
)

// Option customizes strategy construction in New.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	mailRoute []string
}

// WithRand provides the RNG of the random walker. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("robot: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds the random walker (0 ⇒ village.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = village.NewRand(seed) }
}

// WithMailRoute replaces DefaultMailRoute for the fixed-route strategy.
// Panics on an empty route; adjacency is checked by New.
func WithMailRoute(route []string) Option {
	if len(route) == 0 {
		panic("robot: WithMailRoute(empty)")
	}
	return func(c *config) { c.mailRoute = route }
}

// New builds the strategy tagged by kind over graph g.
//
// Errors:
//   - ErrUnknownKind for an unknown tag.
//   - NewFixedRoute validation errors for KindFixedRoute.
func New(kind Kind, g *core.Graph, opts ...Option) (Strategy, error) {
	c := config{mailRoute: DefaultMailRoute}
	for _, opt := range opts {
		opt(&c)
	}

	switch kind {
	case KindRandom:
		return NewRandom(c.rng), nil
	case KindFixedRoute:
		f, err := NewFixedRoute(g, c.mailRoute)
		if err != nil {
			return nil, err
		}
		return f, nil
	case KindGoalOriented:
		return NewGoalOriented(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
