package config

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/robovillage/bfs"
	"github.com/katalvlaran/robovillage/core"
	"github.com/katalvlaran/robovillage/layout"
	"github.com/katalvlaran/robovillage/robot"
	"github.com/katalvlaran/robovillage/village"
)

// World is a validated configuration together with the structures built
// from it. It is read-only and may be shared by many runs.
type World struct {
	Config    Config
	Graph     *core.Graph
	MailRoute []string       // empty when the village has no mail route
	Layout    *layout.Layout // nil when no coordinates are configured
}

// Validate checks the configuration without keeping what it builds.
func (c Config) Validate() error {
	_, err := c.Build()
	return err
}

// Build validates c and returns the World it describes.
//
// Checks, in order: the road list parses and is connected; the depot is a
// known location; parcel_count >= 1, delay_ms >= 0 and max_turns >= 1; the
// mail route (if any) is a closed walk over roads; coordinates name only
// known locations, have two components each, and, if present at all, cover
// every location. Every failure wraps ErrInvalidConfig.
func (c Config) Build() (*World, error) {
	g, err := core.BuildGraph(c.Edges)
	if err != nil {
		return nil, invalid("edges", err)
	}
	connected, err := bfs.Connected(g)
	if err != nil {
		return nil, invalid("edges", err)
	}
	if !connected {
		return nil, invalid("edges", fmt.Errorf("road network is not connected"))
	}
	if !g.HasLocation(c.Depot) {
		return nil, invalid("depot", fmt.Errorf("%q: %w", c.Depot, village.ErrUnknownLocation))
	}

	switch {
	case c.ParcelCount < 1:
		return nil, invalid("parcel_count", fmt.Errorf("%d < 1", c.ParcelCount))
	case c.DelayMs < 0:
		return nil, invalid("delay_ms", fmt.Errorf("%d < 0", c.DelayMs))
	case c.MaxTurns < 1:
		return nil, invalid("max_turns", fmt.Errorf("%d < 1", c.MaxTurns))
	}

	w := &World{Config: c, Graph: g}
	if len(c.MailRoute) > 0 {
		if _, err = robot.NewFixedRoute(g, c.MailRoute); err != nil {
			return nil, invalid("mail_route", err)
		}
		w.MailRoute = append([]string(nil), c.MailRoute...)
	}

	if len(c.Coordinates) > 0 {
		if w.Layout, err = buildLayout(g, c.Coordinates); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func buildLayout(g *core.Graph, coords map[string][]float64) (*layout.Layout, error) {
	names := make([]string, 0, len(coords))
	for name := range coords {
		names = append(names, name)
	}
	sort.Strings(names)

	points := make(map[string]orb.Point, len(coords))
	for _, name := range names {
		xy := coords[name]
		if !g.HasLocation(name) {
			return nil, invalid("coordinates", fmt.Errorf("%q: %w", name, village.ErrUnknownLocation))
		}
		if len(xy) != 2 {
			return nil, invalid("coordinates", fmt.Errorf("%q: want [x, y], got %d values", name, len(xy)))
		}
		points[name] = orb.Point{xy[0], xy[1]}
	}
	for _, loc := range g.Locations() {
		if _, ok := points[loc]; !ok {
			return nil, invalid("coordinates", fmt.Errorf("%q has no position", loc))
		}
	}
	return layout.New(points), nil
}

func invalid(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
}

// NewState draws a fresh starting state at the depot with the configured
// parcel count.
func (w *World) NewState(rng *rand.Rand) (*village.State, error) {
	return village.Random(w.Graph, w.Config.Depot, w.Config.ParcelCount, rng)
}

// Strategy builds the strategy of the given kind for this world. The random
// walker draws from rng; the fixed-route robot follows the world's mail route.
func (w *World) Strategy(kind robot.Kind, rng *rand.Rand) (robot.Strategy, error) {
	opts := make([]robot.Option, 0, 2)
	if rng != nil {
		opts = append(opts, robot.WithRand(rng))
	}
	if len(w.MailRoute) > 0 {
		opts = append(opts, robot.WithMailRoute(w.MailRoute))
	}
	return robot.New(kind, w.Graph, opts...)
}
