package robot

import (
	"fmt"

	"github.com/katalvlaran/robovillage/core"
	"github.com/katalvlaran/robovillage/village"
)

// DefaultMailRoute visits every location of the default village and ends
// next to where it starts, so it can be driven in a loop.
var DefaultMailRoute = []string{
	"Alice's House", "Cabin", "Alice's House", "Bob's House",
	"Town Hall", "Daria's House", "Ernie's House",
	"Grete's House", "Shop", "Grete's House", "Farm",
	"Marketplace", "Post Office",
}

const methodNewFixedRoute = "NewFixedRoute"

// FixedRoute follows a predetermined cyclic route, one stop per turn.
type FixedRoute struct {
	route []string
}

// NewFixedRoute validates route against g and returns a FixedRoute strategy.
//
// Validation:
//   - g non-nil (ErrGraphNil), route non-empty (ErrEmptyRoute).
//   - every stop is a location of g (ErrUnknownLocation).
//   - every consecutive pair, and the closing pair last → first, is a road
//     (ErrRouteNotAdjacent). A single-stop route can never be adjacent to
//     itself and is rejected the same way.
func NewFixedRoute(g *core.Graph, route []string) (*FixedRoute, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(route) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewFixedRoute, ErrEmptyRoute)
	}
	for i, stop := range route {
		if !g.HasLocation(stop) {
			return nil, fmt.Errorf("%s: stop #%d %q: %w", methodNewFixedRoute, i, stop, ErrUnknownLocation)
		}
	}
	for i := range route {
		from, to := route[i], route[(i+1)%len(route)]
		if !g.Adjacent(from, to) {
			return nil, fmt.Errorf("%s: stop #%d %q → %q: %w", methodNewFixedRoute, i, from, to, ErrRouteNotAdjacent)
		}
	}

	buf := make([]string, len(route))
	copy(buf, route)
	return &FixedRoute{route: buf}, nil
}

// Route returns a copy of the full cyclic route.
func (f *FixedRoute) Route() []string {
	out := make([]string, len(f.route))
	copy(out, f.route)
	return out
}

// Kind implements Strategy.
func (f *FixedRoute) Kind() Kind { return KindFixedRoute }

// Decide returns the next stop of the route. Empty memory is reloaded with
// the whole route first.
func (f *FixedRoute) Decide(s *village.State, m Memory) (Action, error) {
	if s == nil {
		return Action{}, ErrStateNil
	}
	if m.Empty() {
		m = Memory{route: f.route}
	}
	dir, rest := m.pop()
	return Action{Direction: dir, Memory: rest}, nil
}
