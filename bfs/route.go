package bfs

import (
	"fmt"

	"github.com/katalvlaran/robovillage/core"
)

const methodFindRoute = "FindRoute"

// FindRoute returns the fewest-hop route from from to to.
//
// The route excludes from and includes to; consecutive elements are
// neighbours in g. Neighbours are discovered in declaration order and each
// location once, so among equally short routes the one through earlier
// declared roads wins. The search stops as soon as to is discovered.
//
// from == to yields an empty, non-nil route and no error.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
//   - ErrStartNotFound / ErrTargetNotFound for unknown endpoints.
//   - ErrRouteNotFound if to is unreachable, or cut off by MaxHops or the road filter.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
//
// Complexity: O(V + E) time, O(V) memory.
func FindRoute(g *core.Graph, from, to string, opts ...Option) ([]string, error) {
	o, err := prepare(methodFindRoute, g, from, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasLocation(to) {
		return nil, fmt.Errorf("%s: %q: %w", methodFindRoute, to, ErrTargetNotFound)
	}
	if from == to {
		return []string{}, nil
	}

	res, found, err := explore(g, from, to, o)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s(%q, %q): %w", methodFindRoute, from, to, ErrRouteNotFound)
	}
	return res.routeTo(to), nil
}
