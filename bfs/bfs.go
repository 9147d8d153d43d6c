package bfs

import (
	"fmt"

	"github.com/katalvlaran/robovillage/core"
)

const (
	methodBFS      = "BFS"
	methodDiameter = "Diameter"
)

// BFS expands g breadth-first from start and returns the whole tree.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartNotFound, ErrNeighbors,
// ctx.Err() and wrapped OnVisit errors. A failed search returns no Result.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	o, err := prepare(methodBFS, g, start, opts)
	if err != nil {
		return nil, err
	}
	res, _, err := explore(g, start, "", o)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Connected reports whether one search reaches every location of g.
func Connected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	locs := g.Locations()
	if len(locs) == 0 {
		return true, nil
	}
	res, err := BFS(g, locs[0])
	if err != nil {
		return false, err
	}
	return len(res.Order) == len(locs), nil
}

// Diameter returns the largest hop count separating two locations of g.
// A disconnected graph has no diameter and yields ErrRouteNotFound.
//
// Complexity: O(V·(V + E)).
func Diameter(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	locs := g.Locations()
	widest := 0
	for _, loc := range locs {
		res, err := BFS(g, loc)
		if err != nil {
			return 0, err
		}
		if len(res.Order) != len(locs) {
			return 0, fmt.Errorf("%s: %d of %d locations reachable from %q: %w",
				methodDiameter, len(res.Order), len(locs), loc, ErrRouteNotFound)
		}
		_, hops := res.Farthest()
		widest = max(widest, hops)
	}
	return widest, nil
}

func prepare(method string, g *core.Graph, start string, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return Options{}, err
	}
	if !g.HasLocation(start) {
		return Options{}, fmt.Errorf("%s: %q: %w", method, start, ErrStartNotFound)
	}
	return o, nil
}

// explore is the shared search loop.
//
// Implementation:
//   - Stage 1: Discover start at 0 hops and seed the frontier with it.
//   - Stage 2: Expand the frontier in FIFO order, appending to Order and
//     calling OnVisit. Locations at MaxHops are expanded but not grown.
//   - Stage 3: Discover each undiscovered neighbour the road filter allows,
//     in declaration order, linking it Via the expanded location.
//   - Stage 4: If target is non-empty, stop the moment it is discovered and
//     report found.
func explore(g *core.Graph, start, target string, o Options) (*Result, bool, error) {
	n := g.LocationCount()
	res := &Result{
		Start: start,
		Order: make([]string, 0, n),
		Hops:  make(map[string]int, n),
		Via:   make(map[string]string, n),
	}
	frontier := make([]string, 0, n)

	res.Hops[start] = 0
	o.OnReach(start, 0)
	frontier = append(frontier, start)

	for head := 0; head < len(frontier); head++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, false, err
		}

		at := frontier[head]
		hops := res.Hops[at]
		res.Order = append(res.Order, at)
		if err := o.OnVisit(at, hops); err != nil {
			return nil, false, fmt.Errorf("bfs: visiting %q: %w", at, err)
		}
		if o.MaxHops > 0 && hops >= o.MaxHops {
			continue
		}

		nbrs, err := g.Neighbors(at)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %q: %v", ErrNeighbors, at, err)
		}
		for _, next := range nbrs {
			if res.Reached(next) || !o.Road(at, next) {
				continue
			}
			res.Hops[next] = hops + 1
			res.Via[next] = at
			o.OnReach(next, hops+1)
			if next == target {
				return res, true, nil
			}
			frontier = append(frontier, next)
		}
	}
	return res, false, nil
}
