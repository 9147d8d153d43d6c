// Package bfs searches a village core.Graph breadth-first.
//
// FindRoute is the shortest-route finder used by goal-oriented robots: it
// returns the fewest-hop route from one location to another, excluding the
// start and including the target. BFS grows the whole breadth-first tree of
// a start location (expansion order, hop counts, Via links) and backs the
// connectivity and diameter checks used when a village is configured.
//
// Both searches share one loop and the same functional options:
//
//   - WithContext:    cancellation, checked once per expanded location.
//   - WithMaxHops:    expand no further than n roads (0 = unlimited).
//   - WithRoadFilter: skip individual from → to roads.
//   - WithOnReach / WithOnVisit: discovery and expansion hooks; an OnVisit
//     error aborts the search.
//
// Determinism
//
//	core.Graph.Neighbors yields roads in declaration order and a location is
//	discovered only once, so visit order and the choice between equally
//	short routes are reproducible.
//
// Not found is loud
//
//	An unreachable or unknown target is an error (ErrRouteNotFound,
//	ErrTargetNotFound), never an empty route; the empty route means
//	from == to.
//
// Usage
//
//	route, err := bfs.FindRoute(g, "Post Office", "Shop")
//	if errors.Is(err, bfs.ErrRouteNotFound) {
//		// the road table is broken: fatal for the simulation
//	}
//
// Complexity: O(V + E) time and O(V) memory per search.
package bfs
