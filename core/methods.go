// File: methods.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Neighbors() returns road declaration order.
//   - Locations() returns first-appearance order.
//   - Edges() returns declaration order.
// Ownership:
//   - Every slice or map returned here is freshly allocated; callers may retain
//     and mutate it without affecting the Graph.

package core

// Neighbors returns the locations directly connected to loc.
//
// Implementation:
//   - Stage 1: Validate loc is non-empty (ErrEmptyLocation).
//   - Stage 2: Validate loc exists (ErrLocationNotFound).
//   - Stage 3: Copy the neighbour list so callers cannot alias internal storage.
//
// Returns:
//   - []string: neighbours in road declaration order.
//   - error: nil on success; otherwise a sentinel error.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of loc.
func (g *Graph) Neighbors(loc string) ([]string, error) {
	if loc == "" {
		return nil, ErrEmptyLocation
	}
	nbrs, ok := g.adjacency[loc]
	if !ok {
		return nil, ErrLocationNotFound
	}

	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// HasLocation reports whether loc is a location of the graph.
// Complexity: O(1).
func (g *Graph) HasLocation(loc string) bool {
	_, ok := g.adjacency[loc]
	return ok
}

// Adjacent reports whether a road connects a and b.
// Unknown locations are simply not adjacent to anything.
// Complexity: O(deg(a)).
func (g *Graph) Adjacent(a, b string) bool {
	for _, nbr := range g.adjacency[a] {
		if nbr == b {
			return true
		}
	}
	return false
}

// Locations returns every location in first-appearance order.
// Complexity: O(V).
func (g *Graph) Locations() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// AdjacencyList returns a deep copy of the location → neighbours mapping.
//
// Behavior highlights:
//   - Returned slices are freshly allocated and safe to retain and mutate.
//   - Map key iteration order is not deterministic in Go; use Locations()
//     for a stable key order.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) AdjacencyList() map[string][]string {
	result := make(map[string][]string, len(g.adjacency))
	for loc, nbrs := range g.adjacency {
		buf := make([]string, len(nbrs))
		copy(buf, nbrs)
		result[loc] = buf
	}

	return result
}

// Edges returns the roads as (from, to) pairs in declaration order.
// Complexity: O(E).
func (g *Graph) Edges() [][2]string {
	out := make([][2]string, len(g.edges))
	copy(out, g.edges)

	return out
}

// Degree returns the number of roads touching loc.
//
// Errors:
//   - ErrEmptyLocation: if loc == "".
//   - ErrLocationNotFound: if loc is not in the graph.
func (g *Graph) Degree(loc string) (int, error) {
	if loc == "" {
		return 0, ErrEmptyLocation
	}
	nbrs, ok := g.adjacency[loc]
	if !ok {
		return 0, ErrLocationNotFound
	}
	return len(nbrs), nil
}

// LocationCount returns |V|.
func (g *Graph) LocationCount() int { return len(g.order) }

// EdgeCount returns |E|, counting each undirected road once.
func (g *Graph) EdgeCount() int { return len(g.edges) }
