// File: build.go
// Role: Graph construction from road strings (ParseEdge, BuildGraph).
// Determinism:
//   - Neighbour lists follow road declaration order.
//   - Locations() follows first-appearance order across the road list.

package core

import (
	"fmt"
	"strings"
)

// method tags used for error context.
const (
	methodParseEdge  = "ParseEdge"
	methodBuildGraph = "BuildGraph"
)

// ParseEdge splits a road string "From-To" into its two endpoint names.
//
// Implementation:
//   - Stage 1: Split s on EdgeSeparator.
//   - Stage 2: Require exactly two parts, both non-empty after trimming spaces.
//   - Stage 3: Reject from == to.
//
// Returns:
//   - from, to: endpoint names with surrounding whitespace removed.
//   - error: nil on success; otherwise a wrapped sentinel.
//
// Errors:
//   - ErrMalformedEdge: not exactly two parts, or an empty endpoint.
//   - ErrLoopNotAllowed: both endpoints name the same location.
//
// Complexity:
//   - Time O(len(s)), Space O(len(s)).
func ParseEdge(s string) (from, to string, err error) {
	parts := strings.Split(s, EdgeSeparator)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%s(%q): %d endpoints: %w", methodParseEdge, s, len(parts), ErrMalformedEdge)
	}
	from = strings.TrimSpace(parts[0])
	to = strings.TrimSpace(parts[1])
	if from == "" || to == "" {
		return "", "", fmt.Errorf("%s(%q): empty endpoint: %w", methodParseEdge, s, ErrMalformedEdge)
	}
	if from == to {
		return "", "", fmt.Errorf("%s(%q): %w", methodParseEdge, s, ErrLoopNotAllowed)
	}

	return from, to, nil
}

// BuildGraph turns an ordered list of road strings into an undirected Graph.
//
// Implementation:
//   - Stage 1: Reject an empty list (ErrNoEdges).
//   - Stage 2: Parse each road with ParseEdge; the first failure aborts construction.
//   - Stage 3: Reject a road already present in either direction (ErrDuplicateEdge).
//   - Stage 4: Append to→from's list and from→to's list, registering new locations in
//     first-appearance order.
//
// Behavior highlights:
//   - Both directions are inserted for every road.
//   - Neighbour insertion order matches road declaration order.
//   - No partial graph is ever returned: any error yields (nil, err).
//
// Inputs:
//   - edges: road strings in "From-To" form.
//
// Returns:
//   - *Graph: the immutable road network.
//   - error: wrapped ErrNoEdges, ErrMalformedEdge, ErrLoopNotAllowed or ErrDuplicateEdge.
//
// Complexity:
//   - Time O(E·d) where d is the maximum degree (duplicate check), Space O(V+E).
func BuildGraph(edges []string) (*Graph, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuildGraph, ErrNoEdges)
	}

	g := newGraph(len(edges))
	for i, raw := range edges {
		from, to, err := ParseEdge(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: edge #%d: %w", methodBuildGraph, i, err)
		}
		if g.Adjacent(from, to) {
			return nil, fmt.Errorf("%s: edge #%d %q: %w", methodBuildGraph, i, raw, ErrDuplicateEdge)
		}
		g.addArc(from, to)
		g.addArc(to, from)
		g.edges = append(g.edges, [2]string{from, to})
	}

	return g, nil
}

// addArc appends to to from's neighbour list, registering from on first sight.
// Only BuildGraph calls it; a built Graph is never mutated again.
func (g *Graph) addArc(from, to string) {
	if _, ok := g.adjacency[from]; !ok {
		g.order = append(g.order, from)
	}
	g.adjacency[from] = append(g.adjacency[from], to)
}
