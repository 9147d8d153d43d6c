// Package core provides the village road Graph: a small, immutable,
// undirected adjacency structure between named locations.
//
// The Graph G = (V,E) is built once from a list of road strings such as
// "Alice's House-Bob's House" and never changes afterwards:
//
//   - Undirected: every road is inserted in both directions.
//   - Ordered: Neighbors(loc) preserves road declaration order, and
//     Locations() preserves the order in which names first appear.
//   - Simple: self-loops and duplicate roads are rejected at build time.
//   - Read-only: no mutating method is exported, so a *Graph can be shared
//     by any number of states and strategies without locking.
//
// Why ordered adjacency?
//
//	Strategies that pick a neighbour by position (the random walker) and the
//	breadth-first route finder (ties broken by neighbour order) must behave
//	identically for the same road list. Sorting neighbours would silently
//	change which of two equally short routes is returned.
//
// Construction:
//
//	ParseEdge(s string) (from, to string, err error)  // "A-B" → ("A","B")
//	BuildGraph(edges []string) (*Graph, error)        // O(E)
//
// Queries:
//
//	Neighbors(loc string) ([]string, error)  // O(d), copy, declaration order
//	HasLocation(loc string) bool             // O(1)
//	Adjacent(a, b string) bool               // O(d)
//	Locations() []string                     // O(V), first-appearance order
//	AdjacencyList() map[string][]string      // O(V+E), deep copy
//	Edges() [][2]string                      // O(E), declaration order
//	Degree(loc string) (int, error)          // O(1)
//	LocationCount(), EdgeCount() int         // O(1)
//
// Errors:
//
//	ErrEmptyLocation    – zero-length location name
//	ErrLocationNotFound – location is not part of the graph
//	ErrMalformedEdge    – road string without exactly two endpoints
//	ErrLoopNotAllowed   – road from a location to itself
//	ErrDuplicateEdge    – the same road declared twice (either direction)
//	ErrNoEdges          – empty road list
//
// Quick ASCII example:
//
//	A───B───C
//
// BuildGraph([]string{"A-B", "B-C"}) yields A:[B], B:[A C], C:[B].
package core
