// Package core defines the central Graph type of the village, the sentinel
// errors of graph construction, and the road separator.
//
// This file declares Graph, the sentinel errors and EdgeSeparator.
package core

import "errors"

// EdgeSeparator splits a road string into its two endpoint names.
const EdgeSeparator = "-"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLocation indicates that a location name is the empty string.
	ErrEmptyLocation = errors.New("core: location name is empty")

	// ErrLocationNotFound indicates an operation referenced a location outside the graph.
	ErrLocationNotFound = errors.New("core: location not found")

	// ErrMalformedEdge indicates a road string that does not hold exactly two endpoints.
	ErrMalformedEdge = errors.New("core: malformed edge")

	// ErrLoopNotAllowed indicates a road from a location to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the same road was declared twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrNoEdges indicates an empty road list.
	ErrNoEdges = errors.New("core: edge list is empty")
)

// Graph is the immutable village road network.
//
// adjacency maps each location to its neighbours in road declaration order.
// order records locations in the order they first appear in the road list.
// edges keeps the parsed roads in declaration order.
type Graph struct {
	adjacency map[string][]string
	order     []string
	edges     [][2]string
}

// newGraph allocates an empty Graph sized for edgeHint roads.
// Complexity: O(1)
func newGraph(edgeHint int) *Graph {
	return &Graph{
		adjacency: make(map[string][]string, edgeHint),
		order:     make([]string, 0, edgeHint),
		edges:     make([][2]string, 0, edgeHint),
	}
}
