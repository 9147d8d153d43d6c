// Package sim drives a robot through a village one turn at a time.
//
// A Runner owns the current world state, the strategy and its memory. Each
// Step asks the strategy for a direction, applies the move, and reports an
// Event; Run repeats Step with a configurable pause until every parcel is
// delivered, the turn limit is hit, or the context is cancelled.
//
// Illegal directions are ordinary turns that leave the state unchanged.
// Strategy errors (no route, no parcels) abort the run.
//
// Compare runs every requested strategy over the same seeded villages and
// reports the mean turn count per strategy.
package sim
