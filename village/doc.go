// Package village models the world of the delivery robot: where the robot
// stands and which parcels are still waiting to be delivered.
//
// A State is an immutable snapshot. Move never changes its receiver; it
// either returns the receiver itself (the destination is not a neighbour of
// the robot's place, which is tolerated rather than rejected) or a brand-new
// State in which
//
//  1. every parcel lying at the robot's place travels with it to the
//     destination, and
//  2. every parcel whose place now equals its address is dropped as
//     delivered.
//
// Holding on to an older *State is therefore always safe: its place and
// parcels read the same before and after any number of moves.
//
// Random builds the starting world: the robot at the depot and n parcels,
// each with an address drawn uniformly from all locations and a place drawn
// uniformly from the remaining ones. RNG streams are explicit (*rand.Rand);
// NewRand(0) yields the package's fixed default seed so tests and
// comparisons are reproducible.
package village
