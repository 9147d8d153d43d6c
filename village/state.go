package village

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/robovillage/core"
)

// Sentinel errors for state construction.
var (
	// ErrGraphNil is returned when a state is built without a road graph.
	ErrGraphNil = errors.New("village: graph is nil")

	// ErrUnknownLocation is returned when a place or address is not part of the graph.
	ErrUnknownLocation = errors.New("village: unknown location")

	// ErrParcelCount is returned when a negative parcel count is requested.
	ErrParcelCount = errors.New("village: parcel count is negative")
)

const methodNewState = "NewState"

// State is an immutable snapshot of the robot's place and the pending parcels.
// The zero value is not usable; build states with NewState or Random.
type State struct {
	graph   *core.Graph
	place   string
	parcels []Parcel
}

// NewState builds a State with the robot at place and a copy of parcels.
// Parcels that are already at their address are dropped.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrUnknownLocation if place or any parcel endpoint is not in g.
func NewState(g *core.Graph, place string, parcels []Parcel) (*State, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasLocation(place) {
		return nil, fmt.Errorf("%s: robot place %q: %w", methodNewState, place, ErrUnknownLocation)
	}

	pending := make([]Parcel, 0, len(parcels))
	for i, p := range parcels {
		if !g.HasLocation(p.Place) {
			return nil, fmt.Errorf("%s: parcel #%d place %q: %w", methodNewState, i, p.Place, ErrUnknownLocation)
		}
		if !g.HasLocation(p.Address) {
			return nil, fmt.Errorf("%s: parcel #%d address %q: %w", methodNewState, i, p.Address, ErrUnknownLocation)
		}
		if p.Delivered() {
			continue
		}
		pending = append(pending, p)
	}

	return &State{graph: g, place: place, parcels: pending}, nil
}

// Move returns the state after the robot drives to destination.
//
// If destination is not a neighbour of the current place the receiver itself
// is returned: an illegal move is a no-op, not an error. Otherwise parcels at
// the current place ride along to destination, parcels that reach their
// address are dropped, and a new State is returned. The receiver is never
// modified.
//
// Complexity: O(d + P) where d is the degree of the place and P the parcel count.
func (s *State) Move(destination string) *State {
	if !s.graph.Adjacent(s.place, destination) {
		return s
	}

	parcels := make([]Parcel, 0, len(s.parcels))
	for _, p := range s.parcels {
		if p.Place == s.place {
			p = Parcel{Place: destination, Address: p.Address}
		}
		if p.Delivered() {
			continue
		}
		parcels = append(parcels, p)
	}

	return &State{graph: s.graph, place: destination, parcels: parcels}
}

// Place returns the robot's current location.
func (s *State) Place() string { return s.place }

// Parcels returns a copy of the pending parcels in their original order.
func (s *State) Parcels() []Parcel {
	out := make([]Parcel, len(s.parcels))
	copy(out, s.parcels)
	return out
}

// Pending returns the number of parcels still to deliver.
func (s *State) Pending() int { return len(s.parcels) }

// Done reports whether every parcel has been delivered.
func (s *State) Done() bool { return len(s.parcels) == 0 }

// Graph returns the road graph the state moves on.
func (s *State) Graph() *core.Graph { return s.graph }

// Equal reports whether both states hold the same place and parcels, in order.
func (s *State) Equal(other *State) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil || s.place != other.place || len(s.parcels) != len(other.parcels) {
		return false
	}
	for i := range s.parcels {
		if s.parcels[i] != other.parcels[i] {
			return false
		}
	}
	return true
}

// String renders the state as "place [p1 p2 ...]".
func (s *State) String() string {
	parts := make([]string, len(s.parcels))
	for i, p := range s.parcels {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s [%s]", s.place, strings.Join(parts, " "))
}
