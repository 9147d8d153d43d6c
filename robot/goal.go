package robot

import (
	"fmt"

	"github.com/katalvlaran/robovillage/bfs"
	"github.com/katalvlaran/robovillage/village"
)

// GoalOriented fetches and delivers parcels one at a time along shortest routes.
type GoalOriented struct{}

// NewGoalOriented returns the goal-oriented strategy. It holds no state.
func NewGoalOriented() *GoalOriented { return &GoalOriented{} }

// Kind implements Strategy.
func (GoalOriented) Kind() Kind { return KindGoalOriented }

// Decide follows m while it holds stops; otherwise it plans a route for the
// first pending parcel and returns that route's head.
//
// Errors:
//   - ErrStateNil if s is nil.
//   - ErrNoParcels if planning is needed but every parcel is delivered.
//   - wrapped bfs errors if the parcel cannot be reached.
func (g GoalOriented) Decide(s *village.State, m Memory) (Action, error) {
	if s == nil {
		return Action{}, ErrStateNil
	}
	if m.Empty() {
		route, err := g.plan(s)
		if err != nil {
			return Action{}, err
		}
		m = Memory{route: route}
	}
	dir, rest := m.pop()
	return Action{Direction: dir, Memory: rest}, nil
}

// plan picks the first parcel: fetch it if it lies elsewhere, deliver it if
// the robot is standing on it.
func (GoalOriented) plan(s *village.State) ([]string, error) {
	if s.Done() {
		return nil, ErrNoParcels
	}
	parcel := s.Parcels()[0]
	target := parcel.Place
	if target == s.Place() {
		target = parcel.Address
	}
	route, err := bfs.FindRoute(s.Graph(), s.Place(), target)
	if err != nil {
		return nil, fmt.Errorf("robot: plan %s for parcel %s: %w", s.Place(), parcel, err)
	}
	return route, nil
}
