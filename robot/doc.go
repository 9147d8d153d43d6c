// Package robot implements the three decision strategies of a delivery robot.
//
// Every strategy answers the same question once per turn: given the current
// village.State and the Memory it returned last turn, where should the robot
// go next and what should it remember?
//
//	Decide(state, memory) -> Action{Direction, Memory}
//
// The driver owns the Memory value, hands it in each call and replaces it
// wholesale with Action.Memory. A fresh driver (or a newly selected strategy)
// starts from the zero Memory.
//
// Strategies, selected by an explicit Kind tag through New:
//
//   - KindRandom: a uniformly random neighbour of the robot's place. Memory
//     is unused and returned empty.
//   - KindFixedRoute: follows the mail route cyclically, one stop per turn.
//     An empty Memory is reloaded with the whole route before its head is
//     taken. The route is validated eagerly by NewFixedRoute: every stop is
//     a known location and each consecutive pair, including last → first,
//     is a road.
//   - KindGoalOriented: while Memory holds a planned route, pops its head
//     without searching. When Memory is empty it plans, in the same call,
//     a shortest route (bfs.FindRoute) to the first pending parcel, or, if
//     the robot already stands on it, to that parcel's address.
//
// Goal-oriented state machine:
//
//	PLANNING ──route found──▶ FOLLOWING ──memory empty──▶ PLANNING
//	                              │
//	                              └──memory non-empty──▶ FOLLOWING
//
// PLANNING never wastes a turn: the new route's head is returned at once.
//
// Errors:
//
//	ErrStateNil       – Decide called without a state
//	ErrNoParcels      – goal-oriented planning with nothing left to deliver
//	ErrUnknownKind    – unknown strategy tag
//	ErrEmptyRoute     – fixed route without stops
//	ErrRouteNotAdjacent – fixed route hop that is not a road
//	ErrUnknownLocation  – fixed route stop outside the graph
//	ErrGraphNil       – fixed route validated against a nil graph
package robot
