package robot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/robovillage/village"
)

// Sentinel errors for the robot package.
var (
	ErrStateNil         = errors.New("robot: state is nil")
	ErrNoParcels        = errors.New("robot: no parcels to deliver")
	ErrUnknownKind      = errors.New("robot: unknown strategy kind")
	ErrEmptyRoute       = errors.New("robot: route is empty")
	ErrRouteNotAdjacent = errors.New("robot: route stops are not adjacent")
	ErrUnknownLocation  = errors.New("robot: unknown location")
	ErrGraphNil         = errors.New("robot: graph is nil")
)

// Kind tags one of the three strategies.
type Kind int

const (
	KindRandom Kind = iota
	KindFixedRoute
	KindGoalOriented
)

// Kinds returns every strategy kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindRandom, KindFixedRoute, KindGoalOriented}
}

// String returns the short name used by configuration and the CLI.
func (k Kind) String() string {
	switch k {
	case KindRandom:
		return "random"
	case KindFixedRoute:
		return "route"
	case KindGoalOriented:
		return "goal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a name to a Kind. Matching is case-insensitive and accepts
// "fixed-route" and "goal-oriented" as long forms.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return KindRandom, nil
	case "route", "fixed-route":
		return KindFixedRoute, nil
	case "goal", "goal-oriented":
		return KindGoalOriented, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindRandom, KindFixedRoute, KindGoalOriented:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Memory is the strategy-private data carried between turns: the unconsumed
// suffix of a planned route. It is immutable; the zero value is empty.
type Memory struct {
	route []string
}

// NewMemory returns a Memory holding a copy of route.
func NewMemory(route ...string) Memory {
	if len(route) == 0 {
		return Memory{}
	}
	buf := make([]string, len(route))
	copy(buf, route)
	return Memory{route: buf}
}

// Route returns a copy of the remaining planned stops.
func (m Memory) Route() []string {
	out := make([]string, len(m.route))
	copy(out, m.route)
	return out
}

// Len returns the number of remaining stops.
func (m Memory) Len() int { return len(m.route) }

// Empty reports whether no stops remain.
func (m Memory) Empty() bool { return len(m.route) == 0 }

// String renders the remaining stops.
func (m Memory) String() string { return "[" + strings.Join(m.route, " ") + "]" }

// pop splits m into its head and the remaining tail. m must be non-empty.
// The tail may share m's backing array; neither is ever written again.
// An exhausted tail is the zero Memory.
func (m Memory) pop() (string, Memory) {
	if len(m.route) == 1 {
		return m.route[0], Memory{}
	}
	return m.route[0], Memory{route: m.route[1:]}
}

// Action is a strategy's answer for one turn.
type Action struct {
	Direction string
	Memory    Memory
}

// Strategy decides the robot's next move.
//
// Implementations must not retain or mutate the Memory they are given.
type Strategy interface {
	Kind() Kind
	Decide(s *village.State, m Memory) (Action, error)
}
