package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a search is given a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start location is not in the graph.
	ErrStartNotFound = errors.New("bfs: start location not found")

	// ErrTargetNotFound is returned when the FindRoute target is not in the graph.
	ErrTargetNotFound = errors.New("bfs: target location not found")

	// ErrRouteNotFound is returned when no road sequence joins two locations.
	ErrRouteNotFound = errors.New("bfs: route not found")

	// ErrOptionViolation is returned for an Option with an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps a failing core.Graph.Neighbors lookup.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// Option tunes a search. A bad value is remembered and surfaces as
// ErrOptionViolation from the search that receives it.
type Option func(*Options)

// Options is the resolved search configuration.
type Options struct {
	Ctx context.Context

	// MaxHops > 0 stops expansion at that many roads from the start;
	// 0 means unlimited.
	MaxHops int

	// Road reports whether the road from → to may be taken.
	Road func(from, to string) bool

	// OnReach fires once per location, when it is first discovered.
	OnReach func(loc string, hops int)

	// OnVisit fires when a location is expanded. An error aborts the search.
	OnVisit func(loc string, hops int) error

	err error
}

func defaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Road:    func(string, string) bool { return true },
		OnReach: func(string, int) {},
		OnVisit: func(string, int) error { return nil },
	}
}

func resolve(opts []Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithContext cancels the search when ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxHops limits expansion to n roads from the start; n == 0 lifts the
// limit and n < 0 is an ErrOptionViolation.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max hops %d < 0", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithRoadFilter skips every road for which keep returns false.
func WithRoadFilter(keep func(from, to string) bool) Option {
	return func(o *Options) {
		if keep != nil {
			o.Road = keep
		}
	}
}

// WithOnReach registers a discovery hook.
func WithOnReach(fn func(loc string, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReach = fn
		}
	}
}

// WithOnVisit registers an expansion hook; its error stops the search.
func WithOnVisit(fn func(loc string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the breadth-first tree grown from Start.
type Result struct {
	Start string
	Order []string          // locations in expansion order
	Hops  map[string]int    // road count from Start
	Via   map[string]string // predecessor on a shortest route; Start has none
}

// Reached reports whether loc was discovered.
func (r *Result) Reached(loc string) bool {
	_, ok := r.Hops[loc]
	return ok
}

// Farthest returns the last expanded location and its hop count. Expansion
// order never decreases in hops, so no location is farther.
func (r *Result) Farthest() (string, int) {
	last := r.Order[len(r.Order)-1]
	return last, r.Hops[last]
}

// PathTo returns Start, the intermediate stops and dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: %q from %q: %w", dest, r.Start, ErrRouteNotFound)
	}
	return append([]string{r.Start}, r.routeTo(dest)...), nil
}

// routeTo follows Via links back from dest; the result excludes Start.
func (r *Result) routeTo(dest string) []string {
	route := make([]string, r.Hops[dest])
	at := dest
	for i := len(route) - 1; i >= 0; i-- {
		route[i] = at
		at = r.Via[at]
	}
	return route
}
