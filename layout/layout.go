// Package layout places village locations on a 2D plane.
//
// The road graph itself carries no geometry; a Layout adds a point per
// location so the driver can report how far the robot actually travelled
// and so a point on a map can be resolved to the closest location. Points
// are github.com/paulmach/orb values, distances are planar, and the
// nearest-location lookup is served by an R-tree (github.com/dhconnelly/rtreego).
package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Sentinel errors for layout queries.
var (
	ErrUnknownLocation = errors.New("layout: unknown location")
	ErrEmptyLayout     = errors.New("layout: no locations")
)

// pointTolerance is the half-side of the square each location occupies in the R-tree.
const pointTolerance = 0.01

// locationEntry wraps a location for R-tree storage.
type locationEntry struct {
	name string
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *locationEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// Layout maps location names to plane coordinates. It is read-only after New.
type Layout struct {
	points map[string]orb.Point
	names  []string
	tree   *rtreego.Rtree
}

// New indexes points. Names are inserted in sorted order so equal-distance
// ties resolve the same way on every run.
func New(points map[string]orb.Point) *Layout {
	l := &Layout{
		points: make(map[string]orb.Point, len(points)),
		names:  make([]string, 0, len(points)),
		tree:   rtreego.NewTree(2, 2, 8), // 2D, min 2, max 8 entries per node
	}
	for name, p := range points {
		l.points[name] = p
		l.names = append(l.names, name)
	}
	sort.Strings(l.names)

	for _, name := range l.names {
		p := l.points[name]
		l.tree.Insert(&locationEntry{
			name: name,
			bbox: rtreego.Point{p.X(), p.Y()}.ToRect(pointTolerance),
		})
	}
	return l
}

// Locations returns the placed location names in sorted order.
func (l *Layout) Locations() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Point returns the coordinates of loc.
func (l *Layout) Point(loc string) (orb.Point, bool) {
	p, ok := l.points[loc]
	return p, ok
}

// Bound returns the smallest rectangle holding every location.
func (l *Layout) Bound() orb.Bound {
	mp := make(orb.MultiPoint, 0, len(l.names))
	for _, name := range l.names {
		mp = append(mp, l.points[name])
	}
	return mp.Bound()
}

// Distance returns the straight-line distance between two locations.
func (l *Layout) Distance(a, b string) (float64, error) {
	pa, ok := l.points[a]
	if !ok {
		return 0, fmt.Errorf("layout: %q: %w", a, ErrUnknownLocation)
	}
	pb, ok := l.points[b]
	if !ok {
		return 0, fmt.Errorf("layout: %q: %w", b, ErrUnknownLocation)
	}
	return planar.Distance(pa, pb), nil
}

// RouteLength sums the hop distances of start → route[0] → route[1] → ...
// An empty route has length zero.
func (l *Layout) RouteLength(start string, route []string) (float64, error) {
	total := 0.0
	prev := start
	for _, stop := range route {
		d, err := l.Distance(prev, stop)
		if err != nil {
			return 0, err
		}
		total += d
		prev = stop
	}
	return total, nil
}

// Nearest returns the location closest to p.
func (l *Layout) Nearest(p orb.Point) (string, error) {
	if len(l.names) == 0 {
		return "", ErrEmptyLayout
	}
	hit := l.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	entry, ok := hit.(*locationEntry)
	if !ok {
		return "", ErrEmptyLayout
	}
	return entry.name, nil
}
