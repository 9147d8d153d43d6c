package layout

import "github.com/paulmach/orb"

// DefaultPoints returns the coordinates of the default village, in canvas
// units with y growing downwards.
func DefaultPoints() map[string]orb.Point {
	return map[string]orb.Point{
		"Alice's House": {50, 100},
		"Bob's House":   {200, 50},
		"Cabin":         {50, 300},
		"Post Office":   {200, 200},
		"Town Hall":     {350, 100},
		"Daria's House": {500, 100},
		"Ernie's House": {650, 250},
		"Grete's House": {550, 400},
		"Farm":          {350, 450},
		"Shop":          {350, 300},
		"Marketplace":   {200, 350},
	}
}
