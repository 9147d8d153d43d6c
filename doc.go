// Package robovillage simulates a parcel-delivery robot in a small village
// road network and compares delivery strategies.
//
// Everything is organized under these subpackages:
//
//	core/     — road graph built from "From-To" strings, neighbours in declaration order
//	bfs/      — breadth-first traversal and shortest routes between locations
//	village/  — immutable world state (robot place + parcels) and random villages
//	robot/    — strategies: random walk, fixed mail route, goal-oriented
//	layout/   — plane coordinates, hop distances, nearest-location lookup
//	config/   — YAML configuration and the validated World bundle
//	sim/      — turn driver, paced runs, strategy comparison
//	cmd/village — command-line front end
//
// Quick ASCII example:
//
//	    Post Office───Marketplace───Shop
//	         │             │         │
//	   Alice's House     Farm     Town Hall
//
// A state never changes: State.Move returns a new state, or the same one
// when the destination is not a road away.
//
//	go run ./cmd/village -robot goal -delay 300ms
package robovillage
