// Package core_test contains test fixtures for robovillage/core.
package core_test

// villageRoads is the original fourteen-road village.
var villageRoads = []string{
	"Alice's House-Bob's House", "Alice's House-Cabin",
	"Alice's House-Post Office", "Bob's House-Town Hall",
	"Daria's House-Ernie's House", "Daria's House-Town Hall",
	"Ernie's House-Grete's House", "Grete's House-Farm",
	"Grete's House-Shop", "Marketplace-Farm",
	"Marketplace-Post Office", "Marketplace-Shop",
	"Marketplace-Town Hall", "Shop-Town Hall",
}

// Common location names used across core tests.
const (
	LocA = "A"
	LocB = "B"
	LocC = "C"
	LocD = "D"

	LocMissing = "Nowhere"
)
