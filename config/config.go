// Package config holds the static description of a village simulation:
// the roads, the depot, the mail route, the location coordinates and the
// run parameters. Defaults reproduce the classic eleven-location village;
// Load overlays a YAML document on top of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/robovillage/layout"
	"github.com/katalvlaran/robovillage/robot"
	"github.com/katalvlaran/robovillage/village"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Default run parameters.
const (
	DefaultDepot    = "Post Office"
	DefaultDelayMs  = 800
	DefaultMaxTurns = 1000
)

// Config is the YAML-facing simulation configuration.
type Config struct {
	Depot       string               `yaml:"depot"`
	ParcelCount int                  `yaml:"parcel_count"`
	Seed        int64                `yaml:"seed"`
	Robot       robot.Kind           `yaml:"robot"`
	DelayMs     int                  `yaml:"delay_ms"`
	MaxTurns    int                  `yaml:"max_turns"`
	Edges       []string             `yaml:"edges"`
	MailRoute   []string             `yaml:"mail_route"`
	Coordinates map[string][]float64 `yaml:"coordinates"`
}

// DefaultEdges are the fourteen roads of the default village.
var DefaultEdges = []string{
	"Alice's House-Bob's House", "Alice's House-Cabin",
	"Alice's House-Post Office", "Bob's House-Town Hall",
	"Daria's House-Ernie's House", "Daria's House-Town Hall",
	"Ernie's House-Grete's House", "Grete's House-Farm",
	"Grete's House-Shop", "Marketplace-Farm",
	"Marketplace-Post Office", "Marketplace-Shop",
	"Marketplace-Town Hall", "Shop-Town Hall",
}

// Default returns the classic village with a goal-oriented robot.
// Slices and maps are fresh copies; callers may modify them.
func Default() Config {
	points := layout.DefaultPoints()
	coords := make(map[string][]float64, len(points))
	for name, p := range points {
		coords[name] = []float64{p.X(), p.Y()}
	}
	return Config{
		Depot:       DefaultDepot,
		ParcelCount: village.DefaultParcelCount,
		Robot:       robot.KindGoalOriented,
		DelayMs:     DefaultDelayMs,
		MaxTurns:    DefaultMaxTurns,
		Edges:       append([]string(nil), DefaultEdges...),
		MailRoute:   append([]string(nil), robot.DefaultMailRoute...),
		Coordinates: coords,
	}
}

// Load reads a YAML document from path and overlays it on Default().
//
// Scalar keys that are absent keep their default. The village geometry
// (edges, mail_route, coordinates) only falls back to the default village
// when the document does not declare its own edges; a custom road list
// without a mail route or coordinates simply has none.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(raw)
}

// Parse is Load without the file read.
func Parse(raw []byte) (Config, error) {
	def := Default()
	c := def
	c.Edges, c.MailRoute, c.Coordinates = nil, nil, nil

	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("config.yaml: %w", err)
	}
	if c.Edges == nil {
		c.Edges = def.Edges
		if c.MailRoute == nil {
			c.MailRoute = def.MailRoute
		}
		if c.Coordinates == nil {
			c.Coordinates = def.Coordinates
		}
	}
	return c, nil
}

// Delay returns the pause between animated turns.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}
