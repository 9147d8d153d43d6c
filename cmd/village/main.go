// Command village runs the delivery robot simulation from the terminal.
//
//	village -robot goal -parcels 5 -delay 800ms
//	village -config village.yaml -compare 100
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/katalvlaran/robovillage/bfs"
	"github.com/katalvlaran/robovillage/config"
	"github.com/katalvlaran/robovillage/robot"
	"github.com/katalvlaran/robovillage/sim"
	"github.com/katalvlaran/robovillage/village"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a village YAML file (default: built-in village)")
		robotName  = flag.String("robot", "", "strategy: random | route | goal (default: from config)")
		parcels    = flag.Int("parcels", 0, "number of parcels (default: from config)")
		seed       = flag.Int64("seed", 0, "random seed; 0 uses the fixed default")
		delay      = flag.Duration("delay", 0, "pause between turns, e.g. 800ms (default: from config)")
		maxTurns   = flag.Int("max-turns", 0, "turn budget (default: from config)")
		compare    = flag.Int("compare", 0, "instead of animating, average this many runs of every strategy")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[village] ", log.LstdFlags|log.Lmicroseconds)

	cfg := config.Default()
	if p := strings.TrimSpace(*configPath); p != "" {
		var err error
		if cfg, err = config.Load(p); err != nil {
			logger.Fatalf("load config: %v", err)
		}
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["robot"] {
		kind, err := robot.ParseKind(*robotName)
		if err != nil {
			logger.Fatalf("robot: %v", err)
		}
		cfg.Robot = kind
	}
	if set["parcels"] {
		cfg.ParcelCount = *parcels
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["delay"] {
		cfg.DelayMs = int(delay.Milliseconds())
	}
	if set["max-turns"] {
		cfg.MaxTurns = *maxTurns
	}

	world, err := cfg.Build()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	diameter, err := bfs.Diameter(world.Graph)
	if err != nil {
		logger.Fatalf("roads: %v", err)
	}
	logger.Printf("village: %d locations, %d roads, diameter %d, depot %s",
		world.Graph.LocationCount(), world.Graph.EdgeCount(), diameter, cfg.Depot)
	if world.Layout != nil {
		b := world.Layout.Bound()
		logger.Printf("map: %.0fx%.0f", b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *compare > 0 {
		runCompare(ctx, logger, world, *compare)
		return
	}
	runOnce(ctx, logger, world)
}

func runOnce(ctx context.Context, logger *log.Logger, world *config.World) {
	cfg := world.Config
	rng := village.NewRand(cfg.Seed)

	state, err := world.NewState(rng)
	if err != nil {
		logger.Fatalf("initial state: %v", err)
	}
	strategy, err := world.Strategy(cfg.Robot, rng)
	if err != nil {
		logger.Fatalf("strategy %s: %v", cfg.Robot, err)
	}
	if cfg.Robot == robot.KindFixedRoute && world.Layout != nil && len(world.MailRoute) > 0 {
		loop := world.MailRoute
		if length, err := world.Layout.RouteLength(loop[len(loop)-1], loop); err == nil {
			logger.Printf("mail route: %d stops, loop length %.0f", len(loop), length)
		}
	}
	for _, p := range state.Parcels() {
		logger.Printf("parcel %s", p)
	}

	r, err := sim.NewRunner(world, strategy, state, sim.WithLogger(logger))
	if err != nil {
		logger.Fatalf("runner: %v", err)
	}
	logger.Printf("pace %s (%s per turn)", sim.PaceOf(r.Delay()), r.Delay())

	sum, err := r.Run(ctx)
	switch {
	case err == nil:
		logger.Printf("%s robot delivered %d parcels in %d turns", sum.Strategy, sum.Deliveries, sum.Turns)
	case errors.Is(err, context.Canceled):
		logger.Printf("interrupted after %d turns, %d parcels left", sum.Turns, r.State().Pending())
	case errors.Is(err, sim.ErrTurnLimit):
		logger.Printf("gave up after %d turns, %d parcels left", sum.Turns, r.State().Pending())
		os.Exit(1)
	default:
		logger.Fatalf("run: %v", err)
	}
}

func runCompare(ctx context.Context, logger *log.Logger, world *config.World, runs int) {
	start := time.Now()
	results, err := sim.Compare(ctx, world, robot.Kinds(), runs, world.Config.ParcelCount, world.Config.Seed)
	if err != nil {
		logger.Fatalf("compare: %v", err)
	}
	for _, c := range results {
		logger.Printf("%-6s %6.1f turns  %8.1f distance  (%d runs)", c.Kind, c.MeanTurns, c.MeanDistance, c.Runs)
	}
	logger.Printf("compared %d strategies in %s", len(results), time.Since(start).Round(time.Millisecond))
}
