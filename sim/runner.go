package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/robovillage/config"
	"github.com/katalvlaran/robovillage/robot"
	"github.com/katalvlaran/robovillage/village"
)

// Sentinel errors for the driver.
var (
	// ErrFinished is returned by Step once every parcel has been delivered.
	ErrFinished = errors.New("sim: all parcels delivered")

	// ErrTurnLimit is returned by Run when the turn budget runs out first.
	ErrTurnLimit = errors.New("sim: turn limit reached")

	// ErrNilArgument is returned by NewRunner and Reset for a nil world, strategy or state.
	ErrNilArgument = errors.New("sim: nil argument")
)

const (
	methodStep = "Step"
	methodRun  = "Run"
)

// Event describes one turn.
type Event struct {
	Turn      int          // 1-based turn number
	From      string       // place before the move
	To        string       // direction the strategy chose
	Moved     bool         // false when To was not adjacent to From
	Delivered int          // parcels dropped at To this turn
	Pending   int          // parcels left after the turn
	Distance  float64      // hop length in layout units; 0 without a layout
	Memory    robot.Memory // memory carried into the next turn
}

// Summary aggregates a run.
type Summary struct {
	RunID      uuid.UUID
	Strategy   robot.Kind
	Turns      int
	Deliveries int
	Distance   float64
	Finished   bool
}

// Runner executes turns for one strategy. Step, Run and Reset must not be
// called concurrently; SetDelay may be called from any goroutine.
type Runner struct {
	world    *config.World
	strategy robot.Strategy
	state    *village.State
	memory   robot.Memory

	runID      uuid.UUID
	turn       int
	deliveries int
	distance   float64

	logger   *log.Logger
	maxTurns int
	delay    atomic.Int64 // nanoseconds
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the turn logger. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("sim: WithLogger(nil)")
	}
	return func(r *Runner) { r.logger = l }
}

// WithDelay overrides the configured pause between turns. Panics if d < 0.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic("sim: WithDelay(negative)")
	}
	return func(r *Runner) { r.delay.Store(int64(d)) }
}

// WithMaxTurns overrides the configured turn budget. Panics if n < 1.
func WithMaxTurns(n int) Option {
	if n < 1 {
		panic("sim: WithMaxTurns(n < 1)")
	}
	return func(r *Runner) { r.maxTurns = n }
}

// WithRunID fixes the run identifier instead of drawing a random one.
func WithRunID(id uuid.UUID) Option {
	return func(r *Runner) { r.runID = id }
}

// NewRunner prepares a run of strategy over world starting from state.
// Delay and turn budget default to the world's configuration; the logger
// defaults to discarding output.
func NewRunner(world *config.World, strategy robot.Strategy, state *village.State, opts ...Option) (*Runner, error) {
	if world == nil || strategy == nil || state == nil {
		return nil, ErrNilArgument
	}
	r := &Runner{
		world:    world,
		strategy: strategy,
		state:    state,
		runID:    uuid.New(),
		logger:   log.New(io.Discard, "", 0),
		maxTurns: world.Config.MaxTurns,
	}
	r.delay.Store(int64(world.Config.Delay()))
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Step plays a single turn.
//
// Implementation:
//   - Stage 1: Refuse to play a finished state (ErrFinished).
//   - Stage 2: Ask the strategy for a direction; its error aborts the turn
//     and leaves the runner untouched.
//   - Stage 3: Apply the move. An identical state means the direction was not
//     a road: the turn still counts, Moved is false.
//   - Stage 4: Replace the memory wholesale and update the counters.
func (r *Runner) Step() (Event, error) {
	if r.state.Done() {
		return Event{}, ErrFinished
	}

	act, err := r.strategy.Decide(r.state, r.memory)
	if err != nil {
		return Event{}, fmt.Errorf("%s: turn %d at %q: %w", methodStep, r.turn+1, r.state.Place(), err)
	}

	prev := r.state
	next := prev.Move(act.Direction)
	ev := Event{
		Turn:      r.turn + 1,
		From:      prev.Place(),
		To:        act.Direction,
		Moved:     next != prev,
		Delivered: prev.Pending() - next.Pending(),
		Pending:   next.Pending(),
		Memory:    act.Memory,
	}
	if ev.Moved && r.world.Layout != nil {
		if d, err := r.world.Layout.Distance(ev.From, ev.To); err == nil {
			ev.Distance = d
		}
	}

	r.state, r.memory = next, act.Memory
	r.turn = ev.Turn
	r.deliveries += ev.Delivered
	r.distance += ev.Distance

	switch {
	case !ev.Moved:
		r.logger.Printf("run=%s turn=%d no road %s -> %s, staying", r.runID, ev.Turn, ev.From, ev.To)
	case ev.Delivered > 0:
		r.logger.Printf("run=%s turn=%d delivery at %s (%d left)", r.runID, ev.Turn, ev.To, ev.Pending)
	default:
		r.logger.Printf("run=%s turn=%d moving to %s", r.runID, ev.Turn, ev.To)
	}
	return ev, nil
}

// Run plays turns until every parcel is delivered, pausing Delay() between
// turns. It returns the summary so far together with ErrTurnLimit, a Step
// error, or ctx.Err() when the run stops early.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	r.logger.Printf("run=%s start strategy=%s at %s parcels=%d", r.runID, r.strategy.Kind(), r.state.Place(), r.state.Pending())

	for !r.state.Done() {
		if r.turn >= r.maxTurns {
			r.logger.Printf("run=%s stopped after %d turns, %d parcels left", r.runID, r.turn, r.state.Pending())
			return r.Summary(), fmt.Errorf("%s: %d turns: %w", methodRun, r.maxTurns, ErrTurnLimit)
		}
		if err := ctx.Err(); err != nil {
			return r.Summary(), err
		}
		if _, err := r.Step(); err != nil {
			return r.Summary(), err
		}
		if r.state.Done() {
			break
		}
		if err := sleep(ctx, r.Delay()); err != nil {
			return r.Summary(), err
		}
	}

	r.logger.Printf("run=%s done in %d turns, distance %.1f", r.runID, r.turn, r.distance)
	return r.Summary(), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Reset starts a new run from state with an empty memory, a zero turn count
// and a fresh run ID. A nil strategy keeps the current one.
func (r *Runner) Reset(state *village.State, strategy robot.Strategy) error {
	if state == nil {
		return ErrNilArgument
	}
	if strategy != nil {
		r.strategy = strategy
	}
	r.state = state
	r.memory = robot.Memory{}
	r.runID = uuid.New()
	r.turn, r.deliveries, r.distance = 0, 0, 0
	return nil
}

// SetDelay changes the pause between turns; negative values clamp to zero.
// Safe to call while Run is in progress.
func (r *Runner) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	r.delay.Store(int64(d))
}

// Delay returns the current pause between turns.
func (r *Runner) Delay() time.Duration { return time.Duration(r.delay.Load()) }

// State returns the current world state.
func (r *Runner) State() *village.State { return r.state }

// Memory returns the memory the strategy will receive next turn.
func (r *Runner) Memory() robot.Memory { return r.memory }

// Turn returns the number of turns played since the last reset.
func (r *Runner) Turn() int { return r.turn }

// RunID identifies the current run.
func (r *Runner) RunID() uuid.UUID { return r.runID }

// Summary reports the run so far.
func (r *Runner) Summary() Summary {
	return Summary{
		RunID:      r.runID,
		Strategy:   r.strategy.Kind(),
		Turns:      r.turn,
		Deliveries: r.deliveries,
		Distance:   r.distance,
		Finished:   r.state.Done(),
	}
}
