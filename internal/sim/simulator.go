package sim

import (
	"context"
	"fmt"

	"github.com/marek-sk/orbitsim/internal/body"
	"github.com/marek-sk/orbitsim/internal/physics"
)

// Metric observes the body set once per tick during a headless run.
type Metric interface {
	Name() string
	Observe(bodies []*body.Body, t float64)
	Value() float64
	Reset()
}

type Config struct {
	Dt       float64 // simulated seconds per tick
	Duration float64 // total simulated seconds
}

// Result holds the recorded trajectory of a headless run. Each state
// row is x, y, vx, vy per body in registry order.
type Result struct {
	States     [][]float64
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.1fs): %s", e.Step, e.Time, e.Message)
}

// Simulator owns the per-tick pipeline: force accumulation, velocity
// and position updates over the whole registry, then clock advance.
// Everything runs on the caller's goroutine; nothing here is shared
// across execution contexts.
type Simulator struct {
	registry *body.Registry
	gravity  *physics.Gravity
	clock    Clock
	metrics  []Metric
}

func New(registry *body.Registry, gravity *physics.Gravity) *Simulator {
	return &Simulator{
		registry: registry,
		gravity:  gravity,
	}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) Registry() *body.Registry { return s.registry }

func (s *Simulator) Gravity() *physics.Gravity { return s.gravity }

// Elapsed returns simulated seconds so far for the given dt.
func (s *Simulator) Elapsed(dt float64) float64 { return s.clock.Elapsed(dt) }

func (s *Simulator) Steps() int64 { return s.clock.Steps() }

// Tick advances the whole registry by one fixed timestep. The full
// physics update completes before the method returns, so callers never
// observe a partially updated body set.
func (s *Simulator) Tick(dt float64) {
	s.gravity.Step(s.registry.Bodies(), dt)
	s.clock.Tick()
}

// Reset restores initial body states and rewinds the clock.
func (s *Simulator) Reset() {
	s.registry.Reset()
	s.clock.Reset()
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", cfg.Duration)
	}
	return nil
}

func stateValid(bodies []*body.Body) bool {
	for _, b := range bodies {
		if !b.Pos.IsValid() || !b.Vel.IsValid() {
			return false
		}
	}
	return true
}

func flatten(bodies []*body.Body) []float64 {
	row := make([]float64, 0, len(bodies)*4)
	for _, b := range bodies {
		row = append(row, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}
	return row
}

// Run executes a headless simulation, recording every state and
// feeding metrics. A NaN/Inf state stops the run early with the error
// recorded in the result. Cancellation is checked between ticks; an
// in-flight tick always completes.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:  make([][]float64, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	bodies := s.registry.Bodies()
	result.States = append(result.States, flatten(bodies))
	result.Times = append(result.Times, 0)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := s.clock.Elapsed(cfg.Dt)
		for _, m := range s.metrics {
			m.Observe(bodies, t)
		}

		s.Tick(cfg.Dt)

		if !stateValid(bodies) {
			result.Errors = append(result.Errors,
				SimError{Time: t, Step: i, Message: "invalid state (NaN/Inf)"})
			break
		}

		result.StepsTaken++
		result.States = append(result.States, flatten(bodies))
		result.Times = append(result.Times, s.clock.Elapsed(cfg.Dt))
	}

	// Final observation so reported drift covers the last recorded
	// state, not just pre-tick snapshots.
	if stateValid(bodies) {
		for _, m := range s.metrics {
			m.Observe(bodies, s.clock.Elapsed(cfg.Dt))
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback drives the tick loop for interactive frontends. The
// callback sees the fully updated body set after each tick and returns
// false to stop (the quit path).
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, fn func(bodies []*body.Body, t float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	bodies := s.registry.Bodies()
	for s.clock.Elapsed(cfg.Dt) < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Tick(cfg.Dt)

		if !stateValid(bodies) {
			return fmt.Errorf("invalid state at t=%.1fs", s.clock.Elapsed(cfg.Dt))
		}

		if !fn(bodies, s.clock.Elapsed(cfg.Dt)) {
			return nil
		}
	}

	return nil
}
