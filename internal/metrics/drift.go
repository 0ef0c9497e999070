// Package metrics provides per-tick observers for conserved
// quantities. Drift values are the maximum relative deviation from the
// first observation, so a perfect integrator reports 0.
package metrics

import (
	"math"

	"github.com/marek-sk/orbitsim/internal/body"
	"github.com/marek-sk/orbitsim/internal/physics"
)

type EnergyDrift struct {
	gravity *physics.Gravity
	initial float64
	max     float64
	samples int
}

func NewEnergyDrift(gravity *physics.Gravity) *EnergyDrift {
	return &EnergyDrift{gravity: gravity}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(bodies []*body.Body, t float64) {
	energy := e.gravity.Energy(bodies)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.max = math.Max(e.max, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.max }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.max = 0
	e.samples = 0
}

type MomentumDrift struct {
	initial body.Vec
	scale   float64
	max     float64
	samples int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(bodies []*body.Body, t float64) {
	p := physics.Momentum(bodies)
	if m.samples == 0 {
		m.initial = p
		// Normalize by total |m*v| so a system starting at net-zero
		// momentum still yields a meaningful relative figure.
		for _, b := range bodies {
			m.scale += b.Vel.Scale(b.Mass).Norm()
		}
	}
	m.samples++

	if m.scale != 0 {
		drift := p.Sub(m.initial).Norm() / m.scale
		m.max = math.Max(m.max, drift)
	}
}

func (m *MomentumDrift) Value() float64 { return m.max }

func (m *MomentumDrift) Reset() {
	m.initial = body.Vec{}
	m.scale = 0
	m.max = 0
	m.samples = 0
}

type AngularMomentumDrift struct {
	initial float64
	max     float64
	samples int
}

func NewAngularMomentumDrift() *AngularMomentumDrift {
	return &AngularMomentumDrift{}
}

func (a *AngularMomentumDrift) Name() string { return "angular_momentum_drift" }

func (a *AngularMomentumDrift) Observe(bodies []*body.Body, t float64) {
	l := physics.AngularMomentum(bodies)
	if a.samples == 0 {
		a.initial = l
	}
	a.samples++

	if a.initial != 0 {
		drift := math.Abs(l-a.initial) / math.Abs(a.initial)
		a.max = math.Max(a.max, drift)
	}
}

func (a *AngularMomentumDrift) Value() float64 { return a.max }

func (a *AngularMomentumDrift) Reset() {
	a.initial = 0
	a.max = 0
	a.samples = 0
}
