package physics

import (
	"math"

	"github.com/marek-sk/orbitsim/internal/body"
)

// G is the gravitational constant in SI units (m^3 kg^-1 s^-2).
// Positions are astronomically scaled meters, so no unit mixing.
const G = 6.67430e-11

// Gravity advances a set of bodies under pairwise Newtonian gravity
// with a fixed timestep.
type Gravity struct {
	// G is tunable so tests and toy systems can use G=1.
	G float64
	// Softening, when non-zero, adds eps^2 to the squared separation
	// before the force division. Zero keeps the raw 1/r^2 law, which
	// diverges as two bodies approach the same point.
	Softening float64

	forces []body.Vec
}

func NewGravity() *Gravity {
	return &Gravity{G: G}
}

// Forces returns the net gravitational force on each body. Every
// unordered pair is computed once and applied with opposite signs to
// both bodies, so pair forces are antisymmetric to the last bit and
// the sum injects no net momentum.
func (g *Gravity) Forces(bodies []*body.Body) []body.Vec {
	n := len(bodies)
	if cap(g.forces) < n {
		g.forces = make([]body.Vec, n)
	}
	forces := g.forces[:n]
	for i := range forces {
		forces[i] = body.Vec{}
	}

	eps2 := g.Softening * g.Softening
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := bodies[j].Pos.Sub(bodies[i].Pos)
			r2 := d.X*d.X + d.Y*d.Y + eps2

			r := math.Sqrt(r2)
			f := g.G * bodies[i].Mass * bodies[j].Mass / r2
			fx, fy := f*d.X/r, f*d.Y/r

			forces[i].X += fx
			forces[i].Y += fy
			forces[j].X -= fx
			forces[j].Y -= fy
		}
	}

	return forces
}

// Step advances every body by dt using semi-implicit Euler: the
// velocity is updated from the same-step net force first, and the
// position then moves by the just-updated velocity. Reversing that
// order changes the scheme and degrades long-run orbit stability.
// Forces are accumulated from pre-step positions for all bodies
// before any position moves.
func (g *Gravity) Step(bodies []*body.Body, dt float64) {
	forces := g.Forces(bodies)
	for i, b := range bodies {
		b.Vel = b.Vel.Add(forces[i].Scale(dt / b.Mass))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}
}
